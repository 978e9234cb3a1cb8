package hub

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/server/jwt"
	"github.com/L0dyv/litepad/internal/server/middleware"
	"github.com/L0dyv/litepad/internal/server/relay"
	"github.com/L0dyv/litepad/internal/server/storage"
	"github.com/L0dyv/litepad/pkg/api"
)

// Handler обслуживает websocket-эндпоинт realtime канала
type Handler struct {
	hub      *Hub
	relay    *relay.Service
	docs     storage.DocumentStorage
	tokens   *jwt.Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler создает websocket handler
func NewHandler(h *Hub, relaySvc *relay.Service, docs storage.DocumentStorage, tokens *jwt.Service, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    h,
		relay:  relaySvc,
		docs:   docs,
		tokens: tokens,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// ServeHTTP обрабатывает GET /api/v1/ws.
// Access token передается в заголовке Authorization при рукопожатии.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := middleware.BearerToken(r)
	if !ok {
		http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.ValidateAccessToken(tokenString)
	if err != nil {
		h.logger.Warn("websocket handshake with invalid token", "error", err)
		http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	conn := NewConn(ws, claims.UserID)
	h.hub.Add(conn)
	h.logger.Info("device connected",
		"account_id", claims.UserID,
		"connections", h.hub.ConnCount(claims.UserID))

	now := time.Now().UTC()
	if err := conn.Send(api.ChannelMessage{Type: api.MsgConnected, ServerTime: &now}); err != nil {
		h.logger.Warn("failed to send connected frame", "error", err)
		h.drop(conn)
		return
	}

	h.readLoop(r, conn)
}

func (h *Handler) readLoop(r *http.Request, conn *Conn) {
	defer h.drop(conn)

	for {
		var msg api.ChannelMessage
		if err := conn.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read failed", "account_id", conn.accountID, "error", err)
			}
			return
		}

		if err := h.dispatch(r, conn, &msg); err != nil {
			h.logger.Warn("failed to handle frame",
				"account_id", conn.accountID,
				"type", msg.Type,
				"error", err)
			_ = conn.Send(api.ChannelMessage{Type: api.MsgError, Message: "failed to process " + msg.Type})
		}
	}
}

func (h *Handler) dispatch(r *http.Request, conn *Conn, msg *api.ChannelMessage) error {
	ctx := r.Context()

	switch msg.Type {
	case api.MsgPing:
		return conn.Send(api.ChannelMessage{Type: api.MsgPong})

	case api.MsgPush:
		resp, err := h.relay.Push(ctx, conn.accountID, msg.Documents)
		if err != nil {
			return err
		}
		if err := conn.Send(api.ChannelMessage{Type: api.MsgAck, Ack: resp}); err != nil {
			return err
		}
		if len(resp.Conflicts) > 0 {
			serverTime := resp.ServerTime
			if err := conn.Send(api.ChannelMessage{
				Type:       api.MsgConflict,
				ServerTime: &serverTime,
				Conflicts:  resp.Conflicts,
			}); err != nil {
				return err
			}
		}
		return h.fanOutAccepted(ctx, conn, resp)

	case api.MsgPull:
		var resp *api.FetchResponse
		var err error
		if msg.Since != nil {
			resp, err = h.relay.Incremental(ctx, conn.accountID, *msg.Since)
		} else {
			resp, err = h.relay.Full(ctx, conn.accountID)
		}
		if err != nil {
			return err
		}
		serverTime := resp.ServerTime
		return conn.Send(api.ChannelMessage{
			Type:       api.MsgChanges,
			ServerTime: &serverTime,
			Changes:    resp.Documents,
		})

	default:
		// Неизвестные типы фреймов игнорируются ради совместимости
		h.logger.Debug("ignoring unknown frame type", "type", msg.Type)
		return nil
	}
}

// fanOutAccepted рассылает принятые push-ем документы остальным
// устройствам аккаунта
func (h *Handler) fanOutAccepted(ctx context.Context, conn *Conn, resp *api.PushResponse) error {
	if len(resp.Accepted) == 0 || h.hub.ConnCount(conn.accountID) < 2 {
		return nil
	}

	accepted, err := h.docs.GetDocumentsByIDs(ctx, conn.accountID, resp.Accepted)
	if err != nil {
		return fmt.Errorf("failed to load accepted documents: %w", err)
	}

	changes := make([]models.RelayDocument, 0, len(accepted))
	for _, id := range resp.Accepted {
		if doc, ok := accepted[id]; ok {
			changes = append(changes, doc)
		}
	}

	serverTime := resp.ServerTime
	h.hub.Broadcast(conn.accountID, api.ChannelMessage{
		Type:       api.MsgChanges,
		ServerTime: &serverTime,
		Changes:    relay.ToAPIDocuments(changes),
	}, conn)
	return nil
}

func (h *Handler) drop(conn *Conn) {
	h.hub.Remove(conn)
	_ = conn.Close()
	h.logger.Info("device disconnected", "account_id", conn.accountID)
}
