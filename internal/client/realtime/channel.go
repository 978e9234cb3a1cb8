// Package realtime поддерживает постоянное websocket-соединение с relay.
// Канал доставляет изменения других устройств без опроса и позволяет
// отправлять локальные правки сразу после редактирования.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	gosync "sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"

	"github.com/L0dyv/litepad/internal/client/events"
	"github.com/L0dyv/litepad/internal/client/storage"
	syncsvc "github.com/L0dyv/litepad/internal/client/sync"
	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/reconcile"
	"github.com/L0dyv/litepad/pkg/api"
)

const (
	// heartbeatInterval — период ping-фреймов, удерживающих соединение
	// живым через прокси и NAT
	heartbeatInterval = 30 * time.Second

	// reconnectBase — начальная пауза переподключения, удваивается
	// с каждой неудачной попыткой
	reconnectBase = time.Second

	// reconnectAttempts — предел попыток переподключения подряд;
	// после исчерпания канал переходит в disconnected и ждет
	// нового Connect
	reconnectAttempts = 5
)

// ErrNotConnected возвращается при попытке отправить фрейм без
// установленного соединения
var ErrNotConnected = errors.New("realtime channel is not connected")

// Channel управляет websocket-соединением с relay: подключение
// с экспоненциальным backoff, heartbeat, диспетчеризация входящих
// фреймов и сериализация исходящих.
type Channel struct {
	wsURL    string
	tokens   syncsvc.TokenSource
	syncSvc  syncsvc.Service
	docs     storage.DocumentStorage
	sessions storage.SessionStorage
	bus      *events.Bus
	logger   *slog.Logger

	// writeMu сериализует записи: gorilla/websocket допускает только
	// одного конкурентного писателя
	writeMu gosync.Mutex
	conn    *websocket.Conn

	mu     gosync.Mutex
	state  events.ConnectionState
	cancel context.CancelFunc
	done   chan struct{}
}

// NewChannel создает канал; соединение устанавливает Connect
func NewChannel(wsURL string, tokens syncsvc.TokenSource, syncService syncsvc.Service, docs storage.DocumentStorage, sessions storage.SessionStorage, bus *events.Bus, logger *slog.Logger) *Channel {
	return &Channel{
		wsURL:    wsURL,
		tokens:   tokens,
		syncSvc:  syncService,
		docs:     docs,
		sessions: sessions,
		bus:      bus,
		logger:   logger,
		state:    events.StateDisconnected,
	}
}

// State возвращает текущее состояние канала
func (c *Channel) State() events.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect запускает фоновое обслуживание соединения.
// Повторный вызов при уже работающем канале — no-op.
func (c *Channel) Connect(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go func() {
		defer close(done)
		c.run(runCtx)
	}()
}

// Disconnect разрывает соединение и останавливает переподключения.
// Блокируется до полной остановки фоновой горутины.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	c.closeConn()
	<-done
}

// run обслуживает соединение: каждая сессия живет до ошибки чтения,
// после чего следует серия попыток переподключения с экспоненциальным
// backoff. Бюджет попыток считает подряд идущие неудачи: обрыв сессии,
// дошедшей до connected, завершает серию, и следующая начинается
// с чистым бюджетом.
func (c *Channel) run(ctx context.Context) {
	defer c.setState(events.StateDisconnected)
	defer func() {
		// после исчерпания попыток канал можно запустить заново
		c.mu.Lock()
		c.cancel = nil
		c.mu.Unlock()
	}()

	for {
		var established bool
		backoff := retry.WithMaxRetries(reconnectAttempts-1, retry.NewExponential(reconnectBase))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			connected, err := c.session(ctx)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("realtime session ended", "error", err)
			if connected {
				// не retryable: серия завершается, внешний цикл
				// начнет новую
				established = true
				return err
			}
			return retry.RetryableError(err)
		})
		if ctx.Err() != nil {
			return
		}
		if !established && err != nil {
			c.logger.Error("realtime reconnect attempts exhausted", "error", err)
			return
		}
	}
}

// session выполняет одно подключение: dial, обмен фреймами, heartbeat.
// Возвращается при ошибке чтения или отмене контекста; connected
// сообщает, дошла ли сессия до подтверждения relay.
func (c *Channel) session(ctx context.Context) (connected bool, err error) {
	c.setState(events.StateConnecting)

	token, err := c.tokens.Credentials(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get credentials: %w", err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.wsURL, header)
	if err != nil {
		if resp != nil {
			return false, fmt.Errorf("dial failed with status %d: %w", resp.StatusCode, err)
		}
		return false, fmt.Errorf("dial failed: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	defer c.closeConn()

	// heartbeat живет, пока живо соединение
	hbCtx, hbCancel := context.WithCancel(ctx)
	defer hbCancel()
	go c.heartbeat(hbCtx)

	err = c.readLoop(ctx, conn)
	// connected выставляется фреймом relay и держится до следующей сессии
	return c.State() == events.StateConnected, err
}

// readLoop читает и диспетчеризует входящие фреймы
func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		var msg api.ChannelMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("read failed: %w", err)
		}

		if err := c.dispatch(ctx, &msg); err != nil {
			c.logger.Warn("failed to handle frame", "type", msg.Type, "error", err)
		}
	}
}

func (c *Channel) dispatch(ctx context.Context, msg *api.ChannelMessage) error {
	switch msg.Type {
	case api.MsgConnected:
		c.setState(events.StateConnected)
		// Свежеустановленный канал догоняет пропущенное: сначала
		// локальные правки, затем запрос изменений relay
		if err := c.PushPending(ctx); err != nil {
			return err
		}
		return c.sendPull(ctx)

	case api.MsgPong:
		return nil

	case api.MsgAck:
		if msg.Ack == nil {
			return errors.New("ack frame without payload")
		}
		_, err := c.syncSvc.ApplyPushResponse(ctx, msg.Ack)
		return err

	case api.MsgChanges:
		applyTime := time.Now()
		if msg.ServerTime != nil {
			applyTime = *msg.ServerTime
		}
		if _, _, err := c.syncSvc.ApplyRemote(ctx, msg.Changes, applyTime); err != nil {
			return err
		}
		if msg.ServerTime == nil {
			// курсор двигается только по часам relay: локальное время
			// с ними не сравнимо
			return nil
		}
		return c.advanceCursor(ctx, *msg.ServerTime)

	case api.MsgConflict:
		for _, conflict := range msg.Conflicts {
			c.bus.PublishConflict(toConflict(conflict))
		}
		return nil

	case api.MsgError:
		c.logger.Warn("relay reported error", "message", msg.Message)
		return nil

	default:
		// Неизвестные типы фреймов игнорируются ради совместимости
		// со старшими версиями relay
		c.logger.Debug("ignoring unknown frame type", "type", msg.Type)
		return nil
	}
}

// PushPending отправляет pending документы push-фреймом.
// Вызывается после установления соединения и после локальных правок.
func (c *Channel) PushPending(ctx context.Context) error {
	pending, err := c.docs.PendingDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending documents: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	docs := make([]api.PushDocument, 0, len(pending))
	for _, d := range pending {
		docs = append(docs, api.PushDocument{
			ID:           d.ID,
			Title:        d.Title,
			Body:         d.Body,
			LocalVersion: d.LocalVersion,
			Deleted:      d.Deleted,
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
			SyncedAt:     d.SyncedAt,
		})
	}
	return c.send(api.ChannelMessage{Type: api.MsgPush, Documents: docs})
}

// sendPull запрашивает изменения relay с момента последней синхронизации
func (c *Channel) sendPull(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync session: %w", err)
	}
	return c.send(api.ChannelMessage{Type: api.MsgPull, Since: session.LastSyncAt})
}

// advanceCursor двигает курсор синхронизации после применения changes
func (c *Channel) advanceCursor(ctx context.Context, serverTime time.Time) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync session: %w", err)
	}
	session.LastSyncAt = &serverTime
	return c.sessions.SaveSession(ctx, session)
}

// heartbeat шлет ping каждые heartbeatInterval, пока соединение живо
func (c *Channel) heartbeat(ctx context.Context) {
	t := time.NewTicker(heartbeatInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if err := c.send(api.ChannelMessage{Type: api.MsgPing}); err != nil {
				c.logger.Debug("heartbeat failed", "error", err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// send сериализует запись фрейма в соединение
func (c *Channel) send(msg api.ChannelMessage) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

func (c *Channel) setState(state events.ConnectionState) {
	c.mu.Lock()
	if c.state == state {
		c.mu.Unlock()
		return
	}
	c.state = state
	c.mu.Unlock()
	c.bus.PublishState(state)
}

func (c *Channel) closeConn() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func toConflict(c api.Conflict) reconcile.Conflict {
	return reconcile.Conflict{
		Local: models.Document{
			ID:           c.Local.ID,
			Title:        c.Local.Title,
			Body:         c.Local.Body,
			LocalVersion: c.Local.LocalVersion,
			Deleted:      c.Local.Deleted,
			CreatedAt:    c.Local.CreatedAt,
			UpdatedAt:    c.Local.UpdatedAt,
			SyncedAt:     c.Local.SyncedAt,
		},
		Remote: models.RelayDocument{
			ID:        c.Remote.ID,
			Title:     c.Remote.Title,
			Body:      c.Remote.Body,
			Version:   c.Remote.Version,
			Deleted:   c.Remote.Deleted,
			CreatedAt: c.Remote.CreatedAt,
			UpdatedAt: c.Remote.UpdatedAt,
		},
	}
}
