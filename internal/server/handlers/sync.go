package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/L0dyv/litepad/internal/server/middleware"
	"github.com/L0dyv/litepad/internal/server/relay"
	"github.com/L0dyv/litepad/pkg/api"
)

// SyncHandler обрабатывает запросы протокола синхронизации документов
type SyncHandler struct {
	logger *slog.Logger
	relay  *relay.Service
}

// NewSyncHandler создает новый handler для синхронизации
func NewSyncHandler(logger *slog.Logger, relaySvc *relay.Service) *SyncHandler {
	return &SyncHandler{
		logger: logger,
		relay:  relaySvc,
	}
}

// Full обрабатывает GET /api/v1/sync/full.
// Возвращает полный снимок документов аккаунта, включая tombstones.
func (h *SyncHandler) Full(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := middleware.UserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.relay.Full(ctx, accountID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build full snapshot", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Incremental обрабатывает GET /api/v1/sync/incremental?since=<RFC3339Nano>.
// Возвращает документы, измененные строго после курсора.
func (h *SyncHandler) Incremental(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := middleware.UserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sinceParam := r.URL.Query().Get("since")
	if sinceParam == "" {
		sendError(h.logger, w, "since parameter is required", http.StatusBadRequest)
		return
	}
	since, err := time.Parse(time.RFC3339Nano, sinceParam)
	if err != nil {
		sendError(h.logger, w, "invalid since parameter: expected RFC3339 timestamp", http.StatusBadRequest)
		return
	}

	resp, err := h.relay.Incremental(ctx, accountID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build incremental snapshot", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Push обрабатывает POST /api/v1/sync/push.
// Классифицирует batch документов устройства и возвращает вердикт
// по каждому: accepted, remote_wins или conflict.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := middleware.UserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode push request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	for _, doc := range req.Documents {
		if doc.ID == "" {
			sendError(h.logger, w, "document id is required", http.StatusBadRequest)
			return
		}
	}

	resp, err := h.relay.Push(ctx, accountID, req.Documents)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to apply push", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
