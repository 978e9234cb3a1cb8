package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/L0dyv/litepad/internal/attachments"
	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/server/middleware"
	"github.com/L0dyv/litepad/internal/server/storage"
	"github.com/L0dyv/litepad/pkg/api"
)

// hashPattern — SHA-256 hex в нижнем регистре
var hashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// AttachmentsHandler обрабатывает content-addressed синхронизацию вложений
type AttachmentsHandler struct {
	logger  *slog.Logger
	storage storage.AttachmentStorage
}

// NewAttachmentsHandler создает новый handler для вложений
func NewAttachmentsHandler(logger *slog.Logger, st storage.AttachmentStorage) *AttachmentsHandler {
	return &AttachmentsHandler{
		logger:  logger,
		storage: st,
	}
}

// Announce обрабатывает POST /api/v1/attachments/announce.
// Регистрирует метаданные вложений за аккаунтом и возвращает
// подмножество хешей, байты которых relay еще не хранит.
func (h *AttachmentsHandler) Announce(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := middleware.UserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.AnnounceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	hashes := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if !hashPattern.MatchString(item.ContentHash) {
			sendError(h.logger, w, fmt.Sprintf("invalid content hash %q", item.ContentHash), http.StatusBadRequest)
			return
		}
		if item.ByteSize > attachments.MaxByteSize {
			sendError(h.logger, w, fmt.Sprintf("attachment %s exceeds size limit", item.ContentHash), http.StatusRequestEntityTooLarge)
			return
		}

		meta := &models.Attachment{
			ContentHash: item.ContentHash,
			Filename:    item.Filename,
			MimeType:    item.MimeType,
			Extension:   item.Extension,
			ByteSize:    item.ByteSize,
			CreatedAt:   item.CreatedAt,
		}
		if meta.CreatedAt.IsZero() {
			meta.CreatedAt = time.Now().UTC()
		}
		if err := h.storage.SaveAttachmentMeta(ctx, accountID, meta); err != nil {
			h.logger.ErrorContext(ctx, "failed to save attachment meta", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		hashes = append(hashes, item.ContentHash)
	}

	needed, err := h.storage.MissingBlobs(ctx, hashes)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute missing blobs", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "attachments announced",
		slog.String("account_id", accountID),
		slog.Int("announced", len(hashes)),
		slog.Int("needed", len(needed)))

	sendJSON(h.logger, w, api.AnnounceResponse{Needed: needed}, http.StatusOK)
}

// Upload обрабатывает PUT /api/v1/attachments/upload/{hash}.
// Хеш пересчитывается на сервере: клиенту не доверяем имя blob-а.
func (h *AttachmentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := middleware.UserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	hash := mux.Vars(r)["hash"]
	if !hashPattern.MatchString(hash) {
		sendError(h.logger, w, "invalid content hash", http.StatusBadRequest)
		return
	}

	// Лимит читается с запасом в байт, чтобы отличить ровно-лимит
	// от превышения
	data, err := io.ReadAll(io.LimitReader(r.Body, attachments.MaxByteSize+1))
	if err != nil {
		sendError(h.logger, w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(data) > attachments.MaxByteSize {
		sendError(h.logger, w, "attachment exceeds size limit", http.StatusRequestEntityTooLarge)
		return
	}

	if actual := attachments.HashBytes(data); actual != hash {
		h.logger.WarnContext(ctx, "attachment hash mismatch",
			slog.String("declared", hash),
			slog.String("actual", actual))
		sendError(h.logger, w, "content hash mismatch", http.StatusBadRequest)
		return
	}

	// Байты принимаются только для анонсированных аккаунтом вложений
	if _, err := h.storage.GetAttachmentMeta(ctx, accountID, hash); err != nil {
		if errors.Is(err, storage.ErrAttachmentNotFound) {
			sendError(h.logger, w, "attachment is not announced", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get attachment meta", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.storage.SaveBlob(ctx, hash, data); err != nil {
		h.logger.ErrorContext(ctx, "failed to save blob", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "attachment uploaded",
		slog.String("account_id", accountID),
		slog.String("hash", hash),
		slog.Int("size", len(data)))

	resp := api.UploadResponse{
		ServerTime: time.Now().UTC(),
		Hash:       hash,
		Size:       int64(len(data)),
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Download обрабатывает GET /api/v1/attachments/download/{hash}.
// Метаданные передаются в заголовках, тело — сырые байты вложения.
func (h *AttachmentsHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := middleware.UserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	hash := mux.Vars(r)["hash"]
	if !hashPattern.MatchString(hash) {
		sendError(h.logger, w, "invalid content hash", http.StatusBadRequest)
		return
	}

	meta, err := h.storage.GetAttachmentMeta(ctx, accountID, hash)
	if err != nil {
		if errors.Is(err, storage.ErrAttachmentNotFound) {
			sendError(h.logger, w, "attachment not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get attachment meta", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	data, err := h.storage.GetBlob(ctx, accountID, hash)
	if err != nil {
		if errors.Is(err, storage.ErrAttachmentNotFound) {
			sendError(h.logger, w, "attachment bytes are not uploaded yet", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get blob", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	contentType := meta.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Litepad-Filename", meta.Filename)
	w.Header().Set("X-Litepad-Extension", meta.Extension)
	w.Header().Set("X-Litepad-Size", strconv.FormatInt(int64(len(data)), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write blob response", slog.Any("error", err))
	}
}

// BatchMetadata обрабатывает POST /api/v1/attachments/batch-metadata.
// Неизвестные аккаунту хеши молча пропускаются.
func (h *AttachmentsHandler) BatchMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := middleware.UserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.BatchMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	metas, err := h.storage.GetAttachmentMetaBatch(ctx, accountID, req.Hashes)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get attachment metadata", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.BatchMetadataResponse{}
	for _, m := range metas {
		resp.Items = append(resp.Items, api.AttachmentMeta{
			ContentHash: m.ContentHash,
			Filename:    m.Filename,
			MimeType:    m.MimeType,
			Extension:   m.Extension,
			ByteSize:    m.ByteSize,
			CreatedAt:   m.CreatedAt,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
