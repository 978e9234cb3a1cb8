// Package relay реализует серверную половину протокола синхронизации:
// классификацию push-батчей и выдачу снимков состояния. Один и тот же
// сервис обслуживает HTTP-эндпоинты и websocket-канал.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/reconcile"
	"github.com/L0dyv/litepad/internal/server/storage"
	"github.com/L0dyv/litepad/pkg/api"
)

// casRetries — предел повторных классификаций одного документа при
// проигрыше CAS конкурентному писателю
const casRetries = 3

// Service применяет push-батчи к авторитетному хранилищу и собирает
// ответы на full/incremental выборки
type Service struct {
	docs   storage.DocumentStorage
	logger *slog.Logger
}

// NewService создает сервис синхронизации relay
func NewService(docs storage.DocumentStorage, logger *slog.Logger) *Service {
	return &Service{docs: docs, logger: logger}
}

// Full возвращает все документы аккаунта, включая tombstones
func (s *Service) Full(ctx context.Context, accountID string) (*api.FetchResponse, error) {
	docs, err := s.docs.GetAccountDocuments(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account documents: %w", err)
	}
	return &api.FetchResponse{
		ServerTime: time.Now().UTC(),
		Documents:  ToAPIDocuments(docs),
	}, nil
}

// Incremental возвращает документы, изменённые строго после since
func (s *Service) Incremental(ctx context.Context, accountID string, since time.Time) (*api.FetchResponse, error) {
	docs, err := s.docs.GetAccountDocumentsSince(ctx, accountID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents since %s: %w", since, err)
	}
	return &api.FetchResponse{
		ServerTime: time.Now().UTC(),
		Documents:  ToAPIDocuments(docs),
	}, nil
}

// Push классифицирует батч и атомарно применяет принятые документы.
// Каждая запись защищена CAS по версии: если между классификацией и
// записью успел другой писатель, документ переклассифицируется против
// свежего состояния.
func (s *Service) Push(ctx context.Context, accountID string, batch []api.PushDocument) (*api.PushResponse, error) {
	serverTime := time.Now().UTC()
	resp := &api.PushResponse{ServerTime: serverTime}
	if len(batch) == 0 {
		return resp, nil
	}

	ids := make([]string, 0, len(batch))
	local := make([]models.Document, 0, len(batch))
	byID := make(map[string]api.PushDocument, len(batch))
	for _, d := range batch {
		ids = append(ids, d.ID)
		byID[d.ID] = d
		local = append(local, models.Document{
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

	snapshot, err := s.docs.GetDocumentsByIDs(ctx, accountID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot documents: %w", err)
	}

	result := reconcile.Classify(local, snapshot)

	for _, id := range result.Accept {
		outcome, fresh, err := s.writeAccepted(ctx, accountID, byID[id], snapshot[id].Version, serverTime)
		if err != nil {
			return nil, err
		}
		switch outcome {
		case reconcile.OutcomeAccept:
			resp.Accepted = append(resp.Accepted, id)
		case reconcile.OutcomeRemoteWins:
			resp.RemoteWins = append(resp.RemoteWins, ToAPIDocument(*fresh))
		case reconcile.OutcomeConflict:
			resp.Conflicts = append(resp.Conflicts, api.Conflict{
				Local:  byID[id],
				Remote: ToAPIDocument(*fresh),
			})
		}
	}

	for _, doc := range result.RemoteWins {
		resp.RemoteWins = append(resp.RemoteWins, ToAPIDocument(doc))
	}
	for _, c := range result.Conflicts {
		resp.Conflicts = append(resp.Conflicts, api.Conflict{
			Local:  byID[c.Local.ID],
			Remote: ToAPIDocument(c.Remote),
		})
	}

	s.logger.Info("push classified",
		"account_id", accountID,
		"batch", len(batch),
		"accepted", len(resp.Accepted),
		"remote_wins", len(resp.RemoteWins),
		"conflicts", len(resp.Conflicts))

	return resp, nil
}

// writeAccepted записывает принятый документ. Проигрыш CAS означает,
// что версия ушла вперед после снимка: документ классифицируется заново
// против свежего состояния. Для исходов RemoteWins и Conflict вторым
// значением возвращается свежий серверный документ.
func (s *Service) writeAccepted(ctx context.Context, accountID string, push api.PushDocument, expectedVersion int64, serverTime time.Time) (reconcile.Outcome, *models.RelayDocument, error) {
	doc := &models.RelayDocument{
		ID:        push.ID,
		AccountID: accountID,
		Title:     push.Title,
		Body:      push.Body,
		Deleted:   push.Deleted,
		CreatedAt: push.CreatedAt,
		// updated_at ставится временем relay: курсоры других устройств
		// сравниваются именно с ним
		UpdatedAt: serverTime,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = serverTime
	}

	for attempt := 0; attempt < casRetries; attempt++ {
		newVersion, err := s.docs.UpsertDocument(ctx, doc, expectedVersion)
		if err == nil {
			doc.Version = newVersion
			return reconcile.OutcomeAccept, nil, nil
		}
		if !errors.Is(err, storage.ErrVersionConflict) {
			return 0, nil, fmt.Errorf("failed to write document %s: %w", push.ID, err)
		}

		// Конкурентный писатель успел раньше: переклассификация
		fresh, err := s.docs.GetDocument(ctx, accountID, push.ID)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to refetch document %s: %w", push.ID, err)
		}

		localDoc := models.Document{
			ID:           push.ID,
			Title:        push.Title,
			Body:         push.Body,
			LocalVersion: push.LocalVersion,
			Deleted:      push.Deleted,
			CreatedAt:    push.CreatedAt,
			UpdatedAt:    push.UpdatedAt,
			SyncedAt:     push.SyncedAt,
		}
		switch reconcile.ClassifyOne(&localDoc, fresh) {
		case reconcile.OutcomeAccept:
			expectedVersion = fresh.Version
		case reconcile.OutcomeRemoteWins:
			return reconcile.OutcomeRemoteWins, fresh, nil
		case reconcile.OutcomeConflict:
			return reconcile.OutcomeConflict, fresh, nil
		}
	}

	// Версия убегает быстрее, чем удается записать: отдаем конфликт,
	// устройство повторит push со свежими данными
	s.logger.Warn("document version kept advancing during push", "id", push.ID)
	fresh, err := s.docs.GetDocument(ctx, accountID, push.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to refetch document %s: %w", push.ID, err)
	}
	return reconcile.OutcomeConflict, fresh, nil
}

// ToAPIDocument конвертирует серверный документ в wire-представление
func ToAPIDocument(d models.RelayDocument) api.Document {
	return api.Document{
		ID:        d.ID,
		Title:     d.Title,
		Body:      d.Body,
		Version:   d.Version,
		Deleted:   d.Deleted,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToAPIDocuments конвертирует набор серверных документов
func ToAPIDocuments(docs []models.RelayDocument) []api.Document {
	if len(docs) == 0 {
		return nil
	}
	out := make([]api.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToAPIDocument(d))
	}
	return out
}
