package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/L0dyv/litepad/internal/client/api"
	"github.com/L0dyv/litepad/internal/client/events"
	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/reconcile"
	"github.com/L0dyv/litepad/pkg/api"
)

// ErrSyncDisabled возвращается, когда синхронизация для устройства
// не включена (пользователь не входил в аккаунт)
var ErrSyncDisabled = errors.New("sync is disabled for this device")

// TokenSource выдает действующий access token.
// Реализуется auth.Service, который прозрачно обновляет пару токенов.
type TokenSource interface {
	Credentials(ctx context.Context) (string, error)
}

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет один цикл синхронизации: push локальных правок,
	// затем pull изменений relay. Первый цикл устройства — полный.
	Sync(ctx context.Context) (*events.SyncSummary, error)

	// PendingCount возвращает количество документов, ожидающих отправки
	PendingCount(ctx context.Context) (int, error)

	// ApplyRemote применяет документы relay к локальному хранилищу
	// с поштучной классификацией. Используется realtime-каналом.
	ApplyRemote(ctx context.Context, docs []api.Document, serverTime time.Time) (applied, conflicts int, err error)

	// ApplyPushResponse применяет вердикт relay на ранее отправленный
	// batch: accepted помечаются синхронизированными, remote wins
	// перезаписываются, конфликты публикуются в шину
	ApplyPushResponse(ctx context.Context, resp *api.PushResponse) (*events.SyncSummary, error)
}

// service handles synchronization between the device and the relay
type service struct {
	apiClient httpClient.ClientAPI
	tokens    TokenSource
	docs      storage.DocumentStorage
	sessions  storage.SessionStorage
	bus       *events.Bus
	logger    *slog.Logger
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, tokens TokenSource, docs storage.DocumentStorage, sessions storage.SessionStorage, bus *events.Bus, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		tokens:    tokens,
		docs:      docs,
		sessions:  sessions,
		bus:       bus,
		logger:    logger,
	}
}

// Sync performs one synchronization cycle:
// 1. Pushes pending local documents and applies the relay's verdict
// 2. Pulls relay changes (full on first run, incremental afterwards)
// 3. Advances the sync cursor only after both steps succeed
func (s *service) Sync(ctx context.Context) (*events.SyncSummary, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync session: %w", err)
	}
	if !session.Enabled {
		return nil, ErrSyncDisabled
	}

	token, err := s.tokens.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	summary := &events.SyncSummary{}

	// Push сначала: pending правки должны попасть на relay до pull,
	// иначе pull перезапишет их как remote wins
	if err := s.push(ctx, token, summary); err != nil {
		return nil, err
	}

	// Pull: полный при первом цикле устройства, иначе инкрементальный
	var resp *api.FetchResponse
	if session.LastSyncAt == nil {
		s.logger.Info("first sync for this device, fetching full state")
		resp, err = s.apiClient.FetchFull(ctx, token)
	} else {
		resp, err = s.apiClient.FetchIncremental(ctx, token, *session.LastSyncAt)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	applied, conflicts, err := s.ApplyRemote(ctx, resp.Documents, resp.ServerTime)
	if err != nil {
		return nil, err
	}
	summary.Applied += applied
	summary.Conflicts += conflicts

	// Курсор двигается только после успешного применения: при сбое
	// следующий цикл заберет те же документы повторно
	serverTime := resp.ServerTime
	session.LastSyncAt = &serverTime
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save sync session: %w", err)
	}

	summary.FinishedAt = time.Now()
	s.bus.PublishSyncComplete(*summary)

	s.logger.Info("synchronization completed",
		"pushed", summary.Pushed,
		"accepted", summary.Accepted,
		"applied", summary.Applied,
		"conflicts", summary.Conflicts)

	return summary, nil
}

// PendingCount возвращает количество документов с локальными правками
func (s *service) PendingCount(ctx context.Context) (int, error) {
	pending, err := s.docs.PendingDocuments(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending documents: %w", err)
	}
	return len(pending), nil
}

// push отправляет pending документы и применяет вердикт relay
func (s *service) push(ctx context.Context, token string, summary *events.SyncSummary) error {
	pending, err := s.docs.PendingDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending documents: %w", err)
	}
	if len(pending) == 0 {
		// Нечего отправлять: push завершается без сетевого вызова
		return nil
	}

	req := api.PushRequest{Documents: make([]api.PushDocument, 0, len(pending))}
	for _, doc := range pending {
		req.Documents = append(req.Documents, toPushDocument(doc))
	}
	summary.Pushed = len(pending)

	resp, err := s.apiClient.Push(ctx, token, req)
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	pushSummary, err := s.ApplyPushResponse(ctx, resp)
	if err != nil {
		return err
	}
	summary.Accepted += pushSummary.Accepted
	summary.Applied += pushSummary.Applied
	summary.Conflicts += pushSummary.Conflicts
	return nil
}

// ApplyPushResponse применяет вердикт relay на отправленный batch
func (s *service) ApplyPushResponse(ctx context.Context, resp *api.PushResponse) (*events.SyncSummary, error) {
	summary := &events.SyncSummary{}

	if len(resp.Accepted) > 0 {
		if err := s.docs.MarkSynced(ctx, resp.Accepted, resp.ServerTime); err != nil {
			return nil, fmt.Errorf("failed to mark documents synced: %w", err)
		}
		summary.Accepted = len(resp.Accepted)
	}

	if len(resp.RemoteWins) > 0 {
		remote := make([]models.RelayDocument, 0, len(resp.RemoteWins))
		for _, doc := range resp.RemoteWins {
			remote = append(remote, toRelayDocument(doc))
		}
		if err := s.docs.BulkApply(ctx, remote, resp.ServerTime); err != nil {
			return nil, fmt.Errorf("failed to apply remote documents: %w", err)
		}
		summary.Applied = len(remote)
		for _, doc := range remote {
			s.bus.PublishRemoteChange(doc)
		}
	}

	for _, c := range resp.Conflicts {
		s.bus.PublishConflict(reconcile.Conflict{
			Local:  toLocalDocument(c.Local),
			Remote: toRelayDocument(c.Remote),
		})
	}
	summary.Conflicts = len(resp.Conflicts)

	return summary, nil
}

// ApplyRemote применяет документы relay к локальному хранилищу.
// Каждый документ классифицируется против локальной копии: устаревшие
// локальные копии перезаписываются, документы с несогласованными
// правками превращаются в конфликт, локально более новые пропускаются
// (их заберет следующий push).
func (s *service) ApplyRemote(ctx context.Context, docs []api.Document, serverTime time.Time) (applied, conflicts int, err error) {
	if len(docs) == 0 {
		return 0, 0, nil
	}

	toApply := make([]models.RelayDocument, 0, len(docs))
	for _, doc := range docs {
		remote := toRelayDocument(doc)

		local, err := s.docs.GetDocument(ctx, doc.ID)
		if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
			return 0, 0, fmt.Errorf("failed to get document %s: %w", doc.ID, err)
		}

		switch reconcile.ClassifyOne(local, &remote) {
		case reconcile.OutcomeRemoteWins:
			toApply = append(toApply, remote)
		case reconcile.OutcomeConflict:
			conflicts++
			s.bus.PublishConflict(reconcile.Conflict{Local: *local, Remote: remote})
		case reconcile.OutcomeAccept:
			// Локальная копия новее или равна: ее заберет следующий push
		}
	}

	if len(toApply) > 0 {
		if err := s.docs.BulkApply(ctx, toApply, serverTime); err != nil {
			return 0, 0, fmt.Errorf("failed to apply remote documents: %w", err)
		}
		for _, doc := range toApply {
			s.bus.PublishRemoteChange(doc)
		}
	}

	return len(toApply), conflicts, nil
}

func toPushDocument(d *models.Document) api.PushDocument {
	return api.PushDocument{
		ID:           d.ID,
		Title:        d.Title,
		Body:         d.Body,
		LocalVersion: d.LocalVersion,
		Deleted:      d.Deleted,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		SyncedAt:     d.SyncedAt,
	}
}

func toRelayDocument(d api.Document) models.RelayDocument {
	return models.RelayDocument{
		ID:        d.ID,
		Title:     d.Title,
		Body:      d.Body,
		Version:   d.Version,
		Deleted:   d.Deleted,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toLocalDocument(d api.PushDocument) models.Document {
	return models.Document{
		ID:           d.ID,
		Title:        d.Title,
		Body:         d.Body,
		LocalVersion: d.LocalVersion,
		Deleted:      d.Deleted,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		SyncedAt:     d.SyncedAt,
	}
}
