// Package events реализует внутрипроцессную шину уведомлений клиента.
// UI и CLI подписываются на нее, чтобы реагировать на изменения,
// пришедшие с relay, не опрашивая хранилище.
package events

import (
	"sync"
	"time"

	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/reconcile"
)

// ConnectionState описывает состояние realtime-канала
type ConnectionState string

const (
	StateDisconnected ConnectionState = "disconnected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
)

// SyncSummary — итог одного цикла синхронизации
type SyncSummary struct {
	FinishedAt time.Time
	Pushed     int // отправлено pending документов
	Accepted   int // принято relay
	Applied    int // перезаписано локально (remote wins)
	Conflicts  int // требуют решения пользователя
}

// RemoteChangeHandler вызывается для каждого документа, перезаписанного
// данными relay
type RemoteChangeHandler func(doc models.RelayDocument)

// ConflictHandler вызывается для каждого обнаруженного конфликта
type ConflictHandler func(c reconcile.Conflict)

// SyncCompleteHandler вызывается по завершении цикла синхронизации
type SyncCompleteHandler func(s SyncSummary)

// StateHandler вызывается при смене состояния realtime-канала
type StateHandler func(state ConnectionState)

// entry хранит обработчик вместе с номером подписки для отмены
type entry[H any] struct {
	id int
	h  H
}

// Bus — шина подписок. Безопасна для конкурентного использования.
// Обработчики вызываются синхронно в горутине публикующего в порядке
// подписки; подписчик сам отвечает за то, чтобы не блокировать ее
// надолго.
type Bus struct {
	mu           sync.RWMutex
	nextID       int
	remoteChange []entry[RemoteChangeHandler]
	conflict     []entry[ConflictHandler]
	syncComplete []entry[SyncCompleteHandler]
	state        []entry[StateHandler]
}

// NewBus создает пустую шину
func NewBus() *Bus {
	return &Bus{}
}

// subscribe добавляет обработчик в конец списка и возвращает функцию
// отмены подписки
func subscribe[H any](b *Bus, list *[]entry[H], h H) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	*list = append(*list, entry[H]{id: id, h: h})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, e := range *list {
			if e.id == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return
			}
		}
	}
}

// snapshot копирует список под локом: обработчики могут отписываться
// изнутри вызова
func snapshot[H any](b *Bus, list *[]entry[H]) []H {
	b.mu.RLock()
	defer b.mu.RUnlock()
	handlers := make([]H, 0, len(*list))
	for _, e := range *list {
		handlers = append(handlers, e.h)
	}
	return handlers
}

// SubscribeRemoteChange регистрирует обработчик; возвращенная функция
// отменяет подписку
func (b *Bus) SubscribeRemoteChange(h RemoteChangeHandler) (cancel func()) {
	return subscribe(b, &b.remoteChange, h)
}

// SubscribeConflict регистрирует обработчик конфликтов
func (b *Bus) SubscribeConflict(h ConflictHandler) (cancel func()) {
	return subscribe(b, &b.conflict, h)
}

// SubscribeSyncComplete регистрирует обработчик итогов синхронизации
func (b *Bus) SubscribeSyncComplete(h SyncCompleteHandler) (cancel func()) {
	return subscribe(b, &b.syncComplete, h)
}

// SubscribeState регистрирует обработчик смены состояния канала
func (b *Bus) SubscribeState(h StateHandler) (cancel func()) {
	return subscribe(b, &b.state, h)
}

// PublishRemoteChange рассылает документ всем подписчикам
func (b *Bus) PublishRemoteChange(doc models.RelayDocument) {
	for _, h := range snapshot(b, &b.remoteChange) {
		h(doc)
	}
}

// PublishConflict рассылает конфликт всем подписчикам
func (b *Bus) PublishConflict(c reconcile.Conflict) {
	for _, h := range snapshot(b, &b.conflict) {
		h(c)
	}
}

// PublishSyncComplete рассылает итог цикла синхронизации
func (b *Bus) PublishSyncComplete(s SyncSummary) {
	for _, h := range snapshot(b, &b.syncComplete) {
		h(s)
	}
}

// PublishState рассылает смену состояния канала
func (b *Bus) PublishState(state ConnectionState) {
	for _, h := range snapshot(b, &b.state) {
		h(state)
	}
}
