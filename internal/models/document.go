package models

import "time"

// Document представляет локальную копию документа ("страницы") на устройстве.
//
// Инварианты:
//   - LocalVersion растёт ровно на 1 при каждой локальной мутации
//     (включая soft delete);
//   - SyncedAt == nil означает "ни разу не согласован с relay";
//   - UpdatedAt после SyncedAt означает "есть локальные правки с момента
//     последнего согласования".
//
// Документ никогда не удаляется физически: Deleted=true — tombstone,
// который продолжает участвовать в синхронизации, чтобы другие устройства
// увидели удаление.
type Document struct {
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	SyncedAt     *time.Time `json:"synced_at"`
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	LocalVersion int64      `json:"local_version"`
	Deleted      bool       `json:"deleted"`
}

// HasLocalChanges сообщает, есть ли у документа несогласованные правки
func (d *Document) HasLocalChanges() bool {
	return d.SyncedAt == nil || d.UpdatedAt.After(*d.SyncedAt)
}

// Clone создает глубокую копию документа
func (d *Document) Clone() *Document {
	out := *d
	if d.SyncedAt != nil {
		t := *d.SyncedAt
		out.SyncedAt = &t
	}
	return &out
}

// RelayDocument представляет авторитетную копию документа на relay.
// Version растёт на 1 на каждый принятый push, независимо от локальной
// нумерации любого устройства.
type RelayDocument struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Version   int64     `json:"version"`
	Deleted   bool      `json:"deleted"`
}
