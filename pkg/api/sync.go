package api

import "time"

// Document представляет документ ("страницу") в авторитетном состоянии relay.
// Version — единственный источник истины о том, сколько раз relay принял
// запись для этого id.
type Document struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Version   int64     `json:"version"`
	Deleted   bool      `json:"deleted"`
}

// PushDocument представляет локальный документ устройства в batch push запросе.
// LocalVersion и SyncedAt нужны relay для классификации конфликтов.
type PushDocument struct {
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	SyncedAt     *time.Time `json:"synced_at"`
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	LocalVersion int64      `json:"local_version"`
	Deleted      bool       `json:"deleted"`
}

// Conflict представляет пару "локальная правка / состояние relay",
// разошедшиеся с момента последнего согласования устройства с relay.
// Разрешение конфликта — ответственность внешнего слоя (UI).
type Conflict struct {
	Local  PushDocument `json:"local"`
	Remote Document     `json:"remote"`
}

// FetchResponse представляет ответ на full и incremental fetch.
// ServerTime используется клиентом как новое значение lastSyncAt.
type FetchResponse struct {
	ServerTime time.Time  `json:"server_time"`
	Documents  []Document `json:"documents"`
}

// PushRequest представляет batch push всех pending документов устройства
type PushRequest struct {
	Documents []PushDocument `json:"documents"`
}

// PushResponse представляет результат классификации batch push
type PushResponse struct {
	ServerTime time.Time  `json:"server_time"`
	Accepted   []string   `json:"accepted"`
	RemoteWins []Document `json:"remote_wins"`
	Conflicts  []Conflict `json:"conflicts"`
}
