package models

import "time"

// Статусы синхронизации вложения
const (
	AttachmentPending     = "pending"
	AttachmentSynced      = "synced"
	AttachmentDownloading = "downloading"
	AttachmentError       = "error"
)

// Attachment представляет бинарное вложение, адресуемое по содержимому.
// Ключ — SHA-256 hex от байтов, а не имя файла или устройство-источник:
// одинаковые байты схлопываются в одну запись (дедупликация).
// Тело документа ссылается на вложения строками-локаторами
// litepad://images/<hash><ext>.
type Attachment struct {
	CreatedAt   time.Time  `json:"created_at"`
	SyncedAt    *time.Time `json:"synced_at"`
	ContentHash string     `json:"content_hash"`
	Filename    string     `json:"filename"`
	MimeType    string     `json:"mime_type"`
	Extension   string     `json:"extension"`
	SyncStatus  string     `json:"sync_status"`
	ByteSize    int64      `json:"byte_size"`
}
