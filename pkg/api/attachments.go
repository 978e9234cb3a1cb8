package api

import "time"

// AttachmentMeta представляет метаданные вложения.
// Вложения адресуются по содержимому: ключ — SHA-256 hex от байтов,
// одинаковые байты с любых устройств схлопываются в одну запись.
type AttachmentMeta struct {
	CreatedAt   time.Time `json:"created_at"`
	ContentHash string    `json:"content_hash"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Extension   string    `json:"extension"`
	ByteSize    int64     `json:"byte_size"`
}

// AnnounceRequest представляет bulk-анонс метаданных вложений перед загрузкой
type AnnounceRequest struct {
	Items []AttachmentMeta `json:"items"`
}

// AnnounceResponse содержит подмножество хешей, байты которых
// relay ещё не хранит — только их нужно загружать
type AnnounceResponse struct {
	Needed []string `json:"needed"`
}

// UploadResponse представляет результат загрузки байтов вложения
type UploadResponse struct {
	ServerTime time.Time `json:"server_time"`
	Hash       string    `json:"hash"`
	Size       int64     `json:"size"`
}

// BatchMetadataRequest представляет запрос метаданных по набору хешей
type BatchMetadataRequest struct {
	Hashes []string `json:"hashes"`
}

// BatchMetadataResponse содержит метаданные известных relay хешей
type BatchMetadataResponse struct {
	Items []AttachmentMeta `json:"items"`
}
