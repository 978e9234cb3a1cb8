package models

import "time"

// SyncSession представляет состояние синхронизации устройства.
// Создается при первом обращении с Enabled=false; DeviceID генерируется
// один раз и сохраняется навсегда. LastSyncAt продвигается только после
// успешного round-trip согласования, никогда оптимистично.
type SyncSession struct {
	LastSyncAt *time.Time `json:"last_sync_at"`
	AccountID  string     `json:"account_id"`
	RelayURL   string     `json:"relay_url"`
	DeviceID   string     `json:"device_id"`
	Enabled    bool       `json:"enabled"`
}
