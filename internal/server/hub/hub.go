// Package hub держит активные websocket-соединения устройств и
// рассылает изменения документов между устройствами одного аккаунта.
package hub

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/L0dyv/litepad/pkg/api"
)

// Conn — одно websocket-соединение устройства
type Conn struct {
	ws        *websocket.Conn
	accountID string

	// writeMu сериализует записи: gorilla/websocket разрешает
	// не более одного конкурентного writer-а
	writeMu sync.Mutex
}

// NewConn оборачивает websocket-соединение
func NewConn(ws *websocket.Conn, accountID string) *Conn {
	return &Conn{ws: ws, accountID: accountID}
}

// Send отправляет кадр в соединение
func (c *Conn) Send(msg api.ChannelMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(msg)
}

// Close закрывает подлежащее websocket-соединение
func (c *Conn) Close() error {
	return c.ws.Close()
}

// Hub — реестр активных соединений, сгруппированных по аккаунту
type Hub struct {
	mu     sync.RWMutex
	conns  map[string]map[*Conn]struct{}
	logger *slog.Logger
}

// New создает пустой hub
func New(logger *slog.Logger) *Hub {
	return &Hub{
		conns:  make(map[string]map[*Conn]struct{}),
		logger: logger,
	}
}

// Add регистрирует соединение устройства
func (h *Hub) Add(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[conn.accountID]
	if !ok {
		set = make(map[*Conn]struct{})
		h.conns[conn.accountID] = set
	}
	set[conn] = struct{}{}
}

// Remove снимает соединение с учета
func (h *Hub) Remove(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[conn.accountID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.conns, conn.accountID)
	}
}

// ConnCount возвращает число активных соединений аккаунта
func (h *Hub) ConnCount(accountID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[accountID])
}

// Broadcast рассылает кадр всем соединениям аккаунта, кроме sender.
// Сбой записи в отдельное соединение не прерывает рассылку: такое
// соединение умрет само на следующем чтении.
func (h *Hub) Broadcast(accountID string, msg api.ChannelMessage, sender *Conn) {
	h.mu.RLock()
	targets := make([]*Conn, 0, len(h.conns[accountID]))
	for conn := range h.conns[accountID] {
		if conn != sender {
			targets = append(targets, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		if err := conn.Send(msg); err != nil {
			h.logger.Warn("failed to broadcast frame",
				"account_id", accountID,
				"type", msg.Type,
				"error", err)
		}
	}
}
