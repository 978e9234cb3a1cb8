package api

import "time"

// Типы сообщений realtime канала. Каждый кадр — JSON объект {type, ...payload}.
const (
	// inbound (relay → устройство)
	MsgConnected = "connected" // ack сессии, запускает push-then-pull
	MsgPong      = "pong"
	MsgAck       = "ack"      // результат push, та же форма что PushResponse
	MsgChanges   = "changes"  // документы с других устройств
	MsgConflict  = "conflict"
	MsgError     = "error"

	// outbound (устройство → relay)
	MsgPing = "ping"
	MsgPush = "push"
	MsgPull = "pull"
)

// ChannelMessage представляет один кадр realtime канала.
// Заполнены только поля, относящиеся к Type.
type ChannelMessage struct {
	Type       string         `json:"type"`
	Since      *time.Time     `json:"since,omitempty"`       // pull
	ServerTime *time.Time     `json:"server_time,omitempty"` // connected, conflict
	Documents  []PushDocument `json:"documents,omitempty"`   // push
	Changes    []Document     `json:"changes,omitempty"`     // changes
	Ack        *PushResponse  `json:"ack,omitempty"`         // ack
	Conflicts  []Conflict     `json:"conflicts,omitempty"`   // conflict
	Message    string         `json:"message,omitempty"`     // error
}
