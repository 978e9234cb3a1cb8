package api

import "errors"

// Таксономия ошибок сетевых операций. Вызывающие различают классы через
// errors.Is; конкретика сохраняется обёрткой %w.
var (
	// ErrTransport — соединение отклонено/оборвано/таймаут. Всегда
	// восстановимо: realtime канал уходит в reconnect-with-backoff,
	// одноразовые вызовы возвращают ошибку вызывающему.
	ErrTransport = errors.New("transport failure")

	// ErrUnauthorized — истёкший или невалидный credential. Даёт право на
	// одну прозрачную попытку обновления токена; после её провала —
	// signed-out состояние.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrIntegrity — несовпадение хеша или испорченный payload.
	// Никогда не ретраится автоматически; жёсткая ошибка для одного
	// элемента, остальные элементы батча продолжают обрабатываться.
	ErrIntegrity = errors.New("integrity failure")

	// ErrCapacity — слишком большое вложение, отклонено до передачи
	ErrCapacity = errors.New("capacity exceeded")
)
