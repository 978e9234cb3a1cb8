package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0dyv/litepad/internal/client/events"
	"github.com/L0dyv/litepad/internal/client/storage"
	syncsvc "github.com/L0dyv/litepad/internal/client/sync"
	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/reconcile"
	"github.com/L0dyv/litepad/pkg/api"
)

type staticTokens struct{}

func (staticTokens) Credentials(context.Context) (string, error) { return "token-1", nil }

var upgrader = websocket.Upgrader{}

// testRelay — websocket-сервер для проверки канала: отдает соединения
// тесту через канал
type testRelay struct {
	srv   *httptest.Server
	conns chan *websocket.Conn
	auth  chan string
}

func newTestRelay(t *testing.T) *testRelay {
	t.Helper()
	r := &testRelay{
		conns: make(chan *websocket.Conn, 4),
		auth:  make(chan string, 4),
	}
	r.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.auth <- req.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		r.conns <- conn
	}))
	t.Cleanup(r.srv.Close)
	return r
}

func (r *testRelay) wsURL() string {
	return "ws" + strings.TrimPrefix(r.srv.URL, "http")
}

func (r *testRelay) accept(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-r.conns:
		return conn
	case <-time.After(5 * time.Second):
		t.Fatal("no websocket connection arrived")
		return nil
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) api.ChannelMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg api.ChannelMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

type fixture struct {
	relay    *testRelay
	syncMock *syncsvc.ServiceMock
	docs     *storage.DocumentStorageMock
	session  *models.SyncSession
	bus      *events.Bus
	channel  *Channel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		relay:    newTestRelay(t),
		syncMock: &syncsvc.ServiceMock{},
		docs:     &storage.DocumentStorageMock{},
		session:  &models.SyncSession{Enabled: true},
		bus:      events.NewBus(),
	}
	f.docs.PendingDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return nil, nil
	}
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*models.SyncSession, error) {
			return f.session, nil
		},
		SaveSessionFunc: func(ctx context.Context, s *models.SyncSession) error {
			f.session = s
			return nil
		},
	}
	f.channel = NewChannel(f.relay.wsURL(), staticTokens{}, f.syncMock, f.docs, sessions, f.bus, slog.Default())
	t.Cleanup(f.channel.Disconnect)
	return f
}

func TestChannel_HandshakePushThenPull(t *testing.T) {
	f := newFixture(t)

	pendingDoc := &models.Document{ID: "p1", Title: "draft", LocalVersion: 2}
	f.docs.PendingDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{pendingDoc}, nil
	}

	states := make(chan events.ConnectionState, 8)
	f.bus.SubscribeState(func(s events.ConnectionState) { states <- s })

	f.channel.Connect(context.Background())
	conn := f.relay.accept(t)

	select {
	case token := <-f.relay.auth:
		assert.Equal(t, "Bearer token-1", token)
	case <-time.After(time.Second):
		t.Fatal("no auth header recorded")
	}

	require.NoError(t, conn.WriteJSON(api.ChannelMessage{Type: api.MsgConnected}))

	// После connected канал сначала шлет pending, затем pull
	push := readFrame(t, conn)
	assert.Equal(t, api.MsgPush, push.Type)
	require.Len(t, push.Documents, 1)
	assert.Equal(t, "p1", push.Documents[0].ID)

	pull := readFrame(t, conn)
	assert.Equal(t, api.MsgPull, pull.Type)
	assert.Nil(t, pull.Since, "first connection carries no cursor")

	assert.Equal(t, events.StateConnecting, <-states)
	assert.Equal(t, events.StateConnected, <-states)
}

func TestChannel_ChangesFrameAppliedAndCursorAdvanced(t *testing.T) {
	f := newFixture(t)
	serverTime := time.Now().UTC().Truncate(time.Millisecond)

	applied := make(chan []api.Document, 1)
	f.syncMock.ApplyRemoteFunc = func(ctx context.Context, docs []api.Document, st time.Time) (int, int, error) {
		assert.Equal(t, serverTime, st.UTC())
		applied <- docs
		return len(docs), 0, nil
	}

	f.channel.Connect(context.Background())
	conn := f.relay.accept(t)

	require.NoError(t, conn.WriteJSON(api.ChannelMessage{
		Type:       api.MsgChanges,
		ServerTime: &serverTime,
		Changes:    []api.Document{{ID: "p7", Version: 3}},
	}))

	select {
	case docs := <-applied:
		require.Len(t, docs, 1)
		assert.Equal(t, "p7", docs[0].ID)
	case <-time.After(5 * time.Second):
		t.Fatal("changes frame was not applied")
	}

	require.Eventually(t, func() bool {
		return f.session.LastSyncAt != nil && f.session.LastSyncAt.Equal(serverTime)
	}, 5*time.Second, 10*time.Millisecond, "cursor must advance to the frame's server time")
}

func TestChannel_AckFrameApplied(t *testing.T) {
	f := newFixture(t)

	acks := make(chan *api.PushResponse, 1)
	f.syncMock.ApplyPushResponseFunc = func(ctx context.Context, resp *api.PushResponse) (*events.SyncSummary, error) {
		acks <- resp
		return &events.SyncSummary{}, nil
	}

	f.channel.Connect(context.Background())
	conn := f.relay.accept(t)

	require.NoError(t, conn.WriteJSON(api.ChannelMessage{
		Type: api.MsgAck,
		Ack:  &api.PushResponse{Accepted: []string{"p1"}},
	}))

	select {
	case resp := <-acks:
		assert.Equal(t, []string{"p1"}, resp.Accepted)
	case <-time.After(5 * time.Second):
		t.Fatal("ack frame was not applied")
	}
}

func TestChannel_ConflictFramePublished(t *testing.T) {
	f := newFixture(t)

	conflicts := make(chan reconcile.Conflict, 1)
	f.bus.SubscribeConflict(func(c reconcile.Conflict) { conflicts <- c })

	f.channel.Connect(context.Background())
	conn := f.relay.accept(t)

	require.NoError(t, conn.WriteJSON(api.ChannelMessage{
		Type: api.MsgConflict,
		Conflicts: []api.Conflict{{
			Local:  api.PushDocument{ID: "p1", LocalVersion: 2},
			Remote: api.Document{ID: "p1", Version: 6},
		}},
	}))

	select {
	case c := <-conflicts:
		assert.Equal(t, int64(2), c.Local.LocalVersion)
		assert.Equal(t, int64(6), c.Remote.Version)
	case <-time.After(5 * time.Second):
		t.Fatal("conflict was not published")
	}
}

func TestChannel_UnknownFrameIgnored(t *testing.T) {
	f := newFixture(t)

	acks := make(chan struct{}, 1)
	f.syncMock.ApplyPushResponseFunc = func(ctx context.Context, resp *api.PushResponse) (*events.SyncSummary, error) {
		acks <- struct{}{}
		return &events.SyncSummary{}, nil
	}

	f.channel.Connect(context.Background())
	conn := f.relay.accept(t)

	// неизвестный тип не должен ронять соединение
	require.NoError(t, conn.WriteJSON(api.ChannelMessage{Type: "presence"}))
	require.NoError(t, conn.WriteJSON(api.ChannelMessage{Type: api.MsgAck, Ack: &api.PushResponse{}}))

	select {
	case <-acks:
	case <-time.After(5 * time.Second):
		t.Fatal("connection did not survive unknown frame")
	}
}

func TestChannel_ReconnectAfterDrop(t *testing.T) {
	f := newFixture(t)

	f.channel.Connect(context.Background())
	conn := f.relay.accept(t)
	require.NoError(t, conn.Close())

	// после обрыва канал обязан вернуться с новым соединением
	conn2 := f.relay.accept(t)
	require.NotNil(t, conn2)
}

func TestChannel_ReconnectBudgetResetsAfterConnectedSession(t *testing.T) {
	f := newFixture(t)

	f.channel.Connect(context.Background())

	// Обрывов больше, чем reconnectAttempts: каждая сессия доходит до
	// connected, поэтому общий бюджет попыток расходоваться не должен
	for i := 0; i < reconnectAttempts+2; i++ {
		conn := f.relay.accept(t)
		<-f.relay.auth
		require.NoError(t, conn.WriteJSON(api.ChannelMessage{Type: api.MsgConnected}))
		require.Eventually(t, func() bool {
			return f.channel.State() == events.StateConnected
		}, 5*time.Second, 5*time.Millisecond, "session %d did not reach connected", i)
		require.NoError(t, conn.Close())
	}

	// канал по-прежнему возвращается
	conn := f.relay.accept(t)
	<-f.relay.auth
	require.NoError(t, conn.WriteJSON(api.ChannelMessage{Type: api.MsgConnected}))
	require.Eventually(t, func() bool {
		return f.channel.State() == events.StateConnected
	}, 5*time.Second, 5*time.Millisecond)
}

func TestChannel_ChangesWithoutServerTimeKeepsCursor(t *testing.T) {
	f := newFixture(t)

	applied := make(chan struct{}, 1)
	f.syncMock.ApplyRemoteFunc = func(ctx context.Context, docs []api.Document, st time.Time) (int, int, error) {
		applied <- struct{}{}
		return len(docs), 0, nil
	}

	f.channel.Connect(context.Background())
	conn := f.relay.accept(t)

	require.NoError(t, conn.WriteJSON(api.ChannelMessage{
		Type:    api.MsgChanges,
		Changes: []api.Document{{ID: "p7", Version: 3}},
	}))

	select {
	case <-applied:
	case <-time.After(5 * time.Second):
		t.Fatal("changes frame was not applied")
	}

	// без server_time в фрейме курсор остается на месте
	time.Sleep(100 * time.Millisecond)
	assert.Nil(t, f.session.LastSyncAt)
}

func TestChannel_DisconnectStopsReconnects(t *testing.T) {
	f := newFixture(t)

	states := make(chan events.ConnectionState, 8)
	f.bus.SubscribeState(func(s events.ConnectionState) { states <- s })

	f.channel.Connect(context.Background())
	f.relay.accept(t)

	f.channel.Disconnect()
	assert.Equal(t, events.StateDisconnected, f.channel.State())

	// новых соединений быть не должно
	select {
	case <-f.relay.conns:
		t.Fatal("channel reconnected after Disconnect")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestChannel_PushPendingWithoutConnection(t *testing.T) {
	f := newFixture(t)
	f.docs.PendingDocumentsFunc = func(ctx context.Context) ([]*models.Document, error) {
		return []*models.Document{{ID: "p1"}}, nil
	}

	err := f.channel.PushPending(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
}
