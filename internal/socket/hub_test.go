package socket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		id := hub.Register(7, conn)
		defer func() {
			hub.Unregister(id)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	logger, _ := test.NewNullLogger()
	hub := NewHub(logrus.NewEntry(logger))
	srv := newHubServer(t, hub)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	var conns []*websocket.Conn
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()
		conns = append(conns, conn)
	}
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	hub.Publish("order.created", map[string]int{"id": 3})

	for _, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var event struct {
			Type    string         `json:"type"`
			Payload map[string]int `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "order.created", event.Type)
		assert.Equal(t, 3, event.Payload["id"])
	}
}

func TestHubUnregisterOnDisconnect(t *testing.T) {
	logger, _ := test.NewNullLogger()
	hub := NewHub(logrus.NewEntry(logger))
	srv := newHubServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestPublishWithoutClients(t *testing.T) {
	logger, _ := test.NewNullLogger()
	hub := NewHub(logrus.NewEntry(logger))
	assert.NotPanics(t, func() { hub.Publish("noop", nil) })
}
