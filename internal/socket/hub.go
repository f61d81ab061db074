// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 10 * time.Second

// Event is the envelope every websocket message is sent in.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

type client struct {
	conn   *websocket.Conn
	userID int64
	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

// Hub keeps the connected websocket clients and fans events out to all of them.
type Hub struct {
	clients map[string]*client
	mu      sync.RWMutex
	log     *logrus.Entry
}

func NewHub(log *logrus.Entry) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		log:     log,
	}
}

// Register adds a connection and returns the id to unregister it with.
func (h *Hub) Register(userID int64, conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[id] = &client{conn: conn, userID: userID}
	h.log.WithFields(logrus.Fields{"client": id, "userId": userID}).Info("WebSocket client registered")
	return id
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[id]; ok {
		delete(h.clients, id)
		h.log.WithField("client", id).Info("WebSocket client unregistered")
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends the event to every connected client. Clients that fail to
// receive it are dropped; publishing never blocks on a dead peer past writeWait.
func (h *Hub) Publish(eventType string, payload interface{}) {
	message, err := json.Marshal(Event{Type: eventType, Payload: payload, At: time.Now().UTC()})
	if err != nil {
		h.log.WithError(err).WithField("event", eventType).Error("Failed to encode event")
		return
	}

	h.mu.RLock()
	targets := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		targets[id] = c
	}
	h.mu.RUnlock()

	for id, c := range targets {
		if err := c.send(message); err != nil {
			h.log.WithError(err).WithField("client", id).Warn("Dropping websocket client")
			h.Unregister(id)
			c.conn.Close()
		}
	}
}

func (c *client) send(message []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, message)
}
