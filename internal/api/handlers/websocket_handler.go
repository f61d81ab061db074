// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"net/http"
	"time"

	"fleet-maintenance-api-server/internal/api/middleware"
	"fleet-maintenance-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Maximum time to wait for any frame from the client.
const pongWait = 60 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub  *socket.Hub
	Auth middleware.Authenticator
	Log  *logrus.Entry
}

// ServeWs upgrades the connection once the token query parameter checks out.
// Browsers cannot set headers on a websocket handshake, hence the query parameter.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}
	user, err := h.Auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Log.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	clientID := h.Hub.Register(user.ID, conn)
	defer func() {
		h.Hub.Unregister(clientID)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	// Any client ping keeps the connection alive.
	conn.SetPingHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(time.Second))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.WithError(err).Warn("Unexpected websocket close")
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}
