package http

import (
	"net/http"

	"hireflow/internal/realtime"
	"hireflow/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	registry *realtime.Registry
	logger   *logger.Logger
}

func NewWebSocketHandler(registry *realtime.Registry, log *logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		registry: registry,
		logger:   log,
	}
}

type clientMessage struct {
	Event  string `json:"event"`
	UserID string `json:"userId"`
}

// HandleWebSocket upgrades the connection and waits for an identify message
// before the connection can receive pushes. The registry mapping lives until
// the read loop ends.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()
	defer h.registry.Forget(conn)

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error: %v", err)
			}
			return
		}

		if msg.Event == "identify" && msg.UserID != "" {
			h.registry.Identify(msg.UserID, conn)
		}
	}
}
