package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"progresstracker/internal/adapter/http/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// Subscribe upgrades the request and streams the owner's change feed until
// the client goes away. Runs behind the auth middleware.
func (h *Handler) Subscribe(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("failed to upgrade feed connection", zap.Error(err))
		return
	}

	client := newClient(h.hub, conn, ownerID)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
