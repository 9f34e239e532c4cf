package realtime

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// The tour feed is public, same as the listing it refreshes.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades listing clients onto the tour change feed.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// HandleTourFeed handles GET /ws/tours.
//
// Clients only listen; inbound frames are read and discarded so that
// close/ping control frames keep being processed.
func (h *Handler) HandleTourFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)
	log.Printf("Tour feed subscriber connected (%d total)", h.hub.SubscriberCount())

	defer func() {
		h.hub.Unregister(conn)
		log.Printf("Tour feed subscriber disconnected (%d total)", h.hub.SubscriberCount())
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/tours", h.HandleTourFeed)
}
