package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/richxcame/rentaride/pkg/common"
	"github.com/richxcame/rentaride/pkg/logger"
	"github.com/richxcame/rentaride/pkg/websocket"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origin checks are handled by the CORS layer; the feed itself
	// is gated by the admin token on the route group.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades admin console connections onto the event feed
type Handler struct {
	hub *websocket.Hub
}

// NewHandler creates a new notifications handler
func NewHandler(hub *websocket.Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes registers the admin event feed route
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.Feed)
}

// Feed upgrades the request to a websocket and streams booking events
func (h *Handler) Feed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "failed to upgrade connection")
		return
	}

	log := logger.WithContext(c.Request.Context())
	client := websocket.NewClient(uuid.New().String(), conn, h.hub, "admin", log)
	h.hub.Register <- client

	log.Info("admin console connected", zap.String("client_id", client.ID))

	go client.WritePump()
	go client.ReadPump()
}
