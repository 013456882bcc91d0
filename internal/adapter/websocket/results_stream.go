package websocket

import (
	"encoding/json"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/domain"
)

// ResultsStreamHandler attaches UI clients to the hub so they receive the
// results of voice batches dispatched on their behalf.
type ResultsStreamHandler struct {
	hub *Hub
	log *zap.Logger
}

func NewResultsStreamHandler(hub *Hub, log *zap.Logger) *ResultsStreamHandler {
	return &ResultsStreamHandler{
		hub: hub,
		log: log,
	}
}

// HandleResultsStream registers the connection and blocks until it closes.
// The auth middleware has already placed user_id in locals.
func (h *ResultsStreamHandler) HandleResultsStream(c *websocket.Conn) {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		c.Close()
		return
	}
	h.hub.ServeClient(c, userID)
}

// PublishResults pushes the outcome of a dispatched batch to the issuing
// user's connected clients.
func (h *ResultsStreamHandler) PublishResults(userID string, results []domain.ActionResult) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "voice_results",
		"results": results,
	})
	if err != nil {
		h.log.Error("failed to marshal results payload", zap.Error(err))
		return
	}
	h.hub.SendToUser(userID, payload)
}
