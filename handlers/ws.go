package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/tbanku/tbanku-api/services"
)

// WSHandler pushes a short notice to connected dashboards whenever a
// collection changes, so that they can refetch it.
type WSHandler struct {
	M *melody.Melody
}

type updateMessage struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		resource, _ := s.Get("resource")
		log.Printf("✅ Dashboard connected (resource filter: %v)", resource)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("🔌 Dashboard disconnected")
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request. ?resource=income limits the session to
// updates of one resource.
func (h *WSHandler) HandleWS(c *gin.Context) {
	keys := map[string]interface{}{}
	if resource := c.Query("resource"); resource != "" {
		keys["resource"] = resource
	}

	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate is a services.ChangeListener.
func (h *WSHandler) BroadcastUpdate(event services.ChangeEvent) {
	msg, err := json.Marshal(updateMessage{
		Type:   event.Resource + "_updated",
		Action: event.Action,
		ID:     event.ID.String(),
	})
	if err != nil {
		log.Printf("⚠️ Error encoding update for %s: %v", event.Resource, err)
		return
	}

	err = h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		resource, exists := s.Get("resource")
		return !exists || resource == event.Resource
	})
	if err != nil {
		log.Printf("⚠️ Error broadcasting %s update: %v", event.Resource, err)
	}
}

// Close disconnects every session.
func (h *WSHandler) Close() error {
	return h.M.Close()
}
