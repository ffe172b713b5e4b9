package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/product-registry/internal/events"
)

type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
}

type Message struct {
	EventType string      `json:"event-type"`
	Data      interface{} `json:"data"`
}

func NewHandler(log hclog.Logger, eventBus *events.EventBus[any]) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		Log:      log,
		EventBus: eventBus,
	}
}

// HandleWebSocket streams registry events to the client until either side closes.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	done := make(chan struct{})
	go h.readPump(conn, done)

	for {
		select {
		case event, ok := <-subscriber:
			if !ok {
				return
			}
			message, ok := toMessage(event)
			if !ok {
				h.Log.Warn("Unknown event type", "event", event)
				continue
			}

			payload, err := json.Marshal(message)
			if err != nil {
				h.Log.Error("Error marshalling message", "error", err)
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.Log.Error("Error writing message to WebSocket", "error", err)
				return
			}
		case <-done:
			h.Log.Info("WebSocket connection closed by the client")
			return
		}
	}
}

func toMessage(event any) (Message, bool) {
	switch e := event.(type) {
	case events.ProductAdded:
		return Message{EventType: "product_added", Data: e}, true
	default:
		return Message{}, false
	}
}

func (h *Handler) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.Error("Error reading message", "error", err)
			}
			return
		}
	}
}
