package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/richxcame/rentaride/pkg/logger"
	"go.uber.org/zap"
)

// Event is a message broadcast to connected clients
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains the set of connected clients and broadcasts events to them
type Hub struct {
	clients map[string]*Client
	mu      sync.RWMutex

	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan Event
}

// NewHub creates a new hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Event, 64),
	}
}

// Run processes register/unregister/broadcast events until the hub is closed
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			// Replace any existing connection for the same client ID
			if existing, ok := h.clients[client.ID]; ok {
				close(existing.send)
			}
			h.clients[client.ID] = client
			h.mu.Unlock()
			logger.Debug("websocket client registered", zap.String("client_id", client.ID))

		case client := <-h.Unregister:
			h.mu.Lock()
			if existing, ok := h.clients[client.ID]; ok && existing == client {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()
			logger.Debug("websocket client unregistered", zap.String("client_id", client.ID))

		case event := <-h.Broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Error("failed to marshal websocket event", zap.Error(err))
				continue
			}
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Slow consumer, drop the event for this client
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastEvent queues an event for delivery to all connected clients.
// Delivery is best effort; the event is dropped if the hub is saturated.
func (h *Hub) BroadcastEvent(eventType string, data interface{}) {
	event := Event{Type: eventType, Data: data, Timestamp: time.Now()}
	select {
	case h.Broadcast <- event:
	default:
		logger.Warn("websocket broadcast queue full, dropping event", zap.String("type", eventType))
	}
}

// GetClient returns the client with the given ID
func (h *Hub) GetClient(id string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.clients[id]
	return client, ok
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
