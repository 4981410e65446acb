package socket

import (
	"encoding/json"
	"sync"

	"punchline/pkg/logger"
)

const (
	JokeCreatedType = "JOKE_CREATED" // A joke was persisted
	JokeDeletedType = "JOKE_DELETED" // A joke was removed by its owner
)

// FeedEvent is pushed to every connected feed client after a mutation has
// already committed. The feed never participates in the mutation itself.
type FeedEvent struct {
	Type   string `json:"type"`
	JokeID string `json:"joke_id"`
	Name   string `json:"name,omitempty"`
	UserID string `json:"user_id"`
}

type Hub struct {
	clients    map[*Client]bool
	Broadcast  chan FeedEvent
	Register   chan *Client
	Unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan FeedEvent, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.Broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling feed event: %v", err)
				continue
			}

			// Snapshot the recipients so no I/O happens under the lock.
			h.mu.Lock()
			clientsToSend := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clientsToSend = append(clientsToSend, client)
			}
			h.mu.Unlock()

			for _, client := range clientsToSend {
				select {
				case client.Send <- payload:
				default:
					// A full send buffer means the client is lagging.
					// Drop it rather than block the hub.
					logger.Sugar.Warnf("Client %s's send buffer is full. Unregistering.", client.UserID)
					h.Unregister <- client
				}
			}
		}
	}
}

// ClientCount reports how many feed clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish hands a committed event to the hub without blocking the caller's
// request when no hub goroutine is running (as in unit tests).
func (h *Hub) Publish(event FeedEvent) {
	select {
	case h.Broadcast <- event:
	default:
		logger.Sugar.Warnf("Feed hub not draining, dropping %s event for joke %s", event.Type, event.JokeID)
	}
}
