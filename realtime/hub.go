package realtime

import (
	"log"
	"sync"

	"local-guide/constants"
)

// Event is the envelope pushed to connected clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// FavoritesUpdatedPayload accompanies the favorites-updated event.
type FavoritesUpdatedPayload struct {
	ItemID   string `json:"itemId"`
	NewCount int64  `json:"newCount"`
}

// Hub tracks connected websocket clients and fans events out to all of
// them. Registration, unregistration and broadcasting all flow through
// Run's select loop; delivery is best-effort and a client whose send
// buffer is full gets dropped instead of stalling the broadcast.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("Websocket client connected, total: %d", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("Websocket client disconnected, total: %d", total)

		case event := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastFavoritesUpdated publishes the new favorite count of an item to
// every connected client.
func (h *Hub) BroadcastFavoritesUpdated(itemID string, newCount int64) {
	h.broadcast <- Event{
		Event: constants.EventFavoritesUpdated,
		Data:  FavoritesUpdatedPayload{ItemID: itemID, NewCount: newCount},
	}
}
