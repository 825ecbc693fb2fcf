// Package feed implements the push channel for gratitude feed inserts.
// Subscribers receive every new post as it is created; events carry the
// post id so clients can deduplicate against their own optimistic insert.
package feed

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
)

// EventPostCreated is the only event type currently broadcast.
const EventPostCreated = "post.created"

// Event is the wire format pushed to subscribers.
type Event struct {
	Type string                `json:"type"`
	Post *models.GratitudePost `json:"post"`
}

// Client is one connected subscriber. Send is closed by the hub when the
// client falls behind or unregisters.
type Client struct {
	Send chan []byte
}

// Hub manages active subscribers and fans out feed events. Single room:
// there is one shared gratitude feed.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister/broadcast until done is closed.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				slog.Error("feed event marshal failed", "error", err)
				continue
			}
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- payload:
				default:
					// Slow consumer: drop it rather than block the feed.
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()

		case <-done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Subscribe registers a new client with a buffered send queue.
func (h *Hub) Subscribe() *Client {
	client := &Client{Send: make(chan []byte, 32)}
	h.register <- client
	return client
}

// Unsubscribe removes the client and closes its send queue.
func (h *Hub) Unsubscribe(client *Client) {
	h.unregister <- client
}

// PublishPost pushes a freshly created post to every subscriber.
func (h *Hub) PublishPost(post *models.GratitudePost) {
	h.broadcast <- Event{Type: EventPostCreated, Post: post}
}
