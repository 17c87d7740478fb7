// Package realtime streams rendered view models to connected viewer pages
// over websockets.
package realtime

import (
	"context"
	"sync"

	"weathermap.app/internal/ports"
)

const broadcastBuffer = 64

// message is one encoded render event for a page region
type message struct {
	region string
	data   []byte
	// retain keeps the message for replay to pages that connect later
	retain bool
}

// Hub maintains the set of active clients and broadcasts render events to them.
// The last retained event of every region is replayed to newly registered
// clients, so a page opened mid-session shows the current state.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	done       chan struct{}
	logger     ports.Logger

	mu      sync.Mutex
	clients map[*Client]bool
	last    map[string][]byte
}

func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, broadcastBuffer),
		done:       make(chan struct{}),
		logger:     logger,
		clients:    make(map[*Client]bool),
		last:       make(map[string][]byte),
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then closes
// every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.logger.Debug("Registering render client", ports.F("client", client.name))

			h.mu.Lock()
			for _, region := range replayOrder {
				if data, ok := h.last[region]; ok {
					client.send <- data
				}
			}
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.logger.Debug("Unregistering render client", ports.F("client", client.name))

			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			if msg.retain {
				h.last[msg.region] = msg.data
			}
			active := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				active = append(active, client)
			}
			h.mu.Unlock()

			for _, client := range active {
				select {
				case client.send <- msg.data:
				default:
					h.logger.Warn("Client send buffer full, dropping message",
						ports.F("client", client.name),
						ports.F("region", msg.region))
				}
			}
		}
	}
}

// Register adds client once the hub accepts it
func (h *Hub) Register(ctx context.Context, client *Client) error {
	select {
	case h.register <- client:
		return nil
	case <-h.done:
		return errHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) publish(ctx context.Context, msg message) error {
	select {
	case h.broadcast <- msg:
		return nil
	case <-h.done:
		return errHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientCount returns the number of connected pages
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
