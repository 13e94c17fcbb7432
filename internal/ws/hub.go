package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sasha-s/go-deadlock"
)

// Hub tracks connected clients by ID and serializes their incoming
// messages onto one goroutine.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client
	Incoming   chan *ClientMessage

	clients map[string]*Client
	mu      deadlock.RWMutex
	done    chan struct{}

	// OnMessage is called for each incoming client message.
	OnMessage func(cm *ClientMessage)
	// OnDisconnect is called once per registered client that goes away.
	OnDisconnect func(client *Client)
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Incoming:   make(chan *ClientMessage, 256),
		clients:    make(map[string]*Client),
		done:       make(chan struct{}),
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} { return h.done }

// Run dispatches registrations and messages until ctx is done. Every client
// then gets a shutdown notice and its send channel is closed.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			slog.Info("client connected", "client", client.ID)

		case client := <-h.Unregister:
			if !h.remove(client) {
				continue
			}
			slog.Info("client disconnected", "client", client.ID)
			if h.OnDisconnect != nil {
				h.OnDisconnect(client)
			}

		case cm := <-h.Incoming:
			if h.OnMessage != nil {
				h.OnMessage(cm)
			}
		}
	}
}

func (h *Hub) remove(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.clients[client.ID]; !ok || cur != client {
		return false
	}
	delete(h.clients, client.ID)
	client.close()
	return true
}

func (h *Hub) closeAll() {
	notice, _ := NewMessage(TypeShutdown, nil)
	h.Broadcast(notice)

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		delete(h.clients, id)
		client.close()
	}
}

// Broadcast sends msg to every connected client, encoding it once.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal broadcast", "type", msg.Type, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		client.enqueue(Frame{Data: data})
	}
}

// Client returns the connected client with id, or nil.
func (h *Hub) Client(id string) *Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients[id]
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
