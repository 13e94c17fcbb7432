package handler

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/ugaemi/islet-server/internal/session"
	"github.com/ugaemi/islet-server/internal/ws"
)

// storeTimeout bounds store calls made while handling a message.
const storeTimeout = 5 * time.Second

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	slots    *SlotHandler
	gameplay *GameplayHandler

	// slotMap tracks client ID -> open slot, shared across handlers.
	slotMap map[string]int
	mu      deadlock.RWMutex
}

// NewRouter creates a new message router.
func NewRouter(sm *session.Manager) *Router {
	r := &Router{
		slotMap: make(map[string]int),
	}
	r.slots = NewSlotHandler(sm, r)
	r.gameplay = NewGameplayHandler(sm, r)
	return r
}

// Bind maps a client ID to the slot it plays.
func (r *Router) Bind(clientID string, slot int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slotMap[clientID] = slot
}

// Unbind removes a client's slot mapping and returns the slot it had.
func (r *Router) Unbind(clientID string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slotMap[clientID]
	delete(r.slotMap, clientID)
	return slot, ok
}

// SlotOf returns the slot a client plays, if any.
func (r *Router) SlotOf(clientID string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot, ok := r.slotMap[clientID]
	return slot, ok
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Slot messages
	case ws.TypeOpenSlot:
		r.slots.HandleOpenSlot(cm.Client, msg)
	case ws.TypeCloseSlot:
		r.slots.HandleCloseSlot(cm.Client, msg)
	case ws.TypeListSlots:
		r.slots.HandleListSlots(cm.Client, msg)
	case ws.TypeDeleteSlot:
		r.slots.HandleDeleteSlot(cm.Client, msg)
	case ws.TypeSave:
		r.slots.HandleSave(cm.Client, msg)

	// Gameplay messages
	case ws.TypeInput:
		r.gameplay.HandleInput(cm.Client, msg)
	case ws.TypeAction:
		r.gameplay.HandleAction(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.slots.HandleDisconnect(client)
}
