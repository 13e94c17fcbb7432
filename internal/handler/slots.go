package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ugaemi/islet-server/internal/profile"
	"github.com/ugaemi/islet-server/internal/session"
	"github.com/ugaemi/islet-server/internal/store"
	"github.com/ugaemi/islet-server/internal/ws"
)

// SlotHandler handles save slot messages.
type SlotHandler struct {
	sm     *session.Manager
	router *Router
}

// NewSlotHandler creates a new slot handler.
func NewSlotHandler(sm *session.Manager, router *Router) *SlotHandler {
	return &SlotHandler{
		sm:     sm,
		router: router,
	}
}

type slotRequest struct {
	Slot *int `json:"slot"`
}

type slotOpenedResponse struct {
	Slot      int    `json:"slot"`
	SessionID string `json:"session_id"`
}

type slotResponse struct {
	Slot int `json:"slot"`
}

type slotListResponse struct {
	Slots []profile.Summary `json:"slots"`
}

func parseSlot(msg ws.Message) (int, bool) {
	var req slotRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Slot == nil {
		return 0, false
	}
	return *req.Slot, profile.ValidSlot(*req.Slot)
}

// HandleOpenSlot attaches the client to the session of a slot, starting it
// from the stored save if nobody plays it yet.
func (h *SlotHandler) HandleOpenSlot(client *ws.Client, msg ws.Message) {
	slot, ok := parseSlot(msg)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("slot must be 0, 1 or 2"))
		return
	}

	if cur, ok := h.router.SlotOf(client.ID); ok {
		if cur == slot {
			h.sendOpened(client, h.sm.Get(slot))
			return
		}
		h.leave(client)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	s, err := h.sm.Open(ctx, slot)
	if err != nil {
		slog.Error("open slot failed", "client", client.ID, "slot", slot, "error", err)
		client.SendMessage(ws.NewErrorMessage("could not open slot"))
		return
	}
	s.Attach(client)
	h.router.Bind(client.ID, slot)
	h.sendOpened(client, s)

	slog.Info("client opened slot", "client", client.ID, "slot", slot, "session", s.ID)
}

func (h *SlotHandler) sendOpened(client *ws.Client, s *session.Session) {
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("slot is not open"))
		return
	}
	resp, _ := ws.NewMessage(ws.TypeSlotOpened, slotOpenedResponse{
		Slot:      s.Slot,
		SessionID: s.ID,
	})
	client.SendMessage(resp)
}

// HandleCloseSlot detaches the client from its slot.
func (h *SlotHandler) HandleCloseSlot(client *ws.Client, _ ws.Message) {
	slot, ok := h.leave(client)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("no slot open"))
		return
	}
	resp, _ := ws.NewMessage(ws.TypeSlotClosed, slotResponse{Slot: slot})
	client.SendMessage(resp)
}

// HandleListSlots sends the summary of every slot.
func (h *SlotHandler) HandleListSlots(client *ws.Client, _ ws.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	list, err := h.sm.List(ctx)
	if err != nil {
		slog.Error("list slots failed", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("could not list slots"))
		return
	}
	resp, _ := ws.NewMessage(ws.TypeSlotList, slotListResponse{Slots: list})
	client.SendMessage(resp)
}

// HandleDeleteSlot clears a slot nobody is playing.
func (h *SlotHandler) HandleDeleteSlot(client *ws.Client, msg ws.Message) {
	slot, ok := parseSlot(msg)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("slot must be 0, 1 or 2"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	switch err := h.sm.Delete(ctx, slot); {
	case errors.Is(err, session.ErrSlotOpen):
		client.SendMessage(ws.NewErrorMessage("slot is being played"))
		return
	case errors.Is(err, store.ErrInvalidSlot):
		client.SendMessage(ws.NewErrorMessage("slot must be 0, 1 or 2"))
		return
	case err != nil:
		slog.Error("delete slot failed", "client", client.ID, "slot", slot, "error", err)
		client.SendMessage(ws.NewErrorMessage("could not delete slot"))
		return
	}
	h.HandleListSlots(client, msg)
	slog.Info("slot deleted", "client", client.ID, "slot", slot)
}

// HandleSave writes the client's slot immediately.
func (h *SlotHandler) HandleSave(client *ws.Client, _ ws.Message) {
	slot, ok := h.router.SlotOf(client.ID)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("no slot open"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := h.sm.Save(ctx, slot); err != nil {
		slog.Error("save failed", "client", client.ID, "slot", slot, "error", err)
		client.SendMessage(ws.NewErrorMessage("save failed"))
		return
	}
	resp, _ := ws.NewMessage(ws.TypeSaved, slotResponse{Slot: slot})
	client.SendMessage(resp)
}

// HandleDisconnect handles client disconnection.
func (h *SlotHandler) HandleDisconnect(client *ws.Client) {
	h.leave(client)
}

// leave detaches the client from its slot and closes the session once the
// last client is gone.
func (h *SlotHandler) leave(client *ws.Client) (int, bool) {
	slot, ok := h.router.Unbind(client.ID)
	if !ok {
		return 0, false
	}

	s := h.sm.Get(slot)
	if s == nil || s.Detach(client.ID) > 0 {
		return slot, true
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := h.sm.Close(ctx, slot); err != nil {
		slog.Error("close session failed", "slot", slot, "error", err)
	}
	slog.Info("client left slot", "client", client.ID, "slot", slot)
	return slot, true
}
