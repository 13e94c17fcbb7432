package handler

import (
	"encoding/json"
	"log/slog"
	"math"

	"github.com/ugaemi/islet-server/internal/game"
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/session"
	"github.com/ugaemi/islet-server/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	sm     *session.Manager
	router *Router
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(sm *session.Manager, router *Router) *GameplayHandler {
	return &GameplayHandler{sm: sm, router: router}
}

type inputRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HandleInput queues the client's movement vector for the next tick.
func (h *GameplayHandler) HandleInput(client *ws.Client, msg ws.Message) {
	var req inputRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid input data"))
		return
	}
	if math.IsNaN(req.X) || math.IsNaN(req.Y) || math.IsInf(req.X, 0) || math.IsInf(req.Y, 0) {
		client.SendMessage(ws.NewErrorMessage("invalid input data"))
		return
	}

	s := h.sessionOf(client)
	if s == nil {
		return
	}
	s.Input(client.ID, geom.V(req.X, req.Y))
}

// HandleAction queues a discrete action; its outcome arrives after the
// tick that applies it.
func (h *GameplayHandler) HandleAction(client *ws.Client, msg ws.Message) {
	var a game.Action
	if err := json.Unmarshal(msg.Data, &a); err != nil || a.Kind == "" {
		client.SendMessage(ws.NewErrorMessage("invalid action data"))
		return
	}

	s := h.sessionOf(client)
	if s == nil {
		return
	}
	s.Act(client.ID, a)

	slog.Debug("action queued", "client", client.ID, "kind", a.Kind)
}

func (h *GameplayHandler) sessionOf(client *ws.Client) *session.Session {
	slot, ok := h.router.SlotOf(client.ID)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("no slot open"))
		return nil
	}
	return h.sm.Get(slot)
}
