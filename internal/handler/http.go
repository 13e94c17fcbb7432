package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ugaemi/islet-server/internal/session"
	"github.com/ugaemi/islet-server/internal/store"
	"github.com/ugaemi/islet-server/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// SetupRoutes configures the HTTP routes: health, the game websocket and
// the slot API.
func SetupRoutes(hub *ws.Hub, sm *session.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Sessions: sm.SessionCount(),
			Clients:  hub.ClientCount(),
		})
	})
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(hub, w, r)
	})

	slots := &slotAPI{sm: sm}
	r.Route("/api/slots", func(r chi.Router) {
		r.Get("/", slots.List)
		r.Delete("/{slot}", slots.Delete)
	})
	return r
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
	Clients  int    `json:"clients"`
}

func handleWebSocket(hub *ws.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(uuid.New().String(), hub, conn)
	select {
	case hub.Register <- client:
	case <-hub.Done():
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

type slotAPI struct {
	sm *session.Manager
}

// List handles GET /api/slots.
func (a *slotAPI) List(w http.ResponseWriter, r *http.Request) {
	list, err := a.sm.List(r.Context())
	if err != nil {
		slog.Error("list slots failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not list slots")
		return
	}
	respondJSON(w, http.StatusOK, slotListResponse{Slots: list})
}

// Delete handles DELETE /api/slots/{slot}.
func (a *slotAPI) Delete(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid slot")
		return
	}

	switch err := a.sm.Delete(r.Context(), slot); {
	case errors.Is(err, session.ErrSlotOpen):
		respondError(w, http.StatusConflict, "slot is being played")
	case errors.Is(err, store.ErrInvalidSlot):
		respondError(w, http.StatusBadRequest, "invalid slot")
	case err != nil:
		slog.Error("delete slot failed", "slot", slot, "error", err)
		respondError(w, http.StatusInternalServerError, "could not delete slot")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
