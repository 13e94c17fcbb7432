package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"

	"github.com/ugaemi/islet-server/internal/game"
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/profile"
	"github.com/ugaemi/islet-server/internal/store"
	"github.com/ugaemi/islet-server/internal/ws"
)

// BroadcastEvery is the number of ticks between snapshot frames (30 per
// second at the 60Hz tick rate). Events are sent every tick.
const BroadcastEvery = 2

// command is one queued input. Exactly one of move or action is set.
type command struct {
	client string
	move   *geom.Vec
	action *game.Action
}

// Session runs one open save slot: it owns the Game, applies queued input at
// tick boundaries and streams snapshots and events to attached clients.
type Session struct {
	ID   string `json:"id"`
	Slot int    `json:"slot"`

	game    *game.Game
	pending []command
	mu      deadlock.Mutex

	clients map[string]*ws.Client
	cmu     deadlock.RWMutex

	store         store.SlotStore
	autosaveTicks int
	sinceSave     int
	saves         chan profile.SaveProfile

	stopCh    chan struct{}
	done      chan struct{}
	saverDone chan struct{}
}

// New wraps g in a session. autosave <= 0 disables periodic saving.
func New(slot int, g *game.Game, st store.SlotStore, autosave time.Duration) *Session {
	return &Session{
		ID:            uuid.New().String(),
		Slot:          slot,
		game:          g,
		clients:       make(map[string]*ws.Client),
		store:         st,
		autosaveTicks: int(autosave / game.TickInterval),
		saves:         make(chan profile.SaveProfile, 1),
		stopCh:        make(chan struct{}),
		done:          make(chan struct{}),
		saverDone:     make(chan struct{}),
	}
}

// Attach adds a client that receives this session's stream.
func (s *Session) Attach(c *ws.Client) {
	s.cmu.Lock()
	defer s.cmu.Unlock()
	s.clients[c.ID] = c
}

// Detach removes a client and returns how many remain.
func (s *Session) Detach(clientID string) int {
	s.cmu.Lock()
	defer s.cmu.Unlock()
	delete(s.clients, clientID)
	return len(s.clients)
}

// ClientCount returns the number of attached clients.
func (s *Session) ClientCount() int {
	s.cmu.RLock()
	defer s.cmu.RUnlock()
	return len(s.clients)
}

// Input queues a movement vector for the next tick.
func (s *Session) Input(clientID string, move geom.Vec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, command{client: clientID, move: &move})
}

// Act queues an action for the next tick. Its outcome is sent back to the
// client that submitted it.
func (s *Session) Act(clientID string, a game.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, command{client: clientID, action: &a})
}

// Snapshot returns the current snapshot.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// SaveProfile captures the game state for persistence.
func (s *Session) SaveProfile() profile.SaveProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.SaveProfile()
}

// Save writes the current state to the store.
func (s *Session) Save(ctx context.Context) error {
	return s.store.Save(ctx, s.Slot, s.SaveProfile())
}

// Start runs the tick loop and the autosave writer until Stop.
func (s *Session) Start() {
	go s.saveLoop()
	go s.tickLoop()
}

// Stop ends the loops and writes a final save.
func (s *Session) Stop(ctx context.Context) error {
	select {
	case <-s.stopCh:
		return nil
	default:
		close(s.stopCh)
	}
	<-s.done
	<-s.saverDone
	err := s.Save(ctx)
	if err != nil {
		slog.Error("final save failed", "session", s.ID, "slot", s.Slot, "error", err)
	}
	slog.Info("session stopped", "session", s.ID, "slot", s.Slot)
	return err
}

type outcome struct {
	client string
	out    game.Outcome
}

func (s *Session) tickLoop() {
	ticker := time.NewTicker(game.TickInterval)
	defer ticker.Stop()
	defer close(s.done)

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.step()
		}
	}
}

// step applies queued commands, advances one tick and publishes the result.
// Only the game mutation happens under the lock.
func (s *Session) step() {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	var outcomes []outcome
	for _, c := range cmds {
		if c.move != nil {
			s.game.SetInput(*c.move)
			continue
		}
		outcomes = append(outcomes, outcome{client: c.client, out: s.game.Apply(*c.action)})
	}
	s.game.Tick()
	events := s.game.DrainEvents()
	var snap *game.Snapshot
	if s.game.TickCount()%BroadcastEvery == 0 {
		v := s.game.Snapshot()
		snap = &v
	}
	var save *profile.SaveProfile
	if s.autosaveTicks > 0 {
		s.sinceSave++
		if s.sinceSave >= s.autosaveTicks {
			s.sinceSave = 0
			v := s.game.SaveProfile()
			save = &v
		}
	}
	s.mu.Unlock()

	for _, o := range outcomes {
		if msg, err := ws.NewMessage(ws.TypeOutcome, o.out); err == nil {
			s.sendTo(o.client, msg)
		}
	}
	if len(events) > 0 {
		if msg, err := ws.NewMessage(ws.TypeEvents, events); err == nil {
			s.broadcast(msg)
		}
	}
	if snap != nil {
		s.broadcastSnapshot(*snap)
	}
	if save != nil {
		s.queueSave(*save)
	}
}

// queueSave hands a profile to the writer, replacing one still waiting.
func (s *Session) queueSave(p profile.SaveProfile) {
	for {
		select {
		case s.saves <- p:
			return
		default:
		}
		select {
		case <-s.saves:
		default:
		}
	}
}

func (s *Session) saveLoop() {
	defer close(s.saverDone)
	for {
		select {
		case <-s.done:
			return
		case p := <-s.saves:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.store.Save(ctx, s.Slot, p); err != nil {
				slog.Error("autosave failed", "session", s.ID, "slot", s.Slot, "error", err)
			} else {
				slog.Debug("autosaved", "session", s.ID, "slot", s.Slot)
			}
			cancel()
		}
	}
}

func (s *Session) broadcast(msg ws.Message) {
	s.cmu.RLock()
	defer s.cmu.RUnlock()
	for _, c := range s.clients {
		c.SendMessage(msg)
	}
}

func (s *Session) broadcastSnapshot(snap game.Snapshot) {
	data, err := ws.EncodeBinary(ws.TypeSnapshot, snap)
	if err != nil {
		slog.Error("failed to encode snapshot", "session", s.ID, "error", err)
		return
	}
	s.cmu.RLock()
	defer s.cmu.RUnlock()
	for _, c := range s.clients {
		c.SendBinary(data)
	}
}

func (s *Session) sendTo(clientID string, msg ws.Message) {
	s.cmu.RLock()
	defer s.cmu.RUnlock()
	if c, ok := s.clients[clientID]; ok {
		c.SendMessage(msg)
	}
}
