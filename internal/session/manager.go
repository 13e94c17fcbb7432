package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sasha-s/go-deadlock"
	"golang.org/x/sync/errgroup"

	"github.com/ugaemi/islet-server/internal/game"
	"github.com/ugaemi/islet-server/internal/profile"
	"github.com/ugaemi/islet-server/internal/store"
	"github.com/ugaemi/islet-server/internal/world"
)

// ErrSlotOpen is returned when deleting a slot that is being played.
var ErrSlotOpen = errors.New("session: slot is open")

// Options configures a Manager.
type Options struct {
	Tuning   game.Tuning
	Seed     int64
	Autosave time.Duration
	Now      func() time.Time
}

// Manager manages all open sessions, at most one per save slot.
type Manager struct {
	world    *world.World
	store    store.SlotStore
	opts     Options
	sessions map[int]*Session // slot -> session
	mu       deadlock.RWMutex
}

// NewManager creates a session manager over an immutable world.
func NewManager(w *world.World, st store.SlotStore, opts Options) *Manager {
	return &Manager{
		world:    w,
		store:    st,
		opts:     opts,
		sessions: make(map[int]*Session),
	}
}

// Open returns the running session of slot, starting one from the stored
// profile if needed. A missing or corrupt save starts a fresh profile.
func (m *Manager) Open(ctx context.Context, slot int) (*Session, error) {
	if !profile.ValidSlot(slot) {
		return nil, fmt.Errorf("%w: %d", store.ErrInvalidSlot, slot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[slot]; ok {
		return s, nil
	}

	p, err := m.load(ctx, slot)
	if err != nil {
		return nil, err
	}
	tuning := m.opts.Tuning
	g := game.New(m.world, p, game.Options{
		Tuning: &tuning,
		Seed:   m.opts.Seed + int64(slot),
		Now:    m.opts.Now,
	})
	s := New(slot, g, m.store, m.opts.Autosave)
	s.Start()
	m.sessions[slot] = s

	slog.Info("session opened", "session", s.ID, "slot", slot, "fresh", p.Empty)
	return s, nil
}

func (m *Manager) load(ctx context.Context, slot int) (profile.SaveProfile, error) {
	p, err := m.store.Load(ctx, slot)
	switch {
	case errors.Is(err, store.ErrCorrupt):
		slog.Warn("corrupt save treated as empty", "slot", slot, "error", err)
		return profile.Default(slot), nil
	case err != nil:
		return profile.SaveProfile{}, fmt.Errorf("load slot %d: %w", slot, err)
	case p == nil:
		return profile.Default(slot), nil
	}
	return *p, nil
}

// Get returns the open session of slot, or nil.
func (m *Manager) Get(slot int) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[slot]
}

// Close stops the session of slot after a final save.
func (m *Manager) Close(ctx context.Context, slot int) error {
	m.mu.Lock()
	s, ok := m.sessions[slot]
	delete(m.sessions, slot)
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Stop(ctx)
}

// Save writes the open session of slot to the store.
func (m *Manager) Save(ctx context.Context, slot int) error {
	s := m.Get(slot)
	if s == nil {
		return fmt.Errorf("save slot %d: not open", slot)
	}
	return s.Save(ctx)
}

// Delete clears a slot that is not being played.
func (m *Manager) Delete(ctx context.Context, slot int) error {
	if m.Get(slot) != nil {
		return ErrSlotOpen
	}
	return m.store.Delete(ctx, slot)
}

// List summarizes every slot.
func (m *Manager) List(ctx context.Context) ([]profile.Summary, error) {
	return m.store.List(ctx)
}

// SessionCount returns the number of open sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Shutdown stops every session concurrently, saving each one.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[int]*Session)
	m.mu.Unlock()

	var g errgroup.Group
	for _, s := range sessions {
		g.Go(func() error { return s.Stop(ctx) })
	}
	return g.Wait()
}
