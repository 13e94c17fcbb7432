package store

import (
	"context"

	"github.com/sasha-s/go-deadlock"

	"github.com/ugaemi/islet-server/internal/profile"
)

// MemoryStore keeps slots in process memory. It backs STORE_DRIVER=memory
// and tests.
type MemoryStore struct {
	mu    deadlock.Mutex
	slots map[int][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[int][]byte)}
}

// Profiles are kept encoded so a stored value never aliases a live one.
func (s *MemoryStore) Load(_ context.Context, slot int) (*profile.SaveProfile, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	s.mu.Lock()
	raw, ok := s.slots[slot]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	p, err := decodeProfile(raw)
	if err != nil {
		return nil, ErrCorrupt
	}
	return p, nil
}

func (s *MemoryStore) Save(_ context.Context, slot int, p profile.SaveProfile) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	raw, err := encodeProfile(prepare(slot, p))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[slot] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.slots, slot)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]profile.Summary, error) {
	return listSlots(ctx, s.Load)
}

func (s *MemoryStore) Close() error { return nil }
