package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ugaemi/islet-server/internal/profile"
)

// ErrCorrupt marks save data that exists but cannot be decoded. Callers treat
// it as an absent save.
var ErrCorrupt = errors.New("store: corrupt save data")

// ErrInvalidSlot is returned for slot numbers outside 0..profile.SlotCount-1.
var ErrInvalidSlot = errors.New("store: invalid slot")

// SlotStore persists the fixed save slots.
type SlotStore interface {
	// Load returns the profile in slot, or nil if the slot was never saved.
	Load(ctx context.Context, slot int) (*profile.SaveProfile, error)
	// Save overwrites slot with p.
	Save(ctx context.Context, slot int, p profile.SaveProfile) error
	// Delete clears slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, slot int) error
	// List summarizes every slot in order, empty ones included.
	List(ctx context.Context) ([]profile.Summary, error)
	// Close releases storage resources.
	Close() error
}

func checkSlot(slot int) error {
	if !profile.ValidSlot(slot) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}

// listSlots builds a full listing from a per-slot loader. A corrupt slot is
// listed as empty.
func listSlots(ctx context.Context, load func(context.Context, int) (*profile.SaveProfile, error)) ([]profile.Summary, error) {
	out := make([]profile.Summary, profile.SlotCount)
	for slot := range out {
		p, err := load(ctx, slot)
		if err != nil && !errors.Is(err, ErrCorrupt) {
			return nil, err
		}
		if p == nil {
			d := profile.Default(slot)
			out[slot] = d.Summarize()
			continue
		}
		out[slot] = p.Summarize()
	}
	return out, nil
}

// prepare stamps the slot number on a profile before it is written.
func prepare(slot int, p profile.SaveProfile) profile.SaveProfile {
	p.Slot = slot
	p.Empty = false
	return p
}
