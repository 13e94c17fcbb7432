package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ugaemi/islet-server/internal/profile"
)

// FileStore keeps each slot in a msgpack file under a directory. Writes go
// to a temporary file that is renamed over the old one.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot int) string {
	return filepath.Join(s.dir, fmt.Sprintf("slot%d.sav", slot))
}

// Load reads a slot file. A missing file is (nil, nil).
func (s *FileStore) Load(_ context.Context, slot int) (*profile.SaveProfile, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path(slot))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %d: %w", slot, err)
	}
	p, err := decodeProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w: %v", slot, ErrCorrupt, err)
	}
	p.Slot = slot
	return p, nil
}

// Save writes a slot file atomically.
func (s *FileStore) Save(_ context.Context, slot int, p profile.SaveProfile) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	raw, err := encodeProfile(prepare(slot, p))
	if err != nil {
		return fmt.Errorf("encode slot %d: %w", slot, err)
	}
	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf("slot%d-*.tmp", slot))
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	return nil
}

// Delete removes a slot file.
func (s *FileStore) Delete(_ context.Context, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	err := os.Remove(s.path(slot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete slot %d: %w", slot, err)
	}
	return nil
}

// List summarizes the three slots.
func (s *FileStore) List(ctx context.Context) ([]profile.Summary, error) {
	return listSlots(ctx, s.Load)
}

func (s *FileStore) Close() error { return nil }

// The profile types carry json tags only; msgpack reuses them so both stores
// agree on field names.
func encodeProfile(p profile.SaveProfile) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeProfile(raw []byte) (*profile.SaveProfile, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.SetCustomStructTag("json")
	var p profile.SaveProfile
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
