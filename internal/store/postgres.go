package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ugaemi/islet-server/internal/profile"
)

const schema = `
CREATE TABLE IF NOT EXISTS save_slots (
    slot SMALLINT PRIMARY KEY CHECK (slot >= 0 AND slot < 3),
    profile JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresStore implements SlotStore using PostgreSQL. Profiles are stored
// as JSONB documents, one row per slot.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Load reads a slot. A missing row is (nil, nil).
func (s *PostgresStore) Load(ctx context.Context, slot int) (*profile.SaveProfile, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT profile FROM save_slots WHERE slot = $1`, slot).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %d: %w", slot, err)
	}
	var p profile.SaveProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("slot %d: %w: %v", slot, ErrCorrupt, err)
	}
	p.Slot = slot
	return &p, nil
}

// Save upserts a slot.
func (s *PostgresStore) Save(ctx context.Context, slot int, p profile.SaveProfile) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	raw, err := json.Marshal(prepare(slot, p))
	if err != nil {
		return fmt.Errorf("encode slot %d: %w", slot, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO save_slots (slot, profile, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (slot) DO UPDATE SET profile = EXCLUDED.profile, updated_at = NOW()`,
		slot, raw)
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	return nil
}

// Delete removes a slot row.
func (s *PostgresStore) Delete(ctx context.Context, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx, `DELETE FROM save_slots WHERE slot = $1`, slot)
	return err
}

// List summarizes the three slots.
func (s *PostgresStore) List(ctx context.Context) ([]profile.Summary, error) {
	return listSlots(ctx, s.Load)
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
