package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/profile"
)

func getTestDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	return url
}

func setupTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := getTestDatabaseURL(t)
	ctx := context.Background()

	s, err := NewPostgresStore(ctx, url)
	require.NoError(t, err)

	// Clean up slots table for test isolation
	_, err = s.pool.Exec(ctx, "DELETE FROM save_slots")
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestPostgresStore_SaveAndLoad(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	p := profile.Default(1)
	p.Position = geom.V(120, 240)
	p.Health = 3
	require.NoError(t, s.Save(ctx, 1, p))

	found, err := s.Load(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Empty)
	assert.Equal(t, geom.V(120, 240), found.Position)
	assert.Equal(t, 3, found.Health)
}

func TestPostgresStore_Overwrite(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	p := profile.Default(0)
	require.NoError(t, s.Save(ctx, 0, p))
	p.Health = 1
	require.NoError(t, s.Save(ctx, 0, p))

	found, err := s.Load(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Health)
}

func TestPostgresStore_LoadMissing(t *testing.T) {
	s := setupTestStore(t)

	found, err := s.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPostgresStore_Corrupt(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.pool.Exec(ctx, `INSERT INTO save_slots (slot, profile) VALUES (2, '{"health": "lots"}')`)
	require.NoError(t, err)

	_, err = s.Load(ctx, 2)
	assert.ErrorIs(t, err, ErrCorrupt)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.True(t, list[2].Empty)
}

func TestPostgresStore_DeleteAndList(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, 0, profile.Default(0)))
	require.NoError(t, s.Save(ctx, 2, profile.Default(2)))
	require.NoError(t, s.Delete(ctx, 2))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, profile.SlotCount)
	assert.False(t, list[0].Empty)
	assert.True(t, list[1].Empty)
	assert.True(t, list[2].Empty)
}
