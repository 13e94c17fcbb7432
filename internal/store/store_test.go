package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/profile"
)

func stores(t *testing.T) map[string]SlotStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]SlotStore{
		"file":   fs,
		"memory": NewMemoryStore(),
	}
}

func sampleProfile(slot int) profile.SaveProfile {
	p := profile.Default(slot)
	played := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	p.LastPlayed = &played
	p.Position = geom.V(321.5, 654)
	p.Health = 4
	p.Fishing.TotalCatches = 12
	p.Inventory.Slots[5].Item = item.NewResource(item.Wood, 42)
	p.Inventory.Slots[0].Item = item.NewMeal(item.GrilledFish)
	p.Inventory.ToolTiers = map[item.Tool]int{item.Axe: 2}
	p.Inventory.Upgrades = []item.Upgrade{item.Sailboat}
	p.Environment.Day = 9
	p.Environment.Weather = "storm"
	p.Enemies = []profile.EnemyRecord{{ID: 0, Position: geom.V(10, 20), Health: 1, Alive: true}}
	return p
}

func TestSlotStores(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			missing, err := s.Load(ctx, 1)
			require.NoError(t, err)
			assert.Nil(t, missing)

			p := sampleProfile(1)
			require.NoError(t, s.Save(ctx, 1, p))

			got, err := s.Load(ctx, 1)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.False(t, got.Empty)
			assert.Equal(t, 1, got.Slot)
			assert.Equal(t, p.Position, got.Position)
			assert.Equal(t, 4, got.Health)
			assert.Equal(t, 12, got.Fishing.TotalCatches)
			assert.Equal(t, item.NewResource(item.Wood, 42), got.Inventory.Slots[5].Item)
			assert.Equal(t, item.NewMeal(item.GrilledFish), got.Inventory.Slots[0].Item)
			assert.Equal(t, 2, got.Inventory.ToolTiers[item.Axe])
			assert.Equal(t, []item.Upgrade{item.Sailboat}, got.Inventory.Upgrades)
			assert.Equal(t, 9, got.Environment.Day)
			assert.Equal(t, "storm", got.Environment.Weather)
			require.NotNil(t, got.LastPlayed)
			assert.True(t, p.LastPlayed.Equal(*got.LastPlayed))
			assert.Equal(t, p.Enemies, got.Enemies)

			list, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, profile.SlotCount)
			assert.True(t, list[0].Empty)
			assert.False(t, list[1].Empty)
			assert.Equal(t, 9, list[1].Day)

			require.NoError(t, s.Delete(ctx, 1))
			require.NoError(t, s.Delete(ctx, 1))
			gone, err := s.Load(ctx, 1)
			require.NoError(t, err)
			assert.Nil(t, gone)
		})
	}
}

func TestInvalidSlot(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := s.Load(ctx, 3)
			assert.ErrorIs(t, err, ErrInvalidSlot)
			assert.ErrorIs(t, s.Save(ctx, -1, profile.Default(0)), ErrInvalidSlot)
			assert.ErrorIs(t, s.Delete(ctx, 7), ErrInvalidSlot)
		})
	}
}

func TestSaveStampsSlot(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, 2, profile.Default(0)))

	got, err := s.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Slot)
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "slot0.sav"), []byte{0xc1, 0x00, 0xff}, 0o644))

	_, err = s.Load(ctx, 0)
	assert.ErrorIs(t, err, ErrCorrupt)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.True(t, list[0].Empty, "corrupt slots are listed as empty")

	require.NoError(t, s.Save(ctx, 0, sampleProfile(0)))
	got, err := s.Load(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Health)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), 0, sampleProfile(0)))
	require.NoError(t, s.Save(context.Background(), 0, sampleProfile(0)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "slot0.sav", entries[0].Name())
}
