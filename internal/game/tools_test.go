package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/inventory"
	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/world"
)

func TestChopTree(t *testing.T) {
	w := testWorld()
	require.True(t, w.AddTree(9, 10, world.Palm))
	g := newTestGame(t, w, nil)

	require.Equal(t, OK, g.EquipTool(item.Axe))
	require.Equal(t, OK, g.UseTool())

	assert.GreaterOrEqual(t, g.inv.Count(item.NewResource(item.Wood, 1)), 1)
	assert.True(t, g.Player().Attacking)
	assert.Zero(t, g.Player().AttackDamage)
	assert.Equal(t, RejectedBusy, g.UseTool())
	assert.True(t, hasEvent(g.DrainEvents(), EventItemGained))
}

func TestMineRock(t *testing.T) {
	w := testWorld()
	require.True(t, w.AddRock(9, 10, world.RockLarge))
	g := newTestGame(t, w, nil)
	g.player.Pos = geom.V(400, 390)
	g.inv.ToolTiers[item.Pickaxe] = 1

	require.Equal(t, OK, g.EquipTool(item.Pickaxe))
	require.Equal(t, OK, g.UseTool())

	assert.GreaterOrEqual(t, g.inv.Count(item.NewResource(item.Stone, 1)), 2)
}

func TestToolNeedsTarget(t *testing.T) {
	for _, tool := range []item.Tool{item.Axe, item.Pickaxe, item.FishingRod} {
		t.Run(tool.String(), func(t *testing.T) {
			g := newTestGame(t, testWorld(), nil)
			require.Equal(t, OK, g.EquipTool(tool))
			assert.Equal(t, RejectedNoTarget, g.UseTool())
			assert.False(t, g.Paused())
		})
	}
}

func fishingWorld() *world.World {
	w := testWorld()
	w.SetTile(10, 10, world.Ocean)
	return w
}

func TestFishingSession(t *testing.T) {
	g := newTestGame(t, fishingWorld(), nil)
	g.SetInput(geom.V(1, 0))

	require.Equal(t, OK, g.EquipTool(item.FishingRod))
	require.Equal(t, OK, g.UseTool())
	assert.Equal(t, "fishing", g.PauseReason())
	assert.True(t, g.input.IsZero(), "casting stops the player")
	require.NotNil(t, g.Snapshot().Fishing)

	pos := g.Player().Pos
	for i := 0; i < 10000 && g.fishing != nil; i++ {
		sess := g.fishing
		if sess.Phase() == "reeling" && sess.Green().Contains(sess.Indicator()) {
			require.Equal(t, OK, g.FishingAttempt())
		}
		g.Tick()
	}

	require.Nil(t, g.fishing)
	assert.False(t, g.Paused())
	assert.Equal(t, pos, g.Player().Pos)
	assert.GreaterOrEqual(t, g.FishingState().TotalCatches, 1)

	events := g.DrainEvents()
	assert.True(t, hasEvent(events, EventFishingStarted))
	assert.True(t, hasEvent(events, EventFishingResult))
	assert.True(t, hasEvent(events, EventFishingEnded))
}

func TestFishingMissEndsSession(t *testing.T) {
	g := newTestGame(t, fishingWorld(), nil)
	require.Equal(t, OK, g.EquipTool(item.FishingRod))
	require.Equal(t, OK, g.UseTool())

	// The indicator starts at 0, left of every green zone.
	require.False(t, g.fishing.Green().Contains(g.fishing.Indicator()))
	require.Equal(t, OK, g.FishingAttempt())
	assert.True(t, g.fishing.Complete())
	assert.Equal(t, RejectedBusy, g.FishingAttempt())

	tickN(g, FishingResultTicks-1)
	assert.NotNil(t, g.fishing, "result screen is still up")
	g.Tick()
	assert.Nil(t, g.fishing)
	assert.Zero(t, g.FishingState().TotalCatches)
}

func TestCloseFishing(t *testing.T) {
	g := newTestGame(t, fishingWorld(), nil)
	assert.Equal(t, RejectedNotFishing, g.FishingAttempt())
	assert.Equal(t, RejectedNotFishing, g.CloseFishing())

	require.Equal(t, OK, g.EquipTool(item.FishingRod))
	require.Equal(t, OK, g.UseTool())
	require.Equal(t, OK, g.CloseFishing())

	assert.False(t, g.Paused())
	assert.Nil(t, g.Snapshot().Fishing)
}

func TestCraftLantern(t *testing.T) {
	g := newTestGame(t, testWorld(), nil)
	assert.Equal(t, inventory.CraftLocked, g.Craft("lantern"))

	g.inv.AddResource(item.Scrap, 10)
	g.inv.AddResource(item.Gel, 9)
	assert.Equal(t, inventory.CraftMissingMaterials, g.Craft("lantern"))
	assert.Equal(t, 10, g.inv.Count(item.NewResource(item.Scrap, 1)), "failed craft leaves materials")

	g.inv.AddResource(item.Gel, 1)
	require.Equal(t, inventory.Crafted, g.Craft("lantern"))
	assert.True(t, g.inv.HasUpgrade(item.Lantern))
	assert.Zero(t, g.inv.Count(item.NewResource(item.Gel, 1)))
	assert.True(t, hasEvent(g.DrainEvents(), EventCrafted))
	assert.Equal(t, inventory.CraftAlreadyOwned, g.Craft("lantern"))
}

func TestEatMeal(t *testing.T) {
	g := newTestGame(t, testWorld(), nil)
	require.True(t, g.inv.Add(item.NewMeal(item.GrilledFish)))
	g.player.Health = 2
	g.player.Stamina = 10

	require.Equal(t, OK, g.EatMeal(0))
	assert.Equal(t, 3, g.Player().Health)
	assert.InDelta(t, 30, g.Player().Stamina, 1e-9)
	assert.Equal(t, RejectedInvalid, g.EatMeal(0))
}

func TestEquipArmor(t *testing.T) {
	g := newTestGame(t, testWorld(), nil)
	require.True(t, g.inv.Add(item.NewArmor(item.CoralSet, item.Helmet)))
	slot := -1
	for i, s := range g.inv.Slots {
		if s.Item.Kind == item.KindArmor {
			slot = i
		}
	}
	require.GreaterOrEqual(t, slot, 0)

	require.Equal(t, OK, g.Equip(slot))
	assert.True(t, g.inv.Slots[slot].Empty())
	assert.Equal(t, RejectedInvalid, g.Equip(slot))
}
