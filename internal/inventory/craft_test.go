package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/islet-server/internal/item"
)

func TestCraft(t *testing.T) {
	tests := []struct {
		name   string
		recipe string
		setup  func(inv *Inventory)
		want   CraftResult
		check  func(t *testing.T, inv *Inventory)
	}{
		{
			name:   "unknown recipe",
			recipe: "moon_boots",
			want:   CraftUnknownRecipe,
		},
		{
			name:   "locked until trigger discovered",
			recipe: "lucky_charm",
			want:   CraftLocked,
		},
		{
			name:   "missing materials leaves inventory untouched",
			recipe: "lucky_charm",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Pearl, 3)
				inv.AddResource(item.Coin, 19)
			},
			want: CraftMissingMaterials,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 3, inv.Count(item.NewResource(item.Pearl, 1)))
				assert.Equal(t, 19, inv.Count(item.NewResource(item.Coin, 1)))
			},
		},
		{
			name:   "collectible needs an empty general slot",
			recipe: "lucky_charm",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Pearl, 4)
				inv.AddResource(item.Coin, 25)
				for inv.HasEmptyGeneralSlot() {
					inv.Add(item.NewIngredient(item.Eel))
				}
			},
			want: CraftNoRoom,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 4, inv.Count(item.NewResource(item.Pearl, 1)))
			},
		},
		{
			name:   "collectible crafted",
			recipe: "lucky_charm",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Pearl, 4)
				inv.AddResource(item.Coin, 20)
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 1, inv.Count(item.NewResource(item.Pearl, 1)))
				assert.Equal(t, 0, inv.Count(item.NewResource(item.Coin, 1)))
				assert.Equal(t, 1, inv.Count(item.NewAccessory(item.LuckyCharm)))
			},
		},
		{
			name:   "meal needs an open meal slot",
			recipe: "grilled_fish",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Wood, 2)
				inv.Add(item.NewIngredient(item.Sardine))
				for inv.HasEmptyMealSlot() {
					inv.Add(item.NewMeal(item.SeafoodStew))
				}
			},
			want: CraftNoRoom,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 1, inv.Count(item.NewIngredient(item.Sardine)))
			},
		},
		{
			name:   "meal crafted into meal slot",
			recipe: "grilled_fish",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Wood, 2)
				inv.Add(item.NewIngredient(item.Sardine))
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, item.GrilledFish, inv.Slots[0].Item.Meal)
				assert.Equal(t, 0, inv.Count(item.NewIngredient(item.Sardine)))
			},
		},
		{
			name:   "resource output stacks",
			recipe: "pearl",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Seashell, 10)
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 1, inv.Count(item.NewResource(item.Pearl, 1)))
				assert.True(t, inv.Discovered[item.Pearl])
			},
		},
		{
			name:   "resource output with no room keeps materials",
			recipe: "pearl",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Seashell, 20)
				for inv.HasEmptyGeneralSlot() {
					inv.Add(item.NewIngredient(item.Sardine))
				}
			},
			want: CraftNoRoom,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 20, inv.Count(item.NewResource(item.Seashell, 1)))
				assert.Zero(t, inv.Count(item.NewResource(item.Pearl, 1)))
			},
		},
		{
			name:   "resource output takes the slot its materials free",
			recipe: "pearl",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Seashell, 10)
				for inv.HasEmptyGeneralSlot() {
					inv.Add(item.NewIngredient(item.Sardine))
				}
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.Zero(t, inv.Count(item.NewResource(item.Seashell, 1)))
				assert.Equal(t, 1, inv.Count(item.NewResource(item.Pearl, 1)))
			},
		},
		{
			name:   "resource output joins an open stack in a full inventory",
			recipe: "pearl",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Seashell, 20)
				inv.AddResource(item.Pearl, 5)
				for inv.HasEmptyGeneralSlot() {
					inv.Add(item.NewIngredient(item.Sardine))
				}
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 10, inv.Count(item.NewResource(item.Seashell, 1)))
				assert.Equal(t, 6, inv.Count(item.NewResource(item.Pearl, 1)))
			},
		},
		{
			name:   "collectible takes the slot its materials free",
			recipe: "lucky_charm",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Pearl, 3)
				inv.AddResource(item.Coin, 20)
				for inv.HasEmptyGeneralSlot() {
					inv.Add(item.NewIngredient(item.Eel))
				}
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 1, inv.Count(item.NewAccessory(item.LuckyCharm)))
			},
		},
		{
			name:   "tool tier raised",
			recipe: "sword_1",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Stone, 20)
				inv.AddResource(item.Gel, 10)
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 1, inv.ToolTier(item.Sword))
			},
		},
		{
			name:   "tool already at tier",
			recipe: "sword_1",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Stone, 20)
				inv.AddResource(item.Gel, 10)
				inv.ToolTiers[item.Sword] = 2
			},
			want: CraftTierReached,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 20, inv.Count(item.NewResource(item.Stone, 1)))
			},
		},
		{
			name:   "major upgrade owned",
			recipe: "lantern",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Scrap, 10)
				inv.AddResource(item.Gel, 10)
				inv.Upgrades[item.Lantern] = true
			},
			want: CraftAlreadyOwned,
		},
		{
			name:   "tier reached reported before materials",
			recipe: "sword_1",
			setup: func(inv *Inventory) {
				inv.Discovered[item.Gel] = true
				inv.ToolTiers[item.Sword] = 1
			},
			want: CraftTierReached,
		},
		{
			name:   "owned upgrade reported before materials",
			recipe: "lantern",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Scrap, 1)
				inv.Upgrades[item.Lantern] = true
			},
			want: CraftAlreadyOwned,
		},
		{
			name:   "major upgrade crafted",
			recipe: "lantern",
			setup: func(inv *Inventory) {
				inv.AddResource(item.Scrap, 10)
				inv.AddResource(item.Gel, 10)
			},
			want: Crafted,
			check: func(t *testing.T, inv *Inventory) {
				assert.True(t, inv.HasUpgrade(item.Lantern))
				assert.Equal(t, 0, inv.Count(item.NewResource(item.Gel, 1)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newTestInventory()
			if tt.setup != nil {
				tt.setup(inv)
			}
			got := inv.Craft(tt.recipe)
			assert.Equal(t, tt.want, got, "got %s", got)
			if tt.check != nil {
				tt.check(t, inv)
			}
		})
	}
}

func TestCraftConsumesAcrossStacks(t *testing.T) {
	inv := newTestInventory()
	inv.AddResource(item.Wood, 99)
	inv.AddResource(item.Wood, 10)
	inv.AddResource(item.Fiber, 20)
	inv.AddResource(item.Scrap, 10)

	require.Equal(t, Crafted, inv.Craft("sailboat"))
	assert.Equal(t, 39, inv.Slots[MealSlots].Item.Quantity)
	assert.Equal(t, 10, inv.Slots[MealSlots+1].Item.Quantity)
	assert.True(t, inv.HasUpgrade(item.Sailboat))
}

func TestRecipesHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Recipes() {
		assert.False(t, seen[r.ID], r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.Materials, r.ID)
	}
}
