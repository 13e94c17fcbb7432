package inventory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/islet-server/internal/item"
)

func newTestInventory() *Inventory {
	inv := New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	inv.SetClock(func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	})
	return inv
}

func TestAddResourceOverflow(t *testing.T) {
	inv := newTestInventory()

	require.True(t, inv.Add(item.NewResource(item.Wood, 60)))
	require.True(t, inv.Add(item.NewResource(item.Wood, 60)))

	assert.Equal(t, 99, inv.Slots[MealSlots].Item.Quantity)
	assert.Equal(t, 21, inv.Slots[MealSlots+1].Item.Quantity)
	assert.Equal(t, 120, inv.Count(item.NewResource(item.Wood, 1)))
	assert.True(t, inv.Discovered[item.Wood])
}

func TestStackingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	resources := []item.Resource{item.Wood, item.Stone, item.Gel, item.Coin}

	for run := 0; run < 20; run++ {
		inv := newTestInventory()
		added := map[item.Resource]int{}
		for i := 0; i < 60; i++ {
			r := resources[rng.Intn(len(resources))]
			q := rng.Intn(150) + 1
			leftover := inv.AddResource(r, q)
			require.GreaterOrEqual(t, leftover, 0)
			require.LessOrEqual(t, leftover, q)
			added[r] += q - leftover
		}
		for _, s := range inv.Slots {
			if s.Item.Kind == item.KindResource {
				require.LessOrEqual(t, s.Item.Quantity, item.MaxStack)
				require.Greater(t, s.Item.Quantity, 0)
			}
		}
		for r, want := range added {
			assert.Equal(t, want, inv.Count(item.NewResource(r, 1)), "resource %s", r)
		}
	}
}

func TestAddPlacement(t *testing.T) {
	tests := []struct {
		name  string
		setup func(inv *Inventory)
		add   item.Item
		want  bool
		check func(t *testing.T, inv *Inventory)
	}{
		{
			name: "meal goes to first meal slot",
			add:  item.NewMeal(item.GrilledFish),
			want: true,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, item.KindMeal, inv.Slots[0].Item.Kind)
			},
		},
		{
			name: "meal rejected when meal slots full even with general room",
			setup: func(inv *Inventory) {
				for i := 0; i < MealSlots; i++ {
					inv.Add(item.NewMeal(item.SeafoodStew))
				}
			},
			add:  item.NewMeal(item.GrilledFish),
			want: false,
			check: func(t *testing.T, inv *Inventory) {
				for i := MealSlots; i < SlotCount; i++ {
					assert.True(t, inv.Slots[i].Empty())
				}
			},
		},
		{
			name: "ingredient skips meal slots",
			add:  item.NewIngredient(item.Sardine),
			want: true,
			check: func(t *testing.T, inv *Inventory) {
				assert.True(t, inv.Slots[0].Empty())
				assert.Equal(t, item.Sardine, inv.Slots[MealSlots].Item.Ingredient)
			},
		},
		{
			name: "general slots full rejects armor",
			setup: func(inv *Inventory) {
				for i := MealSlots; i < SlotCount; i++ {
					inv.Add(item.NewIngredient(item.Bass))
				}
			},
			add:  item.NewArmor(item.CoralSet, item.Helmet),
			want: false,
		},
		{
			name: "resource stacks into partial stack when general slots full",
			setup: func(inv *Inventory) {
				inv.Add(item.NewResource(item.Stone, 50))
				for i := MealSlots + 1; i < SlotCount; i++ {
					inv.Add(item.NewIngredient(item.Bass))
				}
			},
			add:  item.NewResource(item.Stone, 40),
			want: true,
			check: func(t *testing.T, inv *Inventory) {
				assert.Equal(t, 90, inv.Slots[MealSlots].Item.Quantity)
			},
		},
		{
			name: "none item is never added",
			add:  item.Item{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newTestInventory()
			if tt.setup != nil {
				tt.setup(inv)
			}
			assert.Equal(t, tt.want, inv.Add(tt.add))
			if tt.check != nil {
				tt.check(t, inv)
			}
		})
	}
}

func TestRemoveFrontToBack(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewResource(item.Wood, 99))
	inv.Add(item.NewResource(item.Wood, 30))
	require.Equal(t, 30, inv.Slots[MealSlots+1].Item.Quantity)

	assert.False(t, inv.Remove(item.NewResource(item.Wood, 1), 200))
	assert.Equal(t, 129, inv.Count(item.NewResource(item.Wood, 1)))

	assert.True(t, inv.Remove(item.NewResource(item.Wood, 1), 100))
	assert.True(t, inv.Slots[MealSlots].Empty())
	assert.Equal(t, 29, inv.Slots[MealSlots+1].Item.Quantity)
}

func TestDiscoveryIsMonotonic(t *testing.T) {
	inv := newTestInventory()
	inv.AddResource(item.Pearl, 1)
	require.True(t, inv.Discovered[item.Pearl])

	inv.Remove(item.NewResource(item.Pearl, 1), 1)
	assert.True(t, inv.Discovered[item.Pearl])

	lucky, _ := RecipeByID("lucky_charm")
	assert.True(t, inv.Unlocked(lucky))
}

func TestDiscoveryRequiresReceipt(t *testing.T) {
	inv := newTestInventory()
	for i := MealSlots; i < SlotCount; i++ {
		inv.Add(item.NewIngredient(item.Bass))
	}
	assert.Equal(t, 5, inv.AddResource(item.Gel, 5))
	assert.False(t, inv.Discovered[item.Gel])
}

func TestSortRecentKeepsFavoritesFirst(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewIngredient(item.Sardine))
	inv.Add(item.NewIngredient(item.Bass))
	inv.Add(item.NewIngredient(item.Tuna))
	inv.SetFavorite(MealSlots, true)

	inv.Sort(SortRecent)

	assert.Equal(t, item.Sardine, inv.Slots[MealSlots].Item.Ingredient)
	assert.Equal(t, item.Tuna, inv.Slots[MealSlots+1].Item.Ingredient)
	assert.Equal(t, item.Bass, inv.Slots[MealSlots+2].Item.Ingredient)
	assert.True(t, inv.Slots[MealSlots+3].Empty())
}

func TestSortKind(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewArmor(item.CoralSet, item.Boots))
	inv.Add(item.NewIngredient(item.Eel))
	inv.Add(item.NewResource(item.Stone, 5))
	inv.Add(item.NewResource(item.Wood, 5))

	inv.Sort(SortKind)

	assert.Equal(t, item.Wood, inv.Slots[MealSlots].Item.Resource)
	assert.Equal(t, item.Stone, inv.Slots[MealSlots+1].Item.Resource)
	assert.Equal(t, item.KindIngredient, inv.Slots[MealSlots+2].Item.Kind)
	assert.Equal(t, item.KindArmor, inv.Slots[MealSlots+3].Item.Kind)
}

func TestDiscardJunk(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewIngredient(item.OldBoot))
	inv.Add(item.NewIngredient(item.OldBoot))
	inv.SetJunk(MealSlots, true)
	inv.SetJunk(MealSlots+1, true)
	inv.SetFavorite(MealSlots+1, true)

	assert.Equal(t, 1, inv.DiscardJunk())
	assert.True(t, inv.Slots[MealSlots].Empty())
	assert.False(t, inv.Slots[MealSlots+1].Empty())
}

func TestEquipAndFortune(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewArmor(item.CoralSet, item.Helmet))
	inv.Add(item.NewArmor(item.AbyssalSet, item.Helmet))
	inv.Add(item.NewAccessory(item.PearlNecklace))

	require.True(t, inv.EquipArmor(MealSlots))
	assert.True(t, inv.Slots[MealSlots].Empty())
	assert.Equal(t, 5, inv.Fortune())

	require.True(t, inv.EquipArmor(MealSlots+1))
	assert.Equal(t, item.CoralSet, inv.Slots[MealSlots+1].Item.Armor.Set)
	assert.Equal(t, item.AbyssalSet, inv.Equipment.Armor[item.Helmet].Armor.Set)

	require.True(t, inv.EquipAccessory(MealSlots+2))
	inv.ToolTiers[item.FishingRod] = 1
	assert.Equal(t, 10+20+5, inv.Fortune())

	assert.False(t, inv.EquipArmor(MealSlots+2))
}

func TestCollectedArmorScansSlotsAndEquipment(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewArmor(item.CoralSet, item.Helmet))
	inv.Add(item.NewArmor(item.CoralSet, item.Boots))
	inv.EquipArmor(MealSlots + 1)

	c := inv.CollectedArmor()
	assert.True(t, c.Has(item.CoralSet, item.Helmet))
	assert.True(t, c.Has(item.CoralSet, item.Boots))
	assert.False(t, c.Has(item.CoralSet, item.Leggings))
}

func TestEatMeal(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewMeal(item.GrilledFish))

	eff, ok := inv.EatMeal(0)
	require.True(t, ok)
	assert.Equal(t, item.GrilledFish.Effect(), eff)
	assert.True(t, inv.Slots[0].Empty())

	_, ok = inv.EatMeal(0)
	assert.False(t, ok)
}

func TestRecordRoundTrip(t *testing.T) {
	inv := newTestInventory()
	inv.Add(item.NewResource(item.Scrap, 12))
	inv.Add(item.NewMeal(item.SushiPlatter))
	inv.Upgrades[item.Lantern] = true
	inv.ToolTiers[item.Axe] = 1

	got := FromRecord(inv.Record())

	assert.Equal(t, inv.Slots, got.Slots)
	assert.True(t, got.HasUpgrade(item.Lantern))
	assert.Equal(t, 1, got.ToolTier(item.Axe))
	assert.True(t, got.Discovered[item.Scrap])
}

func TestFromRecordRepairsLayout(t *testing.T) {
	slots := make([]Slot, 3)
	slots[0] = Slot{Item: item.NewResource(item.Wood, 5)}
	slots[1] = Slot{Item: item.NewMeal(item.GrilledFish)}

	inv := FromRecord(Record{Slots: slots})

	assert.True(t, inv.Slots[0].Empty())
	assert.Equal(t, item.KindMeal, inv.Slots[1].Item.Kind)
}
