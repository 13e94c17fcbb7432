package inventory

import (
	"sort"

	"github.com/ugaemi/islet-server/internal/item"
)

// Record is the persisted form of an inventory.
type Record struct {
	Slots      []Slot            `json:"slots"`
	Equipment  Equipment         `json:"equipment"`
	ToolTiers  map[item.Tool]int `json:"tool_tiers,omitempty"`
	Upgrades   []item.Upgrade    `json:"upgrades,omitempty"`
	Discovered []item.Resource   `json:"discovered,omitempty"`
}

// Record captures the inventory as a value detached from live state.
func (inv *Inventory) Record() Record {
	r := Record{
		Slots:     make([]Slot, SlotCount),
		Equipment: inv.Equipment,
		ToolTiers: make(map[item.Tool]int, len(inv.ToolTiers)),
	}
	copy(r.Slots, inv.Slots[:])
	for t, tier := range inv.ToolTiers {
		if tier > 0 {
			r.ToolTiers[t] = tier
		}
	}
	for u, owned := range inv.Upgrades {
		if owned {
			r.Upgrades = append(r.Upgrades, u)
		}
	}
	sort.Slice(r.Upgrades, func(i, j int) bool { return r.Upgrades[i] < r.Upgrades[j] })
	for res, seen := range inv.Discovered {
		if seen {
			r.Discovered = append(r.Discovered, res)
		}
	}
	sort.Slice(r.Discovered, func(i, j int) bool { return r.Discovered[i] < r.Discovered[j] })
	return r
}

// FromRecord rebuilds an inventory. Short or long slot lists are tolerated,
// and meals saved outside the meal slots are dropped.
func FromRecord(r Record) *Inventory {
	inv := New()
	for i := 0; i < len(r.Slots) && i < SlotCount; i++ {
		s := r.Slots[i]
		if s.Item.Kind == item.KindMeal && i >= MealSlots {
			continue
		}
		if s.Item.Kind != item.KindMeal && !s.Item.IsEmpty() && i < MealSlots {
			continue
		}
		if s.Item.Kind == item.KindResource {
			s.Item.Quantity = min(s.Item.Quantity, item.MaxStack)
			if s.Item.Quantity <= 0 {
				continue
			}
		}
		inv.Slots[i] = s
	}
	inv.Equipment = r.Equipment
	for t, tier := range r.ToolTiers {
		inv.ToolTiers[t] = tier
	}
	for _, u := range r.Upgrades {
		inv.Upgrades[u] = true
	}
	for _, res := range r.Discovered {
		inv.Discovered[res] = true
	}
	return inv
}
