// Package inventory implements the player's fixed slot inventory, equipment
// and crafting.
package inventory

import (
	"sort"
	"time"

	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/loot"
)

// Slot layout
const (
	SlotCount = 30
	MealSlots = 5 // slots [0, MealSlots) hold meals only
)

// Slot is one inventory cell.
type Slot struct {
	Item     item.Item `json:"item"`
	Favorite bool      `json:"favorite,omitempty"`
	Junk     bool      `json:"junk,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}

func (s Slot) Empty() bool { return s.Item.IsEmpty() }

// Equipment is what the player is wearing.
type Equipment struct {
	Armor     [4]item.Item `json:"armor"` // indexed by item.ArmorSlot
	Accessory item.Item    `json:"accessory"`
}

// Inventory is owned by the tick orchestrator; it is not safe for concurrent use.
type Inventory struct {
	Slots      [SlotCount]Slot
	Equipment  Equipment
	ToolTiers  map[item.Tool]int
	Upgrades   map[item.Upgrade]bool
	Discovered map[item.Resource]bool

	now func() time.Time
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		ToolTiers:  make(map[item.Tool]int),
		Upgrades:   make(map[item.Upgrade]bool),
		Discovered: make(map[item.Resource]bool),
		now:        time.Now,
	}
}

// SetClock overrides the clock used for insertion timestamps.
func (inv *Inventory) SetClock(now func() time.Time) {
	inv.now = now
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	out := *inv
	out.ToolTiers = make(map[item.Tool]int, len(inv.ToolTiers))
	for k, v := range inv.ToolTiers {
		out.ToolTiers[k] = v
	}
	out.Upgrades = make(map[item.Upgrade]bool, len(inv.Upgrades))
	for k, v := range inv.Upgrades {
		out.Upgrades[k] = v
	}
	out.Discovered = make(map[item.Resource]bool, len(inv.Discovered))
	for k, v := range inv.Discovered {
		out.Discovered[k] = v
	}
	return &out
}

// Add places an item. Meals go to the meal slots only; resources stack first
// and spill into empty general slots. Returns false if the item (or any part
// of a resource quantity) did not fit.
func (inv *Inventory) Add(it item.Item) bool {
	switch it.Kind {
	case item.KindNone:
		return false
	case item.KindResource:
		return inv.AddResource(it.Resource, it.Quantity) == 0
	case item.KindMeal:
		return inv.placeInEmpty(it, 0, MealSlots)
	default:
		return inv.placeInEmpty(it, MealSlots, SlotCount)
	}
}

// AddResource stacks qty units of r onto existing stacks below item.MaxStack,
// then into empty general slots. It returns the quantity that did not fit.
func (inv *Inventory) AddResource(r item.Resource, qty int) int {
	if qty <= 0 || r == item.ResourceNone {
		return qty
	}
	remaining := qty
	for i := MealSlots; i < SlotCount && remaining > 0; i++ {
		s := &inv.Slots[i]
		if s.Item.Kind != item.KindResource || s.Item.Resource != r || s.Item.Quantity >= item.MaxStack {
			continue
		}
		n := min(item.MaxStack-s.Item.Quantity, remaining)
		s.Item.Quantity += n
		remaining -= n
	}
	for remaining > 0 {
		n := min(remaining, item.MaxStack)
		if !inv.placeInEmpty(item.NewResource(r, n), MealSlots, SlotCount) {
			break
		}
		remaining -= n
	}
	if remaining < qty {
		inv.Discovered[r] = true
	}
	return remaining
}

func (inv *Inventory) placeInEmpty(it item.Item, from, to int) bool {
	idx := inv.firstEmpty(from, to)
	if idx < 0 {
		return false
	}
	inv.Slots[idx] = Slot{Item: it, AddedAt: inv.now()}
	return true
}

func (inv *Inventory) firstEmpty(from, to int) int {
	for i := from; i < to; i++ {
		if inv.Slots[i].Empty() {
			return i
		}
	}
	return -1
}

// HasEmptyGeneralSlot reports whether a non-meal slot is free.
func (inv *Inventory) HasEmptyGeneralSlot() bool {
	return inv.firstEmpty(MealSlots, SlotCount) >= 0
}

// HasEmptyMealSlot reports whether a meal slot is free.
func (inv *Inventory) HasEmptyMealSlot() bool {
	return inv.firstEmpty(0, MealSlots) >= 0
}

// Count returns how many units matching like are held across all slots.
func (inv *Inventory) Count(like item.Item) int {
	total := 0
	for _, s := range inv.Slots {
		if !s.Empty() && item.SameType(s.Item, like) {
			total += s.Item.Count()
		}
	}
	return total
}

// Remove takes qty units matching like, front to back. Nothing is removed
// unless the full quantity is available.
func (inv *Inventory) Remove(like item.Item, qty int) bool {
	if qty <= 0 {
		return true
	}
	if inv.Count(like) < qty {
		return false
	}
	for i := range inv.Slots {
		if qty == 0 {
			break
		}
		s := &inv.Slots[i]
		if s.Empty() || !item.SameType(s.Item, like) {
			continue
		}
		if s.Item.Kind == item.KindResource {
			n := min(s.Item.Quantity, qty)
			s.Item.Quantity -= n
			qty -= n
			if s.Item.Quantity == 0 {
				*s = Slot{}
			}
			continue
		}
		*s = Slot{}
		qty--
	}
	return true
}

// Take empties a slot and returns what it held.
func (inv *Inventory) Take(index int) (item.Item, bool) {
	if index < 0 || index >= SlotCount || inv.Slots[index].Empty() {
		return item.Item{}, false
	}
	it := inv.Slots[index].Item
	inv.Slots[index] = Slot{}
	return it, true
}

// SetFavorite flags a slot as favorite; favorites sort first.
func (inv *Inventory) SetFavorite(index int, on bool) bool {
	if index < 0 || index >= SlotCount || inv.Slots[index].Empty() {
		return false
	}
	inv.Slots[index].Favorite = on
	return true
}

// SetJunk flags a slot for bulk discard.
func (inv *Inventory) SetJunk(index int, on bool) bool {
	if index < 0 || index >= SlotCount || inv.Slots[index].Empty() {
		return false
	}
	inv.Slots[index].Junk = on
	return true
}

// DiscardJunk empties every junk-flagged slot that is not a favorite and
// returns how many were cleared.
func (inv *Inventory) DiscardJunk() int {
	n := 0
	for i := range inv.Slots {
		if inv.Slots[i].Junk && !inv.Slots[i].Favorite && !inv.Slots[i].Empty() {
			inv.Slots[i] = Slot{}
			n++
		}
	}
	return n
}

// SortMode orders the general slots.
type SortMode int

const (
	SortRecent SortMode = iota
	SortKind
)

// Sort reorders the general slots. Favorites come first, empty slots last.
// Meal slots are not touched.
func (inv *Inventory) Sort(mode SortMode) {
	general := inv.Slots[MealSlots:]
	sort.SliceStable(general, func(i, j int) bool {
		a, b := general[i], general[j]
		if a.Empty() != b.Empty() {
			return !a.Empty()
		}
		if a.Favorite != b.Favorite {
			return a.Favorite
		}
		switch mode {
		case SortKind:
			if a.Item.Kind != b.Item.Kind {
				return a.Item.Kind < b.Item.Kind
			}
			if ka, kb := subtype(a.Item), subtype(b.Item); ka != kb {
				return ka < kb
			}
			return a.Item.Count() > b.Item.Count()
		default:
			return a.AddedAt.After(b.AddedAt)
		}
	})
}

func subtype(it item.Item) int {
	switch it.Kind {
	case item.KindResource:
		return int(it.Resource)
	case item.KindIngredient:
		return int(it.Ingredient)
	case item.KindMeal:
		return int(it.Meal)
	case item.KindArmor:
		return int(it.Armor.Set)*len(item.ArmorSlots) + int(it.Armor.Slot)
	case item.KindAccessory:
		return int(it.Accessory)
	default:
		return 0
	}
}

// EquipArmor moves the armor piece in slot index onto the body. Whatever was
// worn in that armor slot goes back into the inventory slot.
func (inv *Inventory) EquipArmor(index int) bool {
	if index < 0 || index >= SlotCount || inv.Slots[index].Item.Kind != item.KindArmor {
		return false
	}
	piece := inv.Slots[index].Item
	prev := inv.Equipment.Armor[piece.Armor.Slot]
	inv.Equipment.Armor[piece.Armor.Slot] = piece
	if prev.IsEmpty() {
		inv.Slots[index] = Slot{}
	} else {
		inv.Slots[index] = Slot{Item: prev, AddedAt: inv.now()}
	}
	return true
}

// EquipAccessory moves the accessory in slot index into the accessory slot.
func (inv *Inventory) EquipAccessory(index int) bool {
	if index < 0 || index >= SlotCount || inv.Slots[index].Item.Kind != item.KindAccessory {
		return false
	}
	acc := inv.Slots[index].Item
	prev := inv.Equipment.Accessory
	inv.Equipment.Accessory = acc
	if prev.IsEmpty() {
		inv.Slots[index] = Slot{}
	} else {
		inv.Slots[index] = Slot{Item: prev, AddedAt: inv.now()}
	}
	return true
}

// UnequipArmor returns a worn piece to the first empty general slot.
func (inv *Inventory) UnequipArmor(slot item.ArmorSlot) bool {
	worn := inv.Equipment.Armor[slot]
	if worn.IsEmpty() || !inv.placeInEmpty(worn, MealSlots, SlotCount) {
		return false
	}
	inv.Equipment.Armor[slot] = item.Item{}
	return true
}

// CollectedArmor scans unequipped and equipped armor so loot never grants a
// piece the profile already has.
func (inv *Inventory) CollectedArmor() loot.ArmorCollection {
	c := loot.ArmorCollection{}
	for _, s := range inv.Slots {
		if s.Item.Kind == item.KindArmor {
			c.Add(s.Item.Armor.Set, s.Item.Armor.Slot)
		}
	}
	for _, worn := range inv.Equipment.Armor {
		if worn.Kind == item.KindArmor {
			c.Add(worn.Armor.Set, worn.Armor.Slot)
		}
	}
	return c
}

// Fortune is the fishing fortune granted by equipment and the rod tier.
func (inv *Inventory) Fortune() int {
	f := inv.ToolTiers[item.FishingRod] * 5
	for _, worn := range inv.Equipment.Armor {
		if worn.Kind == item.KindArmor {
			f += worn.Armor.Set.Fortune()
		}
	}
	if inv.Equipment.Accessory.Kind == item.KindAccessory {
		f += inv.Equipment.Accessory.Accessory.Fortune()
	}
	return f
}

// ToolTier returns the upgrade tier of a tool (0 when never upgraded).
func (inv *Inventory) ToolTier(t item.Tool) int {
	return inv.ToolTiers[t]
}

// HasUpgrade reports whether a major upgrade is owned.
func (inv *Inventory) HasUpgrade(u item.Upgrade) bool {
	return inv.Upgrades[u]
}
