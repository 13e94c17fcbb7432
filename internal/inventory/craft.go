package inventory

import "github.com/ugaemi/islet-server/internal/item"

// CraftResult explains the outcome of a craft attempt.
type CraftResult int

const (
	Crafted CraftResult = iota
	CraftUnknownRecipe
	CraftLocked
	CraftMissingMaterials
	CraftNoRoom
	CraftTierReached
	CraftAlreadyOwned
)

var craftResultNames = [...]string{
	"crafted", "unknown_recipe", "locked", "missing_materials", "no_room", "tier_reached", "already_owned",
}

func (r CraftResult) String() string {
	if int(r) < 0 || int(r) >= len(craftResultNames) {
		return "unknown"
	}
	return craftResultNames[r]
}

// Unlocked reports whether the recipe's trigger resource was ever received.
func (inv *Inventory) Unlocked(r Recipe) bool {
	return r.Trigger == item.ResourceNone || inv.Discovered[r.Trigger]
}

// CanCraft runs every check Craft does without mutating anything. Ownership
// is checked before materials so a finished upgrade reports why.
func (inv *Inventory) CanCraft(r Recipe) CraftResult {
	if !inv.Unlocked(r) {
		return CraftLocked
	}
	switch r.Output {
	case OutputToolUpgrade:
		if inv.ToolTier(r.Tool) >= r.Tier {
			return CraftTierReached
		}
	case OutputMajorUpgrade:
		if inv.HasUpgrade(r.Upgrade) {
			return CraftAlreadyOwned
		}
	}
	for _, m := range r.Materials {
		if inv.Count(m.Item) < m.Quantity {
			return CraftMissingMaterials
		}
	}
	if !inv.outputFits(r) {
		return CraftNoRoom
	}
	return Crafted
}

// outputFits places the output on a copy with the materials already
// consumed, so slots freed by crafting count as room.
func (inv *Inventory) outputFits(r Recipe) bool {
	switch r.Output {
	case OutputResource, OutputCollectible, OutputMeal:
	default:
		return true
	}
	trial := inv.Clone()
	for _, m := range r.Materials {
		trial.Remove(m.Item, m.Quantity)
	}
	return trial.produce(r)
}

// produce adds the recipe output and reports whether all of it was placed.
func (inv *Inventory) produce(r Recipe) bool {
	switch r.Output {
	case OutputResource:
		return inv.AddResource(r.Item.Resource, r.Item.Quantity) == 0
	case OutputCollectible:
		return inv.placeInEmpty(r.Item, MealSlots, SlotCount)
	case OutputMeal:
		return inv.placeInEmpty(r.Item, 0, MealSlots)
	case OutputToolUpgrade:
		inv.ToolTiers[r.Tool] = r.Tier
	case OutputMajorUpgrade:
		inv.Upgrades[r.Upgrade] = true
	}
	return true
}

// Craft consumes materials and produces the recipe output. Materials are only
// deducted once every check has passed.
func (inv *Inventory) Craft(id string) CraftResult {
	r, ok := RecipeByID(id)
	if !ok {
		return CraftUnknownRecipe
	}
	if res := inv.CanCraft(r); res != Crafted {
		return res
	}
	for _, m := range r.Materials {
		inv.Remove(m.Item, m.Quantity)
	}
	inv.produce(r)
	return Crafted
}

// EatMeal removes the meal in slot index and returns its effect.
func (inv *Inventory) EatMeal(index int) (item.MealEffect, bool) {
	if index < 0 || index >= MealSlots || inv.Slots[index].Item.Kind != item.KindMeal {
		return item.MealEffect{}, false
	}
	m := inv.Slots[index].Item.Meal
	inv.Slots[index] = Slot{}
	return m.Effect(), true
}
