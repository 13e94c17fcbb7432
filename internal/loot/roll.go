package loot

import "github.com/ugaemi/islet-server/internal/item"

// Rand is the randomness the loot rolls need. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Treasure chest and armor consolation values.
const (
	ChestBaseCoins   = 10
	ChestContinue    = 0.5
	ConsolationScrap = 3
)

// chestBonuses are added one by one while the continuation roll succeeds.
var chestBonuses = [6]int{5, 10, 15, 25, 40, 60}

// ArmorCollection records which armor pieces a profile already owns.
type ArmorCollection map[item.ArmorPiece]struct{}

func (c ArmorCollection) Has(set item.ArmorSet, slot item.ArmorSlot) bool {
	_, ok := c[item.ArmorPiece{Set: set, Slot: slot}]
	return ok
}

func (c ArmorCollection) Add(set item.ArmorSet, slot item.ArmorSlot) {
	c[item.ArmorPiece{Set: set, Slot: slot}] = struct{}{}
}

// Missing returns the first slot of set, in item.ArmorSlots order, that has
// not been collected.
func (c ArmorCollection) Missing(set item.ArmorSet) (item.ArmorSlot, bool) {
	for _, slot := range item.ArmorSlots {
		if !c.Has(set, slot) {
			return slot, true
		}
	}
	return 0, false
}

// ChestCoins rolls the coin payout of a treasure chest.
func ChestCoins(rng Rand) int {
	coins := ChestBaseCoins
	for _, bonus := range chestBonuses {
		if rng.Float64() >= ChestContinue {
			break
		}
		coins += bonus
	}
	return coins
}

// Resolve turns a picked entry into a concrete item. Armor entries record the
// granted piece in collected.
func Resolve(e Entry, rng Rand, collected ArmorCollection) item.Item {
	switch e.Kind {
	case EntryArmor:
		slot, ok := collected.Missing(e.Set)
		if !ok {
			return item.NewResource(item.Scrap, ConsolationScrap)
		}
		collected.Add(e.Set, slot)
		return item.NewArmor(e.Set, slot)
	case EntryChest:
		return item.NewResource(item.Coin, ChestCoins(rng))
	default:
		return e.Item
	}
}

// Roll draws one item from the table for level.
func Roll(level int, rng Rand, collected ArmorCollection) item.Item {
	t := TableFor(level)
	return Resolve(t.Pick(rng.Float64()*100), rng, collected)
}
