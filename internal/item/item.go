// Package item defines the collectible items that move between the world,
// loot tables and the inventory.
package item

import "fmt"

// Kind tags which payload of an Item is meaningful.
type Kind int

const (
	KindNone Kind = iota
	KindResource
	KindIngredient
	KindMeal
	KindArmor
	KindAccessory
)

var kindNames = []string{"none", "resource", "ingredient", "meal", "armor", "accessory"}

func (k Kind) String() string { return enumName(kindNames, int(k)) }

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error { return parseEnum(kindNames, b, (*int)(k)) }

// MaxStack is the largest quantity a single resource slot may hold.
const MaxStack = 99

// Item is a tagged value: Kind selects which of the remaining fields applies.
// The zero Item is "no item".
type Item struct {
	Kind       Kind       `json:"kind"`
	Resource   Resource   `json:"resource,omitempty"`
	Quantity   int        `json:"quantity,omitempty"`
	Ingredient Ingredient `json:"ingredient,omitempty"`
	Meal       Meal       `json:"meal,omitempty"`
	Armor      ArmorPiece `json:"armor,omitempty"`
	Accessory  Accessory  `json:"accessory,omitempty"`
}

// ArmorPiece is one slot of an armor set.
type ArmorPiece struct {
	Set  ArmorSet  `json:"set"`
	Slot ArmorSlot `json:"slot"`
}

func NewResource(r Resource, qty int) Item {
	return Item{Kind: KindResource, Resource: r, Quantity: qty}
}

func NewIngredient(i Ingredient) Item {
	return Item{Kind: KindIngredient, Ingredient: i}
}

func NewMeal(m Meal) Item {
	return Item{Kind: KindMeal, Meal: m}
}

func NewArmor(set ArmorSet, slot ArmorSlot) Item {
	return Item{Kind: KindArmor, Armor: ArmorPiece{Set: set, Slot: slot}}
}

func NewAccessory(a Accessory) Item {
	return Item{Kind: KindAccessory, Accessory: a}
}

func (it Item) IsEmpty() bool { return it.Kind == KindNone }

// Stackable reports whether the item merges into existing stacks.
func (it Item) Stackable() bool { return it.Kind == KindResource }

// SameType reports whether two items are interchangeable, ignoring quantity.
func SameType(a, b Item) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindResource:
		return a.Resource == b.Resource
	case KindIngredient:
		return a.Ingredient == b.Ingredient
	case KindMeal:
		return a.Meal == b.Meal
	case KindArmor:
		return a.Armor == b.Armor
	case KindAccessory:
		return a.Accessory == b.Accessory
	default:
		return true
	}
}

// Count is the number of units the item represents.
func (it Item) Count() int {
	switch it.Kind {
	case KindNone:
		return 0
	case KindResource:
		return it.Quantity
	default:
		return 1
	}
}

func (it Item) String() string {
	switch it.Kind {
	case KindResource:
		return fmt.Sprintf("%s x%d", it.Resource, it.Quantity)
	case KindIngredient:
		return it.Ingredient.String()
	case KindMeal:
		return it.Meal.String()
	case KindArmor:
		return fmt.Sprintf("%s %s", it.Armor.Set, it.Armor.Slot)
	case KindAccessory:
		return it.Accessory.String()
	default:
		return "none"
	}
}

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return "unknown"
	}
	return names[v]
}

func parseEnum(names []string, b []byte, dst *int) error {
	s := string(b)
	for i, n := range names {
		if n == s {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("item: unknown value %q", s)
}
