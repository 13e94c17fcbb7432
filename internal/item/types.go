package item

// Resource is a stackable raw material.
type Resource int

const (
	ResourceNone Resource = iota
	Wood
	Stone
	Fiber
	Gel
	Scrap
	Coin
	Seashell
	Pearl
)

var resourceNames = []string{"none", "wood", "stone", "fiber", "gel", "scrap", "coin", "seashell", "pearl"}

func (r Resource) String() string { return enumName(resourceNames, int(r)) }

func (r Resource) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Resource) UnmarshalText(b []byte) error { return parseEnum(resourceNames, b, (*int)(r)) }

// Ingredient is a single, non-stacking food item.
type Ingredient int

const (
	IngredientNone Ingredient = iota
	Sardine
	Bass
	Salmon
	Tuna
	Eel
	Swordfish
	Seaweed
	OldBoot
)

var ingredientNames = []string{"none", "sardine", "bass", "salmon", "tuna", "eel", "swordfish", "seaweed", "old_boot"}

func (i Ingredient) String() string { return enumName(ingredientNames, int(i)) }

func (i Ingredient) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Ingredient) UnmarshalText(b []byte) error {
	return parseEnum(ingredientNames, b, (*int)(i))
}

// Meal is a cooked item that lives in the reserved meal slots.
type Meal int

const (
	MealNone Meal = iota
	GrilledFish
	SeafoodStew
	SushiPlatter
)

var mealNames = []string{"none", "grilled_fish", "seafood_stew", "sushi_platter"}

func (m Meal) String() string { return enumName(mealNames, int(m)) }

func (m Meal) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Meal) UnmarshalText(b []byte) error { return parseEnum(mealNames, b, (*int)(m)) }

// MealEffect is what eating a meal restores.
type MealEffect struct {
	Hearts  int
	Stamina float64
	Magic   float64
}

var mealEffects = map[Meal]MealEffect{
	GrilledFish:  {Hearts: 1, Stamina: 20},
	SeafoodStew:  {Hearts: 2, Stamina: 40, Magic: 10},
	SushiPlatter: {Hearts: 3, Stamina: 60, Magic: 25},
}

func (m Meal) Effect() MealEffect { return mealEffects[m] }

// ArmorSet groups four armor slots.
type ArmorSet int

const (
	ArmorSetNone ArmorSet = iota
	CoralSet
	AbyssalSet
)

var armorSetNames = []string{"none", "coral", "abyssal"}

func (s ArmorSet) String() string { return enumName(armorSetNames, int(s)) }

func (s ArmorSet) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *ArmorSet) UnmarshalText(b []byte) error { return parseEnum(armorSetNames, b, (*int)(s)) }

// Fortune is the fishing fortune each piece of the set grants while equipped.
func (s ArmorSet) Fortune() int {
	switch s {
	case CoralSet:
		return 5
	case AbyssalSet:
		return 10
	default:
		return 0
	}
}

// ArmorSlot is the body position an armor piece occupies.
type ArmorSlot int

const (
	Helmet ArmorSlot = iota
	Chestplate
	Leggings
	Boots
)

// ArmorSlots lists every slot in collection order.
var ArmorSlots = []ArmorSlot{Helmet, Chestplate, Leggings, Boots}

var armorSlotNames = []string{"helmet", "chestplate", "leggings", "boots"}

func (s ArmorSlot) String() string { return enumName(armorSlotNames, int(s)) }

func (s ArmorSlot) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *ArmorSlot) UnmarshalText(b []byte) error {
	return parseEnum(armorSlotNames, b, (*int)(s))
}

// Accessory is a non-stacking collectible worn in the accessory slot.
type Accessory int

const (
	AccessoryNone Accessory = iota
	LuckyCharm
	SailorsCompass
	PearlNecklace
)

var accessoryNames = []string{"none", "lucky_charm", "sailors_compass", "pearl_necklace"}

func (a Accessory) String() string { return enumName(accessoryNames, int(a)) }

func (a Accessory) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Accessory) UnmarshalText(b []byte) error {
	return parseEnum(accessoryNames, b, (*int)(a))
}

func (a Accessory) Fortune() int {
	switch a {
	case LuckyCharm:
		return 10
	case PearlNecklace:
		return 20
	default:
		return 0
	}
}

// Tool is what the player holds in hand.
type Tool int

const (
	Sword Tool = iota
	Axe
	Pickaxe
	FishingRod
)

// Tools lists every tool.
var Tools = []Tool{Sword, Axe, Pickaxe, FishingRod}

var toolNames = []string{"sword", "axe", "pickaxe", "fishing_rod"}

func (t Tool) String() string { return enumName(toolNames, int(t)) }

func (t Tool) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Tool) UnmarshalText(b []byte) error { return parseEnum(toolNames, b, (*int)(t)) }

// Upgrade is a one-time major unlock.
type Upgrade int

const (
	UpgradeNone Upgrade = iota
	Sailboat
	Lantern
	SpellTornado
)

var upgradeNames = []string{"none", "sailboat", "lantern", "spell_tornado"}

func (u Upgrade) String() string { return enumName(upgradeNames, int(u)) }

func (u Upgrade) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Upgrade) UnmarshalText(b []byte) error { return parseEnum(upgradeNames, b, (*int)(u)) }
