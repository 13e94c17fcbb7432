package inventory

import "github.com/ugaemi/islet-server/internal/item"

// OutputKind decides which destination check a recipe needs.
type OutputKind int

const (
	OutputResource OutputKind = iota
	OutputCollectible
	OutputMeal
	OutputToolUpgrade
	OutputMajorUpgrade
)

// Material is one ingredient line of a recipe.
type Material struct {
	Item     item.Item `json:"item"`
	Quantity int       `json:"quantity"`
}

// Recipe is a static crafting definition. Trigger is the resource whose
// discovery unlocks it; ResourceNone means always available.
type Recipe struct {
	ID        string        `json:"id"`
	Trigger   item.Resource `json:"trigger"`
	Materials []Material    `json:"materials"`
	Output    OutputKind    `json:"output"`
	Item      item.Item     `json:"item,omitempty"`
	Tool      item.Tool     `json:"tool,omitempty"`
	Tier      int           `json:"tier,omitempty"`
	Upgrade   item.Upgrade  `json:"upgrade,omitempty"`
}

func mat(r item.Resource, n int) Material {
	return Material{Item: item.NewResource(r, 1), Quantity: n}
}

func fishMat(i item.Ingredient, n int) Material {
	return Material{Item: item.NewIngredient(i), Quantity: n}
}

var recipes = []Recipe{
	{
		ID: "pearl", Trigger: item.Seashell, Output: OutputResource,
		Materials: []Material{mat(item.Seashell, 10)},
		Item:      item.NewResource(item.Pearl, 1),
	},
	{
		ID: "lucky_charm", Trigger: item.Pearl, Output: OutputCollectible,
		Materials: []Material{mat(item.Pearl, 3), mat(item.Coin, 20)},
		Item:      item.NewAccessory(item.LuckyCharm),
	},
	{
		ID: "sailors_compass", Trigger: item.Scrap, Output: OutputCollectible,
		Materials: []Material{mat(item.Scrap, 10), mat(item.Wood, 5)},
		Item:      item.NewAccessory(item.SailorsCompass),
	},
	{
		ID: "pearl_necklace", Trigger: item.Pearl, Output: OutputCollectible,
		Materials: []Material{mat(item.Pearl, 5), mat(item.Seashell, 10)},
		Item:      item.NewAccessory(item.PearlNecklace),
	},
	{
		ID: "grilled_fish", Trigger: item.Wood, Output: OutputMeal,
		Materials: []Material{fishMat(item.Sardine, 1), mat(item.Wood, 2)},
		Item:      item.NewMeal(item.GrilledFish),
	},
	{
		ID: "seafood_stew", Trigger: item.Wood, Output: OutputMeal,
		Materials: []Material{fishMat(item.Bass, 1), fishMat(item.Salmon, 1), fishMat(item.Seaweed, 1)},
		Item:      item.NewMeal(item.SeafoodStew),
	},
	{
		ID: "sushi_platter", Trigger: item.Wood, Output: OutputMeal,
		Materials: []Material{fishMat(item.Tuna, 1), fishMat(item.Salmon, 1), fishMat(item.Seaweed, 2)},
		Item:      item.NewMeal(item.SushiPlatter),
	},
	{
		ID: "sword_1", Trigger: item.Gel, Output: OutputToolUpgrade,
		Materials: []Material{mat(item.Stone, 20), mat(item.Gel, 10)},
		Tool:      item.Sword, Tier: 1,
	},
	{
		ID: "sword_2", Trigger: item.Scrap, Output: OutputToolUpgrade,
		Materials: []Material{mat(item.Scrap, 30), mat(item.Gel, 20)},
		Tool:      item.Sword, Tier: 2,
	},
	{
		ID: "axe_1", Trigger: item.Stone, Output: OutputToolUpgrade,
		Materials: []Material{mat(item.Stone, 20), mat(item.Wood, 10)},
		Tool:      item.Axe, Tier: 1,
	},
	{
		ID: "pickaxe_1", Trigger: item.Stone, Output: OutputToolUpgrade,
		Materials: []Material{mat(item.Stone, 25), mat(item.Wood, 10)},
		Tool:      item.Pickaxe, Tier: 1,
	},
	{
		ID: "rod_1", Trigger: item.Fiber, Output: OutputToolUpgrade,
		Materials: []Material{mat(item.Fiber, 15), mat(item.Seashell, 5)},
		Tool:      item.FishingRod, Tier: 1,
	},
	{
		ID: "sailboat", Trigger: item.Wood, Output: OutputMajorUpgrade,
		Materials: []Material{mat(item.Wood, 60), mat(item.Fiber, 20), mat(item.Scrap, 10)},
		Upgrade:   item.Sailboat,
	},
	{
		ID: "lantern", Trigger: item.Scrap, Output: OutputMajorUpgrade,
		Materials: []Material{mat(item.Scrap, 10), mat(item.Gel, 10)},
		Upgrade:   item.Lantern,
	},
	{
		ID: "tornado_tome", Trigger: item.Pearl, Output: OutputMajorUpgrade,
		Materials: []Material{mat(item.Pearl, 5), mat(item.Gel, 30)},
		Upgrade:   item.SpellTornado,
	},
}

// Recipes returns the static recipe list.
func Recipes() []Recipe {
	out := make([]Recipe, len(recipes))
	copy(out, recipes)
	return out
}

// RecipeByID looks up a recipe.
func RecipeByID(id string) (Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}
