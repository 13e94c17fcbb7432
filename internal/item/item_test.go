package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameType(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Item
		expected bool
	}{
		{"same resource different qty", NewResource(Wood, 3), NewResource(Wood, 60), true},
		{"different resource", NewResource(Wood, 3), NewResource(Stone, 3), false},
		{"different kind", NewResource(Wood, 1), NewIngredient(Bass), false},
		{"same armor piece", NewArmor(CoralSet, Boots), NewArmor(CoralSet, Boots), true},
		{"other armor slot", NewArmor(CoralSet, Boots), NewArmor(CoralSet, Helmet), false},
		{"empty items", Item{}, Item{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SameType(tt.a, tt.b))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Item{}.Count())
	assert.Equal(t, 42, NewResource(Coin, 42).Count())
	assert.Equal(t, 1, NewMeal(GrilledFish).Count())
	assert.True(t, NewResource(Coin, 1).Stackable())
	assert.False(t, NewAccessory(LuckyCharm).Stackable())
}

func TestItemJSONUsesNames(t *testing.T) {
	data, err := json.Marshal(NewArmor(AbyssalSet, Leggings))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"armor"`)
	assert.Contains(t, string(data), `"set":"abyssal"`)
	assert.Contains(t, string(data), `"slot":"leggings"`)

	var back Item
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, NewArmor(AbyssalSet, Leggings), back)
}

func TestUnmarshalUnknownName(t *testing.T) {
	var r Resource
	assert.Error(t, r.UnmarshalText([]byte("unobtainium")))
}

func TestFortune(t *testing.T) {
	assert.Equal(t, 10, AbyssalSet.Fortune())
	assert.Equal(t, 0, ArmorSetNone.Fortune())
	assert.Equal(t, 10, LuckyCharm.Fortune())
	assert.Equal(t, 0, SailorsCompass.Fortune())
}
