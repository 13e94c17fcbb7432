// Package loot holds the fishing loot tables and the fishing level curve.
// Everything here is a pure lookup; randomness is passed in by the caller.
package loot

import "github.com/ugaemi/islet-server/internal/item"

// EntryKind selects how a table entry turns into an item.
type EntryKind int

const (
	EntryItem EntryKind = iota
	EntryArmor
	EntryChest
)

// Entry is one row of a level table. Weight is a percentage.
type Entry struct {
	Kind   EntryKind
	Item   item.Item
	Set    item.ArmorSet
	Weight float64
}

// Table is the weighted drop list for one fishing level.
type Table struct {
	Level    int
	Entries  []Entry
	Fallback item.Item
}

const (
	MinLevel = 1
	MaxLevel = 10
)

func fish(i item.Ingredient, w float64) Entry {
	return Entry{Kind: EntryItem, Item: item.NewIngredient(i), Weight: w}
}

func res(r item.Resource, qty int, w float64) Entry {
	return Entry{Kind: EntryItem, Item: item.NewResource(r, qty), Weight: w}
}

func armor(s item.ArmorSet, w float64) Entry {
	return Entry{Kind: EntryArmor, Set: s, Weight: w}
}

func chest(w float64) Entry {
	return Entry{Kind: EntryChest, Weight: w}
}

var baseline = item.NewIngredient(item.Sardine)

// Level 8 intentionally sums to 99.96; draws past the end land on the fallback.
var tables = [MaxLevel]Table{
	{Level: 1, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 45), fish(item.Seaweed, 20), fish(item.OldBoot, 15),
		fish(item.Bass, 15), res(item.Seashell, 1, 5),
	}},
	{Level: 2, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 40), fish(item.Seaweed, 15), fish(item.OldBoot, 12),
		fish(item.Bass, 20), res(item.Seashell, 1, 8), chest(5),
	}},
	{Level: 3, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 32), fish(item.Seaweed, 12), fish(item.OldBoot, 10),
		fish(item.Bass, 24), fish(item.Salmon, 10), res(item.Seashell, 2, 7), chest(5),
	}},
	{Level: 4, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 26), fish(item.Seaweed, 10), fish(item.OldBoot, 8),
		fish(item.Bass, 24), fish(item.Salmon, 16), res(item.Seashell, 2, 7), chest(6),
		armor(item.CoralSet, 3),
	}},
	{Level: 5, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 20), fish(item.Seaweed, 8), fish(item.OldBoot, 6),
		fish(item.Bass, 22), fish(item.Salmon, 20), fish(item.Tuna, 10),
		res(item.Seashell, 3, 6), chest(5), armor(item.CoralSet, 3),
	}},
	{Level: 6, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 15), fish(item.Seaweed, 6), fish(item.OldBoot, 5),
		fish(item.Bass, 20), fish(item.Salmon, 22), fish(item.Tuna, 15), fish(item.Eel, 5),
		res(item.Seashell, 3, 4), chest(5), armor(item.CoralSet, 3),
	}},
	{Level: 7, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 10), fish(item.Seaweed, 5), fish(item.OldBoot, 4),
		fish(item.Bass, 18), fish(item.Salmon, 22), fish(item.Tuna, 18), fish(item.Eel, 9),
		res(item.Pearl, 1, 3), chest(6), armor(item.CoralSet, 3), armor(item.AbyssalSet, 2),
	}},
	{Level: 8, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 8), fish(item.Seaweed, 4), fish(item.OldBoot, 3),
		fish(item.Bass, 15), fish(item.Salmon, 22), fish(item.Tuna, 20), fish(item.Eel, 12),
		res(item.Pearl, 1, 4), chest(6), armor(item.CoralSet, 3), armor(item.AbyssalSet, 2.95),
		{Kind: EntryItem, Item: item.NewAccessory(item.LuckyCharm), Weight: 0.01},
	}},
	{Level: 9, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 5), fish(item.Seaweed, 3), fish(item.OldBoot, 2),
		fish(item.Bass, 12), fish(item.Salmon, 20), fish(item.Tuna, 22), fish(item.Eel, 14),
		fish(item.Swordfish, 6), res(item.Pearl, 1, 5), chest(6),
		armor(item.CoralSet, 2), armor(item.AbyssalSet, 3),
	}},
	{Level: 10, Fallback: baseline, Entries: []Entry{
		fish(item.Sardine, 3), fish(item.Seaweed, 2), fish(item.OldBoot, 2),
		fish(item.Bass, 10), fish(item.Salmon, 18), fish(item.Tuna, 22), fish(item.Eel, 15),
		fish(item.Swordfish, 10), res(item.Pearl, 2, 6), chest(7),
		armor(item.CoralSet, 1), armor(item.AbyssalSet, 4),
	}},
}

// ClampLevel limits a level to 1..10.
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// TableFor returns the table for a fishing level, clamped to 1..10.
func TableFor(level int) Table {
	return tables[ClampLevel(level)-1]
}

// Total returns the sum of the table's weights.
func (t Table) Total() float64 {
	total := 0.0
	for _, e := range t.Entries {
		total += e.Weight
	}
	return total
}

// Pick walks the table accumulating weights and returns the first entry whose
// running sum exceeds draw. A draw past the end returns the fallback item.
func (t Table) Pick(draw float64) Entry {
	sum := 0.0
	for _, e := range t.Entries {
		sum += e.Weight
		if draw < sum {
			return e
		}
	}
	return Entry{Kind: EntryItem, Item: t.Fallback}
}

// catchThresholds[i] is the cumulative catch count needed for level i+1.
var catchThresholds = [MaxLevel]int{0, 10, 25, 50, 100, 175, 275, 400, 600, 850}

// LevelForCatches maps a cumulative catch count to a fishing level.
func LevelForCatches(catches int) int {
	level := MinLevel
	for i, need := range catchThresholds {
		if catches >= need {
			level = i + 1
		}
	}
	return level
}

// CatchesForLevel returns the catch count at which level begins.
func CatchesForLevel(level int) int {
	return catchThresholds[ClampLevel(level)-1]
}
