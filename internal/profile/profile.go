// Package profile defines the persisted save record of one slot.
package profile

import (
	"time"

	"github.com/ugaemi/islet-server/internal/fishing"
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/inventory"
	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/loot"
)

// SlotCount is the number of save slots.
const SlotCount = 3

// Defaults for a fresh profile
const (
	DefaultMaxHealth  = 5
	DefaultMaxStamina = 100.0
	DefaultMaxMagic   = 50.0
	DefaultDayLength  = 600.0
)

// SaveProfile is a value snapshot of everything a slot persists. Fields added
// after a profile was written are optional pointers or zero values that
// Normalize fills with defaults.
type SaveProfile struct {
	Slot       int        `json:"slot"`
	Empty      bool       `json:"empty"`
	LastPlayed *time.Time `json:"last_played,omitempty"`

	Position   geom.Vec `json:"position"`
	Facing     geom.Vec `json:"facing"`
	Health     int      `json:"health"`
	MaxHealth  int      `json:"max_health,omitempty"`
	Stamina    float64  `json:"stamina"`
	MaxStamina float64  `json:"max_stamina,omitempty"`
	Magic      float64  `json:"magic"`

	Inventory inventory.Record `json:"inventory"`
	Fishing   fishing.State    `json:"fishing"`

	MagicState   *MagicRecord       `json:"magic_state,omitempty"`
	Environment  *EnvironmentRecord `json:"environment,omitempty"`
	Sailing      *SailingRecord     `json:"sailing,omitempty"`
	EquippedTool *item.Tool         `json:"equipped_tool,omitempty"`
	ReturnPoint  *geom.Vec          `json:"return_point,omitempty"`
	Enemies      []EnemyRecord      `json:"enemies,omitempty"`
}

// MagicRecord is the spellcasting state.
type MagicRecord struct {
	Max           float64 `json:"max"`
	SpellCooldown float64 `json:"spell_cooldown,omitempty"`
}

// EnvironmentRecord is the day/night clock and weather.
type EnvironmentRecord struct {
	Day          int     `json:"day"`
	TimeOfDay    float64 `json:"time_of_day"` // 0..1, 0 is dawn
	Weather      string  `json:"weather"`
	WeatherTimer float64 `json:"weather_timer"`
	WindAngle    float64 `json:"wind_angle"`
}

// SailingRecord is the boat.
type SailingRecord struct {
	Position geom.Vec `json:"position"`
	Boarded  bool     `json:"boarded"`
}

// EnemyRecord is one slime keyed by its stable id.
type EnemyRecord struct {
	ID       int      `json:"id"`
	Position geom.Vec `json:"position"`
	Health   int      `json:"health"`
	Alive    bool     `json:"alive"`
}

// Default returns a fresh profile for slot.
func Default(slot int) SaveProfile {
	tool := item.Sword
	p := SaveProfile{
		Slot:         slot,
		Empty:        true,
		Facing:       geom.V(0, 1),
		Health:       DefaultMaxHealth,
		MaxHealth:    DefaultMaxHealth,
		Stamina:      DefaultMaxStamina,
		MaxStamina:   DefaultMaxStamina,
		Magic:        DefaultMaxMagic,
		Inventory:    inventory.New().Record(),
		Fishing:      fishing.State{Level: 1},
		MagicState:   &MagicRecord{Max: DefaultMaxMagic},
		Environment:  &EnvironmentRecord{Day: 1, Weather: "clear"},
		EquippedTool: &tool,
	}
	return p
}

// Normalize fills absent or out-of-range fields with defaults so older saves
// load without a versioned migration.
func (p *SaveProfile) Normalize() {
	if p.MaxHealth <= 0 {
		p.MaxHealth = DefaultMaxHealth
	}
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	if p.Health < 0 {
		p.Health = 0
	}
	if p.MaxStamina <= 0 {
		p.MaxStamina = DefaultMaxStamina
	}
	p.Stamina = geom.Clamp(p.Stamina, 0, p.MaxStamina)
	if p.Facing.IsZero() {
		p.Facing = geom.V(0, 1)
	}
	if len(p.Inventory.Slots) != inventory.SlotCount {
		slots := make([]inventory.Slot, inventory.SlotCount)
		copy(slots, p.Inventory.Slots)
		p.Inventory.Slots = slots
	}
	if p.Fishing.TotalCatches < 0 {
		p.Fishing.TotalCatches = 0
	}
	p.Fishing.Level = loot.LevelForCatches(p.Fishing.TotalCatches)
	if p.MagicState == nil {
		p.MagicState = &MagicRecord{Max: DefaultMaxMagic}
	}
	if p.MagicState.Max <= 0 {
		p.MagicState.Max = DefaultMaxMagic
	}
	p.Magic = geom.Clamp(p.Magic, 0, p.MagicState.Max)
	if p.Environment == nil {
		p.Environment = &EnvironmentRecord{Day: 1, Weather: "clear"}
	}
	if p.Environment.Day < 1 {
		p.Environment.Day = 1
	}
	if p.EquippedTool == nil {
		tool := item.Sword
		p.EquippedTool = &tool
	}
}

// Summary is the slot listing entry shown before a profile is opened.
type Summary struct {
	Slot       int        `json:"slot"`
	Empty      bool       `json:"empty"`
	LastPlayed *time.Time `json:"last_played,omitempty"`
	Day        int        `json:"day"`
	Health     int        `json:"health"`
	Level      int        `json:"fishing_level"`
}

// Summarize returns the listing entry for p.
func (p SaveProfile) Summarize() Summary {
	s := Summary{
		Slot:       p.Slot,
		Empty:      p.Empty,
		LastPlayed: p.LastPlayed,
		Health:     p.Health,
		Level:      p.Fishing.Level,
	}
	if p.Environment != nil {
		s.Day = p.Environment.Day
	}
	return s
}

// ValidSlot reports whether slot addresses one of the fixed save slots.
func ValidSlot(slot int) bool {
	return slot >= 0 && slot < SlotCount
}
