package game

import (
	"github.com/ugaemi/islet-server/internal/fishing"
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/inventory"
	"github.com/ugaemi/islet-server/internal/item"
)

// Snapshot is an immutable view of one tick for presentation. It shares no
// memory with the live game.
type Snapshot struct {
	Tick        uint64            `json:"tick"`
	Paused      bool              `json:"paused"`
	PauseReason string            `json:"pause_reason,omitempty"`
	Player      PlayerView        `json:"player"`
	Slimes      []SlimeView       `json:"slimes"`
	Fireballs   []geom.Vec        `json:"fireballs,omitempty"`
	Tornadoes   []geom.Vec        `json:"tornadoes,omitempty"`
	Explosions  []Explosion       `json:"explosions,omitempty"`
	Deaths      []DeathEffect     `json:"deaths,omitempty"`
	Parries     []ParryEffect     `json:"parries,omitempty"`
	Boat        *geom.Vec         `json:"boat,omitempty"`
	Environment EnvironmentView   `json:"environment"`
	Fishing     *FishingView      `json:"fishing,omitempty"`
	Inventory   *inventory.Record `json:"inventory,omitempty"`
}

type PlayerView struct {
	Pos            geom.Vec  `json:"pos"`
	Facing         Facing    `json:"facing"`
	Health         int       `json:"health"`
	MaxHealth      int       `json:"max_health"`
	Stamina        float64   `json:"stamina"`
	MaxStamina     float64   `json:"max_stamina"`
	Magic          float64   `json:"magic"`
	MaxMagic       float64   `json:"max_magic"`
	Tool           item.Tool `json:"tool"`
	Swimming       bool      `json:"swimming,omitempty"`
	Sailing        bool      `json:"sailing,omitempty"`
	Dashing        bool      `json:"dashing,omitempty"`
	Attacking      bool      `json:"attacking,omitempty"`
	AttackCharged  bool      `json:"attack_charged,omitempty"`
	Charging       bool      `json:"charging,omitempty"`
	ChargeProgress float64   `json:"charge_progress,omitempty"`
	Blocking       bool      `json:"blocking,omitempty"`
	Sprinting      bool      `json:"sprinting,omitempty"`
	Invincible     bool      `json:"invincible,omitempty"`
	Dead           bool      `json:"dead,omitempty"`
	Fortune        int       `json:"fortune"`
}

type SlimeView struct {
	ID       int      `json:"id"`
	Pos      geom.Vec `json:"pos"`
	Health   int      `json:"health"`
	State    string   `json:"state"`
	HitFlash bool     `json:"hit_flash,omitempty"`
	Stunned  bool     `json:"stunned,omitempty"`
	Slowed   bool     `json:"slowed,omitempty"`
}

type EnvironmentView struct {
	Day       int      `json:"day"`
	TimeOfDay float64  `json:"time_of_day"`
	Night     bool     `json:"night"`
	Weather   Weather  `json:"weather"`
	Wind      geom.Vec `json:"wind"`
}

type FishingView struct {
	Phase     string          `json:"phase"`
	Indicator float64         `json:"indicator"`
	Green     fishing.Zone    `json:"green"`
	Perfect   fishing.Zone    `json:"perfect"`
	Remaining int             `json:"remaining"`
	Combo     int             `json:"combo"`
	Level     int             `json:"level"`
	Log       []fishing.Catch `json:"log,omitempty"`
}

// Snapshot builds the presentation view of the current state. Dead slimes
// are left out; the inventory is included while its screen or fishing is open.
func (g *Game) Snapshot() Snapshot {
	p := &g.player
	snap := Snapshot{
		Tick:        g.tick,
		Paused:      g.Paused(),
		PauseReason: g.PauseReason(),
		Player: PlayerView{
			Pos:            p.Pos,
			Facing:         p.Facing,
			Health:         p.Health,
			MaxHealth:      p.MaxHealth,
			Stamina:        p.Stamina,
			MaxStamina:     p.MaxStamina,
			Magic:          p.Magic,
			MaxMagic:       p.MaxMagic,
			Tool:           p.Tool,
			Swimming:       p.Swimming,
			Sailing:        p.Sailing,
			Dashing:        p.Dashing,
			Attacking:      p.Attacking,
			AttackCharged:  p.AttackCharged,
			Charging:       p.Charging,
			ChargeProgress: p.ChargeProgress,
			Blocking:       p.Blocking,
			Sprinting:      p.Sprinting,
			Invincible:     p.Invincible > 0,
			Dead:           p.Dead,
			Fortune:        g.inv.Fortune(),
		},
		Environment: EnvironmentView{
			Day:       g.env.Day,
			TimeOfDay: g.env.TimeOfDay,
			Night:     g.env.Night(),
			Weather:   g.env.Weather,
			Wind:      g.env.Wind(g.tuning.Environment),
		},
	}

	snap.Slimes = make([]SlimeView, 0, len(g.slimes))
	for i := range g.slimes {
		s := &g.slimes[i]
		if !s.Alive {
			continue
		}
		snap.Slimes = append(snap.Slimes, SlimeView{
			ID:       s.ID,
			Pos:      s.Pos,
			Health:   s.Health,
			State:    s.State.Name(),
			HitFlash: s.HitFlash > 0,
			Stunned:  s.Stunned(),
			Slowed:   s.Slow > 0,
		})
	}
	for _, f := range g.fireballs {
		snap.Fireballs = append(snap.Fireballs, f.Pos)
	}
	for _, t := range g.tornadoes {
		snap.Tornadoes = append(snap.Tornadoes, t.Pos)
	}
	snap.Explosions = append([]Explosion(nil), g.explosions...)
	snap.Deaths = append([]DeathEffect(nil), g.deathEffects...)
	snap.Parries = append([]ParryEffect(nil), g.parryEffects...)
	if g.boat != nil {
		pos := g.boat.Pos
		snap.Boat = &pos
	}
	if s := g.fishing; s != nil {
		snap.Fishing = &FishingView{
			Phase:     s.Phase(),
			Indicator: s.Indicator(),
			Green:     s.Green(),
			Perfect:   s.PerfectZone(),
			Remaining: s.Remaining(),
			Combo:     s.Combo(),
			Level:     s.LootLevel(),
			Log:       s.Log(),
		}
	}
	if g.inventoryOpen || g.fishing != nil {
		rec := g.inv.Record()
		snap.Inventory = &rec
	}
	return snap
}
