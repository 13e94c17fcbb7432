// Package game is the authoritative simulation: one Game owns the player,
// the slimes, spells and the environment of a single save slot and advances
// them in a fixed order once per tick.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/ugaemi/islet-server/internal/fishing"
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/inventory"
	"github.com/ugaemi/islet-server/internal/profile"
	"github.com/ugaemi/islet-server/internal/world"
)

// Options are the collaborators a Game is built with.
type Options struct {
	Tuning *Tuning
	Seed   int64
	Now    func() time.Time
}

// Game is not safe for concurrent use. The session runtime is its single
// writer and serializes every call.
type Game struct {
	tuning Tuning
	world  *world.World
	rng    *rand.Rand
	now    func() time.Time
	slot   int
	tick   uint64

	player       Player
	inv          *inventory.Inventory
	fishingState fishing.State
	fishing      *fishing.Session

	slimes       []Slime
	fireballs    []Fireball
	tornadoes    []Tornado
	explosions   []Explosion
	deathEffects []DeathEffect
	parryEffects []ParryEffect
	boat         *Sailboat
	env          Environment

	input   geom.Vec
	swingID uint64

	inventoryOpen bool
	mapOpen       bool

	sched  scheduler
	events []Event
}

// New builds a game for world w seeded from save profile p.
func New(w *world.World, p profile.SaveProfile, opts Options) *Game {
	t := DefaultTuning()
	if opts.Tuning != nil {
		t = *opts.Tuning
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	g := &Game{
		tuning: t,
		world:  w,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		now:    now,
	}
	g.load(p)
	return g
}

// SetInput sets the movement vector used by following ticks. Its magnitude
// is clamped to 1.
func (g *Game) SetInput(move geom.Vec) {
	g.input = move.ClampLen(1)
}

// Paused reports whether gameplay is suspended.
func (g *Game) Paused() bool {
	return g.PauseReason() != ""
}

// PauseReason names why gameplay is suspended, or "" when it runs.
func (g *Game) PauseReason() string {
	switch {
	case g.player.Dead:
		return "dead"
	case g.fishing != nil:
		return "fishing"
	case g.inventoryOpen:
		return "inventory"
	case g.mapOpen:
		return "map"
	default:
		return ""
	}
}

// Tick advances the simulation by one fixed step. Subsystems run in a fixed
// order and movement is resolved last, so combat and environment see the
// previous tick's positions.
func (g *Game) Tick() {
	g.tick++
	dt := TickDelta

	g.sched.run(g.tick)
	if g.fishing != nil {
		g.fishing.Tick(dt)
	}
	if g.Paused() {
		return
	}

	g.updateAttack(dt)
	g.updateStamina(dt)
	g.updateMagicRegen(dt)
	g.updateSpells(dt)
	g.updateBlock(dt)
	g.updateCharge(dt)
	g.updateSlimes(dt)
	g.updateContact(dt)
	g.updateSwordHits()
	g.deathEffects = decayDeathEffects(g.deathEffects, dt)
	g.parryEffects = decayParryEffects(g.parryEffects, dt)
	g.updateEnvironment(dt)
	g.updateMovement(dt)
}

// TickCount is the number of ticks simulated so far.
func (g *Game) TickCount() uint64 { return g.tick }

// Slot is the save slot this game belongs to.
func (g *Game) Slot() int { return g.slot }

// Tuning returns the gameplay numbers in use.
func (g *Game) Tuning() Tuning { return g.tuning }

// ready is the common precondition of gameplay actions.
func (g *Game) ready() Result {
	if g.player.Dead {
		return RejectedDead
	}
	if g.Paused() {
		return RejectedPaused
	}
	return OK
}

// ToggleInventory opens or closes the inventory screen, which pauses play.
func (g *Game) ToggleInventory(open bool) Result {
	if g.player.Dead {
		return RejectedDead
	}
	g.inventoryOpen = open
	return OK
}

// ToggleMap opens or closes the map screen, which pauses play.
func (g *Game) ToggleMap(open bool) Result {
	if g.player.Dead {
		return RejectedDead
	}
	g.mapOpen = open
	return OK
}

// Respawn revives a dead player at the island start.
func (g *Game) Respawn() Result {
	p := &g.player
	if !p.Dead {
		return RejectedInvalid
	}
	start := g.world.PlayerStart()
	p.Dead = false
	p.Health = p.MaxHealth
	p.Stamina = p.MaxStamina
	p.Pos = start
	p.ReturnPoint = start
	p.Swimming = false
	p.Sailing = false
	p.Invincible = g.tuning.Player.InvincibilityTime
	g.emitAt(EventPlayerRespawned, start)
	return OK
}

func (g *Game) die() {
	p := &g.player
	p.Health = 0
	p.Dead = true
	p.cancelAttack()
	p.cancelCharge()
	p.cancelDash()
	p.Blocking = false
	p.BlockTime = 0
	p.Sprinting = false
	g.input = geom.Vec{}
	g.emitAt(EventPlayerDied, p.Pos)
	slog.Info("player died", "slot", g.slot, "day", g.env.Day)
}
