package game

import (
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/item"
)

// Player is the controlled character. It is owned by Game and only mutated
// inside Tick or an action method.
type Player struct {
	Pos    geom.Vec
	Facing Facing

	Health     int
	MaxHealth  int
	Stamina    float64
	MaxStamina float64
	Magic      float64
	MaxMagic   float64

	Swimming  bool
	Sailing   bool
	Dashing   bool
	Attacking bool
	Charging  bool
	Blocking  bool
	Sprinting bool
	Dead      bool

	Invincible     float64 // remaining seconds
	AttackTime     float64 // remaining seconds of the current swing
	AttackCharged  bool
	AttackDamage   int
	BlockTime      float64 // seconds since the block started
	BlockCooldown  float64
	ChargeProgress float64 // 0..1
	DashTime       float64
	DashDir        geom.Vec
	SpellCooldown  float64

	Tool item.Tool

	// ReturnPoint is the last position on land, used after drowning and
	// when a swim ends badly.
	ReturnPoint geom.Vec
}

// canBlock: on foot, idle hands, cooldown elapsed.
func (p *Player) canBlock() bool {
	return !p.Swimming && !p.Sailing && !p.Attacking && !p.Charging && !p.Blocking && p.BlockCooldown <= 0
}

// canCharge: sword in hand, on foot, not already busy.
func (p *Player) canCharge() bool {
	return p.Tool == item.Sword && !p.Swimming && !p.Sailing && !p.Blocking && !p.Attacking && !p.Charging
}

// cancelCharge drops any charge progress without producing a swing.
func (p *Player) cancelCharge() {
	p.Charging = false
	p.ChargeProgress = 0
}

// endBlock stops blocking and starts the block cooldown.
func (p *Player) endBlock(cooldown float64) {
	if !p.Blocking {
		return
	}
	p.Blocking = false
	p.BlockTime = 0
	p.BlockCooldown = cooldown
}

func (p *Player) cancelAttack() {
	p.Attacking = false
	p.AttackTime = 0
	p.AttackCharged = false
}

func (p *Player) cancelDash() {
	p.Dashing = false
	p.DashTime = 0
}
