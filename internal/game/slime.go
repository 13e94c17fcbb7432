package game

import (
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/world"
)

// AIState is the slime behavior state: Patrol, Chase or Returning.
type AIState interface {
	aiState()
	Name() string
}

// Patrol wanders around the spawn point toward Target.
type Patrol struct {
	Target geom.Vec
}

// Chase moves straight at the player.
type Chase struct{}

// Returning walks back to the spawn point.
type Returning struct{}

func (Patrol) aiState()    {}
func (Chase) aiState()     {}
func (Returning) aiState() {}

func (Patrol) Name() string    { return "patrol" }
func (Chase) Name() string     { return "chase" }
func (Returning) Name() string { return "returning" }

// NextAIState is the transition function of the slime state machine.
// returnDistance is how close to spawn a returning slime must get before it
// resumes patrolling.
func NextAIState(s AIState, toPlayer, toSpawn, chaseRadius, returnDistance float64, spawn geom.Vec) AIState {
	switch s.(type) {
	case Chase:
		if toPlayer > chaseRadius {
			return Returning{}
		}
		return Chase{}
	case Returning:
		if toPlayer <= chaseRadius {
			return Chase{}
		}
		if toSpawn < returnDistance {
			return Patrol{Target: spawn}
		}
		return Returning{}
	default:
		if toPlayer <= chaseRadius {
			return Chase{}
		}
		return s
	}
}

// Slime is an enemy. Slimes live in a fixed array indexed by ID and are never
// removed; a dead slime keeps its slot with Alive set to false.
type Slime struct {
	ID     int
	Pos    geom.Vec
	Spawn  geom.Vec
	Health int
	Alive  bool
	State  AIState

	Pause          float64
	HitFlash       float64
	Slow           float64
	Stun           float64
	AttackCooldown float64

	// LastSwing is the swing id that last damaged this slime.
	LastSwing uint64
}

func newSlime(id int, spawn geom.Vec, health int) Slime {
	return Slime{
		ID:     id,
		Pos:    spawn,
		Spawn:  spawn,
		Health: health,
		Alive:  true,
		State:  Patrol{Target: spawn},
	}
}

// Stunned reports whether the slime is frozen by a parry.
func (s *Slime) Stunned() bool { return s.Stun > 0 }

func (s *Slime) rect() geom.Rect {
	return geom.RectAround(s.Pos, world.SlimeHalf)
}
