package game

import "github.com/ugaemi/islet-server/internal/geom"

// Fireball travels in a straight line and detonates on the first slime,
// blocking tile or rock it touches.
type Fireball struct {
	Pos      geom.Vec
	Dir      geom.Vec
	Lifetime float64
}

// Tornado drifts forward and slows every slime it passes over.
type Tornado struct {
	Pos      geom.Vec
	Dir      geom.Vec
	Lifetime float64
}

// Explosion is the visible remainder of a fireball detonation. Its damage is
// applied once when it is created.
type Explosion struct {
	Pos    geom.Vec `json:"pos"`
	Radius float64  `json:"radius"`
	TTL    float64  `json:"ttl"`
}

// DeathEffect marks where a slime died.
type DeathEffect struct {
	Pos geom.Vec `json:"pos"`
	TTL float64  `json:"ttl"`
}

// ParryEffect is the flash shown on a successful parry.
type ParryEffect struct {
	Pos geom.Vec `json:"pos"`
	TTL float64  `json:"ttl"`
}

// Sailboat is the player's boat once the upgrade is owned.
type Sailboat struct {
	Pos geom.Vec
}

// decayDeathEffects lowers every TTL by dt and drops expired entries in place.
func decayDeathEffects(effects []DeathEffect, dt float64) []DeathEffect {
	out := effects[:0]
	for _, e := range effects {
		e.TTL -= dt
		if e.TTL > 0 {
			out = append(out, e)
		}
	}
	return out
}

func decayParryEffects(effects []ParryEffect, dt float64) []ParryEffect {
	out := effects[:0]
	for _, e := range effects {
		e.TTL -= dt
		if e.TTL > 0 {
			out = append(out, e)
		}
	}
	return out
}

func decayExplosions(explosions []Explosion, dt float64) []Explosion {
	out := explosions[:0]
	for _, e := range explosions {
		e.TTL -= dt
		if e.TTL > 0 {
			out = append(out, e)
		}
	}
	return out
}
