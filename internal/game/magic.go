package game

import (
	"math"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/world"
)

// Spell slots
const (
	SpellFireball = 0
	SpellTornado  = 1
)

// CastSpell casts the spell in slot. The tornado needs its upgrade.
func (g *Game) CastSpell(slot int) Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	m := g.tuning.Magic
	var cost float64
	switch slot {
	case SpellFireball:
		cost = m.FireballCost
	case SpellTornado:
		if !g.inv.HasUpgrade(item.SpellTornado) {
			return RejectedLocked
		}
		cost = m.TornadoCost
	default:
		return RejectedInvalid
	}
	switch {
	case p.Swimming:
		return RejectedInWater
	case p.Attacking, p.Charging, p.Blocking:
		return RejectedBusy
	case p.SpellCooldown > 0:
		return RejectedCooldown
	case p.Magic < cost:
		return RejectedNoMagic
	}

	p.Magic -= cost
	p.SpellCooldown = m.SpellCooldown
	dir := p.Facing.Vec()
	if slot == SpellFireball {
		g.fireballs = append(g.fireballs, Fireball{Pos: p.Pos, Dir: dir, Lifetime: m.FireballLifetime})
		g.emit(Event{Type: EventSpellCast, Detail: "fireball"})
	} else {
		g.tornadoes = append(g.tornadoes, Tornado{Pos: p.Pos.Add(dir.Scale(TornadoRadius / 2)), Dir: dir, Lifetime: m.TornadoDuration})
		g.emit(Event{Type: EventSpellCast, Detail: "tornado"})
	}
	return OK
}

func (g *Game) updateMagicRegen(dt float64) {
	p := &g.player
	p.Magic = math.Min(p.MaxMagic, p.Magic+g.tuning.Magic.Regen*dt)
	if p.SpellCooldown > 0 {
		p.SpellCooldown -= dt
	}
}

// updateSpells advances fireballs, tornadoes and explosions.
func (g *Game) updateSpells(dt float64) {
	m := g.tuning.Magic

	kept := g.fireballs[:0]
	for _, f := range g.fireballs {
		f.Pos = f.Pos.Add(f.Dir.Scale(m.FireballSpeed * dt))
		f.Lifetime -= dt
		if g.fireballHits(f.Pos) {
			g.explode(f.Pos)
			continue
		}
		if f.Lifetime > 0 {
			kept = append(kept, f)
		}
	}
	g.fireballs = kept

	tornadoes := g.tornadoes[:0]
	half := geom.V(FireballRadius, FireballRadius)
	for _, t := range g.tornadoes {
		next := t.Pos.Add(t.Dir.Scale(m.TornadoSpeed * dt))
		if !g.world.Blocked(next, half, world.Projectile) {
			t.Pos = next
		}
		t.Lifetime -= dt
		for i := range g.slimes {
			s := &g.slimes[i]
			if s.Alive && geom.Distance(s.Pos, t.Pos) <= TornadoRadius {
				s.Slow = m.SlowDuration
			}
		}
		if t.Lifetime > 0 {
			tornadoes = append(tornadoes, t)
		}
	}
	g.tornadoes = tornadoes

	g.explosions = decayExplosions(g.explosions, dt)
}

// fireballHits reports whether a fireball at pos touches a living slime, a
// blocking tile or a rock.
func (g *Game) fireballHits(pos geom.Vec) bool {
	for i := range g.slimes {
		s := &g.slimes[i]
		if s.Alive && geom.CircleRectOverlap(pos, FireballRadius, s.rect()) {
			return true
		}
	}
	return g.world.Blocked(pos, geom.V(FireballRadius, FireballRadius), world.Projectile)
}

// explode damages every living slime in range, whatever the fireball hit.
func (g *Game) explode(pos geom.Vec) {
	m := g.tuning.Magic
	g.explosions = append(g.explosions, Explosion{Pos: pos, Radius: m.ExplosionRadius, TTL: m.ExplosionTime})
	g.emitAt(EventExplosion, pos)
	for i := range g.slimes {
		s := &g.slimes[i]
		if !s.Alive || !geom.CircleRectOverlap(pos, m.ExplosionRadius, s.rect()) {
			continue
		}
		dir := s.Pos.Sub(pos)
		g.damageSlime(s, m.ExplosionDamage, dir, g.tuning.Combat.SwingKnockback)
	}
}
