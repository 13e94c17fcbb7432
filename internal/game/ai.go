package game

import (
	"math"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/world"
)

// updateSlimes runs the state machine and movement of every living slime.
// A stunned slime only counts its stun down.
func (g *Game) updateSlimes(dt float64) {
	t := g.tuning.Slime
	target := g.player.Pos
	for i := range g.slimes {
		s := &g.slimes[i]
		if !s.Alive {
			continue
		}
		if s.HitFlash > 0 {
			s.HitFlash -= dt
		}
		if s.AttackCooldown > 0 {
			s.AttackCooldown -= dt
		}
		if s.Slow > 0 {
			s.Slow -= dt
		}
		if s.Stun > 0 {
			s.Stun -= dt
			continue
		}

		next := NextAIState(s.State, geom.Distance(s.Pos, target), geom.Distance(s.Pos, s.Spawn),
			t.ChaseRadius, world.TileSize, s.Spawn)
		if _, patrolling := next.(Patrol); !patrolling {
			s.Pause = 0
		}
		s.State = next

		mult := 1.0
		if s.Slow > 0 {
			mult = g.tuning.Magic.SlowMultiplier
		}
		switch st := s.State.(type) {
		case Patrol:
			g.patrol(s, st, t.PatrolSpeed*mult*dt, dt)
		case Chase:
			g.moveSlimeToward(s, target, t.ChaseSpeed*mult*dt)
		case Returning:
			g.moveSlimeToward(s, s.Spawn, t.PatrolSpeed*mult*dt)
		}
	}
}

func (g *Game) patrol(s *Slime, st Patrol, step, dt float64) {
	t := g.tuning.Slime
	if s.Pause > 0 {
		s.Pause -= dt
		return
	}
	if geom.Distance(s.Pos, st.Target) < t.ArriveDistance {
		s.State = Patrol{Target: g.patrolTarget(s)}
		s.Pause = t.PauseMin + g.rng.Float64()*(t.PauseMax-t.PauseMin)
		return
	}
	g.moveSlimeToward(s, st.Target, step)
}

// patrolTarget picks a random point around the spawn. A point the slime
// could not stand on is replaced by the spawn itself.
func (g *Game) patrolTarget(s *Slime) geom.Vec {
	angle := g.rng.Float64() * 2 * math.Pi
	r := g.rng.Float64() * g.tuning.Slime.PatrolRadius
	p := s.Spawn.Add(geom.V(math.Cos(angle), math.Sin(angle)).Scale(r))
	if g.world.Blocked(p, world.SlimeHalf, world.Land) {
		return s.Spawn
	}
	return p
}

func (g *Game) moveSlimeToward(s *Slime, target geom.Vec, step float64) {
	d := target.Sub(s.Pos)
	dist := d.Len()
	if dist == 0 || step <= 0 {
		return
	}
	if step > dist {
		step = dist
	}
	s.Pos = g.world.Resolve(s.Pos, d.Scale(step/dist), world.SlimeHalf, world.Land)
}
