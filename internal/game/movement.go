package game

import (
	"math"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/world"
)

// Dash bursts forward along the input, or the facing when standing still.
func (g *Game) Dash() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	switch {
	case p.Swimming:
		return RejectedInWater
	case p.Sailing:
		return RejectedSailing
	case p.Dashing, p.Blocking, p.Charging:
		return RejectedBusy
	case p.Stamina < g.tuning.Player.DashCost:
		return RejectedNoStamina
	}
	dir := g.input.Normalize()
	if dir.IsZero() {
		dir = p.Facing.Vec()
	}
	p.Stamina -= g.tuning.Player.DashCost
	p.Dashing = true
	p.DashTime = g.tuning.Player.DashDuration
	p.DashDir = dir
	return OK
}

// Sprint turns sprinting on or off. Sprinting drains stamina while moving.
func (g *Game) Sprint(on bool) Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	if on {
		switch {
		case p.Swimming:
			return RejectedInWater
		case p.Sailing:
			return RejectedSailing
		case p.Stamina <= 0:
			return RejectedNoStamina
		}
	}
	p.Sprinting = on
	return OK
}

func (g *Game) updateStamina(dt float64) {
	p := &g.player
	t := g.tuning.Player
	if p.Dashing {
		p.DashTime -= dt
		if p.DashTime <= 0 {
			p.cancelDash()
		}
	}
	switch {
	case p.Swimming:
		p.Stamina -= t.SwimDrain * dt
		if p.Stamina <= 0 {
			g.drown()
		}
	case p.Sprinting && !g.input.IsZero() && !p.Sailing:
		p.Stamina -= t.SprintDrain * dt
		if p.Stamina <= 0 {
			p.Stamina = 0
			p.Sprinting = false
		}
	case !p.Dashing:
		p.Stamina = math.Min(p.MaxStamina, p.Stamina+t.StaminaRegen*dt)
	}
}

// drown costs one heart and puts the player back on the last land point.
func (g *Game) drown() {
	p := &g.player
	p.Swimming = false
	p.Stamina = p.MaxStamina
	p.Pos = p.ReturnPoint
	p.cancelDash()
	g.interruptCharge()
	g.emitAt(EventDrowned, p.Pos)
	g.hurtPlayer(1, geom.Vec{}, 0)
}

// updateMovement resolves this tick's displacement. It runs last.
func (g *Game) updateMovement(dt float64) {
	p := &g.player
	t := g.tuning.Player
	move := g.input
	wind := g.env.Wind(g.tuning.Environment)

	if p.Sailing && g.boat != nil {
		delta := move.Scale(t.SailSpeed * dt).Add(wind.Scale(dt))
		g.boat.Pos = g.world.Resolve(g.boat.Pos, delta, world.BoatHalf, world.Sail)
		p.Pos = g.boat.Pos
		p.Facing = FacingFrom(move, p.Facing)
		return
	}

	speed := t.WalkSpeed
	if p.Swimming {
		speed = t.SwimSpeed
	} else if p.Sprinting && p.Stamina > 0 {
		speed *= t.SprintMultiplier
	}
	if p.Charging {
		speed *= t.ChargeMultiplier
	}
	if p.Blocking {
		speed *= t.BlockMultiplier
	}
	delta := move.Scale(speed * dt)
	if p.Dashing {
		delta = p.DashDir.Scale(t.DashSpeed * dt)
	}
	if p.Swimming {
		delta = delta.Add(wind.Scale(dt))
	}
	p.Pos = g.world.Resolve(p.Pos, delta, world.PlayerHalf, world.Walk)
	p.Facing = FacingFrom(move, p.Facing)
	g.updateTerrain()
}

// updateTerrain switches between walking and swimming from the tile under
// the player. Entering water cancels everything a swimmer cannot do.
func (g *Game) updateTerrain() {
	p := &g.player
	tile := g.world.TileAt(p.Pos)
	switch {
	case tile.Swimmable():
		if p.Swimming {
			return
		}
		p.Swimming = true
		p.Sprinting = false
		g.interruptCharge()
		p.endBlock(g.tuning.Combat.BlockCooldown)
		p.cancelAttack()
		p.cancelDash()
	case tile.Walkable():
		p.Swimming = false
		p.ReturnPoint = p.Pos
	}
}

// Board steps into the sailboat when it is close enough.
func (g *Game) Board() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	if !g.inv.HasUpgrade(item.Sailboat) || g.boat == nil {
		return RejectedLocked
	}
	if p.Sailing {
		return RejectedInvalid
	}
	if geom.Distance(p.Pos, g.boat.Pos) > BoardDistance {
		return RejectedNoTarget
	}
	p.Sailing = true
	p.Swimming = false
	p.Sprinting = false
	g.interruptCharge()
	p.endBlock(g.tuning.Combat.BlockCooldown)
	p.cancelAttack()
	p.cancelDash()
	p.Pos = g.boat.Pos
	g.emitAt(EventBoarded, p.Pos)
	return OK
}

// Disembark steps onto the first free land spot next to the boat, trying
// the facing direction first.
func (g *Game) Disembark() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	if !p.Sailing || g.boat == nil {
		return RejectedInvalid
	}
	dirs := []Facing{p.Facing, FacingDown, FacingUp, FacingLeft, FacingRight}
	for _, dist := range []float64{world.TileSize, world.TileSize * 1.5, world.TileSize * 2} {
		for _, f := range dirs {
			c := g.boat.Pos.Add(f.Vec().Scale(dist))
			if !g.world.TileAt(c).Walkable() || g.world.Blocked(c, world.PlayerHalf, world.Walk) {
				continue
			}
			p.Sailing = false
			p.Pos = c
			p.ReturnPoint = c
			g.emitAt(EventDisembarked, c)
			return OK
		}
	}
	return RejectedNoTarget
}

// placeBoat moors the boat on the nearest open water tile that touches land.
func (g *Game) placeBoat() {
	if g.boat != nil {
		return
	}
	col, row := world.TileCoord(g.player.ReturnPoint)
	for r := 1; r <= 40; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if abs(dx) != r && abs(dy) != r {
					continue
				}
				c, rw := col+dx, row+dy
				if !g.mooring(c, rw) {
					continue
				}
				g.boat = &Sailboat{Pos: world.TileCenter(c, rw)}
				return
			}
		}
	}
}

func (g *Game) mooring(col, row int) bool {
	if !g.world.At(col, row).Swimmable() {
		return false
	}
	if g.world.Blocked(world.TileCenter(col, row), world.BoatHalf, world.Sail) {
		return false
	}
	for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
		if g.world.At(col+d[0], row+d[1]).Walkable() {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
