package game

import (
	"log/slog"
	"math"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/world"
)

// Attack starts a normal sword swing.
func (g *Game) Attack() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	switch {
	case p.Tool != item.Sword:
		return RejectedWrongTool
	case p.Swimming:
		return RejectedInWater
	case p.Sailing:
		return RejectedSailing
	case p.Attacking, p.Charging, p.Blocking:
		return RejectedBusy
	}
	g.startSwing(g.swordDamage(), false)
	return OK
}

// ChargePress starts charging a sword swing.
func (g *Game) ChargePress() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	if !p.canCharge() {
		switch {
		case p.Tool != item.Sword:
			return RejectedWrongTool
		case p.Swimming:
			return RejectedInWater
		case p.Sailing:
			return RejectedSailing
		default:
			return RejectedBusy
		}
	}
	p.Charging = true
	p.ChargeProgress = 0
	return OK
}

// ChargeRelease releases a charge into a swing. Damage scales with progress;
// above ChargedMinimum the swing hits everything around the player.
func (g *Game) ChargeRelease() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	if !p.Charging {
		return RejectedInvalid
	}
	progress := p.ChargeProgress
	p.cancelCharge()
	g.startSwing(ChargedDamage(g.swordDamage(), progress, g.tuning.Combat.ChargeMaxMultiple), progress > ChargedMinimum)
	return OK
}

// ChargedDamage is ceil(base * (1 + progress*(maxMultiplier-1))).
func ChargedDamage(base int, progress, maxMultiplier float64) int {
	progress = geom.Clamp(progress, 0, 1)
	v := float64(base) * (1 + progress*(maxMultiplier-1))
	return int(math.Ceil(v - 1e-9))
}

// BlockPress raises the shield.
func (g *Game) BlockPress() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	if !p.canBlock() {
		switch {
		case p.Swimming:
			return RejectedInWater
		case p.Sailing:
			return RejectedSailing
		case p.BlockCooldown > 0:
			return RejectedCooldown
		default:
			return RejectedBusy
		}
	}
	p.Blocking = true
	p.BlockTime = 0
	return OK
}

// BlockRelease lowers the shield and starts the block cooldown.
func (g *Game) BlockRelease() Result {
	if !g.player.Blocking {
		return RejectedInvalid
	}
	g.player.endBlock(g.tuning.Combat.BlockCooldown)
	return OK
}

func (g *Game) swordDamage() int {
	return g.tuning.Combat.SwordBaseDamage + g.inv.ToolTier(item.Sword)
}

func (g *Game) startSwing(damage int, charged bool) {
	p := &g.player
	g.swingID++
	p.Attacking = true
	p.AttackTime = g.tuning.Combat.AttackDuration
	p.AttackCharged = charged
	p.AttackDamage = damage
	detail := "normal"
	if charged {
		detail = "charged"
	}
	g.emit(Event{Type: EventSwing, Amount: damage, Detail: detail})
}

// meleeBox is the square in front of the player hit by a normal swing.
func (g *Game) meleeBox() geom.Rect {
	p := &g.player
	center := p.Pos.Add(p.Facing.Vec().Scale(MeleeReach))
	return geom.RectAround(center, geom.V(MeleeBoxSize/2, MeleeBoxSize/2))
}

func (g *Game) updateAttack(dt float64) {
	p := &g.player
	if !p.Attacking {
		return
	}
	p.AttackTime -= dt
	if p.AttackTime <= 0 {
		p.cancelAttack()
	}
}

func (g *Game) updateBlock(dt float64) {
	p := &g.player
	if p.BlockCooldown > 0 {
		p.BlockCooldown -= dt
	}
	if !p.Blocking {
		return
	}
	p.BlockTime += dt
	if p.BlockTime >= g.tuning.Combat.BlockDuration {
		p.endBlock(g.tuning.Combat.BlockCooldown)
	}
}

func (g *Game) updateCharge(dt float64) {
	p := &g.player
	if !p.Charging {
		return
	}
	if p.Swimming || p.Sailing || p.Blocking {
		g.interruptCharge()
		return
	}
	if g.tuning.Combat.ChargeTime <= 0 {
		p.ChargeProgress = 1
		return
	}
	p.ChargeProgress = math.Min(1, p.ChargeProgress+dt/g.tuning.Combat.ChargeTime)
}

func (g *Game) interruptCharge() {
	if !g.player.Charging {
		return
	}
	g.player.cancelCharge()
	g.emit(Event{Type: EventChargeCancelled})
}

// updateSwordHits applies the active swing to every slime it overlaps. The
// swing id stored on the slime guarantees one hit per swing.
func (g *Game) updateSwordHits() {
	p := &g.player
	if !p.Attacking || p.AttackDamage <= 0 {
		return
	}
	box := g.meleeBox()
	for i := range g.slimes {
		s := &g.slimes[i]
		if !s.Alive || s.LastSwing == g.swingID {
			continue
		}
		var hit bool
		var dir geom.Vec
		if p.AttackCharged {
			hit = geom.CircleRectOverlap(p.Pos, ChargedRadius, s.rect())
			dir = s.Pos.Sub(p.Pos)
			if dir.IsZero() {
				dir = p.Facing.Vec()
			}
		} else {
			hit = box.Intersects(s.rect())
			dir = p.Facing.Vec()
		}
		if !hit {
			continue
		}
		s.LastSwing = g.swingID
		g.damageSlime(s, p.AttackDamage, dir, g.tuning.Combat.SwingKnockback)
	}
}

func (g *Game) damageSlime(s *Slime, damage int, dir geom.Vec, knockback float64) {
	s.Health -= damage
	s.HitFlash = g.tuning.Combat.HitFlash
	if s.Health <= 0 {
		g.killSlime(s)
		return
	}
	s.Pos = g.world.Knockback(s.Pos, dir, knockback, world.SlimeHalf, world.Land)
	g.emitSlime(EventSlimeHit, s, damage)
}

func (g *Game) killSlime(s *Slime) {
	s.Alive = false
	s.Stun = 0
	s.Slow = 0
	g.deathEffects = append(g.deathEffects, DeathEffect{Pos: s.Pos, TTL: g.tuning.Combat.DeathEffectTime})
	g.emitSlime(EventSlimeKilled, s, 0)
	if n := g.tuning.Slime.GelDrop; n > 0 {
		g.gain(item.NewResource(item.Gel, n))
	}
	slog.Debug("slime killed", "slot", g.slot, "slime", s.ID)
}

// updateContact applies at most one slime contact to the player per tick.
func (g *Game) updateContact(dt float64) {
	p := &g.player
	if p.Invincible > 0 {
		p.Invincible -= dt
	}
	if p.Sailing || p.Dead {
		return
	}
	body := geom.RectAround(p.Pos, world.PlayerHalf)
	c := g.tuning.Combat
	for i := range g.slimes {
		s := &g.slimes[i]
		if !s.Alive || s.Stunned() || s.AttackCooldown > 0 || !s.rect().Intersects(body) {
			continue
		}
		if p.Blocking {
			s.AttackCooldown = g.tuning.Slime.AttackCooldown
			if p.BlockTime <= c.ParryWindow {
				g.parry(s)
			} else {
				p.Pos = g.world.Knockback(p.Pos, p.Pos.Sub(s.Pos), c.ContactKnockback, world.PlayerHalf, world.Walk)
				g.emitSlime(EventBlocked, s, 0)
			}
			return
		}
		if p.Invincible > 0 {
			return
		}
		s.AttackCooldown = g.tuning.Slime.AttackCooldown
		g.hurtPlayer(c.ContactDamage, p.Pos.Sub(s.Pos), c.ContactKnockback)
		return
	}
}

func (g *Game) parry(s *Slime) {
	c := g.tuning.Combat
	s.Stun = c.ParryStun
	s.Pos = g.world.Knockback(s.Pos, s.Pos.Sub(g.player.Pos), c.ParryKnockback, world.SlimeHalf, world.Land)
	g.parryEffects = append(g.parryEffects, ParryEffect{Pos: s.Pos, TTL: c.ParryEffectTime})
	g.emitSlime(EventParry, s, 0)
}

func (g *Game) hurtPlayer(damage int, dir geom.Vec, knockback float64) {
	p := &g.player
	p.Health -= damage
	p.Invincible = g.tuning.Player.InvincibilityTime
	g.interruptCharge()
	if knockback > 0 {
		p.Pos = g.world.Knockback(p.Pos, dir, knockback, world.PlayerHalf, world.Walk)
	}
	pos := p.Pos
	g.emit(Event{Type: EventPlayerHurt, Amount: damage, Pos: &pos})
	if p.Health <= 0 {
		g.die()
	}
}
