package game

import (
	"github.com/ugaemi/islet-server/internal/inventory"
	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/profile"
)

// load seeds all entity state from a save profile.
func (g *Game) load(p profile.SaveProfile) {
	p.Normalize()
	g.slot = p.Slot

	start := g.world.PlayerStart()
	pos := p.Position
	if p.Empty || pos.IsZero() {
		pos = start
	}
	ret := pos
	if p.ReturnPoint != nil {
		ret = *p.ReturnPoint
	}
	g.player = Player{
		Pos:         pos,
		Facing:      FacingFrom(p.Facing, FacingDown),
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		Stamina:     p.Stamina,
		MaxStamina:  p.MaxStamina,
		Magic:       p.Magic,
		MaxMagic:    p.MagicState.Max,
		Tool:        *p.EquippedTool,
		ReturnPoint: ret,
	}
	if p.Empty {
		g.player.Magic = g.player.MaxMagic
	}
	g.player.SpellCooldown = p.MagicState.SpellCooldown
	if g.player.Health <= 0 {
		g.player.Health = 0
		g.player.Dead = true
	}

	g.inv = inventory.FromRecord(p.Inventory)
	g.inv.SetClock(g.now)
	g.fishingState = p.Fishing

	spawns := g.world.SlimeSpawns()
	g.slimes = make([]Slime, len(spawns))
	for id, sp := range spawns {
		g.slimes[id] = newSlime(id, sp, g.tuning.Slime.MaxHealth)
	}
	for _, rec := range p.Enemies {
		if rec.ID < 0 || rec.ID >= len(g.slimes) {
			continue
		}
		s := &g.slimes[rec.ID]
		s.Pos = rec.Position
		s.Health = rec.Health
		s.Alive = rec.Alive && rec.Health > 0
	}

	env := p.Environment
	g.env = Environment{
		Day:          env.Day,
		TimeOfDay:    env.TimeOfDay,
		Weather:      ParseWeather(env.Weather),
		WeatherTimer: env.WeatherTimer,
		WindAngle:    env.WindAngle,
	}
	if g.env.WeatherTimer <= 0 {
		g.rollWeather()
		g.events = nil
	}

	if p.Sailing != nil {
		g.boat = &Sailboat{Pos: p.Sailing.Position}
		if p.Sailing.Boarded && g.inv.HasUpgrade(item.Sailboat) {
			g.player.Sailing = true
			g.player.Pos = g.boat.Pos
		}
	}
	if g.inv.HasUpgrade(item.Sailboat) {
		g.placeBoat()
	}
	if !g.player.Sailing {
		g.updateTerrain()
	}
}

// SaveProfile captures the current state as a detached value. The result
// shares no memory with the live game.
func (g *Game) SaveProfile() profile.SaveProfile {
	p := &g.player
	now := g.now()
	tool := p.Tool
	ret := p.ReturnPoint
	fs := g.fishingState
	if g.fishing != nil {
		fs = g.fishing.State()
	}
	sp := profile.SaveProfile{
		Slot:       g.slot,
		LastPlayed: &now,
		Position:   p.Pos,
		Facing:     p.Facing.Vec(),
		Health:     p.Health,
		MaxHealth:  p.MaxHealth,
		Stamina:    p.Stamina,
		MaxStamina: p.MaxStamina,
		Magic:      p.Magic,
		Inventory:  g.inv.Record(),
		Fishing:    fs,
		MagicState: &profile.MagicRecord{
			Max:           p.MaxMagic,
			SpellCooldown: max(0, p.SpellCooldown),
		},
		Environment: &profile.EnvironmentRecord{
			Day:          g.env.Day,
			TimeOfDay:    g.env.TimeOfDay,
			Weather:      g.env.Weather.String(),
			WeatherTimer: g.env.WeatherTimer,
			WindAngle:    g.env.WindAngle,
		},
		EquippedTool: &tool,
		ReturnPoint:  &ret,
	}
	if g.boat != nil {
		sp.Sailing = &profile.SailingRecord{Position: g.boat.Pos, Boarded: p.Sailing}
	}
	sp.Enemies = make([]profile.EnemyRecord, len(g.slimes))
	for i, s := range g.slimes {
		sp.Enemies[i] = profile.EnemyRecord{ID: s.ID, Position: s.Pos, Health: s.Health, Alive: s.Alive}
	}
	return sp
}
