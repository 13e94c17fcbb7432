package game

import "time"

// Game timing
const (
	TickRate     = 60 // ticks per second
	TickInterval = time.Second / TickRate
	TickDelta    = 1.0 / TickRate // seconds per tick
)

// Hit shapes (pixels). These are geometry, not tuning.
const (
	MeleeReach     = 22.0 // melee box center offset from the attacker in the facing direction
	MeleeBoxSize   = 28.0
	ChargedRadius  = 44.0
	ChargedMinimum = 0.1 // charge progress above this swings the AoE shape
	BoardDistance  = 56.0
	ToolReach      = 30.0 // front probe offset for axe, pickaxe and rod
	ToolProbeHalf  = 8.0
	FireballRadius = 6.0
	TornadoRadius  = 52.0
)

// Delays counted in ticks
const (
	FishingResultTicks = 45 // result stays on screen before the session closes
)
