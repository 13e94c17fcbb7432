package game

import "github.com/ugaemi/islet-server/internal/fishing"

// Tuning holds every gameplay number that may be overridden from a YAML file.
type Tuning struct {
	Player      PlayerTuning      `yaml:"player" json:"player"`
	Combat      CombatTuning      `yaml:"combat" json:"combat"`
	Slime       SlimeTuning       `yaml:"slime" json:"slime"`
	Magic       MagicTuning       `yaml:"magic" json:"magic"`
	Environment EnvironmentTuning `yaml:"environment" json:"environment"`
	Fishing     fishing.Config    `yaml:"fishing" json:"fishing"`
}

type PlayerTuning struct {
	WalkSpeed         float64 `yaml:"walk_speed" json:"walk_speed"` // pixels per second
	SwimSpeed         float64 `yaml:"swim_speed" json:"swim_speed"`
	SailSpeed         float64 `yaml:"sail_speed" json:"sail_speed"`
	SprintMultiplier  float64 `yaml:"sprint_multiplier" json:"sprint_multiplier"`
	ChargeMultiplier  float64 `yaml:"charge_move_multiplier" json:"charge_move_multiplier"`
	BlockMultiplier   float64 `yaml:"block_move_multiplier" json:"block_move_multiplier"`
	DashSpeed         float64 `yaml:"dash_speed" json:"dash_speed"`
	DashDuration      float64 `yaml:"dash_duration" json:"dash_duration"`
	DashCost          float64 `yaml:"dash_cost" json:"dash_cost"`
	StaminaRegen      float64 `yaml:"stamina_regen" json:"stamina_regen"`
	SprintDrain       float64 `yaml:"sprint_drain" json:"sprint_drain"`
	SwimDrain         float64 `yaml:"swim_drain" json:"swim_drain"`
	InvincibilityTime float64 `yaml:"invincibility_time" json:"invincibility_time"`
}

type CombatTuning struct {
	SwordBaseDamage   int     `yaml:"sword_base_damage" json:"sword_base_damage"`
	AttackDuration    float64 `yaml:"attack_duration" json:"attack_duration"`
	ChargeTime        float64 `yaml:"charge_time" json:"charge_time"` // seconds to full charge
	ChargeMaxMultiple float64 `yaml:"charge_max_multiplier" json:"charge_max_multiplier"`
	SwingKnockback    float64 `yaml:"swing_knockback" json:"swing_knockback"`
	ContactDamage     int     `yaml:"contact_damage" json:"contact_damage"`
	ContactKnockback  float64 `yaml:"contact_knockback" json:"contact_knockback"`
	BlockDuration     float64 `yaml:"block_duration" json:"block_duration"`
	ParryWindow       float64 `yaml:"parry_window" json:"parry_window"`
	BlockCooldown     float64 `yaml:"block_cooldown" json:"block_cooldown"`
	ParryStun         float64 `yaml:"parry_stun" json:"parry_stun"`
	ParryKnockback    float64 `yaml:"parry_knockback" json:"parry_knockback"`
	HitFlash          float64 `yaml:"hit_flash" json:"hit_flash"`
	DeathEffectTime   float64 `yaml:"death_effect_time" json:"death_effect_time"`
	ParryEffectTime   float64 `yaml:"parry_effect_time" json:"parry_effect_time"`
}

type SlimeTuning struct {
	MaxHealth      int     `yaml:"max_health" json:"max_health"`
	ChaseRadius    float64 `yaml:"chase_radius" json:"chase_radius"`
	PatrolRadius   float64 `yaml:"patrol_radius" json:"patrol_radius"`
	PatrolSpeed    float64 `yaml:"patrol_speed" json:"patrol_speed"`
	ChaseSpeed     float64 `yaml:"chase_speed" json:"chase_speed"`
	PauseMin       float64 `yaml:"pause_min" json:"pause_min"`
	PauseMax       float64 `yaml:"pause_max" json:"pause_max"`
	ArriveDistance float64 `yaml:"arrive_distance" json:"arrive_distance"`
	AttackCooldown float64 `yaml:"attack_cooldown" json:"attack_cooldown"`
	GelDrop        int     `yaml:"gel_drop" json:"gel_drop"`
}

type MagicTuning struct {
	Regen            float64 `yaml:"regen" json:"regen"` // points per second
	SpellCooldown    float64 `yaml:"spell_cooldown" json:"spell_cooldown"`
	FireballCost     float64 `yaml:"fireball_cost" json:"fireball_cost"`
	FireballSpeed    float64 `yaml:"fireball_speed" json:"fireball_speed"`
	FireballLifetime float64 `yaml:"fireball_lifetime" json:"fireball_lifetime"`
	ExplosionRadius  float64 `yaml:"explosion_radius" json:"explosion_radius"`
	ExplosionDamage  int     `yaml:"explosion_damage" json:"explosion_damage"`
	ExplosionTime    float64 `yaml:"explosion_time" json:"explosion_time"`
	TornadoCost      float64 `yaml:"tornado_cost" json:"tornado_cost"`
	TornadoSpeed     float64 `yaml:"tornado_speed" json:"tornado_speed"`
	TornadoDuration  float64 `yaml:"tornado_duration" json:"tornado_duration"`
	SlowMultiplier   float64 `yaml:"slow_multiplier" json:"slow_multiplier"`
	SlowDuration     float64 `yaml:"slow_duration" json:"slow_duration"`
}

type EnvironmentTuning struct {
	DayLength     float64 `yaml:"day_length" json:"day_length"` // seconds
	WeatherMin    float64 `yaml:"weather_min" json:"weather_min"`
	WeatherMax    float64 `yaml:"weather_max" json:"weather_max"`
	RainChance    float64 `yaml:"rain_chance" json:"rain_chance"`
	StormChance   float64 `yaml:"storm_chance" json:"storm_chance"`
	RainWind      float64 `yaml:"rain_wind" json:"rain_wind"` // drift in pixels per second
	StormWind     float64 `yaml:"storm_wind" json:"storm_wind"`
	RespawnAtDawn bool    `yaml:"respawn_at_dawn" json:"respawn_at_dawn"`
}

// DefaultTuning returns the compiled-in gameplay numbers.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			WalkSpeed:         120,
			SwimSpeed:         70,
			SailSpeed:         180,
			SprintMultiplier:  1.6,
			ChargeMultiplier:  0.5,
			BlockMultiplier:   0.5,
			DashSpeed:         360,
			DashDuration:      0.15,
			DashCost:          20,
			StaminaRegen:      15,
			SprintDrain:       20,
			SwimDrain:         8,
			InvincibilityTime: 1.0,
		},
		Combat: CombatTuning{
			SwordBaseDamage:   1,
			AttackDuration:    0.3,
			ChargeTime:        1.0,
			ChargeMaxMultiple: 3,
			SwingKnockback:    24,
			ContactDamage:     1,
			ContactKnockback:  20,
			BlockDuration:     1.0,
			ParryWindow:       0.2,
			BlockCooldown:     0.5,
			ParryStun:         1.5,
			ParryKnockback:    32,
			HitFlash:          0.15,
			DeathEffectTime:   0.5,
			ParryEffectTime:   0.3,
		},
		Slime: SlimeTuning{
			MaxHealth:      2,
			ChaseRadius:    160,
			PatrolRadius:   96,
			PatrolSpeed:    30,
			ChaseSpeed:     60,
			PauseMin:       1,
			PauseMax:       2,
			ArriveDistance: 4,
			AttackCooldown: 1.0,
			GelDrop:        1,
		},
		Magic: MagicTuning{
			Regen:            2,
			SpellCooldown:    0.4,
			FireballCost:     10,
			FireballSpeed:    240,
			FireballLifetime: 1.5,
			ExplosionRadius:  40,
			ExplosionDamage:  2,
			ExplosionTime:    0.3,
			TornadoCost:      20,
			TornadoSpeed:     60,
			TornadoDuration:  3,
			SlowMultiplier:   0.4,
			SlowDuration:     2,
		},
		Environment: EnvironmentTuning{
			DayLength:     600,
			WeatherMin:    60,
			WeatherMax:    180,
			RainChance:    0.35,
			StormChance:   0.15,
			RainWind:      8,
			StormWind:     20,
			RespawnAtDawn: true,
		},
		Fishing: fishing.DefaultConfig(),
	}
}
