package game

import (
	"math"

	"github.com/ugaemi/islet-server/internal/geom"
)

// Weather is the current sky. Rain and storms push swimmers and the boat.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherStorm
)

var weatherNames = [...]string{"clear", "rain", "storm"}

func (w Weather) String() string {
	if int(w) < 0 || int(w) >= len(weatherNames) {
		return "clear"
	}
	return weatherNames[w]
}

// MarshalText serializes Weather as a string.
func (w Weather) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// ParseWeather maps a saved name back to a Weather; unknown names are clear.
func ParseWeather(s string) Weather {
	for i, n := range weatherNames {
		if n == s {
			return Weather(i)
		}
	}
	return WeatherClear
}

// Environment is the day/night clock and the weather system.
type Environment struct {
	Day          int
	TimeOfDay    float64 // 0..1, 0 is dawn
	Weather      Weather
	WeatherTimer float64 // seconds until the weather is rerolled
	WindAngle    float64
}

// Night reports whether the clock is in the dark half of the day.
func (e Environment) Night() bool {
	return e.TimeOfDay >= 0.75 || e.TimeOfDay < 0.05
}

// Wind is the drift applied to swimmers and the boat in pixels per second.
func (e Environment) Wind(t EnvironmentTuning) geom.Vec {
	var strength float64
	switch e.Weather {
	case WeatherRain:
		strength = t.RainWind
	case WeatherStorm:
		strength = t.StormWind
	default:
		return geom.Vec{}
	}
	return geom.V(math.Cos(e.WindAngle), math.Sin(e.WindAngle)).Scale(strength)
}

// updateEnvironment advances the clock and weather. It is only called on
// unpaused ticks.
func (g *Game) updateEnvironment(dt float64) {
	t := g.tuning.Environment
	env := &g.env

	if t.DayLength > 0 {
		env.TimeOfDay += dt / t.DayLength
		for env.TimeOfDay >= 1 {
			env.TimeOfDay -= 1
			env.Day++
			g.emit(Event{Type: EventDayStarted, Amount: env.Day})
			if t.RespawnAtDawn {
				g.respawnSlimes()
			}
		}
	}

	env.WeatherTimer -= dt
	if env.WeatherTimer <= 0 {
		g.rollWeather()
	}
}

func (g *Game) rollWeather() {
	t := g.tuning.Environment
	prev := g.env.Weather
	r := g.rng.Float64()
	switch {
	case r < t.StormChance:
		g.env.Weather = WeatherStorm
	case r < t.StormChance+t.RainChance:
		g.env.Weather = WeatherRain
	default:
		g.env.Weather = WeatherClear
	}
	g.env.WindAngle = g.rng.Float64() * 2 * math.Pi
	g.env.WeatherTimer = t.WeatherMin + g.rng.Float64()*(t.WeatherMax-t.WeatherMin)
	if g.env.Weather != prev {
		g.emit(Event{Type: EventWeatherChanged, Detail: g.env.Weather.String()})
	}
}

// respawnSlimes brings every dead slime back at its spawn point.
func (g *Game) respawnSlimes() {
	for i := range g.slimes {
		s := &g.slimes[i]
		if s.Alive {
			continue
		}
		*s = newSlime(s.ID, s.Spawn, g.tuning.Slime.MaxHealth)
		g.emitSlime(EventSlimeRespawned, s, 0)
	}
}
