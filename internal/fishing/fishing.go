// Package fishing runs the timing minigame: an indicator bounces along a bar
// and each attempt is judged against a randomized green and perfect zone.
package fishing

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/ugaemi/islet-server/internal/item"
	"github.com/ugaemi/islet-server/internal/loot"
)

// Session phases
const (
	PhaseReeling  = "reeling"
	PhaseWaiting  = "waiting"
	PhaseComplete = "complete"
)

const (
	eventLand   = "land"
	eventResume = "resume"
	eventFinish = "finish"
)

// Config holds the tunable minigame numbers.
type Config struct {
	IndicatorSpeed      float64 `yaml:"indicator_speed" json:"indicator_speed"` // bar widths per second
	GreenMin            float64 `yaml:"green_min" json:"green_min"`
	GreenMax            float64 `yaml:"green_max" json:"green_max"`
	PerfectWidth        float64 `yaml:"perfect_width" json:"perfect_width"`
	NextCatchDelayTicks int     `yaml:"next_catch_delay_ticks" json:"next_catch_delay_ticks"`
	PerfectBonus        int     `yaml:"perfect_bonus" json:"perfect_bonus"`
	FortunePerCatch     int     `yaml:"fortune_per_catch" json:"fortune_per_catch"`
	FortunePerLevel     int     `yaml:"fortune_per_level" json:"fortune_per_level"`
}

func DefaultConfig() Config {
	return Config{
		IndicatorSpeed:      1.2,
		GreenMin:            0.15,
		GreenMax:            0.20,
		PerfectWidth:        0.05,
		NextCatchDelayTicks: 30,
		PerfectBonus:        5,
		FortunePerCatch:     10,
		FortunePerLevel:     25,
	}
}

// Result is the judgement of one attempt.
type Result int

const (
	ResultNone Result = iota
	Perfect
	Success
	Miss
)

var resultNames = [...]string{"none", "perfect", "success", "miss"}

func (r Result) String() string {
	if int(r) < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

func (r Result) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Zone is a closed range on the bar.
type Zone struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (z Zone) Contains(x float64) bool { return x >= z.Start && x <= z.End }

// Catch is one judged attempt and what it yielded.
type Catch struct {
	Result Result    `json:"result"`
	Item   item.Item `json:"item"`
}

// State is the persistent fishing progress of a profile.
type State struct {
	TotalCatches int `json:"total_catches"`
	Level        int `json:"level"`
}

// Record returns the state after n more catches.
func (s State) Record(n int) State {
	s.TotalCatches += n
	s.Level = loot.LevelForCatches(s.TotalCatches)
	return s
}

// Session is one fishing encounter. It is driven by the game tick and is not
// safe for concurrent use.
type Session struct {
	cfg       Config
	rng       loot.Rand
	fortune   int
	collected loot.ArmorCollection
	state     State
	phase     *fsm.FSM

	remaining int
	indicator float64
	dir       float64
	green     Zone
	perfect   Zone
	combo     int
	bonus     int
	delay     int
	log       []Catch
}

// NewSession starts a session for a player with the given fortune. collected
// is the armor owned at session start; it is updated as pieces drop.
func NewSession(cfg Config, state State, fortune int, collected loot.ArmorCollection, rng loot.Rand) *Session {
	if collected == nil {
		collected = loot.ArmorCollection{}
	}
	if fortune < 0 {
		fortune = 0
	}
	per := cfg.FortunePerCatch
	if per <= 0 {
		per = 10
	}
	s := &Session{
		cfg:       cfg,
		rng:       rng,
		fortune:   fortune,
		collected: collected,
		state:     state.Record(0),
		remaining: fortune/per + 1,
	}
	s.phase = fsm.NewFSM(
		PhaseReeling,
		fsm.Events{
			{Name: eventLand, Src: []string{PhaseReeling}, Dst: PhaseWaiting},
			{Name: eventResume, Src: []string{PhaseWaiting}, Dst: PhaseReeling},
			{Name: eventFinish, Src: []string{PhaseReeling, PhaseWaiting}, Dst: PhaseComplete},
		},
		fsm.Callbacks{
			"enter_" + PhaseReeling: func(_ context.Context, _ *fsm.Event) { s.newCatch() },
			"enter_" + PhaseWaiting: func(_ context.Context, _ *fsm.Event) { s.delay = s.cfg.NextCatchDelayTicks },
		},
	)
	s.newCatch()
	return s
}

func (s *Session) newCatch() {
	width := s.cfg.GreenMin + s.rng.Float64()*(s.cfg.GreenMax-s.cfg.GreenMin)
	start := s.rng.Float64() * (1 - width)
	s.green = Zone{Start: start, End: start + width}
	mid := start + width/2
	s.perfect = Zone{Start: mid - s.cfg.PerfectWidth/2, End: mid + s.cfg.PerfectWidth/2}
	s.indicator = 0
	s.dir = 1
}

func (s *Session) fire(event string) {
	// Transitions are only fired from states that allow them.
	_ = s.phase.Event(context.Background(), event)
}

// Tick advances the indicator while reeling, or counts down the delay before
// the next sub-catch.
func (s *Session) Tick(dt float64) {
	switch s.phase.Current() {
	case PhaseReeling:
		s.indicator += s.dir * s.cfg.IndicatorSpeed * dt
		if s.indicator >= 1 {
			s.indicator = 1
			s.dir = -1
		} else if s.indicator <= 0 {
			s.indicator = 0
			s.dir = 1
		}
	case PhaseWaiting:
		s.delay--
		if s.delay <= 0 {
			s.fire(eventResume)
		}
	}
}

// Attempt judges the indicator's current position. It is ignored (returns
// false) unless the session is reeling.
func (s *Session) Attempt() (Catch, bool) {
	if s.phase.Current() != PhaseReeling {
		return Catch{}, false
	}
	var c Catch
	switch {
	case s.perfect.Contains(s.indicator):
		c = Catch{Result: Perfect, Item: s.roll()}
		s.combo++
		s.bonus += s.cfg.PerfectBonus
	case s.green.Contains(s.indicator):
		c = Catch{Result: Success, Item: s.roll()}
		s.combo = 0
		s.remaining--
	default:
		s.combo = 0
		s.log = append(s.log, Catch{Result: Miss})
		s.fire(eventFinish)
		return Catch{Result: Miss}, true
	}
	s.state = s.state.Record(1)
	s.log = append(s.log, c)
	if s.remaining <= 0 {
		s.fire(eventFinish)
	} else {
		s.fire(eventLand)
	}
	return c, true
}

// Abandon ends the session early.
func (s *Session) Abandon() {
	s.fire(eventFinish)
}

func (s *Session) roll() item.Item {
	return loot.Roll(s.LootLevel(), s.rng, s.collected)
}

// LootLevel is the fishing level plus whole steps of fortune, clamped.
func (s *Session) LootLevel() int {
	per := s.cfg.FortunePerLevel
	if per <= 0 {
		return loot.ClampLevel(s.state.Level)
	}
	return loot.ClampLevel(s.state.Level + (s.fortune+s.bonus)/per)
}

func (s *Session) Phase() string      { return s.phase.Current() }
func (s *Session) Complete() bool     { return s.phase.Is(PhaseComplete) }
func (s *Session) Remaining() int     { return s.remaining }
func (s *Session) Indicator() float64 { return s.indicator }
func (s *Session) Green() Zone        { return s.green }
func (s *Session) PerfectZone() Zone  { return s.perfect }
func (s *Session) Combo() int         { return s.combo }
func (s *Session) Bonus() int         { return s.bonus }

// State is the progress to merge back into the profile.
func (s *Session) State() State { return s.state }

// Log returns the judged attempts in order.
func (s *Session) Log() []Catch {
	out := make([]Catch, len(s.log))
	copy(out, s.log)
	return out
}
