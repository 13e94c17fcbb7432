package game

import (
	"github.com/oklog/ulid/v2"

	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/item"
)

// EventType names a discrete thing that happened during a tick.
type EventType string

const (
	EventSlimeHit        EventType = "slime_hit"
	EventSlimeKilled     EventType = "slime_killed"
	EventSlimeRespawned  EventType = "slime_respawned"
	EventPlayerHurt      EventType = "player_hurt"
	EventPlayerDied      EventType = "player_died"
	EventPlayerRespawned EventType = "player_respawned"
	EventBlocked         EventType = "blocked"
	EventParry           EventType = "parry"
	EventSwing           EventType = "swing"
	EventChargeCancelled EventType = "charge_cancelled"
	EventSpellCast       EventType = "spell_cast"
	EventExplosion       EventType = "explosion"
	EventDrowned         EventType = "drowned"
	EventItemGained      EventType = "item_gained"
	EventItemLost        EventType = "item_lost"
	EventCrafted         EventType = "crafted"
	EventMealEaten       EventType = "meal_eaten"
	EventFishingStarted  EventType = "fishing_started"
	EventFishingResult   EventType = "fishing_result"
	EventFishingEnded    EventType = "fishing_ended"
	EventBoarded         EventType = "boarded"
	EventDisembarked     EventType = "disembarked"
	EventDayStarted      EventType = "day_started"
	EventWeatherChanged  EventType = "weather_changed"
	EventActionRejected  EventType = "action_rejected"
)

// Event is one entry of the stream handed to presentation. Only the fields
// relevant to Type are set.
type Event struct {
	ID      string     `json:"id"`
	Tick    uint64     `json:"tick"`
	Type    EventType  `json:"type"`
	SlimeID *int       `json:"slime_id,omitempty"`
	Pos     *geom.Vec  `json:"pos,omitempty"`
	Amount  int        `json:"amount,omitempty"`
	Item    *item.Item `json:"item,omitempty"`
	Detail  string     `json:"detail,omitempty"`
}

func (g *Game) emit(e Event) {
	e.ID = ulid.Make().String()
	e.Tick = g.tick
	g.events = append(g.events, e)
}

func (g *Game) emitAt(t EventType, pos geom.Vec) {
	g.emit(Event{Type: t, Pos: &pos})
}

func (g *Game) emitSlime(t EventType, s *Slime, amount int) {
	id, pos := s.ID, s.Pos
	g.emit(Event{Type: t, SlimeID: &id, Pos: &pos, Amount: amount})
}

func (g *Game) emitItem(t EventType, it item.Item, detail string) {
	g.emit(Event{Type: t, Item: &it, Amount: it.Count(), Detail: detail})
}

// DrainEvents returns the events produced since the last drain.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = nil
	return out
}
