package game

import (
	"github.com/ugaemi/islet-server/internal/fishing"
	"github.com/ugaemi/islet-server/internal/inventory"
	"github.com/ugaemi/islet-server/internal/item"
)

// ActionKind names a discrete input event.
type ActionKind string

const (
	ActAttack         ActionKind = "attack"
	ActBlockPress     ActionKind = "block_press"
	ActBlockRelease   ActionKind = "block_release"
	ActChargePress    ActionKind = "charge_press"
	ActChargeRelease  ActionKind = "charge_release"
	ActUseTool        ActionKind = "use_tool"
	ActEquipTool      ActionKind = "equip_tool"
	ActCastSpell      ActionKind = "cast_spell"
	ActFishingAttempt ActionKind = "fishing_attempt"
	ActCloseFishing   ActionKind = "close_fishing"
	ActDash           ActionKind = "dash"
	ActSprint         ActionKind = "sprint"
	ActInventory      ActionKind = "inventory"
	ActMap            ActionKind = "map"
	ActBoard          ActionKind = "board"
	ActDisembark      ActionKind = "disembark"
	ActRespawn        ActionKind = "respawn"
	ActEatMeal        ActionKind = "eat_meal"
	ActCraft          ActionKind = "craft"
	ActEquip          ActionKind = "equip"
	ActSort           ActionKind = "sort"
	ActMark           ActionKind = "mark"
	ActDiscardJunk    ActionKind = "discard_junk"
)

// Action is a decoded input event. Only the fields its Kind uses are read.
type Action struct {
	Kind     ActionKind `json:"kind"`
	Slot     int        `json:"slot,omitempty"`
	Tool     item.Tool  `json:"tool,omitempty"`
	Recipe   string     `json:"recipe,omitempty"`
	On       bool       `json:"on,omitempty"`
	Favorite bool       `json:"favorite,omitempty"`
	Junk     bool       `json:"junk,omitempty"`
	Sort     string     `json:"sort,omitempty"`
}

// Outcome reports whether an action happened and, if not, why.
type Outcome struct {
	Kind   ActionKind `json:"kind"`
	OK     bool       `json:"ok"`
	Reason string     `json:"reason,omitempty"`
}

func outcome(kind ActionKind, r Result) Outcome {
	if r == OK {
		return Outcome{Kind: kind, OK: true}
	}
	return Outcome{Kind: kind, Reason: r.String()}
}

// Apply routes an action to its entry point.
func (g *Game) Apply(a Action) Outcome {
	var r Result
	switch a.Kind {
	case ActAttack:
		r = g.Attack()
	case ActBlockPress:
		r = g.BlockPress()
	case ActBlockRelease:
		r = g.BlockRelease()
	case ActChargePress:
		r = g.ChargePress()
	case ActChargeRelease:
		r = g.ChargeRelease()
	case ActUseTool:
		r = g.UseTool()
	case ActEquipTool:
		r = g.EquipTool(a.Tool)
	case ActCastSpell:
		r = g.CastSpell(a.Slot)
	case ActFishingAttempt:
		r = g.FishingAttempt()
	case ActCloseFishing:
		r = g.CloseFishing()
	case ActDash:
		r = g.Dash()
	case ActSprint:
		r = g.Sprint(a.On)
	case ActInventory:
		r = g.ToggleInventory(a.On)
	case ActMap:
		r = g.ToggleMap(a.On)
	case ActBoard:
		r = g.Board()
	case ActDisembark:
		r = g.Disembark()
	case ActRespawn:
		r = g.Respawn()
	case ActEatMeal:
		r = g.EatMeal(a.Slot)
	case ActCraft:
		if res := g.Craft(a.Recipe); res != inventory.Crafted {
			return Outcome{Kind: a.Kind, Reason: res.String()}
		}
		r = OK
	case ActEquip:
		r = g.Equip(a.Slot)
	case ActSort:
		mode := inventory.SortRecent
		if a.Sort == "kind" {
			mode = inventory.SortKind
		}
		g.SortInventory(mode)
		r = OK
	case ActMark:
		r = g.MarkSlot(a.Slot, a.Favorite, a.Junk)
	case ActDiscardJunk:
		g.DiscardJunk()
		r = OK
	default:
		r = RejectedInvalid
	}
	out := outcome(a.Kind, r)
	if !out.OK {
		g.emit(Event{Type: EventActionRejected, Detail: string(a.Kind) + ":" + out.Reason})
	}
	return out
}

// Player returns a copy of the player state.
func (g *Game) Player() Player { return g.player }

// Slime returns a copy of the slime with the given id.
func (g *Game) Slime(id int) (Slime, bool) {
	if id < 0 || id >= len(g.slimes) {
		return Slime{}, false
	}
	return g.slimes[id], true
}

// Inventory returns a detached copy of the inventory.
func (g *Game) Inventory() *inventory.Inventory { return g.inv.Clone() }

// FishingState is the profile fishing progress, including an open session.
func (g *Game) FishingState() fishing.State {
	if g.fishing != nil {
		return g.fishing.State()
	}
	return g.fishingState
}
