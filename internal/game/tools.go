package game

import (
	"log/slog"

	"github.com/ugaemi/islet-server/internal/fishing"
	"github.com/ugaemi/islet-server/internal/geom"
	"github.com/ugaemi/islet-server/internal/inventory"
	"github.com/ugaemi/islet-server/internal/item"
)

// Gathering odds for the secondary drop of a tool use.
const (
	fiberChance = 0.3
	scrapChance = 0.15
)

// EquipTool puts a tool in hand.
func (g *Game) EquipTool(t item.Tool) Result {
	if r := g.ready(); r != OK {
		return r
	}
	if t < item.Sword || t > item.FishingRod {
		return RejectedInvalid
	}
	p := &g.player
	if p.Attacking || p.Charging {
		return RejectedBusy
	}
	p.Tool = t
	return OK
}

// UseTool uses whatever is in hand: swing the sword, chop the tree or break
// the rock in front of the player, or cast the rod into the water.
func (g *Game) UseTool() Result {
	if r := g.ready(); r != OK {
		return r
	}
	p := &g.player
	switch p.Tool {
	case item.Sword:
		return g.Attack()
	case item.FishingRod:
		return g.startFishing()
	}

	switch {
	case p.Swimming:
		return RejectedInWater
	case p.Sailing:
		return RejectedSailing
	case p.Attacking, p.Charging, p.Blocking:
		return RejectedBusy
	}
	probe := g.toolProbe()
	tier := g.inv.ToolTier(p.Tool)
	var gained []item.Item
	switch p.Tool {
	case item.Axe:
		if _, ok := g.world.TreeIn(probe); !ok {
			return RejectedNoTarget
		}
		gained = append(gained, item.NewResource(item.Wood, 1+tier))
		if g.rng.Float64() < fiberChance {
			gained = append(gained, item.NewResource(item.Fiber, 1))
		}
	case item.Pickaxe:
		if _, ok := g.world.RockIn(probe); !ok {
			return RejectedNoTarget
		}
		gained = append(gained, item.NewResource(item.Stone, 1+tier))
		if g.rng.Float64() < scrapChance {
			gained = append(gained, item.NewResource(item.Scrap, 1))
		}
	}

	// The tool swing reuses the attack timer but deals no damage.
	p.Attacking = true
	p.AttackTime = g.tuning.Combat.AttackDuration
	p.AttackCharged = false
	p.AttackDamage = 0
	for _, it := range gained {
		g.gain(it)
	}
	return OK
}

func (g *Game) toolProbe() geom.Rect {
	p := &g.player
	center := p.Pos.Add(p.Facing.Vec().Scale(ToolReach))
	return geom.RectAround(center, geom.V(ToolProbeHalf, ToolProbeHalf))
}

// gain puts an item in the inventory, reporting a loss when it does not fit.
func (g *Game) gain(it item.Item) bool {
	if it.Kind == item.KindResource {
		left := g.inv.AddResource(it.Resource, it.Quantity)
		if left < it.Quantity {
			g.emitItem(EventItemGained, item.NewResource(it.Resource, it.Quantity-left), "")
		}
		if left > 0 {
			g.emitItem(EventItemLost, item.NewResource(it.Resource, left), RejectedInventoryFull.String())
			return false
		}
		return true
	}
	if !g.inv.Add(it) {
		g.emitItem(EventItemLost, it, RejectedInventoryFull.String())
		return false
	}
	g.emitItem(EventItemGained, it, "")
	return true
}

func (g *Game) startFishing() Result {
	p := &g.player
	switch {
	case p.Swimming:
		return RejectedInWater
	case p.Attacking, p.Charging, p.Blocking:
		return RejectedBusy
	}
	if !p.Sailing && !g.world.WaterIn(g.toolProbe()) {
		return RejectedNoTarget
	}
	p.Sprinting = false
	p.cancelDash()
	g.input = geom.Vec{}
	g.fishing = fishing.NewSession(g.tuning.Fishing, g.fishingState, g.inv.Fortune(), g.inv.CollectedArmor(), g.rng)
	g.emit(Event{Type: EventFishingStarted, Amount: g.fishing.Remaining()})
	slog.Debug("fishing started", "slot", g.slot, "catches", g.fishing.Remaining(), "level", g.fishing.LootLevel())
	return OK
}

// FishingAttempt judges the indicator of the open fishing session.
func (g *Game) FishingAttempt() Result {
	sess := g.fishing
	if sess == nil {
		return RejectedNotFishing
	}
	c, ok := sess.Attempt()
	if !ok {
		return RejectedBusy
	}
	e := Event{Type: EventFishingResult, Detail: c.Result.String(), Amount: sess.Combo()}
	if !c.Item.IsEmpty() {
		it := c.Item
		e.Item = &it
	}
	g.emit(e)
	if !c.Item.IsEmpty() {
		g.gain(c.Item)
	}
	if sess.Complete() {
		g.sched.after(g.tick, FishingResultTicks, func() {
			if g.fishing == sess {
				g.closeFishing()
			}
		})
	}
	return OK
}

// CloseFishing ends the open session right away.
func (g *Game) CloseFishing() Result {
	if g.fishing == nil {
		return RejectedNotFishing
	}
	g.fishing.Abandon()
	g.closeFishing()
	return OK
}

// closeFishing merges the session progress into the profile state.
func (g *Game) closeFishing() {
	sess := g.fishing
	if sess == nil {
		return
	}
	g.fishingState = sess.State()
	g.fishing = nil
	g.emit(Event{Type: EventFishingEnded, Amount: g.fishingState.TotalCatches})
	slog.Debug("fishing ended", "slot", g.slot, "total", g.fishingState.TotalCatches, "level", g.fishingState.Level)
}

// Craft runs a recipe. A crafted sailboat is moored right away.
func (g *Game) Craft(id string) inventory.CraftResult {
	if g.player.Dead {
		return inventory.CraftLocked
	}
	res := g.inv.Craft(id)
	if res != inventory.Crafted {
		return res
	}
	g.emit(Event{Type: EventCrafted, Detail: id})
	if g.inv.HasUpgrade(item.Sailboat) {
		g.placeBoat()
	}
	return res
}

// EatMeal eats the meal in a meal slot.
func (g *Game) EatMeal(slot int) Result {
	p := &g.player
	if p.Dead {
		return RejectedDead
	}
	eff, ok := g.inv.EatMeal(slot)
	if !ok {
		return RejectedInvalid
	}
	p.Health = min(p.MaxHealth, p.Health+eff.Hearts)
	p.Stamina = min(p.MaxStamina, p.Stamina+eff.Stamina)
	p.Magic = min(p.MaxMagic, p.Magic+eff.Magic)
	g.emit(Event{Type: EventMealEaten, Amount: slot})
	return OK
}

// Equip wears the armor piece or accessory in an inventory slot.
func (g *Game) Equip(slot int) Result {
	if g.player.Dead {
		return RejectedDead
	}
	if slot < 0 || slot >= inventory.SlotCount {
		return RejectedInvalid
	}
	var ok bool
	switch g.inv.Slots[slot].Item.Kind {
	case item.KindArmor:
		ok = g.inv.EquipArmor(slot)
	case item.KindAccessory:
		ok = g.inv.EquipAccessory(slot)
	}
	if !ok {
		return RejectedInvalid
	}
	return OK
}

// SortInventory reorders the general slots.
func (g *Game) SortInventory(mode inventory.SortMode) {
	g.inv.Sort(mode)
}

// MarkSlot sets the favorite or junk flag of a slot.
func (g *Game) MarkSlot(slot int, favorite, junk bool) Result {
	if !g.inv.SetFavorite(slot, favorite) || !g.inv.SetJunk(slot, junk) {
		return RejectedInvalid
	}
	return OK
}

// DiscardJunk empties every junk-flagged slot.
func (g *Game) DiscardJunk() int {
	return g.inv.DiscardJunk()
}
