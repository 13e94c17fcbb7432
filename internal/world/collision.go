package world

import "github.com/ugaemi/islet-server/internal/geom"

// Policy selects which obstacles a moving body respects.
type Policy int

const (
	// Walk is the player on foot or swimming: tiles that are neither walkable
	// nor swimmable block, with the trunk and rock depth carve-outs for
	// player-sized bodies.
	Walk Policy = iota
	// Land is used by slimes: only walkable tiles, full rock rectangles.
	Land
	// Sail is the boat: only swimmable tiles, no decorations.
	Sail
	// Projectile is used by spells: same tiles as Walk, full rock rectangles.
	Projectile
)

// KnockbackSteps is the number of sub-steps a knockback is split into.
const KnockbackSteps = 4

func isPlayerSized(half geom.Vec) bool {
	return half == PlayerHalf
}

// Blocked reports whether a body with the given half extents centered at
// center would overlap an obstacle under the policy.
func (w *World) Blocked(center, half geom.Vec, p Policy) bool {
	box := geom.RectAround(center, half)
	size := w.PixelSize()
	if box.MinX < 0 || box.MinY < 0 || box.MaxX > size.X || box.MaxY > size.Y {
		return true
	}
	player := isPlayerSized(half) && p == Walk

	blocked := false
	w.eachTile(box, func(col, row int) bool {
		t := w.At(col, row)
		switch p {
		case Sail:
			blocked = !t.Swimmable()
		case Land:
			blocked = !t.Walkable()
		default:
			if t.Walkable() || t.Swimmable() {
				return true
			}
			blocked = true
			if player && w.isTrunkBottom(col, row) {
				carved := TileRect(col, row)
				carved.MaxY -= TrunkDepthInset
				blocked = box.Intersects(carved)
			}
		}
		return !blocked
	})
	if blocked || p == Sail {
		return blocked
	}

	for _, idx := range w.rocksNear(box) {
		r := w.Rocks[idx]
		rect := r.CollisionRect()
		if player {
			rect = r.DepthRect(center.Y)
		}
		if box.Intersects(rect) {
			return true
		}
	}
	return false
}

func (w *World) isTrunkBottom(col, row int) bool {
	if !w.inBounds(col, row) {
		return false
	}
	_, ok := w.trunkBottom[w.index(col, row)]
	return ok
}

// Resolve converts an intended displacement into an actual one. The full move
// is tried first; if blocked, the X and Y components are tried on their own so
// a body slides along walls instead of stopping dead. An axis that cannot move
// is left unchanged.
func (w *World) Resolve(pos, delta, half geom.Vec, p Policy) geom.Vec {
	if delta.IsZero() {
		return pos
	}
	if target := pos.Add(delta); !w.Blocked(target, half, p) {
		return target
	}

	out := pos
	if delta.X != 0 {
		if next := geom.V(pos.X+delta.X, out.Y); !w.Blocked(next, half, p) {
			out = next
		}
	}
	if delta.Y != 0 {
		if next := geom.V(out.X, pos.Y+delta.Y); !w.Blocked(next, half, p) {
			out = next
		}
	}
	return out
}

// Knockback pushes a body dist pixels along dir in KnockbackSteps sub-steps,
// stopping at the first sub-step that would collide.
func (w *World) Knockback(pos, dir geom.Vec, dist float64, half geom.Vec, p Policy) geom.Vec {
	dir = dir.Normalize()
	if dir.IsZero() || dist <= 0 {
		return pos
	}
	step := dir.Scale(dist / KnockbackSteps)
	for i := 0; i < KnockbackSteps; i++ {
		next := pos.Add(step)
		if w.Blocked(next, half, p) {
			break
		}
		pos = next
	}
	return pos
}
