package world

import "github.com/ugaemi/islet-server/internal/geom"

// TreeKind selects the sprite of a tree trunk.
type TreeKind uint8

const (
	Palm TreeKind = iota
	Oak
)

// GroundSprite is a 2x2 tile decoration that blocks movement, e.g. a tree trunk.
// The tiles underneath are always Rock.
type GroundSprite struct {
	Col  int      `json:"col"`
	Row  int      `json:"row"`
	Kind TreeKind `json:"kind"`
}

func (g GroundSprite) Footprint() geom.Rect {
	return footprint(g.Col, g.Row)
}

// OverlayKind selects a purely visual decoration.
type OverlayKind uint8

const (
	Bush OverlayKind = iota
	Flowers
	TallGrass
)

// WorldOverlay is a 2x2 visual decoration with no collision. It only matters for
// draw ordering against the player.
type WorldOverlay struct {
	Col  int         `json:"col"`
	Row  int         `json:"row"`
	Kind OverlayKind `json:"kind"`
}

// RockKind selects a rock sprite and its collision insets.
type RockKind uint8

const (
	RockSmall RockKind = iota
	RockLarge
	RockMossy
)

func (k RockKind) String() string {
	switch k {
	case RockSmall:
		return "small"
	case RockLarge:
		return "large"
	case RockMossy:
		return "mossy"
	default:
		return "unknown"
	}
}

// CollisionBounds are pixel insets measured on the 32px-per-tile source sprite.
type CollisionBounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Hand-tuned against the source sprites. Keep the literal values.
var rockBounds = map[RockKind]CollisionBounds{
	RockSmall: {Left: 14, Right: 14, Top: 28, Bottom: 10},
	RockLarge: {Left: 6, Right: 6, Top: 16, Bottom: 6},
	RockMossy: {Left: 10, Right: 8, Top: 22, Bottom: 8},
}

// Bounds returns the collision insets for the rock kind.
func (k RockKind) Bounds() CollisionBounds {
	return rockBounds[k]
}

// RockOverlay is a 2x2 rock drawn over grass. Its collision is an inset
// rectangle narrower than the footprint.
type RockOverlay struct {
	Col  int      `json:"col"`
	Row  int      `json:"row"`
	Kind RockKind `json:"kind"`
}

func (r RockOverlay) Footprint() geom.Rect {
	return footprint(r.Col, r.Row)
}

// CollisionRect is the full (non-depth) collision rectangle, used by enemies,
// projectiles and tool hit tests.
func (r RockOverlay) CollisionRect() geom.Rect {
	fp := r.Footprint()
	b := r.Kind.Bounds()
	s := TileSize / SourceTileSize
	return geom.Rect{
		MinX: fp.MinX + b.Left*s,
		MinY: fp.MinY + b.Top*s,
		MaxX: fp.MaxX - b.Right*s,
		MaxY: fp.MaxY - b.Bottom*s,
	}
}

// DepthRect is the collision rectangle as seen by an entity whose center is at y.
// An entity below the rock's vertical midpoint is drawn in front of it, so only
// the upper half blocks and its head may overlap the lower half. An entity
// above the midpoint gets the full rectangle and cannot walk behind the rock.
func (r RockOverlay) DepthRect(y float64) geom.Rect {
	rect := r.CollisionRect()
	mid := (rect.MinY + rect.MaxY) / 2
	if y >= mid {
		rect.MaxY = mid
	}
	return rect
}

func footprint(col, row int) geom.Rect {
	return geom.Rect{
		MinX: float64(col) * TileSize,
		MinY: float64(row) * TileSize,
		MaxX: float64(col+2) * TileSize,
		MaxY: float64(row+2) * TileSize,
	}
}
