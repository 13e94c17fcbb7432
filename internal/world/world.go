// Package world holds the static island map and the collision resolver that
// every moving entity goes through.
package world

import (
	"math"

	"github.com/ugaemi/islet-server/internal/geom"
)

// Map dimensions
const (
	DefaultCols = 1000
	DefaultRows = 1000
)

// Tile geometry (pixels)
const (
	TileSize       = 40.0
	SourceTileSize = 32.0 // source sprites are drawn at 32px per tile

	// TrunkDepthInset is carved out of the bottom of a tree trunk so the
	// player's head can overlap it while walking in front of the tree.
	TrunkDepthInset = 20.0

	edgeEpsilon = 0.001
)

// Hitbox half extents (pixels)
var (
	PlayerHalf = geom.V(12, 16)
	SlimeHalf  = geom.V(12, 10)
	BoatHalf   = geom.V(14, 14)
)

// World is the fixed tile grid plus its decorations. It is built once by
// Generate (or New and the Add helpers in tests) and read-only afterwards.
type World struct {
	cols  int
	rows  int
	tiles []Tile

	Trees    []GroundSprite
	Overlays []WorldOverlay
	Rocks    []RockOverlay

	// tile index -> tree/rock index covering that tile
	treeAt      map[int]int
	rockAt      map[int]int
	trunkBottom map[int]struct{}

	playerStart geom.Vec
	slimeSpawns []geom.Vec
}

// New creates a world of cols x rows tiles all set to fill.
func New(cols, rows int, fill Tile) *World {
	w := &World{
		cols:        cols,
		rows:        rows,
		tiles:       make([]Tile, cols*rows),
		treeAt:      make(map[int]int),
		rockAt:      make(map[int]int),
		trunkBottom: make(map[int]struct{}),
	}
	for i := range w.tiles {
		w.tiles[i] = fill
	}
	w.playerStart = geom.V(float64(cols)*TileSize/2, float64(rows)*TileSize/2)
	return w
}

func (w *World) Cols() int { return w.cols }
func (w *World) Rows() int { return w.rows }

// PixelSize returns the world extent in pixels.
func (w *World) PixelSize() geom.Vec {
	return geom.V(float64(w.cols)*TileSize, float64(w.rows)*TileSize)
}

func (w *World) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < w.cols && row < w.rows
}

func (w *World) index(col, row int) int {
	return row*w.cols + col
}

// At returns the tile at a grid coordinate. Out-of-bounds reads return Ocean.
func (w *World) At(col, row int) Tile {
	if !w.inBounds(col, row) {
		return Ocean
	}
	return w.tiles[w.index(col, row)]
}

// SetTile changes a tile. Only used while building the world.
func (w *World) SetTile(col, row int, t Tile) {
	if w.inBounds(col, row) {
		w.tiles[w.index(col, row)] = t
	}
}

// TileCoord converts a pixel position into its grid coordinate.
func TileCoord(p geom.Vec) (col, row int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Y / TileSize))
}

// TileRect is the pixel rectangle of a grid cell.
func TileRect(col, row int) geom.Rect {
	return geom.Rect{
		MinX: float64(col) * TileSize,
		MinY: float64(row) * TileSize,
		MaxX: float64(col+1) * TileSize,
		MaxY: float64(row+1) * TileSize,
	}
}

// TileCenter is the pixel center of a grid cell.
func TileCenter(col, row int) geom.Vec {
	return geom.V((float64(col)+0.5)*TileSize, (float64(row)+0.5)*TileSize)
}

// TileAt returns the tile under a pixel position.
func (w *World) TileAt(p geom.Vec) Tile {
	return w.At(TileCoord(p))
}

// AddTree places a 2x2 trunk with its top-left tile at (col, row). The tiles
// underneath become Rock. Returns false if any footprint tile is out of bounds
// or already covered.
func (w *World) AddTree(col, row int, kind TreeKind) bool {
	if !w.footprintFree(col, row) {
		return false
	}
	idx := len(w.Trees)
	w.Trees = append(w.Trees, GroundSprite{Col: col, Row: row, Kind: kind})
	for dr := 0; dr < 2; dr++ {
		for dc := 0; dc < 2; dc++ {
			i := w.index(col+dc, row+dr)
			w.tiles[i] = Rock
			w.treeAt[i] = idx
			if dr == 1 {
				w.trunkBottom[i] = struct{}{}
			}
		}
	}
	return true
}

// AddRock places a rock overlay. The tiles keep their type.
func (w *World) AddRock(col, row int, kind RockKind) bool {
	if !w.footprintFree(col, row) {
		return false
	}
	idx := len(w.Rocks)
	w.Rocks = append(w.Rocks, RockOverlay{Col: col, Row: row, Kind: kind})
	for dr := 0; dr < 2; dr++ {
		for dc := 0; dc < 2; dc++ {
			w.rockAt[w.index(col+dc, row+dr)] = idx
		}
	}
	return true
}

// AddOverlay places a visual-only decoration.
func (w *World) AddOverlay(col, row int, kind OverlayKind) {
	w.Overlays = append(w.Overlays, WorldOverlay{Col: col, Row: row, Kind: kind})
}

func (w *World) footprintFree(col, row int) bool {
	for dr := 0; dr < 2; dr++ {
		for dc := 0; dc < 2; dc++ {
			if !w.inBounds(col+dc, row+dr) {
				return false
			}
			i := w.index(col+dc, row+dr)
			if _, ok := w.treeAt[i]; ok {
				return false
			}
			if _, ok := w.rockAt[i]; ok {
				return false
			}
		}
	}
	return true
}

func (w *World) SetPlayerStart(p geom.Vec) { w.playerStart = p }

func (w *World) PlayerStart() geom.Vec { return w.playerStart }

func (w *World) AddSlimeSpawn(p geom.Vec) { w.slimeSpawns = append(w.slimeSpawns, p) }

// SlimeSpawns returns a copy of the slime spawn points. The index is the slime id.
func (w *World) SlimeSpawns() []geom.Vec {
	out := make([]geom.Vec, len(w.slimeSpawns))
	copy(out, w.slimeSpawns)
	return out
}

// TreeIn returns the first tree whose footprint intersects box.
func (w *World) TreeIn(box geom.Rect) (GroundSprite, bool) {
	var found GroundSprite
	ok := false
	w.eachTile(box, func(col, row int) bool {
		if !w.inBounds(col, row) {
			return true
		}
		if idx, hit := w.treeAt[w.index(col, row)]; hit {
			found, ok = w.Trees[idx], true
			return false
		}
		return true
	})
	return found, ok
}

// RockIn returns the first rock whose full collision rectangle intersects box.
func (w *World) RockIn(box geom.Rect) (RockOverlay, bool) {
	for _, idx := range w.rocksNear(box) {
		r := w.Rocks[idx]
		if r.CollisionRect().Intersects(box) {
			return r, true
		}
	}
	return RockOverlay{}, false
}

// WaterIn reports whether any tile touching box is swimmable.
func (w *World) WaterIn(box geom.Rect) bool {
	water := false
	w.eachTile(box, func(col, row int) bool {
		if w.At(col, row).Swimmable() {
			water = true
			return false
		}
		return true
	})
	return water
}

// eachTile visits every grid cell overlapped by box. The trailing edges are
// pulled in by a small epsilon so a box ending exactly on a tile boundary does
// not count the next tile. Returning false from fn stops the scan.
func (w *World) eachTile(box geom.Rect, fn func(col, row int) bool) {
	c0 := int(math.Floor(box.MinX / TileSize))
	c1 := int(math.Floor((box.MaxX - edgeEpsilon) / TileSize))
	r0 := int(math.Floor(box.MinY / TileSize))
	r1 := int(math.Floor((box.MaxY - edgeEpsilon) / TileSize))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !fn(col, row) {
				return
			}
		}
	}
}

// rocksNear returns the distinct rocks whose footprint shares a tile with box.
func (w *World) rocksNear(box geom.Rect) []int {
	if len(w.rockAt) == 0 {
		return nil
	}
	var out []int
	w.eachTile(box, func(col, row int) bool {
		if !w.inBounds(col, row) {
			return true
		}
		idx, ok := w.rockAt[w.index(col, row)]
		if !ok {
			return true
		}
		for _, seen := range out {
			if seen == idx {
				return true
			}
		}
		out = append(out, idx)
		return true
	})
	return out
}
