package world

import (
	"math"
	"math/rand"
)

// GenConfig controls island generation.
type GenConfig struct {
	Seed     int64
	Cols     int
	Rows     int
	Trees    int
	Rocks    int
	Overlays int
	Slimes   int
}

// DefaultGenConfig returns the full-size island settings.
func DefaultGenConfig(seed int64) GenConfig {
	return GenConfig{
		Seed:     seed,
		Cols:     DefaultCols,
		Rows:     DefaultRows,
		Trees:    4000,
		Rocks:    1500,
		Overlays: 3000,
		Slimes:   120,
	}
}

const (
	islandRadius     = 0.42 // fraction of the smaller map side
	beachBand        = 0.07 // fraction of the local radius
	shoreBuckets     = 72
	startClearRadius = 4  // tiles kept free of decorations around the start
	slimeMinStart    = 12 // tiles between the start and any slime spawn
	maxPlaceAttempts = 50
)

// Generate builds a deterministic island from cfg.Seed.
func Generate(cfg GenConfig) *World {
	rng := rand.New(rand.NewSource(cfg.Seed))
	w := New(cfg.Cols, cfg.Rows, Ocean)

	shore := make([]float64, shoreBuckets)
	for i := range shore {
		shore[i] = 0.85 + rng.Float64()*0.15
	}

	cx, cy := float64(cfg.Cols)/2, float64(cfg.Rows)/2
	base := islandRadius * math.Min(float64(cfg.Cols), float64(cfg.Rows))
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			dx := float64(col) + 0.5 - cx
			dy := float64(row) + 0.5 - cy
			r := base * shoreAt(shore, math.Atan2(dy, dx))
			d := math.Hypot(dx, dy) / r
			switch {
			case d < 1-beachBand:
				w.SetTile(col, row, Grass)
			case d < 1:
				w.SetTile(col, row, Beach)
			}
		}
	}

	startCol, startRow := int(cx), int(cy)
	w.SetPlayerStart(TileCenter(startCol, startRow))
	nearStart := func(col, row, radius int) bool {
		return abs(col-startCol) <= radius && abs(row-startRow) <= radius
	}

	grass2x2 := func(col, row int) bool {
		for dr := 0; dr < 2; dr++ {
			for dc := 0; dc < 2; dc++ {
				if w.At(col+dc, row+dr) != Grass {
					return false
				}
			}
		}
		return true
	}

	place := func(n int, fn func(col, row int) bool) {
		for i := 0; i < n; i++ {
			for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
				col, row := rng.Intn(cfg.Cols-1), rng.Intn(cfg.Rows-1)
				if nearStart(col, row, startClearRadius) || !grass2x2(col, row) {
					continue
				}
				if fn(col, row) {
					break
				}
			}
		}
	}

	place(cfg.Trees, func(col, row int) bool {
		return w.AddTree(col, row, TreeKind(rng.Intn(2)))
	})
	place(cfg.Rocks, func(col, row int) bool {
		return w.AddRock(col, row, RockKind(rng.Intn(3)))
	})
	place(cfg.Overlays, func(col, row int) bool {
		w.AddOverlay(col, row, OverlayKind(rng.Intn(3)))
		return true
	})

	for i := 0; i < cfg.Slimes; i++ {
		for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
			col, row := rng.Intn(cfg.Cols), rng.Intn(cfg.Rows)
			if nearStart(col, row, slimeMinStart) || w.At(col, row) != Grass {
				continue
			}
			p := TileCenter(col, row)
			if w.Blocked(p, SlimeHalf, Land) {
				continue
			}
			w.AddSlimeSpawn(p)
			break
		}
	}

	return w
}

// shoreAt linearly interpolates the shoreline jitter for an angle.
func shoreAt(shore []float64, angle float64) float64 {
	f := (angle + math.Pi) / (2 * math.Pi) * float64(len(shore))
	i := int(math.Floor(f)) % len(shore)
	j := (i + 1) % len(shore)
	t := f - math.Floor(f)
	return shore[i]*(1-t) + shore[j]*t
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
