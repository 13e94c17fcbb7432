// Package geom holds the 2D vector and rectangle math shared by the simulation.
package geom

import "math"

// Vec is a point or displacement in world pixels.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in v's direction, or the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// ClampLen limits the vector magnitude to max.
func (v Vec) ClampLen(max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// RectAround builds a rectangle from a center point and half extents.
func RectAround(center, half Vec) Rect {
	return Rect{
		MinX: center.X - half.X,
		MinY: center.Y - half.Y,
		MaxX: center.X + half.X,
		MaxY: center.Y + half.Y,
	}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) Center() Vec {
	return Vec{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Intersects reports whether two rectangles overlap with positive area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.MinX < o.MaxX && r.MaxX > o.MinX && r.MinY < o.MaxY && r.MaxY > o.MinY
}

func (r Rect) Contains(p Vec) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// CircleRectOverlap reports whether a circle intersects the rectangle. A
// rectangle touching the circle's edge counts.
func CircleRectOverlap(c Vec, radius float64, r Rect) bool {
	closestX := clamp(c.X, r.MinX, r.MaxX)
	closestY := clamp(c.Y, r.MinY, r.MaxY)
	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy <= radius*radius
}

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	return clamp(value, min, max)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
