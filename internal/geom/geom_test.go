package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(0, 0), V(0, 0), 0},
		{"horizontal", V(0, 0), V(3, 0), 3},
		{"vertical", V(0, 0), V(0, 4), 4},
		{"diagonal 3-4-5", V(0, 0), V(3, 4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), 0.001)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec{}, Vec{}.Normalize())

	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 0.0001)
	assert.InDelta(t, 0.8, n.Y, 0.0001)
	assert.InDelta(t, 1.0, n.Len(), 0.0001)
}

func TestClampLen(t *testing.T) {
	assert.Equal(t, V(0.5, 0), V(0.5, 0).ClampLen(1))
	c := V(3, 4).ClampLen(1)
	assert.InDelta(t, 1.0, c.Len(), 0.0001)
}

func TestRectIntersects(t *testing.T) {
	a := RectAround(V(0, 0), V(10, 10))

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlap", RectAround(V(15, 0), V(10, 10)), true},
		{"touching edge", RectAround(V(20, 0), V(10, 10)), false},
		{"apart", RectAround(V(50, 50), V(10, 10)), false},
		{"contained", RectAround(V(0, 0), V(2, 2)), true},
		{"empty", Rect{MinX: 0, MinY: 0, MaxX: 0, MaxY: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.Intersects(tt.other))
			assert.Equal(t, tt.expected, tt.other.Intersects(a))
		})
	}
}

func TestCircleRectOverlap(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	assert.True(t, CircleRectOverlap(V(5, 5), 1, r))
	assert.True(t, CircleRectOverlap(V(14, 5), 5, r))
	assert.False(t, CircleRectOverlap(V(20, 5), 5, r))
	assert.False(t, CircleRectOverlap(V(14, 14), 5, r))
}

func TestCircleRectOverlapBoundary(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	tests := []struct {
		name   string
		center Vec
		radius float64
		want   bool
	}{
		{"touching edge", V(15, 5), 5, true},
		{"just past edge", V(15.01, 5), 5, false},
		{"touching corner", V(13, 14), 5, true},
		{"just past corner", V(13, 14.01), 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CircleRectOverlap(tt.center, tt.radius, r))
		})
	}
}
