package game

import (
	"math"

	"github.com/ugaemi/islet-server/internal/geom"
)

// Facing is the 4-way direction the player looks in.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// MarshalText serializes Facing as a string.
func (f Facing) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Vec is the unit vector of the facing direction.
func (f Facing) Vec() geom.Vec {
	switch f {
	case FacingUp:
		return geom.V(0, -1)
	case FacingLeft:
		return geom.V(-1, 0)
	case FacingRight:
		return geom.V(1, 0)
	default:
		return geom.V(0, 1)
	}
}

// FacingFrom derives the facing from a movement vector. The dominant axis
// wins; ties go to the horizontal axis. A zero vector keeps current.
func FacingFrom(v geom.Vec, current Facing) Facing {
	if v.IsZero() {
		return current
	}
	if math.Abs(v.X) >= math.Abs(v.Y) {
		if v.X < 0 {
			return FacingLeft
		}
		return FacingRight
	}
	if v.Y < 0 {
		return FacingUp
	}
	return FacingDown
}
