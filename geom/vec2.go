// Package geom provides the 2-D vector primitives shared by the world buffers,
// the sensor encoder, and the naive controller. All simulation math is plain
// float64; there is no fixed-point layer here since match outcomes are scored
// against exact thresholds (combat math checks shield/health to the unit).
package geom

import "math"

// Vec2 is a 2-D float64 vector. Values are passed by copy throughout this
// package; none of these operations mutate their receiver.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by factor.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{v.X * factor, v.Y * factor}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared Euclidean length, avoiding the sqrt.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the direction of v. The zero vector
// normalizes to itself rather than producing NaN.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{v.X / length, v.Y / length}
}

// Wrap folds v into the rectangle [0, w) x [0, h) with floored-modulo
// semantics (math.Mod truncates toward zero, so the double-mod handles
// negative inputs). Invariant: the result
// always satisfies 0 <= x < w and 0 <= y < h.
func (v Vec2) Wrap(w, h float64) Vec2 {
	return Vec2{
		X: math.Mod(math.Mod(v.X, w)+w, w),
		Y: math.Mod(math.Mod(v.Y, h)+h, h),
	}
}

// Clamp restricts v to the rectangle [0, w] x [0, h] without wrapping, used by
// Euclidean (non-toroidal) worlds.
func (v Vec2) Clamp(w, h float64) Vec2 {
	return Vec2{
		X: clampAxis(v.X, w),
		Y: clampAxis(v.Y, h),
	}
}

func clampAxis(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// TorusDelta returns the shortest signed (dx, dy) from a to b on a toroidal
// world of size w x h: the raw difference, minus a full span on whichever axis
// exceeds half the span. |dx| <= w/2 and |dy| <= h/2 hold for the result.
func TorusDelta(a, b Vec2, w, h float64) Vec2 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if half := w / 2; dx > half {
		dx -= w
	} else if dx < -half {
		dx += w
	}
	if half := h / 2; dy > half {
		dy -= h
	} else if dy < -half {
		dy += h
	}

	return Vec2{dx, dy}
}

// TorusDistSq returns the squared shortest distance between a and b on a
// toroidal world of size w x h.
func TorusDistSq(a, b Vec2, w, h float64) float64 {
	d := TorusDelta(a, b, w, h)
	return d.X*d.X + d.Y*d.Y
}

// DistanceMode selects how agent-to-agent distance is computed.
type DistanceMode uint8

const (
	// Toroidal wraps the world on both axes; distance is the shortest path
	// across the wrap boundary.
	Toroidal DistanceMode = iota
	// Euclidean uses the raw planar difference with no wrap.
	Euclidean
)

// Delta returns the directed difference from a to b under the given mode.
func Delta(mode DistanceMode, a, b Vec2, w, h float64) Vec2 {
	if mode == Toroidal {
		return TorusDelta(a, b, w, h)
	}
	return b.Sub(a)
}

// DistSq returns the squared distance between a and b under the given mode.
func DistSq(mode DistanceMode, a, b Vec2, w, h float64) float64 {
	d := Delta(mode, a, b, w, h)
	return d.X*d.X + d.Y*d.Y
}
