package sim

import "math"

// normalizeEps guards Normalize against coincident control points
// producing a zero-length direction.
const normalizeEps = 1e-10

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }

// Lerp linearly interpolates from a to b.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Normalize returns a unit vector with a's direction, or the zero
// vector when a is shorter than normalizeEps.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l < normalizeEps {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
