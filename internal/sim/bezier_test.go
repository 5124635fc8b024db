package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cubicAt(p0, p1, p2, p3 Vec2) Cubic {
	mk := func(v Vec2) *PhysicsPoint { return newPhysicsPoint(v.X, v.Y, false) }
	return Cubic{P0: mk(p0), P1: mk(p1), P2: mk(p2), P3: mk(p3)}
}

func TestPointAtEndpoints(t *testing.T) {
	c := cubicAt(Vec2{0, 50}, Vec2{30, 10}, Vec2{70, 90}, Vec2{100, 50})
	assert.Equal(t, c.P0.Pos, c.PointAt(0))
	assert.Equal(t, c.P3.Pos, c.PointAt(1))
}

func TestTangentAtEndpoints(t *testing.T) {
	c := cubicAt(Vec2{0, 0}, Vec2{10, 20}, Vec2{60, -20}, Vec2{100, 0})

	// B'(0) = 3·(p1−p0), B'(1) = 3·(p3−p2): positive multiples of the
	// leading and trailing control legs.
	assert.Equal(t, c.P1.Pos.Sub(c.P0.Pos).Scale(3), c.TangentAt(0))
	assert.Equal(t, c.P3.Pos.Sub(c.P2.Pos).Scale(3), c.TangentAt(1))
}

func TestPointAtStaysInControlBounds(t *testing.T) {
	c := cubicAt(Vec2{-20, 5}, Vec2{10, 80}, Vec2{55, -40}, Vec2{90, 30})

	minX, maxX := -20.0, 90.0
	minY, maxY := -40.0, 80.0
	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100
		p := c.PointAt(tt)
		if p.X < minX-1e-9 || p.X > maxX+1e-9 || p.Y < minY-1e-9 || p.Y > maxY+1e-9 {
			t.Fatalf("PointAt(%g) = %v escapes the control hull bounds", tt, p)
		}
	}
}

func TestTangentMatchesFiniteDifference(t *testing.T) {
	c := cubicAt(Vec2{0, 0}, Vec2{25, 90}, Vec2{75, -30}, Vec2{120, 40})

	const h = 1e-6
	for i := 1; i < 10; i++ {
		tt := float64(i) / 10
		want := c.PointAt(tt + h).Sub(c.PointAt(tt - h)).Scale(1 / (2 * h))
		got := c.TangentAt(tt)
		assert.InDelta(t, want.X, got.X, 1e-4, "t=%g", tt)
		assert.InDelta(t, want.Y, got.Y, 1e-4, "t=%g", tt)
	}
}

func TestDegenerateTangentNormalizesToZero(t *testing.T) {
	p := Vec2{42, 17}
	c := cubicAt(p, p, p, p)

	dir := c.TangentAt(0.5)
	assert.Equal(t, Vec2{}, dir.Normalize())
	assert.False(t, math.IsNaN(dir.Normalize().X))
}

func TestPointAtExtrapolatesWithoutError(t *testing.T) {
	c := cubicAt(Vec2{0, 0}, Vec2{10, 10}, Vec2{20, 10}, Vec2{30, 0})
	for _, tt := range []float64{-0.5, 1.5, 2} {
		p := c.PointAt(tt)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "t=%g", tt)
	}
}
