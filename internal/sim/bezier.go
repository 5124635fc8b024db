package sim

// Cubic is one cubic Bézier segment over four physics points. Inside a
// Chain, P0 and P3 may be the same objects as the neighboring segments'
// endpoints; P1 and P2 belong to this segment alone.
type Cubic struct {
	P0, P1, P2, P3 *PhysicsPoint
}

// PointAt evaluates the Bézier blend at t from the points' current
// positions:
//
//	B(t) = (1−t)³·p0 + 3(1−t)²t·p1 + 3(1−t)t²·p2 + t³·p3
//
// The polynomial is defined for any real t; callers sample in [0, 1].
func (c Cubic) PointAt(t float64) Vec2 {
	mt := 1 - t
	v := c.P0.Pos.Scale(mt * mt * mt)
	v = v.Add(c.P1.Pos.Scale(3 * mt * mt * t))
	v = v.Add(c.P2.Pos.Scale(3 * mt * t * t))
	return v.Add(c.P3.Pos.Scale(t * t * t))
}

// TangentAt evaluates the analytic first derivative at t:
//
//	B'(t) = 3(1−t)²·(p1−p0) + 6(1−t)t·(p2−p1) + 3t²·(p3−p2)
//
// The result is unnormalized; its magnitude is the parametric speed.
// Callers that want a fixed-length arrow normalize it themselves, and
// Vec2.Normalize maps a degenerate (zero) tangent to the zero vector.
func (c Cubic) TangentAt(t float64) Vec2 {
	mt := 1 - t
	v := c.P1.Pos.Sub(c.P0.Pos).Scale(3 * mt * mt)
	v = v.Add(c.P2.Pos.Sub(c.P1.Pos).Scale(6 * mt * t))
	return v.Add(c.P3.Pos.Sub(c.P2.Pos).Scale(3 * t * t))
}
