package sim

import "fmt"

// Control point fractions along a segment's horizontal span.
const (
	ctrl1Frac = 1.0 / 3.0
	ctrl2Frac = 2.0 / 3.0
)

// TangentSample pairs a curve point with the unnormalized derivative at
// the same parameter value.
type TangentSample struct {
	Point Vec2
	Dir   Vec2
}

// Chain is a row of cubic segments wired end to end: Curves[i].P3 is
// the same *PhysicsPoint as Curves[i+1].P0. The flat point pool holds
// every point exactly once, so one Update integrates a shared junction
// a single time no matter how many segments reference it.
type Chain struct {
	Curves []Cubic

	Width  float64
	Height float64

	points []*PhysicsPoint
	rest   []Vec2 // layout positions, for relaxing targets
}

// NewChain lays out segments left to right across width, with each
// segment's interior controls at thirds of its span and everything at
// vertical center. The chain's outermost endpoints are fixed; junctions
// and interior controls are free.
func NewChain(segments int, width, height float64) (*Chain, error) {
	if segments < 1 {
		return nil, fmt.Errorf("chain: segment count %d, need at least 1", segments)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("chain: canvas %gx%g, dimensions must be positive", width, height)
	}

	ch := &Chain{Width: width, Height: height}
	span := width / float64(segments)
	midY := height * 0.5

	var prev *PhysicsPoint
	for i := 0; i < segments; i++ {
		x0 := float64(i) * span
		p0 := prev
		if p0 == nil {
			p0 = newPhysicsPoint(x0, midY, true)
			ch.points = append(ch.points, p0)
		}
		p1 := newPhysicsPoint(x0+span*ctrl1Frac, midY, false)
		p2 := newPhysicsPoint(x0+span*ctrl2Frac, midY, false)
		p3 := newPhysicsPoint(x0+span, midY, i == segments-1)
		ch.points = append(ch.points, p1, p2, p3)
		ch.Curves = append(ch.Curves, Cubic{P0: p0, P1: p1, P2: p2, P3: p3})
		prev = p3
	}

	ch.rest = make([]Vec2, len(ch.points))
	for i, p := range ch.points {
		ch.rest[i] = p.Pos
	}
	return ch, nil
}

// Update advances every control point one frame. Each pooled point is
// stepped exactly once per call.
func (ch *Chain) Update(cfg Params) {
	for _, p := range ch.points {
		p.Step(cfg)
	}
}

// Points returns the pooled control points in layout order: the left
// endpoint first, then P1, P2, P3 of each segment. Callers may mutate
// targets only.
func (ch *Chain) Points() []*PhysicsPoint { return ch.points }

// SetTarget retargets the pooled point at index i. Reports whether the
// index was addressable.
func (ch *Chain) SetTarget(i int, x, y float64) bool {
	if i < 0 || i >= len(ch.points) {
		return false
	}
	ch.points[i].SetTarget(x, y)
	return true
}

// Relax restores every point's target to its layout position, letting
// the chain spring back to rest.
func (ch *Chain) Relax() {
	for i, p := range ch.points {
		p.Target = ch.rest[i]
	}
}

// SamplePoints returns perCurve+1 evenly spaced curve points for every
// segment, t = 0, 1/N, …, 1, recomputed from the current control
// positions.
func (ch *Chain) SamplePoints(perCurve int) []Vec2 {
	if perCurve < 1 {
		perCurve = 1
	}
	out := make([]Vec2, 0, len(ch.Curves)*(perCurve+1))
	for _, c := range ch.Curves {
		for s := 0; s <= perCurve; s++ {
			out = append(out, c.PointAt(float64(s)/float64(perCurve)))
		}
	}
	return out
}

// SampleTangents returns perCurve evenly spaced tangent samples per
// segment, endpoints included. Directions are left unnormalized.
func (ch *Chain) SampleTangents(perCurve int) []TangentSample {
	if perCurve < 2 {
		perCurve = 2
	}
	out := make([]TangentSample, 0, len(ch.Curves)*perCurve)
	for _, c := range ch.Curves {
		for s := 0; s < perCurve; s++ {
			t := float64(s) / float64(perCurve-1)
			out = append(out, TangentSample{Point: c.PointAt(t), Dir: c.TangentAt(t)})
		}
	}
	return out
}
