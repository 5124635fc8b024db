package sim

const (
	SimHz        = 60.0 // frame rate the spring constants are tuned for
	Dt           = 1.0 / SimHz
	UpdateRateHz = 30.0 // per-client WS state pushes

	DefaultWorldW = 900.0
	DefaultWorldH = 600.0

	MaxSegments      = 64
	MaxSampleCount   = 256
	DefaultSegments  = 4
	DefaultStiffness = 0.15
	DefaultDamping   = 0.85
	DefaultTanLen    = 28.0
	DefaultTanCount  = 8
	DefaultSamples   = 24

	// Recommended integrator window. Constants outside it can make the
	// explicit Euler step diverge; Step does not clamp them, so these
	// bounds are advertised to clients only.
	MinStiffness = 0.01
	MaxStiffness = 0.5
	MinDamping   = 0.5
	MaxDamping   = 0.99
)

// Params is the full hot-reloadable configuration surface. A value is
// passed into every update call; nothing in the core reads ambient
// state, so a new Params takes effect on the next tick.
type Params struct {
	Stiffness      float64
	Damping        float64
	PhysicsEnabled bool
	TangentLength  float64
	TangentCount   int
	CurveSamples   int
	SegmentCount   int
}

func DefaultParams() Params {
	return Params{
		Stiffness:      DefaultStiffness,
		Damping:        DefaultDamping,
		PhysicsEnabled: true,
		TangentLength:  DefaultTanLen,
		TangentCount:   DefaultTanCount,
		CurveSamples:   DefaultSamples,
		SegmentCount:   DefaultSegments,
	}
}

// SanitizeParams bounds the sampling and topology fields. Stiffness and
// damping are deliberately left alone: an out-of-range integrator is a
// documented boundary condition, not something to repair silently.
func SanitizeParams(p Params) Params {
	if p.TangentLength < 0 {
		p.TangentLength = 0
	}
	p.TangentCount = clampInt(p.TangentCount, 2, MaxSampleCount)
	p.CurveSamples = clampInt(p.CurveSamples, 1, MaxSampleCount)
	p.SegmentCount = clampInt(p.SegmentCount, 1, MaxSegments)
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
