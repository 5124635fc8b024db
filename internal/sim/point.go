package sim

// PhysicsPoint is a unit-mass point pulled toward Target by a damped
// spring. Fixed points never integrate; they snap to Target every step.
type PhysicsPoint struct {
	Pos    Vec2
	Vel    Vec2
	Target Vec2
	Fixed  bool
}

func newPhysicsPoint(x, y float64, fixed bool) *PhysicsPoint {
	return &PhysicsPoint{
		Pos:    Vec2{X: x, Y: y},
		Target: Vec2{X: x, Y: y},
		Fixed:  fixed,
	}
}

// SetTarget replaces the point's target. It takes effect on the next
// Step, never immediately.
func (p *PhysicsPoint) SetTarget(x, y float64) {
	p.Target = Vec2{X: x, Y: y}
}

// Step advances the point one frame. Explicit Euler with unit mass and
// a time step of one frame unit; the constants assume a 60 Hz cadence.
// Stiffness/damping outside the recommended window can diverge — Step
// does not clamp the integrator.
func (p *PhysicsPoint) Step(cfg Params) {
	if p.Fixed || !cfg.PhysicsEnabled {
		p.Pos = p.Target
		p.Vel = Vec2{}
		return
	}
	disp := p.Pos.Sub(p.Target)
	accel := disp.Scale(-cfg.Stiffness).Add(p.Vel.Scale(-cfg.Damping))
	p.Vel = p.Vel.Add(accel)
	p.Pos = p.Pos.Add(p.Vel)
}
