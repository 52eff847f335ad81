package springline

// Spring tuning. Both must stay in (0, 1): stiffness at or above 1 overshoots
// without bound, damping at or above 1 never bleeds off velocity, and either
// at 0 freezes the point. The values are tuned for a ~60 Hz tick; Step is
// deliberately per-frame (no delta time), so running at a different tick rate
// changes the feel rather than the math.
const (
	DefaultStiffness = 0.15
	DefaultDamping   = 0.85
)

// Spring integrates one point toward a moving target with damped spring
// motion. Call Step once per frame. Position and Velocity are only ever
// written together inside Step, so observers between frames always see a
// consistent pair.
type Spring struct {
	Position Vec2
	Velocity Vec2

	Stiffness float64
	Damping   float64
}

// NewSpring returns a spring at rest at pos with the default tuning.
func NewSpring(pos Vec2) Spring {
	return Spring{
		Position:  pos,
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
	}
}

// Step advances the spring one frame toward target using explicit Euler:
// acceleration proportional to displacement, velocity attenuated by the
// damping factor. A spring resting exactly on its target does not move.
func (s *Spring) Step(target Vec2) {
	offset := s.Position.Sub(target)
	accel := offset.Scale(-s.Stiffness)
	s.Velocity = s.Velocity.Add(accel).Scale(s.Damping)
	s.Position = s.Position.Add(s.Velocity)
}
