package springline

// Anchor placement as fractions of the canvas, and the fixed horizontal
// spread between the pointer and each spring target. The spread is a flat
// ±50 pixels regardless of canvas size.
const (
	anchorLeftFrac  = 0.1
	anchorRightFrac = 0.9
	anchorYFrac     = 0.5

	// ControlSpread is the horizontal offset from the pointer to each
	// control-point target: the left spring chases (x-50, y), the right
	// spring chases (x+50, y).
	ControlSpread = 50.0
)

// Follower owns the mobile half of the simulation: two springs, one per
// control point, chasing targets derived from the latest pointer position.
// The anchors are not stored — they depend only on the canvas size and are
// recomputed by Curve each frame.
//
// Follower is single-threaded by contract. Input and frame callbacks must
// arrive on the same goroutine (Ebitengine guarantees this); add your own
// locking before sharing one across goroutines.
type Follower struct {
	left    Spring
	right   Spring
	pointer Vec2
}

// NewFollower returns a follower with both springs at rest on the targets
// derived from the initial pointer position.
func NewFollower(pointer Vec2) *Follower {
	f := &Follower{pointer: pointer}
	f.left = NewSpring(leftTarget(pointer))
	f.right = NewSpring(rightTarget(pointer))
	return f
}

func leftTarget(p Vec2) Vec2  { return Vec2{X: p.X - ControlSpread, Y: p.Y} }
func rightTarget(p Vec2) Vec2 { return Vec2{X: p.X + ControlSpread, Y: p.Y} }

// SetPointer records the pointer position. There is no queue: calls within
// the same frame overwrite each other and only the latest value is seen by
// the next Step.
func (f *Follower) SetPointer(p Vec2) {
	f.pointer = p
}

// Pointer returns the most recently recorded pointer position.
func (f *Follower) Pointer() Vec2 {
	return f.pointer
}

// Step advances both control springs one frame toward their targets.
// Call exactly once per tick.
func (f *Follower) Step() {
	f.left.Step(leftTarget(f.pointer))
	f.right.Step(rightTarget(f.pointer))
}

// Left returns the left control point's current position.
func (f *Follower) Left() Vec2 { return f.left.Position }

// Right returns the right control point's current position.
func (f *Follower) Right() Vec2 { return f.right.Position }

// Curve assembles this frame's Bézier segment for a canvas of the given
// size: fixed anchors at (0.1·w, 0.5·h) and (0.9·w, 0.5·h), current spring
// positions as the control points.
func (f *Follower) Curve(w, h float64) Cubic {
	return Cubic{
		P0: Vec2{X: w * anchorLeftFrac, Y: h * anchorYFrac},
		P1: f.left.Position,
		P2: f.right.Position,
		P3: Vec2{X: w * anchorRightFrac, Y: h * anchorYFrac},
	}
}
