package springline

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene ties the pieces together: it reads pointer input, advances the
// follower once per tick, and hands the assembled curve to the renderer.
// There is one steady state — running — until the host tears the window down.
//
// Input and frame callbacks arrive on the same goroutine (Ebitengine's
// contract), so the shared pointer and spring state need no locking: within a
// frame the last pointer write wins, which is a debounce, not a race.
type Scene struct {
	// ClearColor fills the canvas before each frame.
	ClearColor Color

	follower *Follower
	renderer *Renderer
	pulse    *Pulse
	fade     *Fade

	dragging   bool
	pulseScale float64
	sized      bool

	updateFunc func() error
}

// NewScene creates a scene with default colors. The springs start at rest
// under the canvas center on the first drawn frame.
func NewScene() *Scene {
	return &Scene{
		ClearColor: Color{R: 0.06, G: 0.06, B: 0.09, A: 1},
		follower:   NewFollower(Vec2{}),
		renderer:   NewRenderer(),
		pulse:      NewPulse(),
		fade:       NewFade(1),
		pulseScale: 1,
	}
}

// Follower returns the scene's simulation state.
func (s *Scene) Follower() *Follower {
	return s.follower
}

// Renderer returns the scene's renderer for palette adjustments.
func (s *Scene) Renderer() *Renderer {
	return s.renderer
}

// SetUpdateFunc registers fn to run at the end of every Update. Returning an
// error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// ToggleTangents fades the tangent overlay in or out.
func (s *Scene) ToggleTangents() {
	s.fade.Toggle()
}

// Dragging reports whether a pointer drag is currently active.
func (s *Scene) Dragging() bool {
	return s.dragging
}

// Update runs once per tick: consume the pointer while a drag is active,
// advance the drag-feedback animations, and step both springs.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		// Only the position during an active drag is consumed; between
		// drags the follower keeps chasing the last known target.
		s.follower.SetPointer(Vec2{X: float64(mx), Y: float64(my)})
		if !s.dragging {
			s.dragging = true
			s.pulse.Start()
		}
	} else if s.dragging {
		s.dragging = false
		s.pulse.Stop()
	}

	s.pulseScale = s.pulse.Update(dt)
	s.renderer.TangentAlpha = s.fade.Update(dt)
	s.follower.Step()

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw renders the current frame. The canvas size comes from the destination
// image each call, so the fixed anchors track window size changes.
func (s *Scene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	if !s.sized {
		// First visible frame: settle the springs under the canvas center
		// instead of letting them fly in from the origin.
		s.sized = true
		*s.follower = *NewFollower(Vec2{X: w / 2, Y: h / 2})
	}

	screen.Fill(s.ClearColor.toRGBA())
	s.renderer.Draw(screen, s.follower.Curve(w, h), s.pulseScale)
}
