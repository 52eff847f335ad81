package springline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	pulseMin     = 1.0
	pulseMax     = 1.35
	pulsePeriod  = 0.45 // seconds per half breath
	pulseRelease = 0.2  // seconds to settle after a drag ends

	fadeDuration = 0.25 // tangent overlay fade in/out
)

// Pulse makes the control markers breathe while a drag is active: the radius
// multiplier eases between 1 and 1.35 on a loop, and eases back to 1 when the
// drag ends. Purely cosmetic — the simulation never reads it.
//
// There is no global animation manager; callers advance it with Update each
// frame, same as the rest of the package.
type Pulse struct {
	tween   *gween.Tween
	value   float64
	active  bool
	growing bool
}

// NewPulse returns a pulse at rest (multiplier 1).
func NewPulse() *Pulse {
	return &Pulse{value: pulseMin}
}

// Start begins breathing. Calling Start on an active pulse is a no-op.
func (p *Pulse) Start() {
	if p.active {
		return
	}
	p.active = true
	p.growing = true
	p.tween = gween.New(float32(p.value), pulseMax, pulsePeriod, ease.InOutSine)
}

// Stop eases the multiplier back to 1. Calling Stop on an idle pulse is a no-op.
func (p *Pulse) Stop() {
	if !p.active {
		return
	}
	p.active = false
	p.tween = gween.New(float32(p.value), pulseMin, pulseRelease, ease.OutQuad)
}

// Value returns the current radius multiplier without advancing.
func (p *Pulse) Value() float64 {
	return p.value
}

// Update advances the pulse by dt seconds and returns the current multiplier.
func (p *Pulse) Update(dt float32) float64 {
	if p.tween == nil {
		return p.value
	}
	v, done := p.tween.Update(dt)
	p.value = float64(v)
	if done {
		if p.active {
			// Reverse direction and keep breathing.
			p.growing = !p.growing
			target := float32(pulseMax)
			if !p.growing {
				target = pulseMin
			}
			p.tween = gween.New(v, target, pulsePeriod, ease.InOutSine)
		} else {
			p.tween = nil
		}
	}
	return p.value
}

// Fade eases the tangent overlay's opacity between hidden and shown.
type Fade struct {
	tween *gween.Tween
	value float64
	shown bool
}

// NewFade returns a fade resting at the given opacity (0 or 1, typically).
func NewFade(initial float64) *Fade {
	return &Fade{value: initial, shown: initial > 0}
}

// Shown reports the state the fade is heading toward.
func (f *Fade) Shown() bool {
	return f.shown
}

// Toggle flips the target state and starts easing toward it from the current
// opacity, so toggling mid-fade reverses smoothly.
func (f *Fade) Toggle() {
	f.shown = !f.shown
	target := float32(0)
	if f.shown {
		target = 1
	}
	f.tween = gween.New(float32(f.value), target, fadeDuration, ease.InOutSine)
}

// Update advances the fade by dt seconds and returns the current opacity.
func (f *Fade) Update(dt float32) float64 {
	if f.tween == nil {
		return f.value
	}
	v, done := f.tween.Update(dt)
	f.value = float64(v)
	if done {
		f.tween = nil
	}
	return f.value
}
