package springline

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a pointer script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Playback feeds scripted pointer input to a Follower one frame at a time,
// for headless simulation runs and automated testing. Supported actions:
//
//   - "point": jump the pointer to (x, y) immediately.
//   - "drag":  move the pointer from its current position to (x, y),
//     linearly interpolated over "frames" ticks (minimum 2).
//   - "wait":  hold the pointer still for "frames" ticks.
type Playback struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	drag      *activeDrag
	done      bool
}

// activeDrag is an in-progress "drag" step.
type activeDrag struct {
	from, to Vec2
	frames   int
	frame    int
}

// LoadScript parses a JSON pointer script.
func LoadScript(jsonData []byte) (*Playback, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}
	return &Playback{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (p *Playback) Done() bool {
	return p.done
}

// Step applies one frame of scripted input to f and advances the simulation
// by one tick. Calling Step after Done keeps stepping the follower with the
// pointer parked on its final position.
func (p *Playback) Step(f *Follower) {
	switch {
	case p.drag != nil:
		p.drag.frame++
		t := float64(p.drag.frame) / float64(p.drag.frames)
		f.SetPointer(p.drag.from.Add(p.drag.to.Sub(p.drag.from).Scale(t)))
		if p.drag.frame >= p.drag.frames {
			p.drag = nil
		}

	case p.waitCount > 0:
		p.waitCount--

	case p.cursor < len(p.steps):
		st := p.steps[p.cursor]
		p.cursor++

		switch st.Action {
		case "point":
			f.SetPointer(Vec2{X: st.X, Y: st.Y})
		case "drag":
			frames := st.Frames
			if frames < 2 {
				frames = 2
			}
			p.drag = &activeDrag{from: f.Pointer(), to: Vec2{X: st.X, Y: st.Y}, frames: frames}
			// First interpolated position lands on the next Step.
		case "wait":
			if st.Frames > 1 {
				p.waitCount = st.Frames - 1 // this frame counts as one
			}
		}
	}

	if p.cursor >= len(p.steps) && p.drag == nil && p.waitCount == 0 {
		p.done = true
	}

	f.Step()
}
