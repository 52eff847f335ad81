package springline

import "testing"

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{not json`},
		{"no steps", `{"steps": []}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("LoadScript returned nil error")
			}
		})
	}
}

func TestPlaybackPointAndWait(t *testing.T) {
	p, err := LoadScript([]byte(`{"steps": [
		{"action": "point", "x": 400, "y": 300},
		{"action": "wait", "frames": 10}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	f := NewFollower(Vec2{})
	frames := 0
	for !p.Done() {
		p.Step(f)
		frames++
		if frames > 100 {
			t.Fatal("playback never finished")
		}
	}
	if frames != 11 {
		t.Errorf("playback took %d frames, want 11 (point + 10 wait)", frames)
	}
	if f.Pointer() != (Vec2{X: 400, Y: 300}) {
		t.Errorf("Pointer() = %v, want {400 300}", f.Pointer())
	}
}

func TestPlaybackDragInterpolates(t *testing.T) {
	p, err := LoadScript([]byte(`{"steps": [
		{"action": "point", "x": 0, "y": 0},
		{"action": "drag", "x": 100, "y": 50, "frames": 10}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	f := NewFollower(Vec2{})
	p.Step(f) // point
	p.Step(f) // drag begins
	for !p.Done() {
		prev := f.Pointer()
		p.Step(f)
		if f.Pointer().X < prev.X {
			t.Fatalf("pointer moved backward: %v after %v", f.Pointer(), prev)
		}
	}
	if f.Pointer() != (Vec2{X: 100, Y: 50}) {
		t.Errorf("final Pointer() = %v, want {100 50}", f.Pointer())
	}
}

func TestPlaybackEndToEndConvergence(t *testing.T) {
	// The spec scenario, scripted: drag to the canvas center of an 800×600
	// view, then idle until the springs settle.
	p, err := LoadScript([]byte(`{"steps": [
		{"action": "point", "x": 100, "y": 500},
		{"action": "drag", "x": 400, "y": 300, "frames": 30},
		{"action": "wait", "frames": 300}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	f := NewFollower(Vec2{X: 100, Y: 500})
	for !p.Done() {
		p.Step(f)
	}

	if !vecNear(f.Left(), Vec2{X: 350, Y: 300}, 1.0) {
		t.Errorf("Left() = %v, want near {350 300}", f.Left())
	}
	if !vecNear(f.Right(), Vec2{X: 450, Y: 300}, 1.0) {
		t.Errorf("Right() = %v, want near {450 300}", f.Right())
	}
}

func TestPlaybackStepAfterDone(t *testing.T) {
	p, err := LoadScript([]byte(`{"steps": [{"action": "point", "x": 10, "y": 10}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	f := NewFollower(Vec2{})
	p.Step(f)
	if !p.Done() {
		t.Fatal("Done() = false after final step")
	}
	// Extra steps keep simulating toward the parked pointer.
	for i := 0; i < 300; i++ {
		p.Step(f)
	}
	if !vecNear(f.Left(), Vec2{X: -40, Y: 10}, 1.0) {
		t.Errorf("Left() = %v, want near {-40 10}", f.Left())
	}
}
