package springline

import "testing"

// Scene.Update and Scene.Draw need a live Ebitengine context, so these tests
// cover the plumbing around them only; the simulation itself is exercised
// through Follower and Playback.

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene()
	if s.Follower() == nil {
		t.Fatal("Follower() = nil")
	}
	if s.Renderer() == nil {
		t.Fatal("Renderer() = nil")
	}
	if s.Dragging() {
		t.Error("Dragging() = true on a fresh scene")
	}
	if s.ClearColor.A != 1 {
		t.Errorf("ClearColor.A = %v, want 1 (opaque)", s.ClearColor.A)
	}
}

func TestSceneToggleTangents(t *testing.T) {
	s := NewScene()
	if !s.fade.Shown() {
		t.Fatal("tangent overlay hidden by default, want shown")
	}
	s.ToggleTangents()
	if s.fade.Shown() {
		t.Error("Shown() = true after toggle, want false")
	}
	s.ToggleTangents()
	if !s.fade.Shown() {
		t.Error("Shown() = false after second toggle, want true")
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		r, a uint8
	}{
		{"white", Color{R: 1, G: 1, B: 1, A: 1}, 255, 255},
		{"black transparent", Color{}, 0, 0},
		{"clamped high", Color{R: 2, A: 1.5}, 255, 255},
		{"clamped low", Color{R: -1, A: 1}, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.toRGBA()
			if got.R != tt.r || got.A != tt.a {
				t.Errorf("toRGBA() = %v, want R=%d A=%d", got, tt.r, tt.a)
			}
		})
	}
}
