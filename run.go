package springline

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int // logical canvas width (default 800)
	Height int // logical canvas height (default 600)

	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives the scene at the display's refresh rate.
// It blocks until the window closes and returns any error from the loop.
// The tick cadence is whatever Ebitengine provides — approximately the
// refresh rate, not a contract.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

// game adapts a Scene to the ebiten.Game interface.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
