// Follow is the springline demo: drag anywhere on the canvas and a cubic
// Bézier curve anchored at the left and right edges chases the pointer with
// spring-like lag. Blue segments show the unit tangent at five fixed stops
// along the curve; press T to toggle them.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/springline"
)

const (
	windowTitle = "Springline — Curve Follow"
	showFPS     = true
	screenW     = 800
	screenH     = 600
)

func main() {
	scene := springline.NewScene()
	scene.ClearColor = springline.Color{R: 0.06, G: 0.05, B: 0.10, A: 1}

	scene.SetUpdateFunc(func() error {
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			scene.ToggleTangents()
		}
		return nil
	})

	if err := springline.Run(scene, springline.RunConfig{
		Title:   windowTitle,
		Width:   screenW,
		Height:  screenH,
		ShowFPS: showFPS,
	}); err != nil {
		log.Fatal(err)
	}
}
