// Package springline is a small interactive toy for [Ebitengine]: a cubic
// Bézier curve anchored at two fixed points chases the pointer with
// spring-like lag while it is dragged.
//
// The package splits into a handful of independent pieces:
//
//   - [Vec2] — 2D vector value type with zero-guarded Normalize.
//   - [Spring] — per-frame damped spring integrator for one point.
//   - [Cubic] — closed-form cubic Bézier position and unit-tangent evaluation.
//   - [Follower] — owns the two mobile control springs and the latest
//     pointer position; advances the simulation one frame at a time.
//   - [Renderer] — samples the curve, tangent overlay, and markers into
//     triangle meshes and submits them in a single draw call.
//   - [Scene] + [Run] — window setup, pointer input, and the frame loop.
//
// The quickest way to see it:
//
//	scene := springline.NewScene()
//	springline.Run(scene, springline.RunConfig{
//		Title: "Springline", Width: 800, Height: 600,
//	})
//
// Everything runs on the single goroutine Ebitengine drives Update and Draw
// from; nothing in this package is safe for concurrent use.
//
// [Ebitengine]: https://ebitengine.org
package springline
