package springline

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when vertices are emitted.
type Color struct {
	R, G, B, A float64
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// whitePixelImage is shared by all untextured geometry; color comes from the
// vertices. Created lazily so importing the package never touches the GPU.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Display constants. TangentLength is a pure display choice — the tangent is
// normalized before drawing, so curve speed never affects overlay length.
const (
	// TangentLength is the on-screen length of each tangent overlay segment.
	TangentLength = 150.0

	curveWidth   = 3.0
	tangentWidth = 1.5

	anchorRadius   = 10.0 // fixed endpoints — larger marker
	controlRadius  = 6.0  // mobile control points — smaller marker
	markerSegments = 24
)

// Renderer turns one frame's curve into triangle meshes: the sampled
// polyline as a ribbon strip, the tangent overlay, and filled circle markers
// for the anchors and control points. Native curve primitives are avoided on
// purpose — every point on screen comes straight out of Cubic.PointAt.
//
// All geometry shares the 1×1 white pixel and is submitted in a single
// DrawTriangles call. Buffers grow to their high-water mark and are reused.
type Renderer struct {
	CurveColor   Color
	TangentColor Color
	AnchorColor  Color
	ControlColor Color

	// TangentAlpha scales the overlay's opacity; 0 skips it entirely.
	// Scene drives this through a Fade.
	TangentAlpha float64

	ptsBuf []Vec2
	verts  []ebiten.Vertex
	inds   []uint16
}

// NewRenderer returns a renderer with the default palette and the tangent
// overlay fully visible.
func NewRenderer() *Renderer {
	return &Renderer{
		CurveColor:   Color{R: 0.95, G: 0.80, B: 0.25, A: 1},
		TangentColor: Color{R: 0.30, G: 0.65, B: 0.95, A: 1},
		AnchorColor:  Color{R: 0.90, G: 0.30, B: 0.30, A: 1},
		ControlColor: Color{R: 0.35, G: 0.88, B: 0.50, A: 1},
		TangentAlpha: 1,
	}
}

// Draw renders the curve to dst. pulse scales the control-point markers
// (1 = rest size); pass 1 when no drag feedback is wanted.
func (r *Renderer) Draw(dst *ebiten.Image, c Cubic, pulse float64) {
	r.buildFrame(c, pulse)
	if len(r.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &op)
}

// buildFrame rebuilds the frame's vertex and index buffers. Split from Draw
// so geometry can be exercised without a graphics context.
func (r *Renderer) buildFrame(c Cubic, pulse float64) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	// Curve polyline: 100 samples joined by straight segments.
	r.ptsBuf = c.SamplePoints(r.ptsBuf, CurveSamples)
	r.appendStrip(r.ptsBuf, curveWidth, r.CurveColor)

	// Tangent overlay: fixed-length unit-tangent segments at five stops.
	if r.TangentAlpha > 0 {
		col := r.TangentColor
		col.A *= clamp01(r.TangentAlpha)
		for _, t := range tangentParams {
			p := c.PointAt(t)
			tip := p.Add(c.TangentAt(t).Scale(TangentLength))
			r.appendStrip([]Vec2{p, tip}, tangentWidth, col)
		}
	}

	// Markers: anchors big, control points small. Pulse affects controls only.
	r.appendCircle(c.P0, anchorRadius, r.AnchorColor)
	r.appendCircle(c.P3, anchorRadius, r.AnchorColor)
	r.appendCircle(c.P1, controlRadius*pulse, r.ControlColor)
	r.appendCircle(c.P2, controlRadius*pulse, r.ControlColor)
}

// appendStrip extrudes a polyline into a ribbon of the given width.
// For N points: 2N vertices, 6(N-1) indices. Interior normals are the
// averaged perpendiculars of the adjacent segments, which keeps joins
// smooth at the shallow angles a sampled curve produces.
func (r *Renderer) appendStrip(points []Vec2, width float64, col Color) {
	n := len(points)
	if n < 2 {
		return
	}

	base := len(r.verts)
	halfW := width / 2
	cr, cg, cb, ca := premultiply(col)

	for i := 0; i < n; i++ {
		var nx, ny float64
		switch {
		case i == 0:
			nx, ny = perpendicular(points[0], points[1])
		case i == n-1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
		}

		r.verts = append(r.verts,
			ebiten.Vertex{
				DstX: float32(points[i].X + nx*halfW),
				DstY: float32(points[i].Y + ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(points[i].X - nx*halfW),
				DstY: float32(points[i].Y - ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}

	for i := 0; i < n-1; i++ {
		v := uint16(base + i*2)
		r.inds = append(r.inds,
			v, v+1, v+2,
			v+1, v+3, v+2,
		)
	}
}

// appendCircle adds a filled circle as a fan-triangulated regular polygon.
// markerSegments perimeter vertices, 3(markerSegments-2) indices.
func (r *Renderer) appendCircle(center Vec2, radius float64, col Color) {
	if radius <= 0 {
		return
	}

	base := len(r.verts)
	cr, cg, cb, ca := premultiply(col)

	for i := 0; i < markerSegments; i++ {
		angle := 2 * math.Pi * float64(i) / markerSegments
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(center.X + radius*math.Cos(angle)),
			DstY: float32(center.Y + radius*math.Sin(angle)),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < markerSegments-2; i++ {
		r.inds = append(r.inds,
			uint16(base),
			uint16(base+i+1),
			uint16(base+i+2),
		)
	}
}

// premultiply converts a Color to premultiplied float32 vertex components.
func premultiply(c Color) (cr, cg, cb, ca float32) {
	a := clamp01(c.A)
	return float32(clamp01(c.R) * a),
		float32(clamp01(c.G) * a),
		float32(clamp01(c.B) * a),
		float32(a)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
