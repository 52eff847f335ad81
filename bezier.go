package springline

// CurveSamples is the number of points the renderer samples along the curve.
// The polyline visits t = 0.01, 0.02, …, 1.00.
const CurveSamples = 100

// tangentParams are the curve parameters at which the tangent overlay is
// drawn: five stops, step 0.2, starting at 0.1.
var tangentParams = [5]float64{0.1, 0.3, 0.5, 0.7, 0.9}

// Cubic is a cubic Bézier segment. P0 and P3 are the endpoints (anchors);
// P1 and P2 shape the curve.
type Cubic struct {
	P0, P1, P2, P3 Vec2
}

// PointAt evaluates the curve position at parameter t:
//
//	B(t) = (1-t)³·P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3
//
// t is not clamped; values outside [0, 1] extrapolate.
func (c Cubic) PointAt(t float64) Vec2 {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	return Vec2{
		X: u2*u*c.P0.X + 3*u2*t*c.P1.X + 3*u*t2*c.P2.X + t2*t*c.P3.X,
		Y: u2*u*c.P0.Y + 3*u2*t*c.P1.Y + 3*u*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// TangentAt returns the unit direction of travel along the curve at t,
// i.e. the normalized first derivative
//
//	B'(t) = 3(1-t)²·(P1-P0) + 6(1-t)t·(P2-P1) + 3t²·(P3-P2)
//
// Magnitude is discarded so the overlay length is a pure display choice.
// Degenerate curves (all control points coincident) yield the zero vector.
func (c Cubic) TangentAt(t float64) Vec2 {
	u := 1 - t
	d := c.P1.Sub(c.P0).Scale(3 * u * u).
		Add(c.P2.Sub(c.P1).Scale(6 * u * t)).
		Add(c.P3.Sub(c.P2).Scale(3 * t * t))
	return d.Normalize()
}

// SamplePoints fills buf with n points sampled at t = 1/n, 2/n, …, 1 and
// returns it. buf is grown to its high-water mark and reused across frames,
// so callers can pass the previous result back in.
func (c Cubic) SamplePoints(buf []Vec2, n int) []Vec2 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) < n {
		buf = make([]Vec2, n)
	}
	buf = buf[:n]
	for i := 1; i <= n; i++ {
		buf[i-1] = c.PointAt(float64(i) / float64(n))
	}
	return buf
}
