package track

// QuadBez is a quadratic Bézier segment. The derivative of a [CubicBez] is a
// QuadBez, which is how tangents are evaluated.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t using the quadratic Bernstein basis
//
//	P0·(1−t)² + 2·P1·(1−t)·t + P2·t²
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return Point{
		X: q.P0.X*a + q.P1.X*b + q.P2.X*c,
		Y: q.P0.Y*a + q.P1.Y*b + q.P2.Y*c,
	}
}

