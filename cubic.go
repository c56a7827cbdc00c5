package track

// CubicBez is a cubic Bézier segment, described by its four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Pts returns the control points as an array, indexed 0 through 3.
func (c CubicBez) Pts() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

// Eval evaluates the curve at t using the cubic Bernstein basis
//
//	P0·(1−t)³ + 3·P1·(1−t)²·t + 3·P2·(1−t)·t² + P3·t³
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: c.P0.X*a + c.P1.X*b + c.P2.X*d + c.P3.X*e,
		Y: c.P0.Y*a + c.P1.Y*b + c.P2.Y*d + c.P3.Y*e,
	}
}

// Differentiate returns the derivative of the curve, a quadratic Bézier whose
// control points are 3·(P[i+1] − P[i]).
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

