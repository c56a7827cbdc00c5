package track_test

import (
	"fmt"

	"honnef.co/go/track"
)

func ExampleBezierCurve() {
	bc := track.NewBezierCurve()
	bc.SetControlPoint(track.Pt(0, 0), 0)
	bc.SetControlPoint(track.Pt(0, 50), 1)
	bc.SetControlPoint(track.Pt(100, 50), 2)
	bc.SetControlPoint(track.Pt(100, 0), 3)
	bc.SetResolution(0.5)
	bc.SetOffsetDistance(5)

	for _, kind := range []track.CurveKind{track.PrimaryCurve, track.LeftCurve, track.RightCurve} {
		fmt.Println(kind, bc.Curve(kind))
	}
	fmt.Println("length", bc.Length())

	// Output:
	// primary [(0, 0) (50, 37.5) (100, 0)]
	// left [(5, 0) (50, 32.5) (95, 0)]
	// right [(-5, 0) (50, 42.5) (105, 0)]
	// length 125
}

func ExampleBezierCurve_Segments() {
	bc := track.NewBezierCurve()
	bc.SetControlPoints(track.CubicBez{
		P0: track.Pt(0, 0),
		P1: track.Pt(10, 0),
		P2: track.Pt(20, 0),
		P3: track.Pt(30, 0),
	})
	bc.SetResolution(0.5)

	// Emit the left rail as an SVG path.
	pts := bc.Curve(track.LeftCurve)
	fmt.Printf("M %g,%g", pts[0].X, pts[0].Y)
	for seg := range bc.Segments(track.LeftCurve) {
		fmt.Printf(" %g,%g", seg.P1.X, seg.P1.Y)
	}
	fmt.Println()

	// Output:
	// M 0,-4.5 15,-4.5 30,-4.5
}
