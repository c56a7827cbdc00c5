package track

import (
	"slices"
)

// resize reallocates the cached sequences for the current resolution. Their
// previous contents are discarded.
func (bc *BezierCurve) resize() {
	n := SampleCount(bc.resolution)
	bc.curve = slices.Grow(bc.curve[:0], n)
	bc.left = slices.Grow(bc.left[:0], n)
	bc.right = slices.Grow(bc.right[:0], n)
	bc.tangents = slices.Grow(bc.tangents[:0], n)
}

func (bc *BezierCurve) recalculate() {
	n := SampleCount(bc.resolution)
	c := bc.ControlPoints()
	bc.curve = appendSamples(bc.curve[:0], c, bc.resolution, n)
	bc.tangents = appendTangents(bc.tangents[:0], c.Differentiate(), bc.resolution, n)
	bc.left, bc.right, bc.degenerate = appendRails(
		bc.left[:0], bc.right[:0], bc.degenerate[:0],
		bc.curve, bc.tangents, bc.distance)
	bc.generation++
}

// appendSamples appends n samples of c to dst. The first and last samples
// are exactly c.P0 and c.P3; sample k in between is evaluated at
// t = resolution·k.
func appendSamples(dst []Point, c CubicBez, resolution float64, n int) []Point {
	dst = append(dst, c.P0)
	for k := 1; k < n-1; k++ {
		dst = append(dst, c.Eval(resolution*float64(k)))
	}
	return append(dst, c.P3)
}

// appendTangents appends n samples of the derivative d to dst, using the same
// parameters as appendSamples. The first and last samples are exactly d.P0
// and d.P2.
func appendTangents(dst []Vec2, d QuadBez, resolution float64, n int) []Vec2 {
	dst = append(dst, Vec2(d.P0))
	for k := 1; k < n-1; k++ {
		dst = append(dst, Vec2(d.Eval(resolution*float64(k))))
	}
	return append(dst, Vec2(d.P2))
}

// appendRails offsets every point of curve by distance along the normal of
// the corresponding tangent, appending the left and right offsets to left and
// right. Samples whose tangent can't be normalized are copied unchanged to
// both rails and their indices are appended to degenerate.
func appendRails(
	left, right []Point,
	degenerate []int,
	curve []Point,
	tangents []Vec2,
	distance float64,
) ([]Point, []Point, []int) {
	for i, pt := range curve {
		u, ok := tangents[i].Normalize()
		if !ok {
			left = append(left, pt)
			right = append(right, pt)
			degenerate = append(degenerate, i)
			continue
		}
		norm := u.Turn90().Mul(distance)
		left = append(left, pt.Translate(norm.Negate()))
		right = append(right, pt.Translate(norm))
	}
	return left, right, degenerate
}
