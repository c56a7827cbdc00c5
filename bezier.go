package track

import (
	"fmt"
	"iter"
	"math"
)

const (
	// DefaultResolution is the sampling step of a new [BezierCurve], which
	// yields 41 samples per sequence.
	DefaultResolution = 0.025
	// DefaultOffsetDistance is the distance of each rail from the center
	// line of a new [BezierCurve].
	DefaultOffsetDistance = 4.5
	// DefaultNominalLength is the nominal length of a new [BezierCurve].
	DefaultNominalLength = 100.0

	// ControlPoints is the number of control points of a cubic Bézier.
	ControlPoints = 4
	// DerivativeControlPoints is the number of control points of the
	// derivative of a cubic Bézier.
	DerivativeControlPoints = ControlPoints - 1

	// MaxSamples is the largest number of samples per sequence. Resolutions
	// that would produce more samples are rejected.
	MaxSamples = 1 << 24
)

// CurveKind selects one of the point sequences cached by a [BezierCurve].
type CurveKind int

const (
	// PrimaryCurve is the sampled Bézier curve itself.
	PrimaryCurve CurveKind = iota
	// LeftCurve is the rail to the left of the direction of travel, in a
	// y-down coordinate system.
	LeftCurve
	// RightCurve is the rail to the right of the direction of travel, in a
	// y-down coordinate system.
	RightCurve
)

func (k CurveKind) String() string {
	switch k {
	case PrimaryCurve:
		return "primary"
	case LeftCurve:
		return "left"
	case RightCurve:
		return "right"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

func (k CurveKind) valid() bool {
	return k >= PrimaryCurve && k <= RightCurve
}

// BezierCurve is a cubic Bézier together with two rails running parallel to
// it at a fixed distance. It samples all three curves lazily: mutators only
// mark the cached samples as stale, and the next query recomputes what is
// needed.
//
// Sampling uses a fixed step. With resolution r, each sequence has
// [SampleCount](r) points. The first and last points are the curve's end
// points, and interior sample k is evaluated at t = r·k. When 1/r isn't an
// integer, the final interval is therefore shorter than the others.
//
// A BezierCurve is not safe for concurrent use. Slices returned by its
// methods are owned by the BezierCurve; they must not be modified and are
// only valid until the next call of a mutating method.
type BezierCurve struct {
	resolution    float64
	distance      float64
	nominalLength float64

	ctrl [ControlPoints]Point

	curve    []Point
	left     []Point
	right    []Point
	tangents []Vec2
	// indices of samples whose tangent couldn't be normalized
	degenerate []int

	resolutionDirty    bool
	controlPointsDirty bool
	generation         uint64
}

// NewBezierCurve returns a curve with all control points at the origin and
// the default resolution, offset distance, and nominal length.
func NewBezierCurve() *BezierCurve {
	return &BezierCurve{
		resolution:         DefaultResolution,
		distance:           DefaultOffsetDistance,
		nominalLength:      DefaultNominalLength,
		resolutionDirty:    true,
		controlPointsDirty: true,
	}
}

// SampleCount returns the number of samples per sequence for the given
// resolution, floor(1/resolution) + 1. It panics if resolution isn't valid,
// see [ValidResolution].
func SampleCount(resolution float64) int {
	checkResolution(resolution)
	return int(1.0/resolution) + 1
}

// ValidResolution reports whether r is in the open interval (0, 1) and
// produces at most [MaxSamples] samples.
func ValidResolution(r float64) bool {
	return r > 0 && r < 1 && 1.0/r < MaxSamples
}

func checkResolution(r float64) {
	if !ValidResolution(r) {
		panic(fmt.Sprintf("track: resolution %g out of range (1/%d, 1)", r, MaxSamples))
	}
}

func checkIndex(i int) {
	if i < 0 || i >= ControlPoints {
		panic(fmt.Sprintf("track: control point index %d out of range [0, %d)", i, ControlPoints))
	}
}

func (bc *BezierCurve) Resolution() float64 {
	return bc.resolution
}

// SetResolution sets the sampling step. Smaller values produce more samples.
// It panics if r isn't valid, see [ValidResolution].
func (bc *BezierCurve) SetResolution(r float64) {
	checkResolution(r)
	if r != bc.resolution {
		bc.resolution = r
		bc.resolutionDirty = true
	}
}

func (bc *BezierCurve) OffsetDistance() float64 {
	return bc.distance
}

// SetOffsetDistance sets the perpendicular distance between the primary
// curve and each rail. It panics if d is NaN or infinite.
func (bc *BezierCurve) SetOffsetDistance(d float64) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		panic(fmt.Sprintf("track: invalid offset distance %g", d))
	}
	if d != bc.distance {
		bc.distance = d
		bc.controlPointsDirty = true
	}
}

// NominalLength returns the nominal length of the curve. It is informational
// only and isn't related to the value returned by [BezierCurve.Length].
func (bc *BezierCurve) NominalLength() float64 {
	return bc.nominalLength
}

func (bc *BezierCurve) SetNominalLength(l float64) {
	bc.nominalLength = l
}

// ControlPoint returns control point i. It panics if i isn't in [0, 4).
func (bc *BezierCurve) ControlPoint(i int) Point {
	checkIndex(i)
	return bc.ctrl[i]
}

// ControlPoints returns all four control points as a [CubicBez].
func (bc *BezierCurve) ControlPoints() CubicBez {
	return CubicBez{bc.ctrl[0], bc.ctrl[1], bc.ctrl[2], bc.ctrl[3]}
}

// SetControlPoint sets control point i. It panics if i isn't in [0, 4).
func (bc *BezierCurve) SetControlPoint(pt Point, i int) {
	bc.SetControlPointXY(pt.X, pt.Y, i)
}

// SetControlPointXY sets control point i to (x, y). It panics if i isn't in
// [0, 4).
func (bc *BezierCurve) SetControlPointXY(x, y float64, i int) {
	checkIndex(i)
	if bc.ctrl[i].X != x || bc.ctrl[i].Y != y {
		bc.ctrl[i] = Point{X: x, Y: y}
		bc.controlPointsDirty = true
	}
}

// SetControlPoints replaces all four control points.
func (bc *BezierCurve) SetControlPoints(c CubicBez) {
	bc.setCtrl(c.Pts())
}

func (bc *BezierCurve) setCtrl(ctrl [ControlPoints]Point) {
	if ctrl != bc.ctrl {
		bc.ctrl = ctrl
		bc.controlPointsDirty = true
	}
}

// Move translates all control points by (dx, dy).
func (bc *BezierCurve) Move(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	v := Vec(dx, dy)
	for i := range bc.ctrl {
		bc.ctrl[i] = bc.ctrl[i].Translate(v)
	}
	bc.controlPointsDirty = true
}

// Transform applies aff to all control points. Because the rails are
// recomputed from the transformed control points, they keep their offset
// distance even under scaling. It panics if aff contains NaN or infinite
// coefficients.
func (bc *BezierCurve) Transform(aff Affine) {
	if aff.IsNaN() || aff.IsInf() {
		panic("track: transform has non-finite coefficients")
	}
	if aff == Identity {
		return
	}
	bc.setCtrl(bc.ControlPoints().Transform(aff).Pts())
}

// Curve returns the samples of the requested curve, recomputing stale
// samples first. All three sequences have the same length and are
// index-aligned. It panics if which isn't a known [CurveKind].
func (bc *BezierCurve) Curve(which CurveKind) []Point {
	if !which.valid() {
		panic(fmt.Sprintf("track: invalid curve kind %d", int(which)))
	}
	bc.update()
	switch which {
	case LeftCurve:
		return bc.left
	case RightCurve:
		return bc.right
	default:
		return bc.curve
	}
}

// Tangents returns the tangent vectors at each sample of the primary curve.
// The vectors are the curve's first derivative and have not been
// normalized.
func (bc *BezierCurve) Tangents() []Vec2 {
	bc.update()
	return bc.tangents
}

// DegenerateSamples returns the indices of the samples whose tangent has zero
// or non-finite length, such as those at coincident control points. At these
// samples, both rails coincide with the primary curve.
func (bc *BezierCurve) DegenerateSamples() []int {
	bc.update()
	return bc.degenerate
}

// Segments returns the line segments connecting consecutive samples of the
// requested curve. The samples are computed when Segments is called, not
// when the iterator is used.
func (bc *BezierCurve) Segments(which CurveKind) iter.Seq[Line] {
	pts := bc.Curve(which)
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}

// Length returns the length of the polyline through the samples of the
// primary curve. It approximates the arc length from below and converges as
// the resolution decreases.
func (bc *BezierCurve) Length() float64 {
	var l float64
	for seg := range bc.Segments(PrimaryCurve) {
		l += seg.Length()
	}
	return l
}

// BoundingBox returns the smallest rectangle containing the samples of all
// three curves.
func (bc *BezierCurve) BoundingBox() Rect {
	pts := bc.Curve(PrimaryCurve)
	bbox := Line{pts[0], pts[len(pts)-1]}.BoundingBox()
	for _, seq := range [...][]Point{bc.curve, bc.left, bc.right} {
		for _, pt := range seq {
			bbox = bbox.UnionPoint(pt)
		}
	}
	return bbox
}

// Generation returns the number of times the samples have been computed.
// Queries that don't change the generation were served from the cache.
func (bc *BezierCurve) Generation() uint64 {
	return bc.generation
}

func (bc *BezierCurve) update() {
	if bc.resolutionDirty {
		bc.resize()
		bc.recalculate()
	} else if bc.controlPointsDirty {
		bc.recalculate()
	}
	bc.resolutionDirty = false
	bc.controlPointsDirty = false
}
