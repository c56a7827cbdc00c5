// Package track computes the geometry of curved track pieces: a cubic Bézier
// center line and two rails running parallel to it at a fixed distance.
//
// # Curves and rails
//
// [BezierCurve] owns the four control points of a cubic Bézier and samples
// it at a fixed step, its resolution. For every sample it also evaluates the
// curve's tangent, the quadratic Bézier returned by [CubicBez.Differentiate],
// and offsets the sample along the tangent's normal to produce the
// corresponding points on the left and right rails. The three sequences are
// index-aligned: sample i of each rail is the offset of sample i of the
// primary curve.
//
// The rails are approximations of the curve's [parallel curves], not
// translated copies of it. On tight bends, the inner rail pinches and the
// outer rail spreads, just as real rails do.
//
// # Caching
//
// Samples are computed lazily. Setting the resolution, the control points,
// or the offset distance merely marks the cached samples as stale, and only
// if the new value differs from the old one. The next call to
// [BezierCurve.Curve] or a method built on it recomputes the samples, and
// reallocates them only if the resolution changed. [BezierCurve.Generation]
// can be used to observe whether a query hit the cache.
//
// # Errors
//
// Out-of-range resolutions and control point indices are programming errors
// and cause panics. Samples whose tangent has zero length, such as at the end
// points of a curve whose first two control points coincide, have no defined
// normal. Both rails pass through the primary curve at such samples, and
// [BezierCurve.DegenerateSamples] reports them.
//
// [parallel curves]: https://en.wikipedia.org/wiki/Parallel_curve
package track
