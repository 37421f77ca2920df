// Package curve3 provides paths made of straight lines and Bézier curves in 3D
// space, for placing and finding things along them. Typical uses are camera
// rails, patrol routes and animation paths in scenes.
//
// # Segments and paths
//
// A [Segment] is either a straight line or a Bézier curve of arbitrary degree
// (at least two). A [Path] chains segments and parametrizes the whole chain by
// a single t ∈ [0, 1], giving each segment a share of that range proportional
// to its length. Segments don't need to be connected; the gaps between them
// don't take up any of the parameter range, but are accounted for by
// [Path.InclusiveLength].
//
// The two central queries are "where is the path at t" ([Path.Eval],
// [Path.Tangent]) and "where is the path closest to this point"
// ([Path.Nearest] and its variations). Paths can also be cut into pieces of
// equal length with [Path.SplitArclen] and [Path.SplitN].
//
// # Frames
//
// Segments store their control points in the local space of a [Frame], which
// is usually owned by a scene graph node. All positions, tangents, lengths and
// query points are in world space. [Affine] and [Node] implement Frame, and a
// nil Frame is the identity.
//
// Segments cache their world-space lengths. Mutating a segment through its
// methods keeps the cache current, and paths notice such changes on their next
// query. Frames, however, may change behind a segment's back, so after moving
// a frame, call [Segment.RecalculateLength] or [Path.RecalculateLength].
//
// # Bézier evaluation
//
// [BezierEval] and [BezierTangent] evaluate curves of any degree, using closed
// forms for quadratics ([QuadBez]) and cubics ([CubicBez]) and the Bernstein
// basis otherwise. Lengths of Bézier segments are approximated by polylines,
// and nearest point searches by subdividing curves into chords and measuring
// those with [Line.Nearest]. Both approximations are controlled by the caller:
// the number of line steps of a segment, and the precision passed to
// [Path.Nearest].
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive warnings about
// inconsistent paths and debug output.
//
// # Concurrency
//
// Paths and segments are not safe for concurrent use. Package-level state,
// such as the table of binomial coefficients and the logger, is.
package curve3
