package chartdata

// Default configuration values
const (
	// DefaultTargetPoints is the default aggregation target.
	DefaultTargetPoints = 100

	// DefaultMaxPoints is the default downsampling output bound.
	DefaultMaxPoints = 1000

	// DefaultMinReductionRatio is the fraction MaxPoints/len at or above which
	// downsampling is skipped as not worthwhile. 0.5 means: only downsample
	// when the output would be less than half the input.
	DefaultMinReductionRatio = 0.5

	// DefaultSubdivisions is the default number of interpolated points
	// inserted between each pair of control points.
	DefaultSubdivisions = 8

	// DefaultTension is the default spline tension (0 = loose, 1 = tight).
	DefaultTension = 0.5
)

// MaxInterpolatedPoints bounds the output of Interpolate and SmoothSeries.
// Interpolation expands its input; this cap keeps the worst case sized for
// embedded targets.
const MaxInterpolatedPoints = 512

// Minimum control point counts per interpolation type.
const (
	minLinearPoints     = 2
	minSplinePoints     = 3
	minCatmullRomPoints = 3
	minBezierPoints     = 4

	// bezierAnchorStride is the index step between cubic Bezier anchors:
	// each full segment consumes three new points beyond its start anchor.
	bezierAnchorStride = 3
)

// minLTTBOutput is the smallest valid LTTB output: first point, last point,
// and at least one bucket-selected point.
const minLTTBOutput = 3
