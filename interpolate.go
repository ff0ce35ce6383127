package chartdata

import (
	"fmt"

	"github.com/microchart/chartdata/internal/mathutil"
)

// InterpolationType selects the curve fitted through the control points.
type InterpolationType int

const (
	// InterpolationLinear connects control points with straight segments.
	InterpolationLinear InterpolationType = iota

	// InterpolationCubicSpline fits a natural cubic spline through all
	// control points (periodic when the curve is closed).
	InterpolationCubicSpline

	// InterpolationCatmullRom fits a Catmull-Rom (cardinal) spline with
	// tension-scaled tangents and local control.
	InterpolationCatmullRom

	// InterpolationBezier treats consecutive quadruples of control points as
	// cubic Bezier control polygons.
	InterpolationBezier
)

// String returns the interpolation type name.
func (t InterpolationType) String() string {
	switch t {
	case InterpolationLinear:
		return "linear"
	case InterpolationCubicSpline:
		return "cubic-spline"
	case InterpolationCatmullRom:
		return "catmull-rom"
	case InterpolationBezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// InterpolationConfig configures Interpolate.
type InterpolationConfig struct {
	// Type selects the curve.
	Type InterpolationType

	// Subdivisions is the number of points inserted strictly between each
	// consecutive pair of control points. Must be at least 1.
	Subdivisions int

	// Tension controls curve tightness in [0, 1] for CatmullRom and Bezier:
	// 0 leaves the neighbor influence at full strength, 1 flattens the curve
	// toward its chords.
	Tension float32

	// Closed wraps the curve from the last control point back to the first.
	Closed bool
}

// DefaultInterpolationConfig returns a cubic spline with DefaultSubdivisions
// and DefaultTension, open.
func DefaultInterpolationConfig() InterpolationConfig {
	return InterpolationConfig{
		Type:         InterpolationCubicSpline,
		Subdivisions: DefaultSubdivisions,
		Tension:      DefaultTension,
	}
}

// Validate checks the configuration.
func (c *InterpolationConfig) Validate() error {
	if c.Type < InterpolationLinear || c.Type > InterpolationBezier {
		return fmt.Errorf("%w: unknown interpolation type %d", ErrInvalidConfig, c.Type)
	}
	if c.Subdivisions < 1 {
		return fmt.Errorf("%w: subdivisions must be at least 1", ErrInvalidConfig)
	}
	if c.Tension < 0 || c.Tension > 1 {
		return fmt.Errorf("%w: tension must be in [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// Interpolate expands the control points into a denser point sequence lying
// on the configured curve. Every control point appears in the output; an open
// curve over m points yields m + (m-1)*Subdivisions points, and a closed
// curve additionally walks the wrap segment and ends on a copy of the first
// point.
//
// CubicSpline with exactly two control points falls back to Linear. The
// output is bounded by MaxInterpolatedPoints; use AppendInterpolated to
// supply a caller-owned destination instead.
func Interpolate(points []Point, cfg *InterpolationConfig) ([]Point, error) {
	total, effType, err := planInterpolation(len(points), cfg)
	if err != nil {
		return nil, err
	}
	if total > MaxInterpolatedPoints {
		return nil, fmt.Errorf("%w: %d interpolated points exceed limit %d",
			ErrSeriesFull, total, MaxInterpolatedPoints)
	}
	dst := make([]Point, 0, total)
	return interpolateInto(dst, points, cfg, effType), nil
}

// AppendInterpolated appends the interpolated curve to dst, which must have
// enough spare capacity for the whole output; otherwise it fails with
// ErrSeriesFull before writing anything.
func AppendInterpolated(dst []Point, points []Point, cfg *InterpolationConfig) ([]Point, error) {
	total, effType, err := planInterpolation(len(points), cfg)
	if err != nil {
		return nil, err
	}
	if total > cap(dst)-len(dst) {
		return nil, fmt.Errorf("%w: %d interpolated points exceed remaining capacity %d",
			ErrSeriesFull, total, cap(dst)-len(dst))
	}
	return interpolateInto(dst, points, cfg, effType), nil
}

// planInterpolation validates inputs, applies the documented Linear fallback,
// and returns the exact output size together with the effective curve type.
func planInterpolation(m int, cfg *InterpolationConfig) (int, InterpolationType, error) {
	if err := cfg.Validate(); err != nil {
		return 0, 0, err
	}
	if m < minLinearPoints {
		return 0, 0, fmt.Errorf("%w: need at least %d control points, got %d",
			ErrInsufficientData, minLinearPoints, m)
	}

	effType := cfg.Type
	switch cfg.Type {
	case InterpolationCubicSpline:
		if m < minSplinePoints {
			effType = InterpolationLinear
		}
	case InterpolationCatmullRom:
		if m < minCatmullRomPoints {
			return 0, 0, fmt.Errorf("%w: catmull-rom needs at least %d control points, got %d",
				ErrInsufficientData, minCatmullRomPoints, m)
		}
	case InterpolationBezier:
		if m < minBezierPoints {
			return 0, 0, fmt.Errorf("%w: bezier needs at least %d control points, got %d",
				ErrInsufficientData, minBezierPoints, m)
		}
	}

	s := cfg.Subdivisions
	var total int
	if effType == InterpolationBezier {
		total = bezierSegmentCount(m)*(s+1) + 1
	} else {
		total = m + (m-1)*s
	}
	if cfg.Closed {
		total += s + 1
	}
	return total, effType, nil
}

// bezierSegmentCount returns the number of Bezier segments over m anchors:
// full cubic segments consume three points each, a 2-3 point tail forms one
// lower-degree segment.
func bezierSegmentCount(m int) int {
	return (m + 1) / bezierAnchorStride
}

func interpolateInto(dst []Point, pts []Point, cfg *InterpolationConfig, effType InterpolationType) []Point {
	switch effType {
	case InterpolationCubicSpline:
		return appendCubicSpline(dst, pts, cfg)
	case InterpolationCatmullRom:
		return appendCatmullRom(dst, pts, cfg)
	case InterpolationBezier:
		return appendBezier(dst, pts, cfg)
	default:
		return appendLinear(dst, pts, cfg)
	}
}

// appendChord appends a, then s interpolated points strictly between a and b.
// The segment's end point is not appended; callers chain segments and close
// with the final point.
func appendChord(dst []Point, a, b Point, s int) []Point {
	dst = append(dst, a)
	for j := 1; j <= s; j++ {
		t := float32(j) / float32(s+1)
		dst = append(dst, a.Lerp(b, t))
	}
	return dst
}

func appendLinear(dst []Point, pts []Point, cfg *InterpolationConfig) []Point {
	m := len(pts)
	for i := 0; i+1 < m; i++ {
		dst = appendChord(dst, pts[i], pts[i+1], cfg.Subdivisions)
	}
	if cfg.Closed {
		dst = appendChord(dst, pts[m-1], pts[0], cfg.Subdivisions)
		return append(dst, pts[0])
	}
	return append(dst, pts[m-1])
}

// appendCubicSpline evaluates a natural (or periodic, when closed) cubic
// spline over the parameter index, one spline per axis, with second
// derivatives from a tridiagonal solve.
func appendCubicSpline(dst []Point, pts []Point, cfg *InterpolationConfig) []Point {
	m := len(pts)
	xs := make([]float64, m)
	ys := make([]float64, m)
	for i, p := range pts {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}

	var mx, my []float64
	if cfg.Closed {
		mx = mathutil.PeriodicSplineM(xs)
		my = mathutil.PeriodicSplineM(ys)
	} else {
		mx = mathutil.NaturalSplineM(xs)
		my = mathutil.NaturalSplineM(ys)
	}

	s := cfg.Subdivisions
	segs := m - 1
	if cfg.Closed {
		segs = m
	}
	for i := 0; i < segs; i++ {
		next := (i + 1) % m
		dst = append(dst, pts[i])
		for j := 1; j <= s; j++ {
			u := float64(j) / float64(s+1)
			dst = append(dst, Point{
				X: float32(mathutil.SplineSegment(xs[i], xs[next], mx[i], mx[next], u)),
				Y: float32(mathutil.SplineSegment(ys[i], ys[next], my[i], my[next], u)),
			})
		}
	}
	if cfg.Closed {
		return append(dst, pts[0])
	}
	return append(dst, pts[m-1])
}

// appendCatmullRom evaluates a cardinal spline: each segment is a Hermite
// curve whose tangents come from the neighboring control points, scaled by
// (1 - tension). Open boundaries synthesize the missing neighbor by
// reflection; closed curves wrap.
func appendCatmullRom(dst []Point, pts []Point, cfg *InterpolationConfig) []Point {
	m := len(pts)
	scale := float64(1-cfg.Tension) * 0.5

	tx := make([]float64, m)
	ty := make([]float64, m)
	for i := range pts {
		var prev, next Point
		if cfg.Closed {
			prev = pts[(i-1+m)%m]
			next = pts[(i+1)%m]
		} else {
			switch i {
			case 0:
				prev = reflectThrough(pts[0], pts[1])
				next = pts[1]
			case m - 1:
				prev = pts[m-2]
				next = reflectThrough(pts[m-1], pts[m-2])
			default:
				prev = pts[i-1]
				next = pts[i+1]
			}
		}
		tx[i] = scale * float64(next.X-prev.X)
		ty[i] = scale * float64(next.Y-prev.Y)
	}

	s := cfg.Subdivisions
	segs := m - 1
	if cfg.Closed {
		segs = m
	}
	for i := 0; i < segs; i++ {
		next := (i + 1) % m
		dst = append(dst, pts[i])
		for j := 1; j <= s; j++ {
			u := float64(j) / float64(s+1)
			dst = append(dst, Point{
				X: float32(mathutil.Hermite(float64(pts[i].X), float64(pts[next].X), tx[i], tx[next], u)),
				Y: float32(mathutil.Hermite(float64(pts[i].Y), float64(pts[next].Y), ty[i], ty[next], u)),
			})
		}
	}
	if cfg.Closed {
		return append(dst, pts[0])
	}
	return append(dst, pts[m-1])
}

// reflectThrough returns q reflected through p, synthesizing a boundary
// neighbor for an open curve.
func reflectThrough(p, q Point) Point {
	return Point{X: 2*p.X - q.X, Y: 2*p.Y - q.Y}
}

// appendBezier walks the control points in cubic segments (anchors every
// third point), evaluating each by de Casteljau. A trailing run of two or
// three points forms a lower-degree segment. When closed, the curve returns
// to the first anchor along the closing chord.
func appendBezier(dst []Point, pts []Point, cfg *InterpolationConfig) []Point {
	m := len(pts)
	for first := 0; first < m-1; first += bezierAnchorStride {
		last := first + bezierAnchorStride
		if last > m-1 {
			last = m - 1
		}
		dst = appendBezierSegment(dst, pts[first:last+1], cfg.Tension, cfg.Subdivisions)
	}
	if cfg.Closed {
		dst = appendChord(dst, pts[m-1], pts[0], cfg.Subdivisions)
		return append(dst, pts[0])
	}
	return append(dst, pts[m-1])
}

// appendBezierSegment evaluates one control polygon (2-4 points). Interior
// control points are pulled toward the anchor chord by tension before
// evaluation.
func appendBezierSegment(dst []Point, ctrl []Point, tension float32, s int) []Point {
	n := len(ctrl)
	a, b := ctrl[0], ctrl[n-1]

	var cx, cy [4]float64
	for i, p := range ctrl {
		q := p
		if i > 0 && i < n-1 {
			chord := a.Lerp(b, float32(i)/float32(n-1))
			q = p.Lerp(chord, tension)
		}
		cx[i] = float64(q.X)
		cy[i] = float64(q.Y)
	}

	dst = append(dst, ctrl[0])
	for j := 1; j <= s; j++ {
		t := float64(j) / float64(s+1)
		dst = append(dst, Point{
			X: float32(mathutil.DeCasteljau(cx[:n], t)),
			Y: float32(mathutil.DeCasteljau(cy[:n], t)),
		})
	}
	return dst
}

// SmoothSeries applies a symmetric moving-average filter of radius window to
// the y values (x is unchanged), blended with the original by factor:
//
//	out_y = (1-factor)*original_y + factor*filtered_y
//
// factor 0 is the identity, factor 1 the fully filtered series. Points within
// window of either end use a truncated (smaller) window rather than wrapping
// or padding.
func SmoothSeries(points []Point, factor float32, window int) ([]Point, error) {
	if len(points) == 0 {
		return nil, ErrEmptySeries
	}
	if factor < 0 || factor > 1 {
		return nil, fmt.Errorf("%w: smoothing factor must be in [0, 1]", ErrInvalidConfig)
	}
	if window < 0 {
		return nil, fmt.Errorf("%w: window must not be negative", ErrInvalidConfig)
	}
	if len(points) > MaxInterpolatedPoints {
		return nil, fmt.Errorf("%w: %d points exceed limit %d",
			ErrSeriesFull, len(points), MaxInterpolatedPoints)
	}

	out := make([]Point, len(points))
	copy(out, points)
	if factor == 0 || window == 0 {
		return out, nil
	}

	n := len(points)
	ys := make([]float64, n)
	for i, p := range points {
		ys[i] = float64(p.Y)
	}
	filtered := make([]float64, n)
	mathutil.MovingAverage(filtered, ys, window)

	f := float64(factor)
	for i := range out {
		out[i].Y = float32((1-f)*ys[i] + f*filtered[i])
	}
	return out, nil
}
