package chartdata

import (
	"fmt"
	"iter"
	"sort"

	"github.com/microchart/chartdata/internal/simdops"
)

// Series is a fixed-capacity ordered sequence of points. The capacity is set
// at construction and never grows; a push beyond capacity fails without
// mutating the series.
//
// Coordinates are stored as separate x and y runs so that index ranges
// (aggregation buckets, LTTB buckets, moving-average windows) are contiguous
// float32 slices for the SIMD kernels.
type Series struct {
	xs, ys []float32
	label  string
}

// NewSeries creates an empty series with the given fixed capacity.
func NewSeries(capacity int) *Series {
	return &Series{
		xs: make([]float32, 0, capacity),
		ys: make([]float32, 0, capacity),
	}
}

// SeriesFromPoints creates a series with the given capacity, pre-filled with
// the provided points. Fails with ErrSeriesFull if they do not fit.
func SeriesFromPoints(capacity int, pts []Point) (*Series, error) {
	if len(pts) > capacity {
		return nil, fmt.Errorf("%w: %d points exceed capacity %d", ErrSeriesFull, len(pts), capacity)
	}
	s := NewSeries(capacity)
	for _, p := range pts {
		s.xs = append(s.xs, p.X)
		s.ys = append(s.ys, p.Y)
	}
	return s, nil
}

// Push appends a point. Fails with ErrSeriesFull when the series is at
// capacity; the series is unchanged on failure.
func (s *Series) Push(p Point) error {
	return s.PushXY(p.X, p.Y)
}

// PushXY appends a point given as raw coordinates.
func (s *Series) PushXY(x, y float32) error {
	if len(s.xs) == cap(s.xs) {
		return fmt.Errorf("%w: capacity %d", ErrSeriesFull, cap(s.xs))
	}
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
	return nil
}

// Extend appends all points from the slice. The remaining capacity is
// validated up front: on failure nothing is appended.
func (s *Series) Extend(pts []Point) error {
	if len(pts) > s.RemainingCapacity() {
		return fmt.Errorf("%w: %d points exceed remaining capacity %d",
			ErrSeriesFull, len(pts), s.RemainingCapacity())
	}
	for _, p := range pts {
		s.xs = append(s.xs, p.X)
		s.ys = append(s.ys, p.Y)
	}
	return nil
}

// Get returns the point at the given index and whether it exists.
func (s *Series) Get(i int) (Point, bool) {
	if i < 0 || i >= len(s.xs) {
		return Point{}, false
	}
	return s.at(i), true
}

// at returns the point at i without bounds checking.
func (s *Series) at(i int) Point {
	return Point{X: s.xs[i], Y: s.ys[i]}
}

// setAt overwrites the point at i without bounds checking.
func (s *Series) setAt(i int, p Point) {
	s.xs[i] = p.X
	s.ys[i] = p.Y
}

// Len returns the number of points in the series.
func (s *Series) Len() int {
	return len(s.xs)
}

// IsEmpty reports whether the series holds no points.
func (s *Series) IsEmpty() bool {
	return len(s.xs) == 0
}

// IsFull reports whether the series is at capacity.
func (s *Series) IsFull() bool {
	return len(s.xs) == cap(s.xs)
}

// Capacity returns the fixed capacity of the series.
func (s *Series) Capacity() int {
	return cap(s.xs)
}

// RemainingCapacity returns how many more points can be pushed.
func (s *Series) RemainingCapacity() int {
	return cap(s.xs) - len(s.xs)
}

// Clear removes all points, retaining capacity.
func (s *Series) Clear() {
	s.xs = s.xs[:0]
	s.ys = s.ys[:0]
}

// SetLabel sets an optional display label for the series.
func (s *Series) SetLabel(label string) {
	s.label = label
}

// Label returns the series label, or the empty string if unset.
func (s *Series) Label() string {
	return s.label
}

// Points returns a freshly allocated copy of all points in insertion order.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.xs))
	for i := range s.xs {
		out[i] = s.at(i)
	}
	return out
}

// All returns a restartable iterator over the points in insertion order.
// The iterator does not consume the series.
func (s *Series) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range s.xs {
			if !yield(s.at(i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy with the same capacity, contents and label.
func (s *Series) Clone() *Series {
	out := NewSeries(cap(s.xs))
	out.xs = append(out.xs, s.xs...)
	out.ys = append(out.ys, s.ys...)
	out.label = s.label
	return out
}

// Bounds computes the min/max of both axes in a single linear pass.
// Points with a NaN or Inf coordinate are skipped. Fails with ErrEmptySeries
// when the series is empty or holds no finite point.
func (s *Series) Bounds() (Bounds, error) {
	return boundsOfRun(s.xs, s.ys)
}

func boundsOfRun(xs, ys []float32) (Bounds, error) {
	if len(xs) == 0 {
		return Bounds{}, ErrEmptySeries
	}
	var b Bounds
	found := false
	for i := range xs {
		p := Point{X: xs[i], Y: ys[i]}
		if !p.IsFinite() {
			continue
		}
		if !found {
			b = BoundsOf(p)
			found = true
			continue
		}
		b.ExpandToInclude(p)
	}
	if !found {
		return Bounds{}, fmt.Errorf("%w: no finite points", ErrEmptySeries)
	}
	return b, nil
}

// ScaleY multiplies every y value in place, for unit conversion before
// rendering (e.g. raw ADC counts to volts).
func (s *Series) ScaleY(f float32) {
	simdops.Float32Ops().Scale(s.ys, s.ys, f)
}

// ScaleX multiplies every x value in place (e.g. sample index to seconds).
func (s *Series) ScaleX(f float32) {
	simdops.Float32Ops().Scale(s.xs, s.xs, f)
}

// SortByX reorders the points by ascending x coordinate.
// Points with equal x keep their insertion order.
func (s *Series) SortByX() {
	sort.Stable(byX{s})
}

type byX struct{ s *Series }

func (b byX) Len() int           { return len(b.s.xs) }
func (b byX) Less(i, j int) bool { return b.s.xs[i] < b.s.xs[j] }
func (b byX) Swap(i, j int) {
	b.s.xs[i], b.s.xs[j] = b.s.xs[j], b.s.xs[i]
	b.s.ys[i], b.s.ys[j] = b.s.ys[j], b.s.ys[i]
}
