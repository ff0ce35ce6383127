package chartdata

import (
	"fmt"
	"iter"

	"github.com/microchart/chartdata/internal/simdops"
)

// OverflowMode selects what PointBuffer.Push does when the buffer is full.
type OverflowMode int

const (
	// OverflowOverwrite drops the oldest point to make room (default).
	OverflowOverwrite OverflowMode = iota

	// OverflowReject fails the push with ErrSeriesFull, leaving the buffer
	// unchanged.
	OverflowReject
)

// PointBufferStats counts buffer activity since creation or ResetStats.
type PointBufferStats struct {
	Pushed      uint64
	Overwritten uint64
	Rejected    uint64
}

// PointBuffer is a fixed-capacity ring buffer of points for streaming
// acquisition: new samples arrive continuously and the buffer retains the
// most recent Capacity() of them. Iteration is chronological (oldest first).
type PointBuffer struct {
	xs, ys []float32
	head   int // next write position
	count  int
	mode   OverflowMode
	stats  PointBufferStats
}

// NewPointBuffer creates a ring buffer that overwrites the oldest point when
// full.
func NewPointBuffer(capacity int) *PointBuffer {
	return NewPointBufferWithMode(capacity, OverflowOverwrite)
}

// NewPointBufferWithMode creates a ring buffer with the given overflow mode.
func NewPointBufferWithMode(capacity int, mode OverflowMode) *PointBuffer {
	return &PointBuffer{
		xs:   make([]float32, capacity),
		ys:   make([]float32, capacity),
		mode: mode,
	}
}

// Push adds a point. When the buffer is full the behavior depends on the
// overflow mode: OverflowOverwrite drops the oldest point, OverflowReject
// fails with ErrSeriesFull.
func (b *PointBuffer) Push(p Point) error {
	if b.count == len(b.xs) {
		if b.mode == OverflowReject {
			b.stats.Rejected++
			return fmt.Errorf("%w: buffer capacity %d", ErrSeriesFull, len(b.xs))
		}
		b.stats.Overwritten++
	} else {
		b.count++
	}
	b.xs[b.head] = p.X
	b.ys[b.head] = p.Y
	b.head = (b.head + 1) % len(b.xs)
	b.stats.Pushed++
	return nil
}

// Pop removes and returns the oldest point.
func (b *PointBuffer) Pop() (Point, bool) {
	if b.count == 0 {
		return Point{}, false
	}
	i := b.index(0)
	b.count--
	return Point{X: b.xs[i], Y: b.ys[i]}, true
}

// PeekOldest returns the oldest point without removing it.
func (b *PointBuffer) PeekOldest() (Point, bool) {
	if b.count == 0 {
		return Point{}, false
	}
	i := b.index(0)
	return Point{X: b.xs[i], Y: b.ys[i]}, true
}

// PeekNewest returns the most recently pushed point without removing it.
func (b *PointBuffer) PeekNewest() (Point, bool) {
	if b.count == 0 {
		return Point{}, false
	}
	i := b.index(b.count - 1)
	return Point{X: b.xs[i], Y: b.ys[i]}, true
}

// index maps a chronological offset (0 = oldest) to a storage index.
func (b *PointBuffer) index(offset int) int {
	return (b.head - b.count + offset + len(b.xs)) % len(b.xs)
}

// Len returns the number of points currently buffered.
func (b *PointBuffer) Len() int { return b.count }

// Capacity returns the fixed buffer capacity.
func (b *PointBuffer) Capacity() int { return len(b.xs) }

// IsEmpty reports whether the buffer holds no points.
func (b *PointBuffer) IsEmpty() bool { return b.count == 0 }

// IsFull reports whether the buffer is at capacity.
func (b *PointBuffer) IsFull() bool { return b.count == len(b.xs) }

// Clear removes all points, retaining capacity and statistics.
func (b *PointBuffer) Clear() {
	b.head = 0
	b.count = 0
}

// Stats returns the activity counters.
func (b *PointBuffer) Stats() PointBufferStats { return b.stats }

// ResetStats zeroes the activity counters.
func (b *PointBuffer) ResetStats() { b.stats = PointBufferStats{} }

// Points returns a freshly allocated chronological copy (oldest first).
func (b *PointBuffer) Points() []Point {
	out := make([]Point, b.count)
	for i := 0; i < b.count; i++ {
		j := b.index(i)
		out[i] = Point{X: b.xs[j], Y: b.ys[j]}
	}
	return out
}

// All returns a restartable chronological iterator (oldest first).
func (b *PointBuffer) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < b.count; i++ {
			j := b.index(i)
			if !yield(Point{X: b.xs[j], Y: b.ys[j]}) {
				return
			}
		}
	}
}

// ToSeries copies the buffered points, oldest first, into a new Series with
// the same capacity as the buffer.
func (b *PointBuffer) ToSeries() *Series {
	s := NewSeries(len(b.xs))
	for i := 0; i < b.count; i++ {
		j := b.index(i)
		s.xs = append(s.xs, b.xs[j])
		s.ys = append(s.ys, b.ys[j])
	}
	return s
}

// Bounds computes min/max over the buffered points. Same NaN policy as
// Series.Bounds.
func (b *PointBuffer) Bounds() (Bounds, error) {
	s := b.ToSeries()
	return boundsOfRun(s.xs, s.ys)
}

// MovingAverage returns the mean of the newest window points (all points if
// fewer are buffered). Returns false on an empty buffer or window < 1.
func (b *PointBuffer) MovingAverage(window int) (Point, bool) {
	if b.count == 0 || window < 1 {
		return Point{}, false
	}
	if window > b.count {
		window = b.count
	}
	ops := simdops.Float32Ops()
	start := b.index(b.count - window)
	var sumX, sumY float32
	if start+window <= len(b.xs) {
		sumX = ops.Sum(b.xs[start : start+window])
		sumY = ops.Sum(b.ys[start : start+window])
	} else {
		// Window wraps: two contiguous runs.
		tail := len(b.xs) - start
		sumX = ops.Sum(b.xs[start:]) + ops.Sum(b.xs[:window-tail])
		sumY = ops.Sum(b.ys[start:]) + ops.Sum(b.ys[:window-tail])
	}
	n := float32(window)
	return Point{X: sumX / n, Y: sumY / n}, true
}

// RateOfChange returns the slope (dy/dx) between the two newest points.
// Returns false with fewer than two points or when the two newest points
// share an x coordinate.
func (b *PointBuffer) RateOfChange() (float32, bool) {
	if b.count < 2 {
		return 0, false
	}
	i := b.index(b.count - 2)
	j := b.index(b.count - 1)
	dx := b.xs[j] - b.xs[i]
	if dx == 0 {
		return 0, false
	}
	return (b.ys[j] - b.ys[i]) / dx, true
}
