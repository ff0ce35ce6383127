package chartdata

import (
	"fmt"

	"github.com/microchart/chartdata/internal/simdops"
)

// AggregationStrategy selects how each bucket of input points is reduced to
// its representative output.
type AggregationStrategy int

const (
	// AggregateMean outputs the arithmetic mean of x and y over the bucket.
	AggregateMean AggregationStrategy = iota

	// AggregateMin outputs the bucket point with the minimum y value.
	// Ties keep the first occurrence in bucket order.
	AggregateMin

	// AggregateMax outputs the bucket point with the maximum y value.
	// Ties keep the first occurrence in bucket order.
	AggregateMax

	// AggregateMinMax outputs both the min-y and max-y points of each bucket
	// in their original relative order, preserving visual extremes. The
	// output may hold up to twice TargetPoints; for this strategy the
	// target is a soft cap.
	AggregateMinMax

	// AggregateFirst outputs the first point of each bucket.
	AggregateFirst

	// AggregateLast outputs the last point of each bucket.
	AggregateLast
)

// String returns the strategy name.
func (s AggregationStrategy) String() string {
	switch s {
	case AggregateMean:
		return "mean"
	case AggregateMin:
		return "min"
	case AggregateMax:
		return "max"
	case AggregateMinMax:
		return "minmax"
	case AggregateFirst:
		return "first"
	case AggregateLast:
		return "last"
	default:
		return "unknown"
	}
}

// AggregationConfig configures Aggregate. Immutable once passed in.
type AggregationConfig struct {
	// Strategy reduces each bucket to its representative point(s).
	Strategy AggregationStrategy

	// TargetPoints is the number of buckets the input is partitioned into.
	// The output holds min(TargetPoints, input length) points, except for
	// AggregateMinMax which may emit up to two points per bucket.
	TargetPoints int

	// PreserveEndpoints forces the original first and last input points to
	// appear unmodified as the first and last output points.
	PreserveEndpoints bool
}

// DefaultAggregationConfig returns a mean aggregation to DefaultTargetPoints
// with endpoint preservation.
func DefaultAggregationConfig() AggregationConfig {
	return AggregationConfig{
		Strategy:          AggregateMean,
		TargetPoints:      DefaultTargetPoints,
		PreserveEndpoints: true,
	}
}

// Validate checks the configuration.
func (c *AggregationConfig) Validate() error {
	if c.TargetPoints < 1 {
		return fmt.Errorf("%w: target points must be at least 1", ErrInvalidConfig)
	}
	if c.Strategy < AggregateMean || c.Strategy > AggregateLast {
		return fmt.Errorf("%w: unknown aggregation strategy %d", ErrInvalidConfig, c.Strategy)
	}
	return nil
}

// Aggregate reduces the series to approximately cfg.TargetPoints points.
// The input is partitioned into TargetPoints contiguous buckets by even-width
// index division (bucket i covers [i*n/k, (i+1)*n/k)) and each bucket is
// reduced according to the strategy. An input no longer than the target is
// returned as a fresh copy, which makes aggregation at the current length a
// fixed point.
func Aggregate(s *Series, cfg *AggregationConfig) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return nil, ErrEmptySeries
	}
	capacity := cfg.TargetPoints
	if cfg.Strategy == AggregateMinMax {
		capacity *= 2
	}
	if s.Len() <= cfg.TargetPoints {
		capacity = s.Len()
	}
	dst := NewSeries(capacity)
	if err := AggregateInto(dst, s, cfg); err != nil {
		return nil, err
	}
	return dst, nil
}

// AggregateInto appends the aggregation of src to dst, which must have enough
// remaining capacity; otherwise it fails with ErrSeriesFull partway through
// the write (callers reusing dst should Clear it on error).
func AggregateInto(dst, src *Series, cfg *AggregationConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	n := src.Len()
	if n == 0 {
		return ErrEmptySeries
	}

	k := cfg.TargetPoints
	if n <= k {
		return dst.Extend(src.Points())
	}

	start := dst.Len()
	for i := 0; i < k; i++ {
		lo := i * n / k
		hi := (i + 1) * n / k
		if err := reduceBucket(dst, src, lo, hi, cfg.Strategy); err != nil {
			return err
		}
	}

	if cfg.PreserveEndpoints {
		dst.setAt(start, src.at(0))
		dst.setAt(dst.Len()-1, src.at(n-1))
	}
	return nil
}

// reduceBucket appends the representative point(s) of src[lo:hi) to dst.
func reduceBucket(dst, src *Series, lo, hi int, strategy AggregationStrategy) error {
	switch strategy {
	case AggregateMean:
		ops := simdops.Float32Ops()
		n := float32(hi - lo)
		return dst.PushXY(ops.Sum(src.xs[lo:hi])/n, ops.Sum(src.ys[lo:hi])/n)

	case AggregateMin:
		return dst.Push(src.at(argExtremeY(src, lo, hi, false)))

	case AggregateMax:
		return dst.Push(src.at(argExtremeY(src, lo, hi, true)))

	case AggregateMinMax:
		minIdx := argExtremeY(src, lo, hi, false)
		maxIdx := argExtremeY(src, lo, hi, true)
		if minIdx == maxIdx {
			return dst.Push(src.at(minIdx))
		}
		first, second := minIdx, maxIdx
		if second < first {
			first, second = second, first
		}
		if err := dst.Push(src.at(first)); err != nil {
			return err
		}
		return dst.Push(src.at(second))

	case AggregateFirst:
		return dst.Push(src.at(lo))

	case AggregateLast:
		return dst.Push(src.at(hi - 1))

	default:
		return fmt.Errorf("%w: unknown aggregation strategy %d", ErrInvalidConfig, strategy)
	}
}

// argExtremeY returns the index in [lo, hi) of the point with extreme y.
// The first occurrence wins ties.
func argExtremeY(src *Series, lo, hi int, wantMax bool) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if wantMax {
			if src.ys[i] > src.ys[best] {
				best = i
			}
		} else {
			if src.ys[i] < src.ys[best] {
				best = i
			}
		}
	}
	return best
}

// BucketStats summarizes a contiguous index range of a series, for callers
// that need bucket summaries without a full aggregation pass.
type BucketStats struct {
	Count        int
	MinX, MaxX   float32
	MinY, MaxY   float32
	MeanX, MeanY float32
	First, Last  Point
}

// Stats computes summary statistics for the index range [lo, hi).
// Fails with ErrEmptySeries on an empty range.
func (s *Series) Stats(lo, hi int) (BucketStats, error) {
	if lo < 0 || hi > s.Len() || lo >= hi {
		return BucketStats{}, fmt.Errorf("%w: range [%d, %d)", ErrEmptySeries, lo, hi)
	}
	st := BucketStats{
		Count: hi - lo,
		MinX:  s.xs[lo], MaxX: s.xs[lo],
		MinY: s.ys[lo], MaxY: s.ys[lo],
		First: s.at(lo),
		Last:  s.at(hi - 1),
	}
	for i := lo + 1; i < hi; i++ {
		if s.xs[i] < st.MinX {
			st.MinX = s.xs[i]
		}
		if s.xs[i] > st.MaxX {
			st.MaxX = s.xs[i]
		}
		if s.ys[i] < st.MinY {
			st.MinY = s.ys[i]
		}
		if s.ys[i] > st.MaxY {
			st.MaxY = s.ys[i]
		}
	}
	ops := simdops.Float32Ops()
	n := float32(st.Count)
	st.MeanX = ops.Sum(s.xs[lo:hi]) / n
	st.MeanY = ops.Sum(s.ys[lo:hi]) / n
	return st, nil
}
