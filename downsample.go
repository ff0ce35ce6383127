package chartdata

import (
	"fmt"
	"math"

	"github.com/microchart/chartdata/internal/simdops"
)

// DownsamplingConfig configures DownsampleUniform and DownsampleLTTB.
type DownsamplingConfig struct {
	// MaxPoints bounds the output size. LTTB requires at least 3.
	MaxPoints int

	// PreserveEndpoints forces the input's last point into the output for
	// uniform sampling regardless of stride alignment. LTTB always keeps
	// both endpoints.
	PreserveEndpoints bool

	// MinReductionRatio is the fraction MaxPoints/len at or above which
	// downsampling is skipped as not worthwhile and the input is returned
	// unchanged (as a fresh copy). Zero disables the guard: any input longer
	// than MaxPoints is reduced.
	MinReductionRatio float32
}

// DefaultDownsamplingConfig returns a config bounded at DefaultMaxPoints with
// endpoint preservation.
func DefaultDownsamplingConfig() DownsamplingConfig {
	return DownsamplingConfig{
		MaxPoints:         DefaultMaxPoints,
		PreserveEndpoints: true,
		MinReductionRatio: DefaultMinReductionRatio,
	}
}

// Validate checks the configuration.
func (c *DownsamplingConfig) Validate() error {
	if c.MaxPoints < 1 {
		return fmt.Errorf("%w: max points must be at least 1", ErrInvalidConfig)
	}
	if c.MinReductionRatio < 0 {
		return fmt.Errorf("%w: min reduction ratio must not be negative", ErrInvalidConfig)
	}
	return nil
}

// skipReduction reports whether downsampling n points to cfg.MaxPoints is not
// worth doing.
func (c *DownsamplingConfig) skipReduction(n int) bool {
	if c.MaxPoints >= n {
		return true
	}
	if c.MinReductionRatio <= 0 {
		return false
	}
	return float32(c.MaxPoints)/float32(n) >= c.MinReductionRatio
}

// DownsampleUniform reduces the series by index stride: every
// ceil(n/MaxPoints)-th point is kept. When the reduction would not be
// worthwhile (see MinReductionRatio) the input is returned unchanged as a
// fresh copy.
func DownsampleUniform(s *Series, cfg *DownsamplingConfig) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return nil, ErrEmptySeries
	}
	capacity := cfg.MaxPoints
	if cfg.skipReduction(s.Len()) {
		capacity = s.Len()
	}
	dst := NewSeries(capacity)
	if err := DownsampleUniformInto(dst, s, cfg); err != nil {
		return nil, err
	}
	return dst, nil
}

// DownsampleUniformInto appends the uniform downsampling of src to dst.
func DownsampleUniformInto(dst, src *Series, cfg *DownsamplingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	n := src.Len()
	if n == 0 {
		return ErrEmptySeries
	}
	if cfg.skipReduction(n) {
		return dst.Extend(src.Points())
	}

	stride := (n + cfg.MaxPoints - 1) / cfg.MaxPoints
	for i := 0; i < n; i += stride {
		if err := dst.Push(src.at(i)); err != nil {
			return err
		}
	}
	if cfg.PreserveEndpoints {
		dst.setAt(dst.Len()-1, src.at(n-1))
	}
	return nil
}

// DownsampleLTTB reduces the series to exactly cfg.MaxPoints points using the
// Largest-Triangle-Three-Buckets algorithm: the first and last points are
// always kept, and each of the MaxPoints-2 interior buckets contributes the
// point forming the largest triangle with the previously selected point and
// the average of the next bucket. Single forward pass, O(n) time.
//
// When the reduction would not be worthwhile the input is returned unchanged
// as a fresh copy.
func DownsampleLTTB(s *Series, cfg *DownsamplingConfig) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return nil, ErrEmptySeries
	}
	capacity := cfg.MaxPoints
	if cfg.skipReduction(s.Len()) {
		capacity = s.Len()
	}
	dst := NewSeries(capacity)
	if err := DownsampleLTTBInto(dst, s, cfg); err != nil {
		return nil, err
	}
	return dst, nil
}

// DownsampleLTTBInto appends the LTTB downsampling of src to dst.
func DownsampleLTTBInto(dst, src *Series, cfg *DownsamplingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	n := src.Len()
	if n == 0 {
		return ErrEmptySeries
	}
	if cfg.skipReduction(n) {
		return dst.Extend(src.Points())
	}
	if cfg.MaxPoints < minLTTBOutput {
		return fmt.Errorf("%w: LTTB needs max points >= %d, got %d",
			ErrInvalidConfig, minLTTBOutput, cfg.MaxPoints)
	}

	k := cfg.MaxPoints
	ops := simdops.Float32Ops()

	prev := src.at(0)
	if err := dst.Push(prev); err != nil {
		return err
	}

	// Interior buckets partition indices [1, n-1) by even-width division.
	for i := 0; i < k-2; i++ {
		lo := 1 + i*(n-2)/(k-2)
		hi := 1 + (i+1)*(n-2)/(k-2)

		// Average point of the following bucket; the final bucket's
		// neighbor is the last input point itself.
		nextLo := hi
		nextHi := 1 + (i+2)*(n-2)/(k-2)
		if nextHi > n {
			nextHi = n
		}
		cnt := float32(nextHi - nextLo)
		avg := Point{
			X: ops.Sum(src.xs[nextLo:nextHi]) / cnt,
			Y: ops.Sum(src.ys[nextLo:nextHi]) / cnt,
		}

		best := lo
		bestArea := float32(-1)
		for j := lo; j < hi; j++ {
			area := triangleArea(prev, src.at(j), avg)
			if area > bestArea {
				bestArea = area
				best = j
			}
		}

		prev = src.at(best)
		if err := dst.Push(prev); err != nil {
			return err
		}
	}

	return dst.Push(src.at(n - 1))
}

// triangleArea returns the area of the triangle a-b-c (cross product form).
func triangleArea(a, b, c Point) float32 {
	det := float64(a.X)*(float64(b.Y)-float64(c.Y)) +
		float64(b.X)*(float64(c.Y)-float64(a.Y)) +
		float64(c.X)*(float64(a.Y)-float64(b.Y))
	return float32(math.Abs(det) * 0.5)
}
