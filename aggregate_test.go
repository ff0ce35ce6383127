package chartdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesOf(t *testing.T, pts ...Point) *Series {
	t.Helper()
	s, err := SeriesFromPoints(len(pts), pts)
	require.NoError(t, err)
	return s
}

func rampSeries(t *testing.T, n int) *Series {
	t.Helper()
	s := NewSeries(n)
	for i := 0; i < n; i++ {
		require.NoError(t, s.PushXY(float32(i), float32(i)))
	}
	return s
}

func TestAggregateMeanTwoBuckets(t *testing.T) {
	src := seriesOf(t, Pt(0, 0), Pt(1, 10), Pt(2, 20), Pt(3, 30))
	cfg := &AggregationConfig{Strategy: AggregateMean, TargetPoints: 2}

	out, err := Aggregate(src, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	p, _ := out.Get(0)
	assert.InDelta(t, 0.5, p.X, 1e-6)
	assert.InDelta(t, 5, p.Y, 1e-6)

	p, _ = out.Get(1)
	assert.InDelta(t, 2.5, p.X, 1e-6)
	assert.InDelta(t, 25, p.Y, 1e-6)
}

func TestAggregateStrategies(t *testing.T) {
	// One bucket: 5 points reduced to a single representative.
	src := seriesOf(t, Pt(0, 3), Pt(1, -2), Pt(2, 7), Pt(3, -2), Pt(4, 1))

	tests := []struct {
		name     string
		strategy AggregationStrategy
		want     []Point
	}{
		{"min_first_occurrence_wins", AggregateMin, []Point{Pt(1, -2)}},
		{"max", AggregateMax, []Point{Pt(2, 7)}},
		{"first", AggregateFirst, []Point{Pt(0, 3)}},
		{"last", AggregateLast, []Point{Pt(4, 1)}},
		{"minmax_in_index_order", AggregateMinMax, []Point{Pt(1, -2), Pt(2, 7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AggregationConfig{Strategy: tt.strategy, TargetPoints: 1}
			out, err := Aggregate(src, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Points())
		})
	}
}

func TestAggregateMinMaxSinglePointWhenSameIndex(t *testing.T) {
	// Constant bucket: min and max are the same point, emitted once.
	src := seriesOf(t, Pt(0, 5), Pt(1, 5), Pt(2, 5))
	cfg := &AggregationConfig{Strategy: AggregateMinMax, TargetPoints: 1}

	out, err := Aggregate(src, cfg)
	require.NoError(t, err)
	assert.Equal(t, []Point{Pt(0, 5)}, out.Points())
}

func TestAggregateMinMaxSoftCap(t *testing.T) {
	src := rampSeries(t, 100)
	cfg := &AggregationConfig{Strategy: AggregateMinMax, TargetPoints: 10}

	out, err := Aggregate(src, cfg)
	require.NoError(t, err)
	assert.Greater(t, out.Len(), 10)
	assert.LessOrEqual(t, out.Len(), 20, "MinMax emits at most two points per bucket")
}

func TestAggregateOutputSize(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{100, 10, 10},
		{101, 10, 10},
		{10, 10, 10}, // no reduction needed
		{5, 10, 5},   // fewer points than target
		{1, 1, 1},
	}

	for _, tt := range tests {
		src := rampSeries(t, tt.n)
		cfg := &AggregationConfig{Strategy: AggregateMean, TargetPoints: tt.k}
		out, err := Aggregate(src, cfg)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out.Len(), "n=%d k=%d", tt.n, tt.k)
	}
}

func TestAggregateCopyWhenAtOrBelowTarget(t *testing.T) {
	src := seriesOf(t, Pt(0, 1), Pt(1, 2), Pt(2, 3))
	cfg := &AggregationConfig{Strategy: AggregateMean, TargetPoints: 5}

	out, err := Aggregate(src, cfg)
	require.NoError(t, err)
	assert.Equal(t, src.Points(), out.Points())

	// The copy is independent of the source.
	src.Clear()
	assert.Equal(t, 3, out.Len())
}

func TestAggregateIdempotent(t *testing.T) {
	src := rampSeries(t, 1000)
	cfg := &AggregationConfig{Strategy: AggregateMean, TargetPoints: 50}

	once, err := Aggregate(src, cfg)
	require.NoError(t, err)

	twice, err := Aggregate(once, cfg)
	require.NoError(t, err)
	assert.Equal(t, once.Points(), twice.Points(), "aggregating at the current size is a fixed point")
}

func TestAggregatePreserveEndpoints(t *testing.T) {
	src := rampSeries(t, 97)
	cfg := &AggregationConfig{
		Strategy:          AggregateMean,
		TargetPoints:      10,
		PreserveEndpoints: true,
	}

	out, err := Aggregate(src, cfg)
	require.NoError(t, err)

	first, _ := out.Get(0)
	last, _ := out.Get(out.Len() - 1)
	assert.Equal(t, Pt(0, 0), first)
	assert.Equal(t, Pt(96, 96), last)
}

func TestAggregateEmptySeries(t *testing.T) {
	cfg := &AggregationConfig{Strategy: AggregateMean, TargetPoints: 10}
	_, err := Aggregate(NewSeries(4), cfg)
	require.ErrorIs(t, err, ErrEmptySeries)
}

func TestAggregateInvalidConfig(t *testing.T) {
	src := rampSeries(t, 10)

	_, err := Aggregate(src, &AggregationConfig{Strategy: AggregateMean, TargetPoints: 0})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Aggregate(src, &AggregationConfig{Strategy: AggregationStrategy(99), TargetPoints: 5})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAggregateIntoCapacityError(t *testing.T) {
	src := rampSeries(t, 100)
	dst := NewSeries(5)
	cfg := &AggregationConfig{Strategy: AggregateMean, TargetPoints: 10}

	err := AggregateInto(dst, src, cfg)
	require.ErrorIs(t, err, ErrSeriesFull)
}

func TestAggregateIntoAppends(t *testing.T) {
	src := rampSeries(t, 100)
	dst := NewSeries(20)
	require.NoError(t, dst.Push(Pt(-1, -1)))

	cfg := &AggregationConfig{Strategy: AggregateFirst, TargetPoints: 10}
	require.NoError(t, AggregateInto(dst, src, cfg))

	assert.Equal(t, 11, dst.Len())
	p, _ := dst.Get(0)
	assert.Equal(t, Pt(-1, -1), p, "existing content is preserved")
	p, _ = dst.Get(1)
	assert.Equal(t, Pt(0, 0), p)
}

func TestAggregateIntoPreserveEndpointsAfterAppend(t *testing.T) {
	// PreserveEndpoints must rewrite the appended region, not index 0 of dst.
	src := rampSeries(t, 100)
	dst := NewSeries(20)
	require.NoError(t, dst.Push(Pt(-1, -1)))

	cfg := &AggregationConfig{
		Strategy:          AggregateMean,
		TargetPoints:      10,
		PreserveEndpoints: true,
	}
	require.NoError(t, AggregateInto(dst, src, cfg))

	p, _ := dst.Get(0)
	assert.Equal(t, Pt(-1, -1), p)
	p, _ = dst.Get(1)
	assert.Equal(t, Pt(0, 0), p)
	p, _ = dst.Get(dst.Len() - 1)
	assert.Equal(t, Pt(99, 99), p)
}

func TestAggregationStrategyString(t *testing.T) {
	assert.Equal(t, "mean", AggregateMean.String())
	assert.Equal(t, "minmax", AggregateMinMax.String())
	assert.Equal(t, "unknown", AggregationStrategy(42).String())
}

func TestDefaultAggregationConfig(t *testing.T) {
	cfg := DefaultAggregationConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, AggregateMean, cfg.Strategy)
	assert.Equal(t, DefaultTargetPoints, cfg.TargetPoints)
	assert.True(t, cfg.PreserveEndpoints)
}
