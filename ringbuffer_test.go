package chartdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointBufferPushPop(t *testing.T) {
	b := NewPointBuffer(3)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 3, b.Capacity())

	require.NoError(t, b.Push(Pt(1, 1)))
	require.NoError(t, b.Push(Pt(2, 2)))
	assert.Equal(t, 2, b.Len())

	p, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, Pt(1, 1), p)
	assert.Equal(t, 1, b.Len())

	p, ok = b.Pop()
	require.True(t, ok)
	assert.Equal(t, Pt(2, 2), p)

	_, ok = b.Pop()
	assert.False(t, ok)
}

func TestPointBufferOverwriteKeepsNewest(t *testing.T) {
	b := NewPointBuffer(3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, b.Push(Pt(float32(i), float32(i*10))))
	}

	assert.True(t, b.IsFull())
	assert.Equal(t, []Point{Pt(3, 30), Pt(4, 40), Pt(5, 50)}, b.Points())

	stats := b.Stats()
	assert.Equal(t, uint64(5), stats.Pushed)
	assert.Equal(t, uint64(2), stats.Overwritten)
	assert.Equal(t, uint64(0), stats.Rejected)
}

func TestPointBufferRejectMode(t *testing.T) {
	b := NewPointBufferWithMode(2, OverflowReject)
	require.NoError(t, b.Push(Pt(1, 1)))
	require.NoError(t, b.Push(Pt(2, 2)))

	err := b.Push(Pt(3, 3))
	require.ErrorIs(t, err, ErrSeriesFull)

	// Contents unchanged after the rejected push.
	assert.Equal(t, []Point{Pt(1, 1), Pt(2, 2)}, b.Points())

	stats := b.Stats()
	assert.Equal(t, uint64(2), stats.Pushed)
	assert.Equal(t, uint64(1), stats.Rejected)
}

func TestPointBufferPeek(t *testing.T) {
	b := NewPointBuffer(2)

	_, ok := b.PeekOldest()
	assert.False(t, ok)
	_, ok = b.PeekNewest()
	assert.False(t, ok)

	require.NoError(t, b.Push(Pt(1, 1)))
	require.NoError(t, b.Push(Pt(2, 2)))
	require.NoError(t, b.Push(Pt(3, 3))) // overwrites (1,1)

	oldest, ok := b.PeekOldest()
	require.True(t, ok)
	assert.Equal(t, Pt(2, 2), oldest)

	newest, ok := b.PeekNewest()
	require.True(t, ok)
	assert.Equal(t, Pt(3, 3), newest)

	// Peeks do not consume.
	assert.Equal(t, 2, b.Len())
}

func TestPointBufferClearKeepsStats(t *testing.T) {
	b := NewPointBuffer(2)
	require.NoError(t, b.Push(Pt(1, 1)))
	b.Clear()

	assert.True(t, b.IsEmpty())
	assert.Equal(t, uint64(1), b.Stats().Pushed)

	b.ResetStats()
	assert.Equal(t, PointBufferStats{}, b.Stats())
}

func TestPointBufferAllChronological(t *testing.T) {
	b := NewPointBuffer(4)
	for i := 0; i < 6; i++ {
		require.NoError(t, b.Push(Pt(float32(i), 0)))
	}

	var xs []float32
	for p := range b.All() {
		xs = append(xs, p.X)
	}
	assert.Equal(t, []float32{2, 3, 4, 5}, xs)
}

func TestPointBufferToSeries(t *testing.T) {
	b := NewPointBuffer(3)
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Push(Pt(float32(i), float32(i))))
	}

	s := b.ToSeries()
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Capacity())
	assert.Equal(t, []Point{Pt(2, 2), Pt(3, 3), Pt(4, 4)}, s.Points())
}

func TestPointBufferBounds(t *testing.T) {
	b := NewPointBuffer(4)
	_, err := b.Bounds()
	require.ErrorIs(t, err, ErrEmptySeries)

	require.NoError(t, b.Push(Pt(1, -2)))
	require.NoError(t, b.Push(Pt(3, 5)))

	bounds, err := b.Bounds()
	require.NoError(t, err)
	assert.Equal(t, Bounds{MinX: 1, MaxX: 3, MinY: -2, MaxY: 5}, bounds)
}

func TestPointBufferMovingAverage(t *testing.T) {
	b := NewPointBuffer(4)
	for i := 1; i <= 4; i++ {
		require.NoError(t, b.Push(Pt(float32(i), float32(i*10))))
	}

	avg, ok := b.MovingAverage(2)
	require.True(t, ok)
	assert.InDelta(t, 3.5, avg.X, 1e-6)
	assert.InDelta(t, 35, avg.Y, 1e-6)

	// Window larger than content averages everything.
	avg, ok = b.MovingAverage(10)
	require.True(t, ok)
	assert.InDelta(t, 2.5, avg.X, 1e-6)
	assert.InDelta(t, 25, avg.Y, 1e-6)
}

func TestPointBufferMovingAverageWrappedWindow(t *testing.T) {
	b := NewPointBuffer(4)
	// Push 6 points so the newest window straddles the wrap point.
	for i := 1; i <= 6; i++ {
		require.NoError(t, b.Push(Pt(float32(i), float32(i))))
	}

	// Buffer holds 3,4,5,6; newest 3 are 4,5,6.
	avg, ok := b.MovingAverage(3)
	require.True(t, ok)
	assert.InDelta(t, 5, avg.X, 1e-6)
	assert.InDelta(t, 5, avg.Y, 1e-6)
}

func TestPointBufferMovingAverageInvalid(t *testing.T) {
	b := NewPointBuffer(2)

	_, ok := b.MovingAverage(1)
	assert.False(t, ok, "empty buffer")

	require.NoError(t, b.Push(Pt(1, 1)))
	_, ok = b.MovingAverage(0)
	assert.False(t, ok, "window < 1")
}

func TestPointBufferRateOfChange(t *testing.T) {
	b := NewPointBuffer(4)

	_, ok := b.RateOfChange()
	assert.False(t, ok, "needs two points")

	require.NoError(t, b.Push(Pt(0, 0)))
	require.NoError(t, b.Push(Pt(2, 6)))

	slope, ok := b.RateOfChange()
	require.True(t, ok)
	assert.InDelta(t, 3, slope, 1e-6)

	// Vertical step: undefined slope.
	require.NoError(t, b.Push(Pt(2, 9)))
	_, ok = b.RateOfChange()
	assert.False(t, ok)
}
