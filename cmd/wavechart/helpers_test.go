package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microchart/chartdata"
)

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = openWAVInput(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestMixdownInto_Mono(t *testing.T) {
	dst := make([]float32, 4)
	n := mixdownInto(dst, []int{16384, -16384, 32767, 0}, 1, 1.0/maxInt16)
	require.Equal(t, 4, n)
	assert.InDelta(t, 0.5, dst[0], 1e-4)
	assert.InDelta(t, -0.5, dst[1], 1e-4)
	assert.InDelta(t, 1.0, dst[2], 1e-4)
	assert.InDelta(t, 0.0, dst[3], 1e-4)
}

func TestMixdownInto_StereoAverages(t *testing.T) {
	dst := make([]float32, 2)
	// Frames: (L=1000, R=3000), (L=-2000, R=2000)
	n := mixdownInto(dst, []int{1000, 3000, -2000, 2000}, 2, 1.0/maxInt16)
	require.Equal(t, 2, n)
	assert.InDelta(t, 2000.0/maxInt16, dst[0], 1e-6)
	assert.InDelta(t, 0.0, dst[1], 1e-6)
}

func TestMixdownInto_ClampsToDestination(t *testing.T) {
	dst := make([]float32, 2)
	n := mixdownInto(dst, []int{1, 2, 3, 4, 5}, 1, 1.0)
	assert.Equal(t, 2, n)
}

func TestParseLevelMode(t *testing.T) {
	for _, mode := range []string{"rms", "RMS", "peak", "Peak"} {
		fn, err := parseLevelMode(mode)
		require.NoError(t, err, "mode %s", mode)
		assert.NotNil(t, fn)
	}

	_, err := parseLevelMode("median")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestRMSLevel(t *testing.T) {
	// RMS of a constant signal is its absolute value.
	samples := []float32{0.5, 0.5, 0.5, 0.5}
	assert.InDelta(t, 0.5, rmsLevel(samples), 1e-6)

	// RMS of a full-scale square wave is 1.
	square := []float32{1, -1, 1, -1}
	assert.InDelta(t, 1.0, rmsLevel(square), 1e-6)

	// RMS of a sine is amplitude / sqrt(2).
	sine := make([]float32, 1024)
	for i := range sine {
		sine[i] = float32(math.Sin(2 * math.Pi * float64(i) / 64))
	}
	assert.InDelta(t, 1.0/math.Sqrt2, rmsLevel(sine), 1e-3)

	assert.Equal(t, float32(0), rmsLevel(nil))
}

func TestPeakLevel(t *testing.T) {
	assert.Equal(t, float32(0.75), peakLevel([]float32{0.1, -0.75, 0.5}))
	assert.Equal(t, float32(0), peakLevel(nil))
}

func TestSparkline_Empty(t *testing.T) {
	assert.Equal(t, "", sparkline(nil))
}

func TestSparkline_MinMaxMapping(t *testing.T) {
	pts := []chartdata.Point{
		chartdata.Pt(0, 0),
		chartdata.Pt(1, 1),
	}
	runes := []rune(sparkline(pts))
	require.Len(t, runes, 2)
	assert.Equal(t, sparkRunes[0], runes[0])
	assert.Equal(t, sparkRunes[len(sparkRunes)-1], runes[1])
}

func TestSparkline_FlatSeriesMidHeight(t *testing.T) {
	pts := []chartdata.Point{
		chartdata.Pt(0, 0.3),
		chartdata.Pt(1, 0.3),
		chartdata.Pt(2, 0.3),
	}
	runes := []rune(sparkline(pts))
	require.Len(t, runes, 3)
	mid := sparkRunes[len(sparkRunes)/2]
	for _, r := range runes {
		assert.Equal(t, mid, r)
	}
}

func TestSparkline_Monotonic(t *testing.T) {
	pts := make([]chartdata.Point, 16)
	for i := range pts {
		pts[i] = chartdata.Pt(float32(i), float32(i))
	}
	runes := []rune(sparkline(pts))
	require.Len(t, runes, 16)
	for i := 1; i < len(runes); i++ {
		assert.LessOrEqual(t, runeLevel(runes[i-1]), runeLevel(runes[i]))
	}
}

func runeLevel(r rune) int {
	for i, s := range sparkRunes {
		if s == r {
			return i
		}
	}
	return -1
}
