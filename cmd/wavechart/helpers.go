package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/microchart/chartdata"
	"github.com/microchart/chartdata/internal/simdops"
)

// wavInputInfo holds the open decoder plus validated format information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	intBuffer   *audio.IntBuffer
	rate        int
	channels    int
	bitDepth    int
	totalFrames int64
}

// openWAVInput opens and validates a WAV file, returning format information
// and a preallocated decode buffer.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, channels, bitDepth)
	}

	return &wavInputInfo{
		file:    inputFile,
		decoder: decoder,
		intBuffer: &audio.IntBuffer{
			Data:   make([]int, bufferSize*channels),
			Format: format,
		},
		rate:     format.SampleRate,
		channels: channels,
		bitDepth: bitDepth,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// maxValueForDepth returns the maximum sample value for the given bit depth.
func maxValueForDepth(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// mixdownInto averages interleaved int frames down to normalized mono float32
// samples in dst. Returns the number of frames written.
func mixdownInto(dst []float32, data []int, channels int, invMax float64) int {
	if channels <= 0 {
		return 0
	}
	frames := len(data) / channels
	if frames > len(dst) {
		frames = len(dst)
	}

	// Fast path for mono
	if channels == 1 {
		for i := range frames {
			dst[i] = float32(float64(data[i]) * invMax)
		}
		return frames
	}

	invChannels := 1.0 / float64(channels)
	for i := range frames {
		base := i * channels
		sum := 0
		for ch := range channels {
			sum += data[base+ch]
		}
		dst[i] = float32(float64(sum) * invChannels * invMax)
	}
	return frames
}

// levelFunc folds a chunk of normalized samples into one envelope level.
type levelFunc func(samples []float32) float32

func parseLevelMode(mode string) (levelFunc, error) {
	switch strings.ToLower(mode) {
	case "rms":
		return rmsLevel, nil
	case "peak":
		return peakLevel, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want rms or peak)", mode)
	}
}

// rmsLevel computes the root-mean-square of the chunk. The dot product of the
// chunk with itself is the sum of squares; lengths are equal by construction.
func rmsLevel(samples []float32) float32 {
	if len(samples) == 0 {
		return 0
	}
	sumSq := simdops.Float32Ops().DotProductUnsafe(samples, samples)
	return float32(math.Sqrt(float64(sumSq) / float64(len(samples))))
}

// peakLevel returns the largest absolute sample in the chunk.
func peakLevel(samples []float32) float32 {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// Block elements from one-eighth to full height.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline renders the y values of pts as a single row of block characters,
// scaled so the lowest point maps to the shortest block and the highest to the
// tallest. A flat series renders at mid height.
func sparkline(pts []chartdata.Point) string {
	if len(pts) == 0 {
		return ""
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	levels := len(sparkRunes)
	var sb strings.Builder
	sb.Grow(len(pts) * 3) // block runes are 3 bytes in UTF-8

	span := maxY - minY
	for _, p := range pts {
		idx := levels / 2
		if span > 0 {
			idx = int(float64(p.Y-minY) / float64(span) * float64(levels-1))
			if idx < 0 {
				idx = 0
			} else if idx >= levels {
				idx = levels - 1
			}
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}
