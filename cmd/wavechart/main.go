// Command wavechart renders a terminal waveform chart of a WAV file.
//
// Usage:
//
//	wavechart input.wav
//	wavechart -width 160 -mode peak input.wav
//	wavechart -smooth 0.6 -tail 2000 input.wav
//
// The file is reduced to a per-chunk level envelope (RMS or peak), downsampled
// to the requested width with largest-triangle-three-buckets, and drawn as a
// block-character sparkline with a statistics summary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/microchart/chartdata"
)

const (
	// Samples read per decode call (per channel).
	bufferSize = 65536

	// Samples folded into one envelope point.
	chunkSamples = 2048

	// Envelope ring capacity when -tail is 0 (keep everything up to this).
	defaultEnvelopeCap = 1 << 16

	// Normalization maxima per PCM bit depth.
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	defaultWidth    = 120
	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	width := flag.Int("width", defaultWidth, "Chart width in columns (e.g. 128 for SSD1306 preview)")
	mode := flag.String("mode", "rms", "Envelope mode: rms, peak")
	tail := flag.Int("tail", 0, "Chart only the most recent N envelope points (0 = whole file)")
	smooth := flag.Float64("smooth", 0, "Smoothing blend factor in [0,1] (0 = off)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s recording.wav                 # RMS envelope, 120 columns\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode peak -width 64 hit.wav  # Peak envelope, 64 columns\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	level, err := parseLevelMode(*mode)
	if err != nil {
		return err
	}
	if *width < 3 {
		return fmt.Errorf("width must be at least 3, got %d", *width)
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Mode: %s, width: %d", *mode, *width)
	}

	start := time.Now()
	env, info, err := buildEnvelope(inputPath, level, *tail, *verbose)
	if err != nil {
		return err
	}

	series := env.ToSeries()
	if series.IsEmpty() {
		return fmt.Errorf("no audio data in %s", inputPath)
	}

	fitted, err := chartdata.FitToWidth(series, *width)
	if err != nil {
		return fmt.Errorf("failed to downsample envelope: %w", err)
	}

	pts := fitted.Points()
	if *smooth > 0 {
		pts, err = chartdata.SmoothSeries(pts, float32(*smooth), chartdata.DefaultSubdivisions/2)
		if err != nil {
			return fmt.Errorf("failed to smooth envelope: %w", err)
		}
	}

	fmt.Println(sparkline(pts))
	printSummary(filepath.Base(inputPath), info, series, pts, time.Since(start))
	return nil
}

// buildEnvelope decodes the WAV file chunk by chunk and folds each chunk of
// mono-mixed samples into one envelope point. When tail > 0 the ring buffer
// overwrites, so only the newest tail points survive.
func buildEnvelope(path string, level levelFunc, tail int, verbose bool) (*chartdata.PointBuffer, *wavInputInfo, error) {
	input, err := openWAVInput(path, verbose)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = input.Close() }()

	capacity := defaultEnvelopeCap
	if tail > 0 {
		capacity = tail
	}
	env := chartdata.NewPointBufferWithMode(capacity, chartdata.OverflowOverwrite)

	invMax := 1.0 / maxValueForDepth(input.bitDepth)
	chunk := make([]float32, 0, chunkSamples)
	mono := make([]float32, bufferSize)
	chunkTime := float32(chunkSamples) / float32(input.rate)
	chunkIndex := 0

	flush := func() {
		if len(chunk) == 0 {
			return
		}
		x := (float32(chunkIndex) + 0.5) * chunkTime
		_ = env.Push(chartdata.Pt(x, level(chunk))) // overwrite mode never fails
		chunkIndex++
		chunk = chunk[:0]
	}

	for {
		n, err := input.decoder.PCMBuffer(input.intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		frames := mixdownInto(mono, input.intBuffer.Data[:n*input.channels], input.channels, invMax)
		input.totalFrames += int64(frames)
		for _, s := range mono[:frames] {
			chunk = append(chunk, s)
			if len(chunk) == chunkSamples {
				flush()
			}
		}
	}
	flush()

	if verbose {
		stats := env.Stats()
		log.Printf("Envelope: %d points pushed, %d overwritten", stats.Pushed, stats.Overwritten)
	}
	return env, input, nil
}

func printSummary(name string, info *wavInputInfo, full *chartdata.Series, pts []chartdata.Point, elapsed time.Duration) {
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = float64(p.Y)
	}
	mean, std := stat.MeanStdDev(ys, nil)

	b, err := full.Bounds()
	if err != nil {
		return
	}
	duration := float64(info.totalFrames) / float64(info.rate)

	fmt.Printf("%s: %d Hz, %d channels, %d-bit, %.2fs\n",
		name, info.rate, info.channels, info.bitDepth, duration)
	fmt.Printf("  envelope: %d points -> %d columns, level %.4f..%.4f\n",
		full.Len(), len(pts), b.MinY, b.MaxY)
	fmt.Printf("  mean %.4f, stddev %.4f, rendered in %.0fms\n",
		mean, std, elapsed.Seconds()*1000)
}
