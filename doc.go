// Package chartdata provides the data engine for chart rendering on
// memory-constrained embedded displays: fixed-capacity point series,
// aggregation and shape-preserving downsampling, and curve interpolation.
// It turns bounded numeric series into ordered point streams sized for a
// rendering budget; the pixel-drawing layer consumes the result.
//
// # Features
//
//   - Fixed-capacity [Series] with bounds computation; pushes beyond capacity
//     fail instead of reallocating, so memory use is known up front
//   - [PointBuffer] ring buffer for streaming acquisition with overwrite or
//     reject overflow policies
//   - Bucket aggregation ([Aggregate]) with Mean, Min, Max, MinMax, First and
//     Last strategies and optional endpoint preservation
//   - Largest-Triangle-Three-Buckets ([DownsampleLTTB]) and uniform-stride
//     ([DownsampleUniform]) downsampling with a minimum-reduction guard
//   - Curve interpolation ([Interpolate]): linear, natural cubic spline,
//     Catmull-Rom with tension, and cubic Bezier, plus moving-average
//     smoothing ([SmoothSeries])
//   - SIMD-accelerated bucket math via github.com/tphakala/simd
//
// # Quick Start
//
// Shrink an oversized series to a panel's width and smooth it:
//
//	series := chartdata.NewSeries(4096)
//	for i, v := range samples {
//	    if err := series.PushXY(float32(i), v); err != nil {
//	        break // series at capacity
//	    }
//	}
//
//	fitted, err := chartdata.FitToWidth(series, chartdata.WidthSSD1306)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	curve, err := chartdata.Interpolate(fitted.Points(), &chartdata.InterpolationConfig{
//	    Type:         chartdata.InterpolationCatmullRom,
//	    Subdivisions: 4,
//	    Tension:      0.5,
//	})
//
// # Pipeline
//
// The intended flow, each stage optional:
//
//	sensor data -> Series / PointBuffer -> Aggregate or Downsample -> Interpolate -> renderer
//
// Aggregation and downsampling shrink a series to fit a budget;
// interpolation expands a sparse series into a smooth polyline. All
// algorithms take a read-only input plus a config struct and return a
// freshly owned output, never mutating their input.
//
// # Memory Model
//
// Every container has a fixed capacity chosen at construction. All write
// paths validate remaining capacity and fail with [ErrSeriesFull] rather
// than growing; interpolation output is bounded by [MaxInterpolatedPoints]
// unless the caller supplies its own destination via [AppendInterpolated].
//
// # Thread Safety
//
// The algorithms are stateless pure functions: concurrent calls from
// independent goroutines need no locking as long as each call uses its own
// output. Individual [Series] and [PointBuffer] values are not synchronized
// and must not be mutated concurrently.
package chartdata
