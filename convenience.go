package chartdata

// Pixel widths of display panels commonly driven by this package. Handy as
// MaxPoints or TargetPoints values: one output point per pixel column.
const (
	WidthSSD1306  = 128 // 0.96" OLED
	WidthSH1106   = 132 // 1.3" OLED
	WidthST7735   = 160 // 1.8" TFT
	WidthEPaper29 = 296 // 2.9" e-paper
	WidthILI9341  = 320 // 2.4"-3.2" TFT
	WidthST7789   = 240 // 1.3"-2" IPS
)

// FitToWidth shrinks s to at most width points with LTTB, preserving
// endpoints. Unlike the raw downsampler it always reduces when the series
// exceeds the budget, regardless of ratio.
func FitToWidth(s *Series, width int) (*Series, error) {
	cfg := &DownsamplingConfig{
		MaxPoints:         width,
		PreserveEndpoints: true,
		MinReductionRatio: 1.0,
	}
	return DownsampleLTTB(s, cfg)
}

// AggregateToWidth buckets s down to at most width points using the given
// strategy with endpoint preservation.
func AggregateToWidth(s *Series, width int, strategy AggregationStrategy) (*Series, error) {
	cfg := &AggregationConfig{
		Strategy:          strategy,
		TargetPoints:      width,
		PreserveEndpoints: true,
	}
	return Aggregate(s, cfg)
}

// SmoothCurve runs Catmull-Rom interpolation with default subdivisions and
// tension over the points of s. The result is a new series sized to the
// interpolated point count.
func SmoothCurve(s *Series) (*Series, error) {
	cfg := DefaultInterpolationConfig()
	cfg.Type = InterpolationCatmullRom
	pts, err := Interpolate(s.Points(), &cfg)
	if err != nil {
		return nil, err
	}
	return SeriesFromPoints(len(pts), pts)
}
