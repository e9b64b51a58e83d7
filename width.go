package fontbake

import "math"

// EstimateWidth picks the target atlas row width.
//
// The widest glyph times the square root of the glyph count approximates a
// square atlas when glyph widths are roughly uniform.
func EstimateWidth(metrics []GlyphMetrics) (float32, error) {
	if len(metrics) == 0 {
		return 0, ErrNoGlyphs
	}

	var widest float32
	for i, m := range metrics {
		if i == 0 || m.Size.Width > widest {
			widest = m.Size.Width
		}
	}

	root := float32(math.Sqrt(float64(len(metrics))))
	return ceil32(widest * root), nil
}
