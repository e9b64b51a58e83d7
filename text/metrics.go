package text

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the font (positive, below baseline).
	Descent float32

	// LineGap is the recommended gap between lines.
	LineGap float32

	// CapHeight is the height of uppercase letters.
	CapHeight float32
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float32 {
	return m.Ascent + m.Descent + m.LineGap
}
