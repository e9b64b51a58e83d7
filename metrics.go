package fontbake

// GlyphMetrics is the measured box of one input sequence.
type GlyphMetrics struct {
	// Sequence is the text drawn as a single glyph.
	Sequence string

	// InkOffset is the top-left corner of the ink box relative to the
	// backend's draw origin, shifted out by the measurement padding.
	InkOffset Point

	// Size is the advance width and ink height, each grown by twice the
	// measurement padding.
	Size Size
}

// CollectMetrics measures every sequence in input order.
// Padding is applied later by the packer, so sequences are measured tight.
func CollectMetrics(b Backend, seqs []string) ([]GlyphMetrics, error) {
	if len(seqs) == 0 {
		return nil, ErrNoGlyphs
	}

	metrics := make([]GlyphMetrics, len(seqs))
	for i, seq := range seqs {
		metrics[i] = measureGlyph(b, seq, 0)
	}

	Logger().Info("collected glyph metrics", "glyphs", len(metrics))
	return metrics, nil
}

// measureGlyph measures seq and grows the box by padding on every side.
func measureGlyph(b Backend, seq string, padding float32) GlyphMetrics {
	advance, ink := b.Measure(seq)
	m := GlyphMetrics{
		Sequence:  seq,
		InkOffset: Point{X: ink.X - padding, Y: ink.Y - padding},
		Size:      Size{Width: advance + padding*2, Height: ink.Height + padding*2},
	}
	Logger().Debug("measured glyph",
		"seq", seq, "advance", advance,
		"ink_x", ink.X, "ink_y", ink.Y, "ink_h", ink.Height)
	return m
}
