package fontbake

import "math"

// maxGlyphExtent is the largest width or height a glyph record can hold.
const maxGlyphExtent = math.MaxUint8

// Glyph is the lookup record of one baked sequence.
type Glyph struct {
	// X, Y is the top-left corner of the glyph in the atlas.
	X, Y uint32

	// Width, Height is the packed box size.
	Width, Height uint8

	// OffsetX, OffsetY shift a quad drawn for the glyph so that its ink
	// lines up with the pen position.
	OffsetX, OffsetY int8
}

// Present reports whether the record describes a glyph.
// Empty slots of the direct table have a zero size.
func (g Glyph) Present() bool {
	return g.Width != 0 || g.Height != 0
}

// NewGlyph builds the record for a measured glyph packed at pos.
//
// Positions and sizes are truncated to whole pixels. The render offset is
// (inkX, fontSize + inkY), computed with each term saturated to a signed byte.
func NewGlyph(m GlyphMetrics, pos Point, fontSize float32) (Glyph, error) {
	w, h := m.Size.Width, m.Size.Height
	if !(w >= 0 && w < maxGlyphExtent+1) || !(h >= 0 && h < maxGlyphExtent+1) {
		return Glyph{}, &GlyphSizeError{Sequence: m.Sequence, Width: w, Height: h}
	}

	ox := saturateInt8(-m.InkOffset.X)
	oy := saturateInt8(-m.InkOffset.Y)
	return Glyph{
		X:       uint32(max(pos.X, 0)),
		Y:       uint32(max(pos.Y, 0)),
		Width:   uint8(w),
		Height:  uint8(h),
		OffsetX: clampInt8(-int(ox)),
		OffsetY: clampInt8(int(saturateInt8(fontSize)) - int(oy)),
	}, nil
}

// saturateInt8 truncates v toward zero and clamps it to the int8 range.
func saturateInt8(v float32) int8 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v <= math.MinInt8:
		return math.MinInt8
	case v >= math.MaxInt8:
		return math.MaxInt8
	}
	return int8(v)
}

// clampInt8 clamps v to the int8 range.
func clampInt8(v int) int8 {
	return int8(min(max(v, math.MinInt8), math.MaxInt8))
}
