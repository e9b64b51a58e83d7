package text

import "golang.org/x/image/font/sfnt"

// GlyphID is a glyph index within a font.
type GlyphID uint16

// ShapedGlyph is a glyph positioned by the shaper.
// Positions are in pixels relative to the run origin, Y down.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// X, Y is where the glyph's own origin is placed.
	X, Y float32

	// Advance is the horizontal pen advance after this glyph.
	Advance float32
}

// index returns the sfnt glyph index of g.
func (g ShapedGlyph) index() sfnt.GlyphIndex {
	return sfnt.GlyphIndex(g.GID)
}
