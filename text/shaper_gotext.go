package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Shaper converts a sequence into positioned glyphs using the HarfBuzz
// implementation of go-text/typesetting. It supports ligatures, mark
// positioning for combining sequences and right-to-left scripts.
//
// Shaper is NOT safe for concurrent use: both the go-text face and the
// HarfbuzzShaper keep mutable state.
type Shaper struct {
	hb       shaping.HarfbuzzShaper
	face     *font.Face
	size     fixed.Int26_6
	language language.Language
}

// newShaper creates a shaper for the font at size pixels per em.
func newShaper(f *font.Font, size float32, lang string) *Shaper {
	return &Shaper{
		face:     font.NewFace(f),
		size:     floatToFixed(size),
		language: language.NewLanguage(lang),
	}
}

// Shape returns the glyphs of seq in visual order with pen positions.
func (s *Shaper) Shape(seq string) []ShapedGlyph {
	if seq == "" {
		return nil
	}

	runes := []rune(seq)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(runes),
		Face:      s.face,
		Size:      s.size,
		Script:    detectScript(runes),
		Language:  s.language,
	}

	output := s.hb.Shape(input)
	return convertGlyphs(output.Glyphs)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Sequences are short enough that one script per
// sequence is assumed.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// detectDirection returns right-to-left when the first strong character of
// the sequence is right-to-left.
func detectDirection(runes []rune) di.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		case bidi.L:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}

// floatToFixed converts a float32 size to fixed.Int26_6.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// convertGlyphs converts go-text output glyphs to ShapedGlyph values.
// Shaper offsets point up; the returned positions point down.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var x float32
	for i, g := range glyphs {
		adv := fixedToFloat(g.XAdvance)
		result[i] = ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return result
}
