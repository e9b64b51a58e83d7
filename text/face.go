package text

import (
	"image"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"

	"github.com/gogpu/fontbake"
)

// Face is a font at a specific pixel size. It measures and draws whole
// sequences: each sequence is shaped as one run and its glyphs are treated
// as a single unit.
//
// Face implements [fontbake.Backend]. Face is NOT safe for concurrent use.
type Face struct {
	source *FontSource
	size   float32
	config faceConfig

	shaper *Shaper
	buf    sfnt.Buffer
	raster vector.Rasterizer

	// Outlines and shaped runs are cached because every sequence is shaped
	// once for measuring and once for drawing.
	outlines map[GlyphID]sfnt.Segments
	runs     map[string][]ShapedGlyph
}

var _ fontbake.Backend = (*Face)(nil)

func newFace(s *FontSource, size float32, config faceConfig) *Face {
	return &Face{
		source:   s,
		size:     size,
		config:   config,
		shaper:   newShaper(s.shaping, size, config.language),
		outlines: make(map[GlyphID]sfnt.Segments),
		runs:     make(map[string][]ShapedGlyph),
	}
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float32 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	m, err := f.source.outlines.Metrics(&f.buf, floatToFixed(f.size), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(m.Height) - ascent - descent,
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Shape returns the positioned glyphs of seq.
func (f *Face) Shape(seq string) []ShapedGlyph {
	if run, ok := f.runs[seq]; ok {
		return run
	}
	run := f.shaper.Shape(seq)
	f.runs[seq] = run
	return run
}

// Measure implements [fontbake.Backend]. The advance is the sum of the
// shaped advances; the ink box is the union of the glyph outline boxes.
// Glyphs without an outline, such as spaces or color bitmap glyphs,
// contribute their advance only.
func (f *Face) Measure(seq string) (advance float32, ink fontbake.Rect) {
	for _, g := range f.Shape(seq) {
		advance += g.Advance
		b, ok := outlineBounds(f.outline(g))
		if !ok {
			continue
		}
		b.X += g.X
		b.Y += g.Y
		ink = ink.Union(b)
	}
	return advance, ink
}

// DrawText implements [fontbake.Backend]. The sequence is drawn left
// aligned with its baseline origin at origin; coverage is composited over
// the existing pixels of dst.
func (f *Face) DrawText(dst *image.Alpha, seq string, origin fontbake.Point) {
	_, ink := f.Measure(seq)
	if ink.Empty() {
		return
	}

	box := image.Rect(
		int(math.Floor(float64(origin.X+ink.X))),
		int(math.Floor(float64(origin.Y+ink.Y))),
		int(math.Ceil(float64(origin.X+ink.X+ink.Width))),
		int(math.Ceil(float64(origin.Y+ink.Y+ink.Height))),
	).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	f.raster.Reset(box.Dx(), box.Dy())
	dx := origin.X - float32(box.Min.X)
	dy := origin.Y - float32(box.Min.Y)
	for _, g := range f.Shape(seq) {
		addOutline(&f.raster, f.outline(g), dx+g.X, dy+g.Y)
	}
	f.raster.Draw(dst, box, image.Opaque, image.Point{})
}

// outline returns the cached outline of a shaped glyph.
// Glyphs that have no vector outline yield nil.
func (f *Face) outline(g ShapedGlyph) sfnt.Segments {
	if segs, ok := f.outlines[g.GID]; ok {
		return segs
	}

	segs, err := f.source.outlines.LoadGlyph(&f.buf, g.index(), floatToFixed(f.size), nil)
	if err != nil {
		fontbake.Logger().Debug("glyph has no outline", "gid", g.GID, "err", err)
		segs = nil
	} else {
		// LoadGlyph reuses the buffer on the next call.
		segs = append(sfnt.Segments(nil), segs...)
	}
	f.outlines[g.GID] = segs
	return segs
}
