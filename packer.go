package fontbake

// Row is one horizontal line of packed glyphs.
type Row struct {
	// Y is the top of the row.
	Y float32

	// Height is the tallest glyph in the row plus padding.
	Height float32

	// Offsets holds the left edge of each glyph in the row, in input order.
	Offsets []float32
}

// Layout is the result of line packing.
//
// Concatenating the offsets of all rows in row order yields exactly one
// offset per packed glyph, in the order the glyphs were placed.
type Layout struct {
	Rows []Row

	// Width is the atlas width: the target width, widened if a single
	// oversized glyph overflows it.
	Width float32

	// Height is the top of the last row plus that row's height, rounded up.
	Height float32
}

// Len returns the number of packed glyphs.
func (l Layout) Len() int {
	n := 0
	for _, row := range l.Rows {
		n += len(row.Offsets)
	}
	return n
}

// Positions returns the top-left corner of every packed glyph in placement order.
func (l Layout) Positions() []Point {
	pts := make([]Point, 0, l.Len())
	for _, row := range l.Rows {
		for _, x := range row.Offsets {
			pts = append(pts, Point{X: x, Y: row.Y})
		}
	}
	return pts
}

// LinePacker implements greedy row packing.
//
// Glyphs are placed left-to-right on the current row until the next one
// would cross the target width, then a new row is started directly below
// the tallest glyph of the previous one. A glyph that does not fit even on
// an empty row is placed alone and overflows the target width.
type LinePacker struct {
	width   float32 // Target row width
	padding float32 // Gap around every glyph
	rows    []Row

	off   float32 // Cursor on the current row
	right float32 // Rightmost glyph edge including padding
}

// NewLinePacker creates a packer for the given target width and padding.
func NewLinePacker(width, padding float32) *LinePacker {
	return &LinePacker{
		width:   width,
		padding: padding,
		rows:    make([]Row, 0, 16),
	}
}

// Place packs a glyph of the given size and returns its top-left corner.
func (p *LinePacker) Place(s Size) Point {
	if len(p.rows) == 0 {
		p.rows = append(p.rows, Row{Y: p.padding})
		p.off = p.padding
	}

	row := &p.rows[len(p.rows)-1]
	if len(row.Offsets) > 0 && p.off+s.Width+p.padding > p.width {
		p.rows = append(p.rows, Row{Y: row.Y + row.Height})
		row = &p.rows[len(p.rows)-1]
		p.off = p.padding
	}

	x := p.off
	row.Offsets = append(row.Offsets, x)
	p.off += s.Width + p.padding
	row.Height = max(row.Height, s.Height+p.padding)
	p.right = max(p.right, p.off)

	return Point{X: x, Y: row.Y}
}

// Layout returns the packed rows and the resulting atlas dimensions.
// Rows that received no glyph are dropped.
func (p *LinePacker) Layout() Layout {
	rows := make([]Row, 0, len(p.rows))
	for _, row := range p.rows {
		if len(row.Offsets) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return Layout{Width: p.width}
	}

	last := rows[len(rows)-1]
	return Layout{
		Rows:   rows,
		Width:  max(p.width, ceil32(p.right)),
		Height: ceil32(last.Y + last.Height),
	}
}

// Reset clears all placements, allowing the packer to be reused.
func (p *LinePacker) Reset() {
	p.rows = p.rows[:0]
	p.off = 0
	p.right = 0
}

// RowCount returns the number of rows currently in use.
func (p *LinePacker) RowCount() int {
	return len(p.rows)
}

// Pack lays out all glyphs in input order within the target width.
func Pack(metrics []GlyphMetrics, width, padding float32) (Layout, error) {
	if len(metrics) == 0 {
		return Layout{}, ErrNoGlyphs
	}

	p := NewLinePacker(width, padding)
	for _, m := range metrics {
		pos := p.Place(m.Size)
		Logger().Debug("packed glyph", "seq", m.Sequence, "x", pos.X, "y", pos.Y)
	}

	l := p.Layout()
	Logger().Info("packed atlas",
		"target_width", width, "width", l.Width, "height", l.Height, "rows", len(l.Rows))
	return l, nil
}
