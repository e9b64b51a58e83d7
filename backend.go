package fontbake

import "image"

// Backend measures and draws glyph sequences for one font at one size.
//
// Coordinates follow the usual text convention: the origin is the left end
// of the baseline and Y grows downward, so ink above the baseline has a
// negative Y. The text sub-package provides the OpenType implementation;
// tests substitute their own.
type Backend interface {
	// Measure returns the advance width of seq and the bounding box of its
	// ink relative to the draw origin.
	Measure(seq string) (advance float32, ink Rect)

	// DrawText paints seq onto dst with its origin at the given point,
	// left aligned. Coverage is composited over existing pixels.
	DrawText(dst *image.Alpha, seq string, origin Point)
}
