package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/fontbake"
)

// outlineBounds returns the bounding box of the outline's points, relative
// to the glyph origin. ok is false for an outline without points.
func outlineBounds(segs sfnt.Segments) (r fontbake.Rect, ok bool) {
	if len(segs) == 0 {
		return fontbake.Rect{}, false
	}

	minX, minY := float32(1e10), float32(1e10)
	maxX, maxY := float32(-1e10), float32(-1e10)
	for _, seg := range segs {
		for _, p := range seg.Args[:argCount(seg.Op)] {
			x, y := fixedToFloat(p.X), fixedToFloat(p.Y)
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	return fontbake.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// argCount returns the number of points a segment operation uses.
func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// addOutline appends the outline, translated by (dx, dy), to the rasterizer path.
func addOutline(z *vector.Rasterizer, segs sfnt.Segments, dx, dy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return fixedToFloat(p.X) + dx, fixedToFloat(p.Y) + dy
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Args[0]))
			open = true

		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))

		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)

		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		z.ClosePath()
	}
}
