package fontbake

import (
	"fmt"
	"image"
)

// RenderAtlas draws every glyph at its packed position onto a new alpha
// bitmap sized to the layout.
//
// The draw origin of a glyph is its packed corner minus its ink offset, so
// the ink lands with its top-left corner on the packed corner.
func RenderAtlas(b Backend, metrics []GlyphMetrics, layout Layout) (*image.Alpha, error) {
	positions := layout.Positions()
	if len(positions) != len(metrics) {
		return nil, fmt.Errorf("fontbake: layout holds %d glyphs, have %d metrics", len(positions), len(metrics))
	}

	img := image.NewAlpha(image.Rect(0, 0, int(layout.Width), int(layout.Height)))
	for i, m := range metrics {
		b.DrawText(img, m.Sequence, positions[i].Sub(m.InkOffset))
	}
	return img, nil
}

// AlphaBytes returns the pixels of img row-major, one byte per pixel.
func AlphaBytes(img *image.Alpha) []byte {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	out := make([]byte, w*h)
	if img.Stride == w && r.Min == (image.Point{}) {
		copy(out, img.Pix)
		return out
	}
	for y := 0; y < h; y++ {
		off := img.PixOffset(r.Min.X, r.Min.Y+y)
		copy(out[y*w:(y+1)*w], img.Pix[off:off+w])
	}
	return out
}
