package fontbake

import (
	"image"
	"image/color"
	"unicode/utf8"
)

// fakeBackend measures every rune as a fixed-width box and paints the ink
// box as a solid rectangle.
type fakeBackend struct {
	// boxes overrides the measurement of individual sequences.
	boxes map[string]fakeBox

	draws []fakeDraw
}

type fakeBox struct {
	advance float32
	ink     Rect
}

type fakeDraw struct {
	seq    string
	origin Point
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{boxes: make(map[string]fakeBox)}
}

func (b *fakeBackend) Measure(seq string) (float32, Rect) {
	if box, ok := b.boxes[seq]; ok {
		return box.advance, box.ink
	}
	adv := float32(10 * utf8.RuneCountInString(seq))
	return adv, Rect{X: 1, Y: -12, Width: adv - 2, Height: 16}
}

func (b *fakeBackend) DrawText(dst *image.Alpha, seq string, origin Point) {
	b.draws = append(b.draws, fakeDraw{seq: seq, origin: origin})
	_, ink := b.Measure(seq)
	x0 := int(origin.X + ink.X)
	y0 := int(origin.Y + ink.Y)
	for y := y0; y < y0+int(ink.Height); y++ {
		for x := x0; x < x0+int(ink.Width); x++ {
			dst.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
}
