package text

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/fontbake"
)

func TestFace_Metrics(t *testing.T) {
	face := loadTestFont(t).Face(32)

	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v, want >= %v", m.LineHeight(), m.Ascent+m.Descent)
	}
	if face.Size() != 32 {
		t.Errorf("Size() = %v, want 32", face.Size())
	}
}

func TestFace_Measure(t *testing.T) {
	face := loadTestFont(t).Face(32)

	t.Run("cap", func(t *testing.T) {
		adv, ink := face.Measure("A")
		if adv <= 0 {
			t.Errorf("advance = %v, want > 0", adv)
		}
		if ink.Y >= 0 || ink.Height <= 0 {
			t.Errorf("ink = %+v, want a box above the baseline", ink)
		}
		// A rests on the baseline.
		if bottom := ink.Y + ink.Height; math.Abs(float64(bottom)) > 1 {
			t.Errorf("ink bottom = %v, want about 0", bottom)
		}
		if ink.Width > adv+2 {
			t.Errorf("ink width %v much wider than advance %v", ink.Width, adv)
		}
	})

	t.Run("descender", func(t *testing.T) {
		_, ink := face.Measure("g")
		if ink.Y+ink.Height <= 1 {
			t.Errorf("ink = %+v, want a box reaching below the baseline", ink)
		}
	})

	t.Run("space", func(t *testing.T) {
		adv, ink := face.Measure(" ")
		if adv <= 0 {
			t.Errorf("advance = %v, want > 0", adv)
		}
		if !ink.Empty() {
			t.Errorf("ink = %+v, want empty", ink)
		}
	})

	t.Run("sequence", func(t *testing.T) {
		a, _ := face.Measure("H")
		b, _ := face.Measure("i")
		ab, ink := face.Measure("Hi")
		if math.Abs(float64(ab-(a+b))) > 2 {
			t.Errorf("advance of %q = %v, want about %v", "Hi", ab, a+b)
		}
		_, inkH := face.Measure("H")
		if ink.Width <= inkH.Width {
			t.Errorf("ink of %q not wider than %q", "Hi", "H")
		}
	})

	t.Run("empty", func(t *testing.T) {
		adv, ink := face.Measure("")
		if adv != 0 || !ink.Empty() {
			t.Errorf("Measure(\"\") = %v, %+v", adv, ink)
		}
	})
}

func TestFace_DrawText(t *testing.T) {
	face := loadTestFont(t).Face(32)
	_, ink := face.Measure("A")

	dst := image.NewAlpha(image.Rect(0, 0, 64, 64))
	origin := fontbake.Point{X: 10 - ink.X, Y: 10 - ink.Y}
	face.DrawText(dst, "A", origin)

	inside := image.Rect(10, 10, 10+int(math.Ceil(float64(ink.Width)))+1, 10+int(math.Ceil(float64(ink.Height)))+1)
	var covered int
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			a := dst.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			if !(image.Point{x, y}).In(inside) {
				t.Fatalf("coverage %d at (%d, %d) outside ink box %v", a, x, y, inside)
			}
			covered++
		}
	}
	if covered == 0 {
		t.Error("DrawText() left the image blank")
	}
}

func TestFace_DrawTextClipped(t *testing.T) {
	face := loadTestFont(t).Face(32)

	dst := image.NewAlpha(image.Rect(0, 0, 8, 8))
	face.DrawText(dst, "W", fontbake.Point{X: -6, Y: 20})
	face.DrawText(dst, "W", fontbake.Point{X: 100, Y: 100})
	face.DrawText(dst, " ", fontbake.Point{X: 0, Y: 8})
}

func TestFace_ShapeCached(t *testing.T) {
	face := loadTestFont(t).Face(16)

	first := face.Shape("Hello")
	second := face.Shape("Hello")
	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("Shape() = %d and %d glyphs, want 5", len(first), len(second))
	}
	if &first[0] != &second[0] {
		t.Error("Shape() did not reuse the cached run")
	}
}
