package fontbake

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBake(t *testing.T) {
	b := newFakeBackend()
	cfg, err := NewConfig("Fake", 16, WithPadding(1))
	if err != nil {
		t.Fatal(err)
	}

	seqs := []string{"A", "B", "AB", "ABCD", "😀"}
	res, err := Bake(b, cfg, seqs)
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}

	f := res.Font
	if int(f.Width) != res.Image.Bounds().Dx() || f.Height() != res.Image.Bounds().Dy() {
		t.Errorf("font is %dx%d, image is %v", f.Width, f.Height(), res.Image.Bounds())
	}
	if len(f.Bitmap) != int(f.Width)*f.Height() {
		t.Errorf("bitmap holds %d bytes, want %d", len(f.Bitmap), int(f.Width)*f.Height())
	}

	positions := res.Layout.Positions()
	for _, tc := range []struct {
		seq   string
		index int
	}{
		{"B", 1}, {"AB", 2}, {"ABCD", 3}, {"😀", 4},
	} {
		g, ok := f.Find(tc.seq)
		if !ok {
			t.Errorf("Find(%q) missing", tc.seq)
			continue
		}
		p := positions[tc.index]
		if g.X != uint32(p.X) || g.Y != uint32(p.Y) {
			t.Errorf("Find(%q) at (%d, %d), want (%v, %v)", tc.seq, g.X, g.Y, p.X, p.Y)
		}
		if f.Alpha(int(g.X), int(g.Y)) != 0xff {
			t.Errorf("%q: no ink at its atlas corner", tc.seq)
		}
		// fake ink offset is (1, -12)
		if g.OffsetX != 1 || g.OffsetY != 4 {
			t.Errorf("%q offset = (%d, %d), want (1, 4)", tc.seq, g.OffsetX, g.OffsetY)
		}
	}
	if f.Map16.Count() != 3 || f.Dict32.Len() != 1 {
		t.Errorf("tables hold %d and %d glyphs, want 3 and 1", f.Map16.Count(), f.Dict32.Len())
	}
}

func TestBake_Deterministic(t *testing.T) {
	cfg := DefaultConfig("Fake", 20)
	seqs := []string{"x", "yy", "zzzz", "😀😀", "w"}

	var outputs [][]byte
	for range 2 {
		res, err := Bake(newFakeBackend(), cfg, seqs)
		if err != nil {
			t.Fatalf("Bake() error = %v", err)
		}
		data, err := res.Encode(CodecZstd, 3)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		outputs = append(outputs, data)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("identical inputs produced different output bytes")
	}
}

func TestBake_Options(t *testing.T) {
	cfg, err := NewConfig("Fake", 16, WithDedupe(true), WithNormalization(true))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Bake(newFakeBackend(), cfg, []string{"é", "é", "A", "A"})
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}
	if len(res.Metrics) != 2 {
		t.Errorf("baked %d glyphs, want 2", len(res.Metrics))
	}
}

func TestBake_Errors(t *testing.T) {
	if _, err := Bake(newFakeBackend(), DefaultConfig("Fake", 16), nil); !errors.Is(err, ErrNoGlyphs) {
		t.Errorf("Bake(nil) error = %v, want ErrNoGlyphs", err)
	}

	var cfgErr *ConfigError
	if _, err := Bake(newFakeBackend(), DefaultConfig("", 16), []string{"A"}); !errors.As(err, &cfgErr) {
		t.Errorf("Bake() error = %v, want *ConfigError", err)
	}

	b := newFakeBackend()
	b.boxes["huge"] = fakeBox{advance: 300, ink: Rect{Width: 300, Height: 20}}
	if _, err := Bake(b, DefaultConfig("Fake", 16), []string{"huge"}); !errors.Is(err, ErrEncodingOverflow) {
		t.Errorf("Bake() error = %v, want ErrEncodingOverflow", err)
	}
}

func TestWriteFileAndLoad(t *testing.T) {
	res, err := Bake(newFakeBackend(), DefaultConfig("Fake", 16), []string{"A", "😀😀"})
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, codec := range []Codec{CodecZstd, CodecBrotli} {
		t.Run(codec.String(), func(t *testing.T) {
			data, err := res.Encode(codec, 0)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			path := filepath.Join(dir, "font."+codec.String())
			if err := WriteFile(path, data); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			f, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !bytes.Equal(f.Bitmap, res.Font.Bitmap) {
				t.Error("bitmap differs after Load")
			}
			if g, ok := f.Find("😀😀"); !ok || g != mustFind(t, res.Font, "😀😀") {
				t.Errorf("Find() = %+v, %v after Load", g, ok)
			}
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("directory holds %d files, want 2 (no temporary leftovers)", len(entries))
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.bin")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestWritePNG(t *testing.T) {
	res, err := Bake(newFakeBackend(), DefaultConfig("Fake", 16), []string{"A", "B"})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := WritePNG(path, res.Image); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != res.Image.Bounds() {
		t.Errorf("png bounds = %v, want %v", img.Bounds(), res.Image.Bounds())
	}
}

func mustFind(t *testing.T, f *Font, seq string) Glyph {
	t.Helper()
	g, ok := f.Find(seq)
	if !ok {
		t.Fatalf("Find(%q) missing", seq)
	}
	return g
}
