package fontbake

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Result is the output of a bake run.
type Result struct {
	// Font is the baked asset.
	Font *Font

	// Image is the rendered atlas. Font.Bitmap holds a copy of its pixels.
	Image *image.Alpha

	// Metrics and Layout are the intermediate stages, kept for inspection.
	Metrics []GlyphMetrics
	Layout  Layout
}

// Bake runs the whole pipeline for seqs with the backend b:
// measure, estimate the row width, pack, render and encode the lookup.
func Bake(b Backend, cfg Config, seqs []string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := Logger()
	log.Info("baking font", "family", cfg.Family, "size", cfg.Size, "padding", cfg.Padding)

	seqs = PrepareSequences(seqs, cfg.Normalize, cfg.Dedupe)
	metrics, err := CollectMetrics(b, seqs)
	if err != nil {
		return nil, err
	}

	width, err := EstimateWidth(metrics)
	if err != nil {
		return nil, err
	}

	layout, err := Pack(metrics, width, cfg.Padding)
	if err != nil {
		return nil, err
	}

	img, err := RenderAtlas(b, metrics, layout)
	if err != nil {
		return nil, err
	}

	lookup, err := EncodeLookup(metrics, layout, cfg.Size)
	if err != nil {
		return nil, err
	}

	return &Result{
		Font: &Font{
			Bitmap: AlphaBytes(img),
			Width:  uint32(img.Bounds().Dx()),
			Lookup: lookup,
		},
		Image:   img,
		Metrics: metrics,
		Layout:  layout,
	}, nil
}

// Encode serializes and compresses the baked font.
func (r *Result) Encode(codec Codec, level int) ([]byte, error) {
	data := Marshal(r.Font)
	Logger().Info("serialized font", "bytes", len(data))

	packed, err := Compress(data, codec, level)
	if err != nil {
		return nil, err
	}
	Logger().Info("compressed font", "codec", codec.String(), "bytes", len(packed))
	return packed, nil
}

// Load reads a baked font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- font asset path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("fontbake: read font: %w", err)
	}
	raw, err := Decompress(data)
	if err != nil {
		return nil, err
	}
	return Unmarshal(raw)
}

// WriteFile writes data to path so that the file either holds all of data
// or is left untouched: the bytes go to a temporary file in the same
// directory which is then renamed over path.
func WriteFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("fontbake: write font: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("fontbake: write font: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fontbake: write font: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("fontbake: write font: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("fontbake: write font: %w", err)
	}
	return nil
}

// WritePNG writes img to path as a PNG image.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("fontbake: encode png: %w", err)
	}
	return WriteFile(path, buf.Bytes())
}
