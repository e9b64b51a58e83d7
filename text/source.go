package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	// outlines is the x/image view used for metrics and glyph outlines.
	outlines *sfnt.Font

	// shaping is the go-text view used for HarfBuzz shaping.
	// font.Font is read-only and safe to share between faces.
	shaping *font.Font

	name string
	path string
}

// NewFontSource creates a FontSource from font data (TTF, OTF or a TTC/OTC
// collection). The data slice is copied internally and can be reused after
// this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	var (
		outlines *sfnt.Font
		shaping  *font.Font
		err      error
	)
	if isCollection(dataCopy) {
		outlines, shaping, err = parseCollection(dataCopy, config.index)
	} else {
		outlines, shaping, err = parseSingle(dataCopy)
	}
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		outlines: outlines,
		shaping:  shaping,
	}
	s.addr = s
	s.name = extractFontName(outlines)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	s, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("text: %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Face creates a Face at the specified size in pixels per em.
// Panics if s is nil (e.g. when a NewFontSource error was ignored).
func (s *FontSource) Face(size float32, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSource")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newFace(s, size, config)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Path returns the file the font was loaded from, or "" for in-memory data.
func (s *FontSource) Path() string {
	s.copyCheck()
	return s.path
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	return s.outlines.NumGlyphs()
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// isCollection reports whether data starts with the TTC/OTC tag.
func isCollection(data []byte) bool {
	return bytes.HasPrefix(data, []byte("ttcf"))
}

func parseSingle(data []byte) (*sfnt.Font, *font.Font, error) {
	outlines, err := opentype.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	return outlines, face.Font, nil
}

func parseCollection(data []byte, index int) (*sfnt.Font, *font.Font, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, nil, &CollectionIndexError{Index: index, Count: coll.NumFonts()}
	}
	outlines, err := coll.Font(index)
	if err != nil {
		return nil, nil, fmt.Errorf("text: failed to parse font %d in collection: %w", index, err)
	}

	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("text: failed to parse collection for shaping: %w", err)
	}
	if index >= len(faces) {
		return nil, nil, &CollectionIndexError{Index: index, Count: len(faces)}
	}
	return outlines, faces[index].Font, nil
}

// extractFontName extracts the font family name.
func extractFontName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
