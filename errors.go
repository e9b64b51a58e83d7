package fontbake

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontbake package.
var (
	// ErrNoGlyphs is returned when the pipeline is given no sequences.
	ErrNoGlyphs = errors.New("fontbake: no glyph sequences to bake")

	// ErrEncodingOverflow is matched by every error caused by a glyph that
	// cannot be represented in the lookup encoding.
	ErrEncodingOverflow = errors.New("fontbake: glyph not representable")

	// ErrUnknownCodec is returned when compressed data uses neither zstd nor brotli.
	ErrUnknownCodec = errors.New("fontbake: unknown compression codec")

	// ErrTruncated is returned when encoded font data ends early.
	ErrTruncated = errors.New("fontbake: truncated font data")
)

// GlyphSizeError is returned when a packed glyph box does not fit in the
// unsigned byte size fields of a glyph record.
type GlyphSizeError struct {
	Sequence      string
	Width, Height float32
}

func (e *GlyphSizeError) Error() string {
	return fmt.Sprintf("fontbake: glyph %q is %.1fx%.1f, exceeds %dx%d",
		e.Sequence, e.Width, e.Height, maxGlyphExtent, maxGlyphExtent)
}

// Is reports whether target is ErrEncodingOverflow.
func (e *GlyphSizeError) Is(target error) bool { return target == ErrEncodingOverflow }

// EmptySequenceError is returned for a sequence with no code units.
type EmptySequenceError struct {
	Index int
}

func (e *EmptySequenceError) Error() string {
	return fmt.Sprintf("fontbake: sequence %d has no code units", e.Index)
}

// Is reports whether target is ErrEncodingOverflow.
func (e *EmptySequenceError) Is(target error) bool { return target == ErrEncodingOverflow }

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontbake: invalid config." + e.Field + ": " + e.Reason
}
