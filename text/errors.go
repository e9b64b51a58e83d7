package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is matched by every FontNotFoundError.
	ErrFontNotFound = errors.New("text: font not found")
)

// FontNotFoundError is returned when no font matches the requested family.
type FontNotFoundError struct {
	Family string
}

func (e *FontNotFoundError) Error() string {
	return "text: font not found: " + e.Family
}

// Is reports whether target is ErrFontNotFound.
func (e *FontNotFoundError) Is(target error) bool { return target == ErrFontNotFound }

// CollectionIndexError is returned when a font collection has no font at the
// requested index.
type CollectionIndexError struct {
	Index int
	Count int
}

func (e *CollectionIndexError) Error() string {
	return fmt.Sprintf("text: collection index %d out of range, collection has %d fonts", e.Index, e.Count)
}
