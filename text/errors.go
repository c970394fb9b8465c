package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFaces is the panic value of NewFont when no fonts are provided.
	ErrEmptyFaces = errors.New("text: fallback chain cannot be empty")
)

// FaceIndexError is returned when a face index is not present in a font
// collection.
type FaceIndexError struct {
	Index    int
	NumFaces int
}

func (e *FaceIndexError) Error() string {
	return fmt.Sprintf("text: face index %d out of range (collection has %d faces)", e.Index, e.NumFaces)
}
