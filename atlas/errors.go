package atlas

import "fmt"

// TooWideError is the panic value of Allocate when the requested rectangle
// is wider than the atlas.
type TooWideError struct {
	Width      int
	AtlasWidth int
}

func (e *TooWideError) Error() string {
	return fmt.Sprintf("atlas: allocation of width %d does not fit an atlas of width %d", e.Width, e.AtlasWidth)
}
