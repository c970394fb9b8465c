package fonts

import (
	"errors"
	"fmt"

	"github.com/gogpu/fonts/text"
)

// ErrNoBodyStyle is returned when the definitions bind no size and family
// to text.StyleBody, which every unbound style falls back to.
var ErrNoBodyStyle = errors.New("fonts: no binding for the Body text style")

// ScaleError is returned by New for a pixels-per-point ratio outside (0, 100).
type ScaleError struct {
	PixelsPerPoint float64
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("fonts: pixels per point must be in (0, 100), got %v", e.PixelsPerPoint)
}

// FontDataError is returned when the bytes registered under a font name
// are not a usable font.
type FontDataError struct {
	Name string
	Err  error
}

func (e *FontDataError) Error() string {
	return fmt.Sprintf("fonts: font %q: %v", e.Name, e.Err)
}

func (e *FontDataError) Unwrap() error {
	return e.Err
}

// MissingFontError is returned when a family lists a font name that has
// no font data.
type MissingFontError struct {
	Family text.FontFamily
	Name   string
}

func (e *MissingFontError) Error() string {
	return fmt.Sprintf("fonts: family %v lists font %q which has no font data", e.Family, e.Name)
}

// FamilyError reports a family with no fonts bound to it. New returns it
// for families used by text styles; layout panics with it for a FontID
// naming such a family.
type FamilyError struct {
	Family text.FontFamily
}

func (e *FamilyError) Error() string {
	return fmt.Sprintf("fonts: family %v has no fonts", e.Family)
}
