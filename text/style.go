package text

import "strconv"

type familyKind uint8

const (
	familyUnset familyKind = iota
	familyMonospace
	familyProportional
	familyNamed
)

// FontFamily identifies a font role, not a concrete font:
// monospace, proportional, or a user-chosen name.
//
// FontFamily is comparable and can be used as a map key.
// The zero value is unset.
type FontFamily struct {
	kind familyKind
	name string
}

var (
	// FamilyMonospace is a font where each character has the same width.
	FamilyMonospace = FontFamily{kind: familyMonospace}

	// FamilyProportional is a font where characters have varying widths.
	FamilyProportional = FontFamily{kind: familyProportional}
)

// NamedFamily returns a user-chosen family such as "serif" or "arial".
func NamedFamily(name string) FontFamily {
	return FontFamily{kind: familyNamed, name: name}
}

// Name returns the user-chosen name of a named family.
func (f FontFamily) Name() (string, bool) {
	return f.name, f.kind == familyNamed
}

// IsZero reports whether the family is unset.
func (f FontFamily) IsZero() bool {
	return f.kind == familyUnset
}

// String returns a human-readable name for the family.
func (f FontFamily) String() string {
	switch f.kind {
	case familyMonospace:
		return "Monospace"
	case familyProportional:
		return "Proportional"
	case familyNamed:
		return "Name(" + strconv.Quote(f.name) + ")"
	default:
		return "Unset"
	}
}

type styleKind uint8

const (
	styleUnset styleKind = iota
	styleSmall
	styleBody
	styleMonospace
	styleButton
	styleHeading
	styleNamed
)

// TextStyle identifies a usage context for text (body text, headings,
// buttons), decoupled from the family and size that render it.
//
// TextStyle is comparable and can be used as a map key.
// The zero value is unset and is treated as StyleBody by layout.
type TextStyle struct {
	kind styleKind
	name string
}

var (
	// StyleSmall is used when small text is needed.
	StyleSmall = TextStyle{kind: styleSmall}

	// StyleBody is for normal labels.
	StyleBody = TextStyle{kind: styleBody}

	// StyleMonospace is body-sized text where alignment of characters matters.
	StyleMonospace = TextStyle{kind: styleMonospace}

	// StyleButton signifies interactive items.
	StyleButton = TextStyle{kind: styleButton}

	// StyleHeading is for headings.
	StyleHeading = TextStyle{kind: styleHeading}
)

// BuiltinStyles returns all un-named styles.
func BuiltinStyles() []TextStyle {
	return []TextStyle{StyleSmall, StyleBody, StyleMonospace, StyleButton, StyleHeading}
}

// NamedStyle returns a user-chosen style such as "footing".
func NamedStyle(name string) TextStyle {
	return TextStyle{kind: styleNamed, name: name}
}

// Name returns the user-chosen name of a named style.
func (s TextStyle) Name() (string, bool) {
	return s.name, s.kind == styleNamed
}

// IsZero reports whether the style is unset.
func (s TextStyle) IsZero() bool {
	return s.kind == styleUnset
}

// String returns a human-readable name for the style.
func (s TextStyle) String() string {
	switch s.kind {
	case styleSmall:
		return "Small"
	case styleBody:
		return "Body"
	case styleMonospace:
		return "Monospace"
	case styleButton:
		return "Button"
	case styleHeading:
		return "Heading"
	case styleNamed:
		return "Name(" + strconv.Quote(s.name) + ")"
	default:
		return "Unset"
	}
}

// FontID selects a font by explicit size (in points) and family, bypassing
// text styles. The zero value is unset.
type FontID struct {
	Size   float64
	Family FontFamily
}

// IsZero reports whether the id is unset.
func (id FontID) IsZero() bool {
	return id.Size == 0 && id.Family.IsZero()
}

// String returns a human-readable form such as "14pt Proportional".
func (id FontID) String() string {
	return strconv.FormatFloat(id.Size, 'g', -1, 64) + "pt " + id.Family.String()
}
