// Package fontconf reads font definitions from a small text format.
//
// A configuration is a list of statements, each ending in a semicolon:
//
//	# Fonts are named and loaded from files relative to the config.
//	font "Hack" = "Hack-Regular.ttf";
//	font "Noto" = "NotoSans.ttc" index 2;
//
//	# Families list fonts in fallback order.
//	family monospace = "Hack", "Noto";
//	family "serif" = "Noto";
//
//	# Styles bind a size in points and a family.
//	style body = 14 proportional;
//	style "footing" = 10.5 "serif";
//
//	tweak "Noto" scale 0.9 y_offset_factor 0.1;
//
// Builtin families and styles are written as bare words; named ones are
// quoted strings.
package fontconf

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/fonts/text"
)

var (
	confLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[=,;]`},
	})

	confParser = participle.MustBuild[File](
		participle.Lexer(confLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

// File is a parsed configuration.
type File struct {
	Statements []*Statement `parser:"( @@ ';' )*"`
}

// Statement is one configuration statement.
type Statement struct {
	Font   *FontStmt   `parser:"  'font' @@"`
	Family *FamilyStmt `parser:"| 'family' @@"`
	Style  *StyleStmt  `parser:"| 'style' @@"`
	Tweak  *TweakStmt  `parser:"| 'tweak' @@"`
}

// FontStmt registers a font file under a name.
type FontStmt struct {
	Pos   lexer.Position `parser:""`
	Name  string         `parser:"@String '='"`
	Path  string         `parser:"@String"`
	Index int            `parser:"( 'index' @Number )?"`
}

// FamilyStmt sets the fallback list of a family.
type FamilyStmt struct {
	Pos    lexer.Position `parser:""`
	Family FamilyRef      `parser:"@@ '='"`
	Fonts  []string       `parser:"@String ( ',' @String )*"`
}

// StyleStmt binds a text style to a size and family.
type StyleStmt struct {
	Pos    lexer.Position `parser:""`
	Style  StyleRef       `parser:"@@ '='"`
	Size   float64        `parser:"@Number"`
	Family FamilyRef      `parser:"@@"`
}

// TweakStmt sets the corrections of one font.
type TweakStmt struct {
	Pos    lexer.Position `parser:""`
	Font   string         `parser:"@String"`
	Params []*TweakParam  `parser:"@@*"`
}

// TweakParam is one key and value of a tweak.
type TweakParam struct {
	Key   string  `parser:"@( 'scale' | 'y_offset_factor' | 'y_offset' )"`
	Value float64 `parser:"@Number"`
}

// FamilyRef is a builtin family keyword or a quoted family name.
type FamilyRef struct {
	Builtin string  `parser:"  @( 'proportional' | 'monospace' )"`
	Name    *string `parser:"| @String"`
}

// Family returns the referenced family.
func (r FamilyRef) Family() text.FontFamily {
	if r.Name != nil {
		return text.NamedFamily(*r.Name)
	}
	if r.Builtin == "monospace" {
		return text.FamilyMonospace
	}
	return text.FamilyProportional
}

// StyleRef is a builtin style keyword or a quoted style name.
type StyleRef struct {
	Builtin string  `parser:"  @( 'small' | 'body' | 'monospace' | 'button' | 'heading' )"`
	Name    *string `parser:"| @String"`
}

// Style returns the referenced text style.
func (r StyleRef) Style() text.TextStyle {
	if r.Name != nil {
		return text.NamedStyle(*r.Name)
	}
	switch r.Builtin {
	case "small":
		return text.StyleSmall
	case "monospace":
		return text.StyleMonospace
	case "button":
		return text.StyleButton
	case "heading":
		return text.StyleHeading
	default:
		return text.StyleBody
	}
}

// Parse parses a configuration from r. name is reported in error positions.
func Parse(name string, r io.Reader) (*File, error) {
	f, err := confParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("fontconf: %w", err)
	}
	return f, nil
}

// ParseString parses a configuration from a string.
func ParseString(name, s string) (*File, error) {
	f, err := confParser.ParseString(name, s)
	if err != nil {
		return nil, fmt.Errorf("fontconf: %w", err)
	}
	return f, nil
}
