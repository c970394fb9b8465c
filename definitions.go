package fonts

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fonts/text"
)

// FontData is the raw contents of a font file.
type FontData struct {
	// Font holds TTF, OTF, TTC or OTC bytes. It must not be modified after
	// the definitions are handed to New.
	Font []byte

	// Index selects a face inside a font collection; 0 otherwise.
	Index int
}

// StyleBinding is the size, in points, and family a text style renders with.
type StyleBinding struct {
	Size   float64
	Family text.FontFamily
}

// Tweak corrects how one font sits next to others in a fallback chain.
type Tweak struct {
	// Scale multiplies the point size. 0 means 1.
	Scale float64

	// YOffsetFactor shifts glyphs down by this fraction of the point size.
	YOffsetFactor float64

	// YOffset shifts glyphs down by this many points.
	YOffset float64
}

// scale returns the size factor, treating 0 as unscaled.
func (t Tweak) scale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// Definitions describes the fonts a collection can use.
//
// Definitions are plain data: build them (or start from DefaultDefinitions),
// then pass them to New. A collection keeps its own copy.
type Definitions struct {
	// FontData maps font names to font files.
	FontData map[string]FontData

	// Families maps each family to font names in fallback priority order:
	// a glyph is taken from the first font that has it.
	Families map[text.FontFamily][]string

	// Styles binds each text style to a size and family.
	Styles map[text.TextStyle]StyleBinding

	// Tweaks holds per-font corrections, keyed by font name.
	Tweaks map[string]Tweak
}

// Names of the fonts in DefaultDefinitions.
const (
	GoRegular = "Go-Regular"
	GoMono    = "Go-Mono"
)

// DefaultDefinitions returns definitions using the Go fonts: Go Regular for
// proportional text and Go Mono, falling back to Go Regular, for monospace.
func DefaultDefinitions() Definitions {
	return Definitions{
		FontData: map[string]FontData{
			GoRegular: {Font: goregular.TTF},
			GoMono:    {Font: gomono.TTF},
		},
		Families: map[text.FontFamily][]string{
			text.FamilyProportional: {GoRegular},
			text.FamilyMonospace:    {GoMono, GoRegular},
		},
		Styles: map[text.TextStyle]StyleBinding{
			text.StyleSmall:     {Size: 10, Family: text.FamilyProportional},
			text.StyleBody:      {Size: 14, Family: text.FamilyProportional},
			text.StyleButton:    {Size: 14, Family: text.FamilyProportional},
			text.StyleHeading:   {Size: 20, Family: text.FamilyProportional},
			text.StyleMonospace: {Size: 14, Family: text.FamilyMonospace},
		},
		// The Go fonts sit on their own baseline. Only an icon font
		// registered under this name needs moving.
		Tweaks: map[string]Tweak{
			"emoji-icon-font": {Scale: 0.8, YOffsetFactor: 0.235},
		},
	}
}

// Clone returns a deep copy of d. Font bytes are shared, since they are
// never modified.
func (d Definitions) Clone() Definitions {
	c := Definitions{
		FontData: maps.Clone(d.FontData),
		Families: make(map[text.FontFamily][]string, len(d.Families)),
		Styles:   maps.Clone(d.Styles),
		Tweaks:   maps.Clone(d.Tweaks),
	}
	for family, names := range d.Families {
		c.Families[family] = slices.Clone(names)
	}
	return c
}

// PreferFont registers src under its name and puts it first in each of the
// given families, so its glyphs win over the fonts already listed there.
func (d *Definitions) PreferFont(src *text.FontSource, families ...text.FontFamily) {
	if d.FontData == nil {
		d.FontData = make(map[string]FontData)
	}
	if d.Families == nil {
		d.Families = make(map[text.FontFamily][]string)
	}
	name := src.Name()
	d.FontData[name] = FontData{Font: src.Data(), Index: src.Index()}
	for _, family := range families {
		names := slices.DeleteFunc(slices.Clone(d.Families[family]), func(n string) bool { return n == name })
		d.Families[family] = slices.Insert(names, 0, name)
	}
}

// validate checks the references between the tables.
func (d Definitions) validate() error {
	if _, ok := d.Styles[text.StyleBody]; !ok {
		return ErrNoBodyStyle
	}
	for _, family := range sortedFamilies(d.Families) {
		for _, name := range d.Families[family] {
			if _, ok := d.FontData[name]; !ok {
				return &MissingFontError{Family: family, Name: name}
			}
		}
	}
	for _, style := range sortedStyles(d.Styles) {
		family := d.Styles[style].Family
		if len(d.Families[family]) == 0 {
			return &FamilyError{Family: family}
		}
	}
	return nil
}

// sortedFamilies orders families by name so that validation reports the
// same error on every run.
func sortedFamilies(m map[text.FontFamily][]string) []text.FontFamily {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b text.FontFamily) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}

func sortedStyles(m map[text.TextStyle]StyleBinding) []text.TextStyle {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b text.TextStyle) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}
