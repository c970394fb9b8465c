package fontconf

import (
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"

	"github.com/gogpu/fonts"
	"github.com/gogpu/fonts/text"
)

// Load reads the configuration at name from fsys and builds definitions
// from it. Font paths are relative to the directory of name.
func Load(fsys fs.FS, name string) (fonts.Definitions, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fonts.Definitions{}, fmt.Errorf("fontconf: %w", err)
	}
	f, err := ParseString(name, string(data))
	if err != nil {
		return fonts.Definitions{}, err
	}
	return f.Definitions(fsys, path.Dir(name))
}

// Definitions builds font definitions from f, reading font files from fsys
// relative to dir. Later statements for the same family, style or tweak
// replace earlier ones.
func (f *File) Definitions(fsys fs.FS, dir string) (fonts.Definitions, error) {
	defs := fonts.Definitions{
		FontData: make(map[string]fonts.FontData),
		Families: make(map[text.FontFamily][]string),
		Styles:   make(map[text.TextStyle]fonts.StyleBinding),
		Tweaks:   make(map[string]fonts.Tweak),
	}

	// Font files shared by several faces are read once.
	files := make(map[string][]byte)

	for _, stmt := range f.Statements {
		switch {
		case stmt.Font != nil:
			s := stmt.Font
			if _, ok := defs.FontData[s.Name]; ok {
				return fonts.Definitions{}, &Error{Pos: s.Pos, Err: fmt.Errorf("%w: %q", ErrDuplicateFont, s.Name)}
			}
			p := path.Join(dir, s.Path)
			data, ok := files[p]
			if !ok {
				var err error
				data, err = fs.ReadFile(fsys, p)
				if err != nil {
					return fonts.Definitions{}, &Error{Pos: s.Pos, Err: err}
				}
				files[p] = data
			}
			defs.FontData[s.Name] = fonts.FontData{Font: data, Index: s.Index}
			fonts.Logger().Debug("fontconf: font file loaded", "font", s.Name, "path", p, "index", s.Index)

		case stmt.Family != nil:
			s := stmt.Family
			for _, name := range s.Fonts {
				if _, ok := defs.FontData[name]; !ok {
					return fonts.Definitions{}, &Error{Pos: s.Pos, Err: fmt.Errorf("%w: %q", ErrUnknownFont, name)}
				}
			}
			defs.Families[s.Family.Family()] = slices.Clone(s.Fonts)

		case stmt.Style != nil:
			s := stmt.Style
			if s.Size <= 0 {
				return fonts.Definitions{}, &Error{Pos: s.Pos, Err: fmt.Errorf("style size must be positive, got %v", s.Size)}
			}
			defs.Styles[s.Style.Style()] = fonts.StyleBinding{Size: s.Size, Family: s.Family.Family()}

		case stmt.Tweak != nil:
			s := stmt.Tweak
			if _, ok := defs.FontData[s.Font]; !ok {
				return fonts.Definitions{}, &Error{Pos: s.Pos, Err: fmt.Errorf("%w: %q", ErrUnknownFont, s.Font)}
			}
			var tweak fonts.Tweak
			for _, param := range s.Params {
				switch param.Key {
				case "scale":
					tweak.Scale = param.Value
				case "y_offset_factor":
					tweak.YOffsetFactor = param.Value
				case "y_offset":
					tweak.YOffset = param.Value
				}
			}
			defs.Tweaks[s.Font] = tweak
		}
	}
	return defs, nil
}

// Merge returns base with every entry of overlay added, replacing entries
// of the same name. Neither argument is modified.
func Merge(base, overlay fonts.Definitions) fonts.Definitions {
	merged := base.Clone()
	if merged.FontData == nil {
		merged.FontData = make(map[string]fonts.FontData)
	}
	if merged.Families == nil {
		merged.Families = make(map[text.FontFamily][]string)
	}
	if merged.Styles == nil {
		merged.Styles = make(map[text.TextStyle]fonts.StyleBinding)
	}
	if merged.Tweaks == nil {
		merged.Tweaks = make(map[string]fonts.Tweak)
	}

	overlay = overlay.Clone()
	maps.Copy(merged.FontData, overlay.FontData)
	maps.Copy(merged.Families, overlay.Families)
	maps.Copy(merged.Styles, overlay.Styles)
	maps.Copy(merged.Tweaks, overlay.Tweaks)
	return merged
}
