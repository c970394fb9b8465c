package fonts

import (
	"github.com/gogpu/fonts/internal/memo"
	"github.com/gogpu/fonts/text"
)

// fontsImpl resolves text styles and explicit font ids to fallback chains.
// Chains are built on first use and kept for the collection's lifetime.
//
// fontsImpl is not safe for concurrent use; Fonts guards it with its lock.
type fontsImpl struct {
	pixelsPerPoint float64
	definitions    Definitions
	impls          *fontImplCache
	styles         *memo.Map[text.TextStyle, *text.Font]
	ids            *memo.Map[text.FontID, *text.Font]
}

func newFontsImpl(pixelsPerPoint float64, defs Definitions, impls *fontImplCache) *fontsImpl {
	return &fontsImpl{
		pixelsPerPoint: pixelsPerPoint,
		definitions:    defs,
		impls:          impls,
		styles:         memo.New[text.TextStyle, *text.Font](),
		ids:            memo.New[text.FontID, *text.Font](),
	}
}

// FontForFormat implements text.FontResolver.
func (f *fontsImpl) FontForFormat(format *text.TextFormat) *text.Font {
	if !format.FontID.IsZero() {
		return f.fontForID(format.FontID)
	}
	return f.fontForStyle(format.Style)
}

// fontForStyle returns the chain bound to style. A style without a binding
// falls back to Body with a warning; the unset style is Body.
func (f *fontsImpl) fontForStyle(style text.TextStyle) *text.Font {
	if style.IsZero() {
		style = text.StyleBody
	}
	return f.styles.GetOrCreate(style, func() *text.Font {
		binding, ok := f.definitions.Styles[style]
		if !ok {
			Logger().Warn("fonts: text style has no binding, using Body", "style", style.String())
			binding, ok = f.definitions.Styles[text.StyleBody]
			if !ok {
				panic(ErrNoBodyStyle)
			}
		}
		return f.chain(binding.Size, binding.Family)
	})
}

// fontForID returns the chain for an explicit size and family.
// Panics with a *FamilyError if the family has no fonts.
func (f *fontsImpl) fontForID(id text.FontID) *text.Font {
	return f.ids.GetOrCreate(id, func() *text.Font {
		return f.chain(id.Size, id.Family)
	})
}

// chainStats sums the lookups of the style and FontID chain maps.
func (f *fontsImpl) chainStats() (hits, misses uint64) {
	styleHits, styleMisses := f.styles.Stats()
	idHits, idMisses := f.ids.Stats()
	return styleHits + idHits, styleMisses + idMisses
}

func (f *fontsImpl) chain(size float64, family text.FontFamily) *text.Font {
	names := f.definitions.Families[family]
	if len(names) == 0 {
		panic(&FamilyError{Family: family})
	}

	impls := make([]*text.FontImpl, len(names))
	for i, name := range names {
		impls[i] = f.impls.fontImpl(size, name)
	}
	Logger().Debug("fonts: resolved font chain", "family", family.String(), "size", size, "fonts", names)
	return text.NewFont(impls)
}
