package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source := goRegular(t)

	if source.Name() != "Go-Regular" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go-Regular")
	}
	if source.Index() != 0 {
		t.Errorf("Index() = %d, want 0", source.Index())
	}
	if len(source.Data()) != len(goregular.TTF) {
		t.Errorf("Data() has %d bytes, want %d", len(source.Data()), len(goregular.TTF))
	}

	parsed := source.Parsed()
	if parsed.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if parsed.UnitsPerEm() != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", parsed.UnitsPerEm())
	}
	if parsed.Name() != "Go" {
		t.Errorf("parsed Name() = %q, want %q", parsed.Name(), "Go")
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource("Go", data, 0)
	if err != nil {
		t.Fatal(err)
	}
	data[0] ^= 0xFF
	if source.Data()[0] == data[0] {
		t.Error("FontSource shares the caller's byte slice")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		index int
	}{
		{"empty", nil, 0},
		{"malformed", []byte("definitely not a font file"), 0},
		{"truncated", goregular.TTF[:64], 0},
		{"index of single font", goregular.TTF, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := NewFontSource("bad", tt.data, tt.index)
			if err == nil {
				t.Fatalf("NewFontSource() = %v, want error", source)
			}
		})
	}

	if _, err := NewFontSource("empty", nil, 0); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("empty data error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() error = %v", err)
	}
	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want family name %q", source.Name(), "Go")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("NewFontSourceFromFile(missing) returned no error")
	}
}

func TestFontSourceCopyCheck(t *testing.T) {
	source := goRegular(t)
	copied := *source

	defer func() {
		if recover() == nil {
			t.Error("using a copied FontSource did not panic")
		}
	}()
	_ = copied.Name()
}

func TestParserFallsBackToDefault(t *testing.T) {
	if _, ok := getParser("no-such-parser").(*ximageParser); !ok {
		t.Error("unknown parser name should resolve to the ximage parser")
	}
}

func TestParsedFontMetrics(t *testing.T) {
	parsed := goRegular(t).Parsed()
	m := parsed.Metrics(16)
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent >= 0 {
		t.Errorf("Descent = %v, want < 0", m.Descent)
	}
	if m.Height() < m.Ascent {
		t.Errorf("Height() = %v smaller than ascent %v", m.Height(), m.Ascent)
	}
}

func TestRasterizeGlyph(t *testing.T) {
	parsed := goRegular(t).Parsed()

	img := parsed.RasterizeGlyph(parsed.GlyphIndex('H'), 32)
	if img == nil {
		t.Fatal("RasterizeGlyph('H') = nil")
	}
	if img.Offset.Y >= 0 {
		t.Errorf("'H' mask should start above the baseline, offset %v", img.Offset)
	}
	var covered int
	for _, a := range img.Mask.Pix {
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("'H' mask is blank")
	}

	if img := parsed.RasterizeGlyph(parsed.GlyphIndex(' '), 32); img != nil {
		t.Errorf("RasterizeGlyph(' ') = %v, want nil", img)
	}
}
