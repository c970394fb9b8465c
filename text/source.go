package text

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// One FontSource backs every FontImpl built from it, at any size.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is immutable after creation and safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	name   string
	data   []byte
	index  int
	parsed ParsedFont
}

// NewFontSource creates a FontSource from font data (TTF, OTF or a
// collection). The name is the key the font is registered under; index
// selects a face inside a collection and is 0 for single-face files.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(name string, data []byte, index int, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data, index)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		name:   name,
		data:   dataCopy,
		index:  index,
		parsed: parsed,
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
// The source is named after the family name stored in the font, or the
// path if the font carries no name.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	s, err := NewFontSource(path, data, 0, opts...)
	if err != nil {
		return nil, err
	}
	if n := s.parsed.Name(); n != "" {
		s.name = n
	}
	return s, nil
}

// Name returns the name the font was registered under.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Data returns the raw font bytes. The caller must not modify them.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// Index returns the face index inside a font collection.
func (s *FontSource) Index() int {
	s.copyCheck()
	return s.index
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
