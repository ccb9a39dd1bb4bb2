package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TrueType or OpenType font.
//
// Font itself is read-only, but glyph lookups share a scratch buffer, so a
// Font must not be used from multiple goroutines at once.
type Font struct {
	sfnt *opentype.Font
	buf  sfnt.Buffer
}

// ParseFont parses font data (TTF or OTF).
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Font{sfnt: f}, nil
}

// LoadFontFile reads and parses a font file.
func LoadFontFile(path string) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return ParseFont(data)
}

// GoRegular returns the embedded Go Regular font.
func GoRegular() (*Font, error) {
	return ParseFont(goregular.TTF)
}

// GoMono returns the embedded Go Mono font.
func GoMono() (*Font, error) {
	return ParseFont(gomono.TTF)
}

// Name returns the font family name, or "" if not available.
func (f *Font) Name() string {
	name, err := f.sfnt.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}

// UnitsPerEm returns the units per em for the font.
func (f *Font) UnitsPerEm() int {
	return int(f.sfnt.UnitsPerEm())
}

// GlyphIndex returns the glyph index for a rune.
// Returns 0 (the .notdef glyph) if the font has no glyph for r.
func (f *Font) GlyphIndex(r rune) GlyphID {
	idx, err := f.sfnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}
