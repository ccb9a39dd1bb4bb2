package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/pathanim"
)

// Provider implements pathanim.OutlineProvider on top of
// golang.org/x/image/font/sfnt.
//
// Outlines come out of sfnt in y-down pixel coordinates with the baseline at
// y=0, which is the orientation pathanim expects, so no flip is applied.
//
// Provider is not safe for concurrent use.
type Provider struct {
	font      *Font
	extractor *OutlineExtractor
	size      float64
}

var _ pathanim.OutlineProvider = (*Provider)(nil)

// NewProvider creates a provider for an already parsed font.
func NewProvider(f *Font, opts ...Option) *Provider {
	cfg := defaultProviderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Provider{
		font:      f,
		extractor: NewOutlineExtractor(),
		size:      cfg.size,
	}
}

// NewGoRegularProvider creates a provider backed by the embedded Go Regular font.
func NewGoRegularProvider(opts ...Option) (*Provider, error) {
	f, err := GoRegular()
	if err != nil {
		return nil, err
	}
	return NewProvider(f, opts...), nil
}

// NewGoMonoProvider creates a provider backed by the embedded Go Mono font.
func NewGoMonoProvider(opts ...Option) (*Provider, error) {
	f, err := GoMono()
	if err != nil {
		return nil, err
	}
	return NewProvider(f, opts...), nil
}

// Font returns the font the provider reads from.
func (p *Provider) Font() *Font {
	return p.font
}

// Size returns the extraction size in pixels per em.
func (p *Provider) Size() float64 {
	return p.size
}

// Outline returns the raw glyph outline for r.
func (p *Provider) Outline(r rune) (*GlyphOutline, error) {
	gid := p.font.GlyphIndex(r)
	if gid == 0 {
		return nil, &FontError{Rune: r, Reason: "no glyph", Err: pathanim.ErrGlyphNotFound}
	}

	outline, err := p.extractor.ExtractOutline(p.font, gid, p.size)
	if errors.Is(err, sfnt.ErrNotFound) || errors.Is(err, sfnt.ErrColoredGlyph) {
		return nil, &FontError{Rune: r, Reason: "no outline", Err: fmt.Errorf("%w: %w", pathanim.ErrGlyphNotFound, err)}
	}
	if err != nil {
		return nil, &FontError{Rune: r, Reason: "failed to load glyph", Err: err}
	}
	return outline, nil
}

// OutlineFor implements pathanim.OutlineProvider.
func (p *Provider) OutlineFor(r rune) (*pathanim.Path, error) {
	outline, err := p.Outline(r)
	if err != nil {
		return nil, err
	}
	pathanim.Logger().Debug("text: glyph outline",
		"rune", string(r), "gid", outline.GID, "segments", outline.SegmentCount())
	return outline.ToPath(), nil
}
