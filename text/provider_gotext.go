package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pathanim"
)

// GoTextProvider implements pathanim.OutlineProvider using
// go-text/typesetting.
//
// go-text returns outlines in font units with y pointing up. They are scaled
// by size/upem and flipped so the result matches Provider.
//
// GoTextProvider is not safe for concurrent use: font.Face keeps per-call
// state.
type GoTextProvider struct {
	face  *font.Face
	scale float32
}

var _ pathanim.OutlineProvider = (*GoTextProvider)(nil)

// NewGoTextProvider parses TTF or OTF data with go-text/typesetting.
func NewGoTextProvider(data []byte, opts ...Option) (*GoTextProvider, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultProviderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	upem := face.Upem()
	if upem == 0 {
		upem = 1000
	}
	return &GoTextProvider{
		face:  face,
		scale: float32(cfg.size) / float32(upem),
	}, nil
}

// NewGoTextRegularProvider creates a go-text provider for the embedded Go
// Regular font.
func NewGoTextRegularProvider(opts ...Option) (*GoTextProvider, error) {
	return NewGoTextProvider(goregular.TTF, opts...)
}

// Outline returns the glyph outline for r, scaled and flipped to y-down.
func (p *GoTextProvider) Outline(r rune) (*GlyphOutline, error) {
	gid, ok := p.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return nil, &FontError{Rune: r, Reason: "no glyph", Err: pathanim.ErrGlyphNotFound}
	}

	data, ok := p.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph.
		return nil, &FontError{Rune: r, Reason: "no outline", Err: pathanim.ErrGlyphNotFound}
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(data.Segments)),
		Advance:  p.face.HorizontalAdvance(gid),
		GID:      GlyphID(gid),
	}
	for _, seg := range data.Segments {
		var out OutlineSegment
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := 0; i < out.Op.pointCount(); i++ {
			out.Points[i] = OutlinePoint{X: seg.Args[i].X, Y: seg.Args[i].Y}
		}
		outline.Segments = append(outline.Segments, out)
	}

	return outline.Scale(p.scale, -p.scale), nil
}

// OutlineFor implements pathanim.OutlineProvider.
func (p *GoTextProvider) OutlineFor(r rune) (*pathanim.Path, error) {
	outline, err := p.Outline(r)
	if err != nil {
		return nil, err
	}
	return outline.ToPath(), nil
}
