package pathanim

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// UnitShape is a named recipe for a path in unit space. Every recipe starts
// at (0,0) and ends at (1,0).
//
// The set of variants is closed: Wave, Zigzag and Word.
type UnitShape interface {
	isUnitShape()
	// Name returns a short human-readable name for logs and the CLI.
	Name() string
}

// Wave is a single S-shaped cubic from (0,0) to (1,0).
type Wave struct{}

func (Wave) isUnitShape() {}

// Name implements UnitShape.
func (Wave) Name() string { return "wave" }

// Zigzag alternates between y=+0.1 and y=-0.1 in x steps of 0.1.
type Zigzag struct{}

func (Zigzag) isUnitShape() {}

// Name implements UnitShape.
func (Zigzag) Name() string { return "zigzag" }

// Word traces the glyph outlines of Text laid out left to right.
type Word struct {
	Text string
}

func (Word) isUnitShape() {}

// Name implements UnitShape.
func (w Word) Name() string { return "word(" + w.Text + ")" }

// OutlineProvider supplies glyph outlines for single characters.
//
// OutlineFor returns a closed outline in y-down orientation, so that glyph
// tops have smaller y than the baseline and the word reads upright once
// fitted in screen space. Coordinates may use any local origin and scale.
// A provider that has no glyph for r returns an error wrapping
// ErrGlyphNotFound.
type OutlineProvider interface {
	OutlineFor(r rune) (*Path, error)
}

// zigzagSteps is the number of 0.1-wide strides from x=0 to x=1.
const zigzagSteps = 10

// UnitPath builds the unit-space path for shape. A fresh path is built on
// every call; outlines is only consulted for Word and may be nil otherwise.
func UnitPath(shape UnitShape, outlines OutlineProvider) (*Path, error) {
	switch s := shape.(type) {
	case Wave:
		return wavePath(), nil
	case Zigzag:
		return zigzagPath(), nil
	case Word:
		return wordPath(s.Text, outlines)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownShape, shape)
	}
}

func wavePath() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0.5, 0.5, 0.5, -0.5, 1, 0)
	return p
}

func zigzagPath() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	y := 0.1
	for i := 0; i <= zigzagSteps; i++ {
		// x from the step index, not by accumulating 0.1.
		x := float64(i) / zigzagSteps
		p.LineTo(x, y)
		y = -y
	}
	p.LineTo(1, 0)
	return p
}

// wordPath lays out one outline per rune side by side, normalises the
// glyphs' bounding box to 1×1 and shifts them so the last glyph point sits
// on y=0. The result is framed by MoveTo(0,0) and a final LineTo(1,0).
func wordPath(text string, outlines OutlineProvider) (*Path, error) {
	if outlines == nil {
		return nil, ErrNoOutlineProvider
	}

	glyphs := NewPath()
	for _, r := range norm.NFC.String(text) {
		outline, err := outlines.OutlineFor(r)
		if errors.Is(err, ErrGlyphNotFound) {
			Logger().Debug("pathanim: skipping rune without glyph", "rune", string(r))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("pathanim: outline for %q: %w", r, err)
		}
		if outline == nil || outline.IsEmpty() {
			continue
		}

		// Place the glyph flush against the right edge of what is already laid out.
		gb := outline.BoundingBox()
		dx := -gb.Min.X
		if !glyphs.IsEmpty() {
			dx += glyphs.BoundingBox().Max.X
		}
		glyphs.Append(outline.Translated(dx, 0))
	}

	p := NewPath()
	p.MoveTo(0, 0)
	if !glyphs.IsEmpty() {
		p.Append(glyphs.Transform(normalizeGlyphs(glyphs)))
	}
	p.LineTo(1, 0)
	return p, nil
}

// normalizeGlyphs returns the transform that scales the bounding box of the
// glyphs and the word's starting point (the origin) to 1×1 with its left
// edge at x=0, then moves the path's current point to y=0. An axis with zero
// extent is left unscaled.
func normalizeGlyphs(glyphs *Path) Matrix {
	bbox := glyphs.BoundingBox().Union(Rect{})
	sx, sy := 1.0, 1.0
	if w := bbox.Width(); w > 0 {
		sx = 1 / w
	}
	if h := bbox.Height(); h > 0 {
		sy = 1 / h
	}

	m := Translate(-bbox.Min.X, 0).ThenScale(sx, sy)
	end := m.TransformPoint(glyphs.CurrentPoint())
	return m.ThenTranslate(0, -end.Y)
}
