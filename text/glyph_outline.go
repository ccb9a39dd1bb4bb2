package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pathanim"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// OutlinePoint represents a point in a glyph outline.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// pointCount returns how many entries of OutlineSegment.Points op uses.
func (op OutlineOp) pointCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of one or more contours, each starting with a MoveTo.
// Coordinates are y-down: glyph tops have smaller y than the baseline.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Advance is the horizontal advance width of the glyph.
	Advance float32

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *GlyphOutline) SegmentCount() int {
	return len(o.Segments)
}

// Clone creates a deep copy of the outline.
func (o *GlyphOutline) Clone() *GlyphOutline {
	if o == nil {
		return nil
	}

	clone := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Advance:  o.Advance,
		GID:      o.GID,
	}
	copy(clone.Segments, o.Segments)
	return clone
}

// Scale returns a new outline with all coordinates scaled by (sx, sy).
// Use a negative sy to flip the outline vertically.
func (o *GlyphOutline) Scale(sx, sy float32) *GlyphOutline {
	if o == nil {
		return nil
	}

	scaled := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Advance:  o.Advance * sx,
		GID:      o.GID,
	}

	for i, seg := range o.Segments {
		scaled.Segments[i] = OutlineSegment{
			Op: seg.Op,
			Points: [3]OutlinePoint{
				{X: seg.Points[0].X * sx, Y: seg.Points[0].Y * sy},
				{X: seg.Points[1].X * sx, Y: seg.Points[1].Y * sy},
				{X: seg.Points[2].X * sx, Y: seg.Points[2].Y * sy},
			},
		}
	}

	return scaled
}

// ToPath converts the outline to a path, closing every contour.
func (o *GlyphOutline) ToPath() *pathanim.Path {
	p := pathanim.NewPath()
	if o == nil {
		return p
	}

	open := false
	for _, seg := range o.Segments {
		pts := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(float64(pts[0].X), float64(pts[0].Y))
			open = true
		case OutlineOpLineTo:
			p.LineTo(float64(pts[0].X), float64(pts[0].Y))
		case OutlineOpQuadTo:
			p.QuadraticTo(float64(pts[0].X), float64(pts[0].Y), float64(pts[1].X), float64(pts[1].Y))
		case OutlineOpCubicTo:
			p.CubicTo(float64(pts[0].X), float64(pts[0].Y),
				float64(pts[1].X), float64(pts[1].Y),
				float64(pts[2].X), float64(pts[2].Y))
		}
	}
	if open {
		p.Close()
	}
	return p
}

// OutlineExtractor extracts glyph outlines from fonts.
// It reuses one sfnt.Buffer across calls and is not safe for concurrent use.
type OutlineExtractor struct {
	// buffer is reused for sfnt operations
	buffer sfnt.Buffer
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline extracts the outline for a glyph at the given size.
// The size is in pixels per em. A glyph without contours (such as a space)
// yields an empty outline with its advance set.
func (e *OutlineExtractor) ExtractOutline(f *Font, gid GlyphID, size float64) (*GlyphOutline, error) {
	ppem := fixed.Int26_6(size * 64)

	segments, err := f.sfnt.LoadGlyph(&e.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		// ErrNotFound means glyph doesn't exist
		// ErrColoredGlyph means it's a color glyph (COLR/sbix)
		return nil, err
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		GID:      gid,
	}

	for _, seg := range segments {
		outSeg := OutlineSegment{}

		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			outSeg.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			outSeg.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			outSeg.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			outSeg.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := 0; i < outSeg.Op.pointCount(); i++ {
			outSeg.Points[i] = fixedPointToOutline(seg.Args[i])
		}

		outline.Segments = append(outline.Segments, outSeg)
	}

	advance, err := f.sfnt.GlyphAdvance(&e.buffer, sfnt.GlyphIndex(gid), ppem, 0)
	if err == nil {
		outline.Advance = float32(advance) / 64.0
	}

	return outline, nil
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}
