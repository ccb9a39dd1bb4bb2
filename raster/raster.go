// Package raster renders PNG previews of pathanim paths and motions.
//
// Paths are flattened and stroked as thin quads; the moving object is drawn
// as a filled circle at evenly spaced frames, which shows the pacing of the
// animation in a single still image. Rasterization uses
// golang.org/x/image/vector.
//
// Usage:
//
//	img := raster.Render(fitted.Path, motion, raster.Options{Width: 400, Height: 300})
//	err := raster.SavePNG("preview.png", img)
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/pathanim"
)

// circleKappa is the cubic control distance for a quarter circle of radius 1.
const circleKappa = 0.5522847498

// Options controls Render. Zero fields take the defaults listed.
type Options struct {
	Width, Height int // 256x256

	Background color.Color // white
	Stroke     color.Color // dark blue
	Marker     color.Color // translucent red

	StrokeWidth  float64 // 2
	MarkerRadius float64 // 4

	// Frames is the number of marker positions sampled over one cycle (12).
	Frames int

	// Tolerance for curve flattening (0.25).
	Tolerance float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 256
	}
	if o.Height <= 0 {
		o.Height = 256
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Stroke == nil {
		o.Stroke = color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}
	}
	if o.Marker == nil {
		o.Marker = color.NRGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0x80}
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 2
	}
	if o.MarkerRadius <= 0 {
		o.MarkerRadius = 4
	}
	if o.Frames <= 0 {
		o.Frames = 12
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 0.25
	}
	return o
}

// Render draws p and the frames of m into a new image.
// Either argument may be nil.
func Render(p *pathanim.Path, m *pathanim.Motion, opts Options) *image.RGBA {
	opts = opts.withDefaults()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(opts.Width, opts.Height)

	if p != nil && !p.IsEmpty() {
		for _, line := range p.Polylines(opts.Tolerance) {
			strokePolyline(z, line, opts.StrokeWidth/2)
		}
		fill(img, z, opts.Stroke)
	}

	if m != nil {
		z.Reset(opts.Width, opts.Height)
		for _, pt := range m.Frames(opts.Frames) {
			addCircle(z, pt, opts.MarkerRadius)
		}
		fill(img, z, opts.Marker)
	}

	pathanim.Logger().Debug("raster: rendered preview",
		"width", opts.Width, "height", opts.Height, "frames", opts.Frames)
	return img
}

// fill composites the rasterizer's coverage onto dst in colour c.
func fill(dst *image.RGBA, z *vector.Rasterizer, c color.Color) {
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// strokePolyline adds one quad of half-width hw per segment. Every quad is
// wound the same way, so overlaps accumulate instead of cancelling.
func strokePolyline(z *vector.Rasterizer, pts []pathanim.Point, hw float64) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := pathanim.Pt(-d.Y, d.X).Mul(hw / l)

		moveTo(z, a.Add(n))
		lineTo(z, b.Add(n))
		lineTo(z, b.Sub(n))
		lineTo(z, a.Sub(n))
		z.ClosePath()
	}
}

// addCircle adds a circle made of four cubic arcs.
func addCircle(z *vector.Rasterizer, c pathanim.Point, r float64) {
	k := r * circleKappa
	moveTo(z, pathanim.Pt(c.X+r, c.Y))
	cubeTo(z, pathanim.Pt(c.X+r, c.Y+k), pathanim.Pt(c.X+k, c.Y+r), pathanim.Pt(c.X, c.Y+r))
	cubeTo(z, pathanim.Pt(c.X-k, c.Y+r), pathanim.Pt(c.X-r, c.Y+k), pathanim.Pt(c.X-r, c.Y))
	cubeTo(z, pathanim.Pt(c.X-r, c.Y-k), pathanim.Pt(c.X-k, c.Y-r), pathanim.Pt(c.X, c.Y-r))
	cubeTo(z, pathanim.Pt(c.X+k, c.Y-r), pathanim.Pt(c.X+r, c.Y-k), pathanim.Pt(c.X+r, c.Y))
	z.ClosePath()
}

func moveTo(z *vector.Rasterizer, p pathanim.Point) {
	z.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(z *vector.Rasterizer, p pathanim.Point) {
	z.LineTo(float32(p.X), float32(p.Y))
}

func cubeTo(z *vector.Rasterizer, c1, c2, p pathanim.Point) {
	z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG saves img to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
