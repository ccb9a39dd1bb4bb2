package svg

import "image/color"

// Option configures Encode.
type Option func(*encodeOptions)

type encodeOptions struct {
	precision   int
	minify      bool
	stroke      color.Color
	strokeWidth float64
	marker      color.Color
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		precision:   DefaultPrecision,
		stroke:      color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff},
		strokeWidth: 2,
		marker:      color.NRGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
	}
}

// WithMinify runs the document through the tdewolff SVG minifier.
func WithMinify() Option {
	return func(o *encodeOptions) {
		o.minify = true
	}
}

// WithPrecision sets the number of significant digits for coordinates.
// Values < 1 keep the default.
func WithPrecision(prec int) Option {
	return func(o *encodeOptions) {
		if prec >= 1 {
			o.precision = prec
		}
	}
}

// WithStroke sets the trail colour and width. A nil colour keeps the
// default; width <= 0 keeps the default width.
func WithStroke(c color.Color, width float64) Option {
	return func(o *encodeOptions) {
		if c != nil {
			o.stroke = c
		}
		if width > 0 {
			o.strokeWidth = width
		}
	}
}

// WithMarker sets the fill colour of the moving marker.
func WithMarker(c color.Color) Option {
	return func(o *encodeOptions) {
		if c != nil {
			o.marker = c
		}
	}
}
