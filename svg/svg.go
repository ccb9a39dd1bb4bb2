// Package svg writes pathanim paths and their animation as SVG documents.
//
// The output is a standalone <svg> with one stroked <path> per trail and a
// circle that follows the motion path through <animateMotion>. Browsers play
// it directly, which makes it a convenient way to check an animation without
// a graphical front end.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/tdewolff/minify/v2"
	svgmin "github.com/tdewolff/minify/v2/svg"

	"github.com/gogpu/pathanim"
)

// MediaType is the media type of encoded documents.
const MediaType = "image/svg+xml"

// ErrEmptyDocument is returned when a document has nothing to draw.
var ErrEmptyDocument = errors.New("svg: document has no paths")

// Document describes one SVG file.
type Document struct {
	// Width and Height of the viewport in user units.
	Width, Height float64

	// Trails are drawn as stroked paths.
	Trails []*pathanim.Path

	// Motion is the path the marker follows. When nil no marker is drawn.
	Motion *pathanim.Path

	// Animation configures the marker's animateMotion element.
	Animation pathanim.Animation

	// MarkerRadius of the moving circle. Zero uses 6.
	MarkerRadius float64
}

// Encode writes doc to w.
func Encode(w io.Writer, doc Document, opts ...Option) error {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(doc.Trails) == 0 && doc.Motion == nil {
		return ErrEmptyDocument
	}
	if doc.Motion != nil {
		if err := doc.Animation.Validate(); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	writeDocument(&buf, doc, o)

	if o.minify {
		m := minify.New()
		m.AddFunc(MediaType, svgmin.Minify)
		if err := m.Minify(MediaType, w, &buf); err != nil {
			return fmt.Errorf("svg: minify: %w", err)
		}
	} else if _, err := buf.WriteTo(w); err != nil {
		return err
	}

	pathanim.Logger().Debug("svg: encoded document",
		"trails", len(doc.Trails), "motion", doc.Motion != nil, "minify", o.minify)
	return nil
}

func writeDocument(w *bytes.Buffer, doc Document, o encodeOptions) {
	n := func(v float64) string { return num{v, o.precision}.String() }

	fmt.Fprintf(w, `<svg version="1.1" width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`,
		n(doc.Width), n(doc.Height), n(doc.Width), n(doc.Height))
	w.WriteByte('\n')

	for _, trail := range doc.Trails {
		if trail == nil || trail.IsEmpty() {
			continue
		}
		fmt.Fprintf(w, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round"/>`,
			pathData(trail, o.precision), hexColor(o.stroke), n(o.strokeWidth))
		w.WriteByte('\n')
	}

	if doc.Motion != nil && !doc.Motion.IsEmpty() {
		r := doc.MarkerRadius
		if r <= 0 {
			r = 6
		}
		anim := doc.Animation
		fmt.Fprintf(w, `<circle r="%s" fill="%s">`, n(r), hexColor(o.marker))
		w.WriteByte('\n')
		fmt.Fprintf(w, `<animateMotion dur="%ss" repeatCount="%s" fill="%s" calcMode="%s" path="%s"/>`,
			n(anim.Duration.Seconds()), repeatCount(anim, o.precision), anim.Fill, calcMode(anim.Timing),
			pathData(doc.Motion, o.precision))
		w.WriteByte('\n')
		w.WriteString("</circle>\n")
	}

	w.WriteString("</svg>\n")
}

// repeatCount returns the SMIL repeatCount for anim.
func repeatCount(anim pathanim.Animation, prec int) string {
	switch {
	case math.IsInf(anim.RepeatCount, 1):
		return "indefinite"
	case anim.RepeatCount == 0:
		return "1"
	default:
		return num{anim.RepeatCount, prec}.String()
	}
}

// calcMode maps a timing function onto SMIL. Constant speed along the path
// is what SMIL calls paced.
func calcMode(t pathanim.Timing) string {
	if t == pathanim.TimingLinear {
		return "paced"
	}
	return "linear"
}

// hexColor writes c as an SVG colour. SVG colours carry straight alpha, so
// premultiplied colours are converted first.
func hexColor(cc color.Color) string {
	c := color.NRGBAModel.Convert(cc).(color.NRGBA)
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
