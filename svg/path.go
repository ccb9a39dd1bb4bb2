package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"

	"github.com/gogpu/pathanim"
)

// DefaultPrecision is the number of significant digits written for coordinates.
const DefaultPrecision = 5

// num formats a float with a limited number of significant digits.
type num struct {
	v    float64
	prec int
}

func (f num) String() string {
	s := fmt.Sprintf("%.*g", f.prec, f.v)
	if float64(math.MaxInt32) < f.v || f.v < float64(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), f.prec))
}

// PathData renders p as the value of an SVG d attribute using absolute
// commands and DefaultPrecision significant digits.
func PathData(p *pathanim.Path) string {
	return pathData(p, DefaultPrecision)
}

func pathData(p *pathanim.Path, prec int) string {
	var sb strings.Builder
	pt := func(q pathanim.Point) {
		sb.WriteString(num{q.X, prec}.String())
		sb.WriteByte(',')
		sb.WriteString(num{q.Y, prec}.String())
	}

	for i, elem := range p.Elements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case pathanim.MoveTo:
			sb.WriteString("M")
			pt(e.Point)
		case pathanim.LineTo:
			sb.WriteString("L")
			pt(e.Point)
		case pathanim.QuadTo:
			sb.WriteString("Q")
			pt(e.Control)
			sb.WriteByte(' ')
			pt(e.Point)
		case pathanim.CubicTo:
			sb.WriteString("C")
			pt(e.Control1)
			sb.WriteByte(' ')
			pt(e.Control2)
			sb.WriteByte(' ')
			pt(e.Point)
		case pathanim.Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}
