package pathanim

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of line and curve segments.
//
// A Path is built with MoveTo/LineTo/QuadraticTo/CubicTo/Close and is
// treated as immutable once handed to a consumer: Transform, Translated and
// Clone always return a new Path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Append adds all elements of other to the end of p.
func (p *Path) Append(other *Path) {
	if other == nil {
		return
	}
	for _, elem := range other.elements {
		p.appendElement(elem)
	}
}

// appendElement replays elem through the builder so start/current stay in sync.
func (p *Path) appendElement(elem PathElement) {
	switch e := elem.(type) {
	case MoveTo:
		p.MoveTo(e.Point.X, e.Point.Y)
	case LineTo:
		p.LineTo(e.Point.X, e.Point.Y)
	case QuadTo:
		p.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
	case CubicTo:
		p.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
	case Close:
		p.Close()
	}
}

// Elements returns a copy of the path elements.
func (p *Path) Elements() []PathElement {
	out := make([]PathElement, len(p.elements))
	copy(out, p.elements)
	return out
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// StartPoint returns the first point of the path, or the zero point for an
// empty path.
func (p *Path) StartPoint() Point {
	if len(p.elements) == 0 {
		return Point{}
	}
	return endpoint(p.elements[0], Point{}, Point{})
}

// Vertices returns the end point of every element in order, skipping Close.
// Control points are not included.
func (p *Path) Vertices() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		if _, ok := elem.(Close); ok {
			continue
		}
		pts = append(pts, endpoint(elem, Point{}, Point{}))
	}
	return pts
}

// endpoint returns the point an element leaves the pen at.
func endpoint(elem PathElement, start, current Point) Point {
	switch e := elem.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case CubicTo:
		return e.Point
	case Close:
		return start
	}
	return current
}

// Transform returns a new path with m applied to every point, including
// control points.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Translated returns a copy of the path shifted by (dx, dy).
func (p *Path) Translated(dx, dy float64) *Path {
	return p.Transform(Translate(dx, dy))
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// ApproxEqual reports whether p and q have the same element kinds and every
// point (control points included) is within tol.
func (p *Path) ApproxEqual(q *Path, tol float64) bool {
	if len(p.elements) != len(q.elements) {
		return false
	}
	for i := range p.elements {
		if !elementApproxEqual(p.elements[i], q.elements[i], tol) {
			return false
		}
	}
	return true
}

func elementApproxEqual(a, b PathElement, tol float64) bool {
	switch x := a.(type) {
	case MoveTo:
		y, ok := b.(MoveTo)
		return ok && x.Point.ApproxEqual(y.Point, tol)
	case LineTo:
		y, ok := b.(LineTo)
		return ok && x.Point.ApproxEqual(y.Point, tol)
	case QuadTo:
		y, ok := b.(QuadTo)
		return ok && x.Control.ApproxEqual(y.Control, tol) && x.Point.ApproxEqual(y.Point, tol)
	case CubicTo:
		y, ok := b.(CubicTo)
		return ok && x.Control1.ApproxEqual(y.Control1, tol) &&
			x.Control2.ApproxEqual(y.Control2, tol) && x.Point.ApproxEqual(y.Point, tol)
	case Close:
		_, ok := b.(Close)
		return ok
	}
	return false
}
