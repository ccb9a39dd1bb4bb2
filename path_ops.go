package pathanim

import "math"

// Path operations: bounding box computation, flattening, and arc length
// measurement.

// maxFlattenDepth bounds recursive subdivision; 2^16 pieces per curve is far
// beyond any useful tolerance and protects against NaN coordinates.
const maxFlattenDepth = 16

// cubicFlatness returns the maximum distance from control points to the chord.
func cubicFlatness(c CubicBez) float64 {
	// Distance from P1 and P2 to the line P0-P3
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y

	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// BoundingBox returns the tight axis-aligned bounding box of the path.
// Uses curve extrema for accuracy.
func (p *Path) BoundingBox() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}

	// Initialize with extreme values
	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case QuadTo:
			bbox = bbox.Union(quadBBox(current, e.Control, e.Point))
			current = e.Point
		case CubicTo:
			bbox = bbox.Union(cubicBBox(current, e.Control1, e.Control2, e.Point))
			current = e.Point
		case Close:
			// Close doesn't add new points
		}
	}

	// Handle empty path case
	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}

	return bbox
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}

// quadBBox returns the tight bounding box of a quadratic Bezier.
func quadBBox(p0, p1, p2 Point) Rect {
	q := NewQuadBez(p0, p1, p2)
	return q.BoundingBox()
}

// cubicBBox returns the tight bounding box of a cubic Bezier.
func cubicBBox(p0, p1, p2, p3 Point) Rect {
	c := NewCubicBez(p0, p1, p2, p3)
	return c.BoundingBox()
}

// Polylines flattens the path into one polyline per subpath.
// A MoveTo always starts a new polyline; a Close appends the subpath start
// when the pen is not already there. Single-point subpaths are kept so that
// degenerate (zero-length) paths still have a position.
func (p *Path) Polylines(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}

	var (
		lines          [][]Point
		cur            []Point
		start, current Point
	)
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	emit := func(pt Point) { cur = append(cur, pt) }

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			emit(e.Point)
			start, current = e.Point, e.Point
			continue
		case Close:
			if len(cur) > 0 && current != start {
				emit(start)
			}
			current = start
			continue
		}
		if len(cur) == 0 {
			emit(current)
		}
		switch e := elem.(type) {
		case LineTo:
			emit(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(current, e.Control, e.Point, tolerance, emit)
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, emit)
			current = e.Point
		}
	}
	flush()
	return lines
}

// flattenQuad flattens a quadratic Bezier curve.
func flattenQuad(p0, p1, p2 Point, tolerance float64, fn func(pt Point)) {
	q := NewQuadBez(p0, p1, p2)
	flattenQuadRecursive(q, tolerance*tolerance, 0, fn)
}

// flattenQuadRecursive recursively subdivides the quadratic.
func flattenQuadRecursive(q QuadBez, toleranceSq float64, depth int, fn func(pt Point)) {
	// Flatness test: distance from control point to chord midpoint
	mid := q.P0.Lerp(q.P2, 0.5)
	dist := q.P1.Sub(mid)
	if depth >= maxFlattenDepth || dist.LengthSquared() <= toleranceSq {
		fn(q.P2)
		return
	}

	// Subdivide
	q1, q2 := q.Subdivide()
	flattenQuadRecursive(q1, toleranceSq, depth+1, fn)
	flattenQuadRecursive(q2, toleranceSq, depth+1, fn)
}

// flattenCubic flattens a cubic Bezier curve.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, fn func(pt Point)) {
	c := NewCubicBez(p0, p1, p2, p3)
	flattenCubicRecursive(c, tolerance*tolerance, 0, fn)
}

// flattenCubicRecursive recursively subdivides the cubic.
func flattenCubicRecursive(c CubicBez, toleranceSq float64, depth int, fn func(pt Point)) {
	// Flatness test using the standard cubic flatness metric
	flatness := cubicFlatness(c)

	if depth >= maxFlattenDepth || flatness <= toleranceSq*16 { // Adjust for the metric scale
		fn(c.P3)
		return
	}

	// Subdivide
	c1, c2 := c.Subdivide()
	flattenCubicRecursive(c1, toleranceSq, depth+1, fn)
	flattenCubicRecursive(c2, toleranceSq, depth+1, fn)
}

// Length returns the total arc length of the path, including the closing
// segment of closed subpaths. accuracy bounds the gap between chord and
// control polygon at which a curve piece is measured directly; values <= 0
// use 0.001.
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 0.001
	}
	accSq := accuracy * accuracy

	var length float64
	var start, current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start, current = e.Point, e.Point
			continue
		case LineTo:
			length += current.Distance(e.Point)
		case QuadTo:
			// A quadratic is a cubic with control points at 1/3 and 2/3.
			c1 := current.Lerp(e.Control, 2.0/3)
			c2 := e.Point.Lerp(e.Control, 2.0/3)
			length += cubicLength(NewCubicBez(current, c1, c2, e.Point), accSq, 0)
		case CubicTo:
			length += cubicLength(NewCubicBez(current, e.Control1, e.Control2, e.Point), accSq, 0)
		case Close:
			length += current.Distance(start)
			current = start
			continue
		}
		current = endpoint(elem, start, current)
	}
	return length
}

// cubicLength measures c by subdividing until the control polygon and the
// chord agree to within sqrt(accSq), then averaging the two.
func cubicLength(c CubicBez, accSq float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)

	diff := polygon - chord
	if depth >= maxFlattenDepth || diff*diff <= accSq {
		return (chord + polygon) / 2
	}

	c1, c2 := c.Subdivide()
	return cubicLength(c1, accSq, depth+1) + cubicLength(c2, accSq, depth+1)
}
