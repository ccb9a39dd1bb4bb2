package pathanim

// Fitted is the result of fitting a unit path between two points.
type Fitted struct {
	// Path is the transformed path; it starts at the from point.
	Path *Path
	// Length is the euclidean distance between the two points and the
	// uniform scale applied to the unit path.
	Length float64
	// Rotation is the angle in radians applied to the unit path.
	Rotation float64
}

// FitTransform returns the transform that carries unit space onto the
// segment from -> to: scale uniformly by the distance, rotate by the angle
// of the segment, then translate to from. Every unit point p becomes
// from + Rotate(rotation)·(length·p).
func FitTransform(from, to Point) Matrix {
	length := Distance(from, to)
	rotation := Angle(from, to)
	return Translate(from.X, from.Y).
		Multiply(Rotate(rotation)).
		Multiply(Scale(length, length))
}

// Fit transforms unit so that its (0,0) lands on from and its (1,0) lands
// on to. The unit path is not modified.
//
// from == to is accepted and collapses the path onto a single point.
func Fit(unit *Path, from, to Point) Fitted {
	f := Fitted{
		Length:   Distance(from, to),
		Rotation: Angle(from, to),
	}
	f.Path = unit.Transform(FitTransform(from, to))

	Logger().Debug("pathanim: fitted path",
		"from", from,
		"to", to,
		"length", f.Length,
		"rotation", f.Rotation)
	return f
}

// FitShape builds the unit path for shape and fits it between from and to.
func FitShape(shape UnitShape, outlines OutlineProvider, from, to Point) (Fitted, error) {
	unit, err := UnitPath(shape, outlines)
	if err != nil {
		return Fitted{}, err
	}
	return Fit(unit, from, to), nil
}
