package pathanim

// Session tracks the state of one interactive session: the anchor the next
// fit starts from and the result of the last fit.
//
// Each Tap performs exactly one fit from the current anchor to the tapped
// point and then moves the anchor there, so consecutive taps chain paths
// end to end.
//
// A Session is not safe for concurrent use.
type Session struct {
	opts sessionOptions
	pick ShapePicker

	anchor   Point
	shape    UnitShape
	path     *Path
	length   float64
	rotation float64
}

// NewSession creates a session with the given options.
func NewSession(opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pick := o.picker
	if pick == nil {
		pick = randomPicker(o.rand)
	}

	return &Session{
		opts:   o,
		pick:   pick,
		anchor: o.start,
		path:   NewPath(),
	}
}

// Tap handles a point event. It picks the next shape, fits its unit path
// from the current anchor to p, records the result and moves the anchor
// to p.
//
// On error the session state is left unchanged.
func (s *Session) Tap(p Point) (Fitted, error) {
	if len(s.opts.shapes) == 0 {
		return Fitted{}, ErrEmptyShapePool
	}

	shape := s.pick(s.opts.shapes)
	f, err := FitShape(shape, s.opts.outlines, s.anchor, p)
	if err != nil {
		return Fitted{}, err
	}

	Logger().Debug("pathanim: tap",
		"shape", shape.Name(),
		"from", s.anchor,
		"to", p)

	s.shape = shape
	s.path = f.Path
	s.length = f.Length
	s.rotation = f.Rotation
	s.anchor = p
	return f, nil
}

// Anchor returns the point the next fit will start from.
func (s *Session) Anchor() Point {
	return s.anchor
}

// Shape returns the shape used by the last successful tap, or nil.
func (s *Session) Shape() UnitShape {
	return s.shape
}

// Path returns the active fitted path. It is empty before the first tap.
func (s *Session) Path() *Path {
	return s.path
}

// Length returns the length of the last fit.
func (s *Session) Length() float64 {
	return s.length
}

// Rotation returns the rotation in radians of the last fit.
func (s *Session) Rotation() float64 {
	return s.rotation
}
