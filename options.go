package pathanim

import "math/rand/v2"

// SessionOption configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Wave and zigzag only, picked at random
//	s := pathanim.NewSession()
//
//	// Include a word traced with the embedded Go font
//	provider, _ := text.NewGoRegularProvider()
//	s := pathanim.NewSession(
//	    pathanim.WithOutlines(provider),
//	    pathanim.WithShapes(pathanim.Wave{}, pathanim.Zigzag{}, pathanim.Word{Text: "Go"}),
//	)
type SessionOption func(*sessionOptions)

// ShapePicker chooses the shape for the next tap from the configured pool.
type ShapePicker func(pool []UnitShape) UnitShape

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	outlines OutlineProvider
	shapes   []UnitShape
	rand     *rand.Rand
	picker   ShapePicker
	start    Point
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		shapes: []UnitShape{Wave{}, Zigzag{}},
	}
}

// WithOutlines sets the glyph outline provider used for Word shapes.
func WithOutlines(p OutlineProvider) SessionOption {
	return func(o *sessionOptions) {
		o.outlines = p
	}
}

// WithShapes replaces the pool of shapes a tap can pick from.
func WithShapes(shapes ...UnitShape) SessionOption {
	return func(o *sessionOptions) {
		o.shapes = append([]UnitShape(nil), shapes...)
	}
}

// WithRand sets the random source for the default picker.
// Use a seeded source for reproducible sessions.
func WithRand(r *rand.Rand) SessionOption {
	return func(o *sessionOptions) {
		o.rand = r
	}
}

// WithShapePicker replaces the random choice with a custom picker.
func WithShapePicker(pick ShapePicker) SessionOption {
	return func(o *sessionOptions) {
		o.picker = pick
	}
}

// WithStart sets the initial anchor point. The default is the origin.
func WithStart(p Point) SessionOption {
	return func(o *sessionOptions) {
		o.start = p
	}
}

// CyclePicker returns a ShapePicker that walks the pool in order.
func CyclePicker() ShapePicker {
	next := 0
	return func(pool []UnitShape) UnitShape {
		s := pool[next%len(pool)]
		next++
		return s
	}
}

// randomPicker picks uniformly from the pool using r.
func randomPicker(r *rand.Rand) ShapePicker {
	return func(pool []UnitShape) UnitShape {
		if r == nil {
			return pool[rand.IntN(len(pool))]
		}
		return pool[r.IntN(len(pool))]
	}
}

// MotionOption configures a Motion during creation.
type MotionOption func(*motionOptions)

// motionOptions holds optional configuration for Motion creation.
type motionOptions struct {
	tolerance float64
}

// defaultMotionOptions returns the default motion options.
func defaultMotionOptions() motionOptions {
	return motionOptions{tolerance: 0.1}
}

// WithTolerance sets the maximum distance between a curve and the polyline
// used to approximate it. Values <= 0 keep the default of 0.1.
func WithTolerance(tol float64) MotionOption {
	return func(o *motionOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}
