package pathanim

import "errors"

// Sentinel errors for the pathanim package.
var (
	// ErrInvalidSampleCount is returned by Sample when fewer than two sample
	// points would be produced.
	ErrInvalidSampleCount = errors.New("pathanim: sample count must be at least 2")

	// ErrNoOutlineProvider is returned when a Word shape is built without an
	// OutlineProvider.
	ErrNoOutlineProvider = errors.New("pathanim: word shape requires an outline provider")

	// ErrGlyphNotFound is returned by an OutlineProvider that has no glyph for
	// a rune. Word recipes skip such runes.
	ErrGlyphNotFound = errors.New("pathanim: glyph not found")

	// ErrUnknownShape is returned for a UnitShape implementation outside this
	// package's variants.
	ErrUnknownShape = errors.New("pathanim: unknown unit shape")

	// ErrInvalidAnimation is returned when an Animation has a non-positive
	// duration or a negative repeat count.
	ErrInvalidAnimation = errors.New("pathanim: invalid animation")

	// ErrEmptyPath is returned when an operation needs at least one point.
	ErrEmptyPath = errors.New("pathanim: empty path")

	// ErrEmptyShapePool is returned when a Session is configured without shapes.
	ErrEmptyShapePool = errors.New("pathanim: session has no shapes to choose from")
)
