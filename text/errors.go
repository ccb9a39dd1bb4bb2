package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")
)

// FontError represents a font-related error for a specific rune.
type FontError struct {
	Rune   rune
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	msg := "text: " + e.Reason + " for " + string(e.Rune)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *FontError) Unwrap() error {
	return e.Err
}
