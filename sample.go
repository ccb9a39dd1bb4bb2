package pathanim

import (
	"fmt"
	"math"
)

// SampleFunc maps a domain position t in [0,1] to a value that is expected
// (but not required) to lie in [0,1].
type SampleFunc func(t float64) float64

// SinePlot is one full sine period squeezed into the unit square:
// (sin(2πt)+1)/2.
func SinePlot(t float64) float64 {
	return (math.Sin(t*2*math.Pi) + 1) / 2
}

// DefaultSampleCount returns the number of samples Sample uses when count
// is zero: the rect width rounded to the nearest integer.
func DefaultSampleCount(rect Rect) int {
	return int(math.Round(rect.Width()))
}

// Sample evaluates f at count evenly spaced positions t = i/(count-1) and
// returns the polyline through the points (t, f(t)) mapped into rect with
// MapUnitPoint. The first point is a MoveTo and every further point a
// LineTo; no smoothing is applied.
//
// A count of zero selects DefaultSampleCount(rect). Sample returns
// ErrInvalidSampleCount if the resulting count is below 2.
func Sample(rect Rect, count int, f SampleFunc) (*Path, error) {
	if count == 0 {
		count = DefaultSampleCount(rect)
	}
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, count)
	}

	m := UnitToRect(rect)
	p := NewPath()
	last := float64(count - 1)
	for i := 0; i < count; i++ {
		t := float64(i) / last
		pt := m.TransformPoint(Pt(t, f(t)))
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}

	Logger().Debug("pathanim: sampled path",
		"count", count,
		"width", rect.Width(),
		"height", rect.Height())
	return p, nil
}

// MapUnitPoint converts a unit-space point into rect. Unit y grows upwards:
// (0,0) maps to the bottom-left corner of rect and (1,1) to the top-right.
func MapUnitPoint(p Point, rect Rect) Point {
	return Point{
		X: rect.Min.X + p.X*rect.Width(),
		Y: rect.Min.Y + rect.Height() - p.Y*rect.Height(),
	}
}

// UnmapUnitPoint is the inverse of MapUnitPoint. The result is undefined for
// a rect with zero width or height.
func UnmapUnitPoint(p Point, rect Rect) Point {
	return Point{
		X: (p.X - rect.Min.X) / rect.Width(),
		Y: (rect.Min.Y + rect.Height() - p.Y) / rect.Height(),
	}
}
