package pathanim

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Composition follows the usual convention: (m.Multiply(n)).TransformPoint(p)
// applies n first and m second.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
// A positive angle rotates the positive x-axis towards the positive y-axis.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// ThenTranslate returns m followed by a translation of (x, y).
func (m Matrix) ThenTranslate(x, y float64) Matrix {
	return Translate(x, y).Multiply(m)
}

// ThenScale returns m followed by a scale of (x, y).
func (m Matrix) ThenScale(x, y float64) Matrix {
	return Scale(x, y).Multiply(m)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// UnitToRect returns the transform that maps unit space into rect with the
// vertical axis flipped: unit (0,0) lands on the bottom-left corner of rect
// and unit (1,1) on the top-right corner (y-down screen coordinates).
func UnitToRect(rect Rect) Matrix {
	w, h := rect.Width(), rect.Height()
	return Matrix{
		A: w, B: 0, C: rect.Min.X,
		D: 0, E: -h, F: rect.Min.Y + h,
	}
}
