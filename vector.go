package dia

import "math"

// Axis is one of the two basis directions used to decompose a vector
// into scalar coefficients.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Vec is a 2D vector: a displacement with direction and magnitude but
// no position. Vectors are value types; all operations return new
// vectors.
//
// The canonical representation is the pair of coefficients along the
// {AxisX, AxisY} basis.
type Vec struct {
	X, Y float64
}

// Recompose builds the vector with the given basis coefficients.
// It is the inverse of Decompose.
func Recompose(x, y float64) Vec {
	return Vec{x, y}
}

// FromAngle returns the unit vector pointing at the given
// counterclockwise angle from the positive X axis.
func FromAngle(a Angle) Vec {
	return Vec{a.Cos(), a.Sin()}
}

// Decompose returns the coefficients of v along AxisX and AxisY.
func (v Vec) Decompose() (x, y float64) {
	return v.X, v.Y
}

// Coeff returns the coefficient of v along a single axis.
func (v Vec) Coeff(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// Add returns the sum v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y}
}

// Sub returns the difference v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by the factor s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Neg returns the vector pointing in the opposite direction.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// Dot returns the inner product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether both coefficients are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
