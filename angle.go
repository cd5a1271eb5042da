package dia

import "math"

// Angle represents a rotation. The canonical unit is radians;
// constructors exist for other units.
//
// Angle arithmetic is plain floating-point arithmetic. In particular,
// Sub returns the exact signed difference and does not wrap the result
// into a canonical range. The transform decomposition in scaleinv.go
// depends on this: the sign of a small angle difference determines the
// sense of rotation. Use Normalized explicitly when a canonical
// representative is wanted.
type Angle float64

// FullTurn is one complete revolution.
const FullTurn = Angle(2 * math.Pi)

// Rad creates an Angle from a value in radians.
func Rad(v float64) Angle {
	return Angle(v)
}

// Deg creates an Angle from a value in degrees.
func Deg(v float64) Angle {
	return Angle(v * math.Pi / 180)
}

// Turns creates an Angle from a number of full revolutions.
func Turns(v float64) Angle {
	return Angle(v) * FullTurn
}

// Radians returns the angle value in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle value in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Add returns the sum of two angles.
func (a Angle) Add(b Angle) Angle {
	return a + b
}

// Sub returns the signed difference a - b, unwrapped.
func (a Angle) Sub(b Angle) Angle {
	return a - b
}

// Normalized returns the equivalent angle in the range [0, FullTurn).
func (a Angle) Normalized() Angle {
	n := Angle(math.Mod(float64(a), float64(FullTurn)))
	if n < 0 {
		n += FullTurn
	}
	return n
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}
