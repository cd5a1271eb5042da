package dia

import "math"

// Direction is the orientation of a vector with the magnitude
// discarded. It is represented as the counterclockwise angle from the
// positive X axis.
//
// Directions are ephemeral: they are computed on demand from a vector
// and consumed immediately, typically to measure the rotation between
// two vectors.
type Direction struct {
	angle Angle
}

// DirectionOf returns the direction of v.
//
// The direction of the zero vector is undefined. Callers are
// responsible for passing a nonzero vector; this is a geometry
// construction invariant and is not checked at runtime.
func DirectionOf(v Vec) Direction {
	return Direction{Rad(math.Atan2(v.Y, v.X))}
}

// Angle returns the counterclockwise angle from the positive X axis,
// in the range (-half turn, half turn].
func (d Direction) Angle() Angle {
	return d.angle
}

// Sub returns the signed angle that rotates o onto d.
//
// The result is the plain difference of the two direction angles and
// is not wrapped into a canonical range.
func (d Direction) Sub(o Direction) Angle {
	return d.angle.Sub(o.angle)
}

// Vec returns the unit vector pointing in this direction.
func (d Direction) Vec() Vec {
	return FromAngle(d.angle)
}
