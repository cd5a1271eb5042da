package dia

// Point is a location in the affine plane. Unlike a Vec, a point has a
// position but no direction or magnitude of its own: only the
// difference of two points (a Vec) and the sum of a point and a vector
// (another Point) are defined.
//
// Internally a point is the displacement from a fixed but otherwise
// arbitrary global origin.
type Point struct {
	X, Y float64
}

// Origin is the distinguished zero point of the global frame.
var Origin = Point{}

// Pt is a shorthand constructor for a point.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Sub returns the translation vector carrying q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{p.X - q.X, p.Y - q.Y}
}

// Add returns the point reached by moving p along v.
func (p Point) Add(v Vec) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// MoveOriginTo re-expresses p relative to a new origin o.
func (p Point) MoveOriginTo(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}
