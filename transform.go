package dia

// Transform is an affine transformation of the plane, represented as a
// 2x3 matrix:
//
//	| a  c  tx |   ->  X' = a*X + c*Y + tx
//	| b  d  ty |   ->  Y' = b*X + d*Y + ty
//
// Transforms act differently on points and on vectors: a point is moved
// by the full affine map (ApplyPoint), while a vector, having no
// position, sees only the linear part (ApplyVec).
//
// Transforms are immutable values and compose with Mult.
type Transform struct {
	a, b, c, d, tx, ty float64
}

// Identity returns the transform that leaves every point and vector
// unchanged.
func Identity() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// Translation returns the transform that moves every point along v.
func Translation(v Vec) Transform {
	return Transform{1, 0, 0, 1, v.X, v.Y}
}

// Rotation returns the counterclockwise rotation by angle about the
// global origin.
func Rotation(angle Angle) Transform {
	sin, cos := angle.Sin(), angle.Cos()
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// RotationAbout returns the counterclockwise rotation by angle about
// the pivot point p.
func RotationAbout(p Point, angle Angle) Transform {
	// translate the pivot to the origin, rotate, translate back
	to := Translation(Origin.Sub(p))
	back := Translation(p.Sub(Origin))
	return back.Mult(Rotation(angle)).Mult(to)
}

// Scaling returns the transform that scales by sx along the X axis and
// sy along the Y axis, about the global origin.
func Scaling(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// ScalingAbout returns the scaling by (sx, sy) about the pivot point p.
func ScalingAbout(p Point, sx, sy float64) Transform {
	to := Translation(Origin.Sub(p))
	back := Translation(p.Sub(Origin))
	return back.Mult(Scaling(sx, sy)).Mult(to)
}

// Shear returns the transform that shears by kx along X and ky along Y.
func Shear(kx, ky float64) Transform {
	return Transform{1, ky, kx, 1, 0, 0}
}

// Mult composes two transforms. The result applies u first, then t:
//
//	t.Mult(u).ApplyPoint(p) == t.ApplyPoint(u.ApplyPoint(p))
func (t Transform) Mult(u Transform) Transform {
	return Transform{
		a:  t.a*u.a + t.c*u.b,
		b:  t.b*u.a + t.d*u.b,
		c:  t.a*u.c + t.c*u.d,
		d:  t.b*u.c + t.d*u.d,
		tx: t.a*u.tx + t.c*u.ty + t.tx,
		ty: t.b*u.tx + t.d*u.ty + t.ty,
	}
}

// Inverse returns the inverse transform. The transform must be
// non-degenerate (nonzero determinant).
func (t Transform) Inverse() Transform {
	invDet := 1.0 / (t.a*t.d - t.c*t.b)
	return Transform{
		a:  t.d * invDet,
		b:  -t.b * invDet,
		c:  -t.c * invDet,
		d:  t.a * invDet,
		tx: (t.c*t.ty - t.tx*t.d) * invDet,
		ty: (t.tx*t.b - t.a*t.ty) * invDet,
	}
}

// ApplyPoint applies the full affine map to a point.
func (t Transform) ApplyPoint(p Point) Point {
	return Point{
		X: t.a*p.X + t.c*p.Y + t.tx,
		Y: t.b*p.X + t.d*p.Y + t.ty,
	}
}

// ApplyVec applies the linear part of the transform to a vector.
// The translation component does not act on vectors.
func (t Transform) ApplyVec(v Vec) Vec {
	return Vec{
		X: t.a*v.X + t.c*v.Y,
		Y: t.b*v.X + t.d*v.Y,
	}
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
