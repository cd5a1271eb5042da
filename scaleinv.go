package dia

import "github.com/arlet/dia/internal/logging"

// Payload is the capability set a value must provide to take part in a
// diagram: it can be transformed, re-anchored to a new origin, and
// rendered. The type parameter is the implementing type itself, so
// transform application stays fully typed and returns a new value
// (payloads are never mutated in place).
type Payload[T any] interface {
	ApplyTransform(Transform) T
	MoveOriginTo(Point) T
	Render(Renderer)
}

// ScaleInvariant decorates a payload so that it follows the rotation
// and translation of the surrounding diagram but never inherits scale.
// A non-uniform scale applied to the composite leaves the payload's
// shape untouched; only its anchor point moves.
//
// The wrapper keeps two pieces of bookkeeping alongside the payload:
// the direction the payload nominally points in, and the anchor point
// it is attached at. Both are always expressed in the same frame as
// the payload's current state.
//
// The stored direction must be nonzero for the whole lifetime of the
// wrapper; the direction of the zero vector is undefined. This is a
// construction invariant of the caller and is not checked at runtime.
type ScaleInvariant[T Payload[T]] struct {
	payload T
	dir     Vec
	loc     Point
}

// NewScaleInvariant wraps payload with the given pointing direction.
// The anchor point defaults to the global origin.
func NewScaleInvariant[T Payload[T]](payload T, dir Vec) ScaleInvariant[T] {
	return ScaleInvariant[T]{payload: payload, dir: dir, loc: Origin}
}

// NewScaleInvariantAt wraps payload with the given pointing direction
// and anchor point.
func NewScaleInvariantAt[T Payload[T]](payload T, dir Vec, loc Point) ScaleInvariant[T] {
	return ScaleInvariant[T]{payload: payload, dir: dir, loc: loc}
}

// Payload returns the wrapped value.
func (s ScaleInvariant[T]) Payload() T {
	return s.payload
}

// Direction returns the stored pointing direction.
func (s ScaleInvariant[T]) Direction() Vec {
	return s.dir
}

// Location returns the stored anchor point.
func (s ScaleInvariant[T]) Location() Point {
	return s.loc
}

// ApplyTransform applies t to the wrapper while protecting the payload
// from scale. The transform is factored into the rotation it induces
// on the stored direction and the translation it induces on the stored
// anchor; only those two components reach the payload:
//
//	v' = t(dir)          image of the direction, scale ends up in the
//	                     magnitude and is discarded
//	θ  = angle(v') - angle(dir)
//	l' = t(loc)
//	Δ  = l' - loc
//
// The payload is rotated by θ about the original anchor loc (so
// payloads that are not centered on their own local origin turn in
// place) and then translated by Δ. The new wrapper stores v' and l'.
func (s ScaleInvariant[T]) ApplyTransform(t Transform) ScaleInvariant[T] {
	dir := t.ApplyVec(s.dir)
	theta := DirectionOf(dir).Sub(DirectionOf(s.dir))
	loc := t.ApplyPoint(s.loc)
	delta := loc.Sub(s.loc)

	logging.Debug("scaleinv: rotate by %v rad about %v, translate by %v", theta.Radians(), s.loc, delta)

	// rotate about the original anchor first, then translate
	m := Translation(delta).Mult(RotationAbout(s.loc, theta))
	return ScaleInvariant[T]{
		payload: s.payload.ApplyTransform(m),
		dir:     dir,
		loc:     loc,
	}
}

// ApplyWithFreeze applies a frozen transform pair to the wrapper.
//
// Freezing a diagram suspends scale protection: transforms appended
// after the freeze boundary (post) are still factored through the
// scale-invariant path, but the transform accumulated before the
// boundary (pre) must hit the payload directly, scale included,
// exactly as it would hit an unwrapped object.
//
// The direction and anchor bookkeeping track only the scale-free
// interpretation of both transforms. After the pre-freeze transform
// has been absorbed into the payload itself, the anchor is reset to
// the global origin.
func (s ScaleInvariant[T]) ApplyWithFreeze(pre, post Transform) ScaleInvariant[T] {
	inner := s.ApplyTransform(post)
	outer := inner.ApplyTransform(pre)
	return ScaleInvariant[T]{
		payload: inner.payload.ApplyTransform(pre),
		dir:     outer.dir,
		loc:     Origin,
	}
}

// MoveOriginTo re-expresses the wrapper relative to a new origin p.
// The payload and the anchor move together; the direction is
// origin-invariant and stays unchanged.
func (s ScaleInvariant[T]) MoveOriginTo(p Point) ScaleInvariant[T] {
	return ScaleInvariant[T]{
		payload: s.payload.MoveOriginTo(p),
		dir:     s.dir,
		loc:     s.loc.MoveOriginTo(p),
	}
}

// Render draws the wrapped payload. The stored direction and anchor
// exist purely for transform bookkeeping and play no part in drawing.
func (s ScaleInvariant[T]) Render(r Renderer) {
	s.payload.Render(r)
}

// The wrapper satisfies the same capability contract as its payload,
// so wrappers nest.
var _ Payload[ScaleInvariant[Path]] = ScaleInvariant[Path]{}
