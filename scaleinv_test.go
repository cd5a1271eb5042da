package dia

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// approxPath compares two paths point by point with a tolerance.
func approxPath(t *testing.T, got, want Path) {
	t.Helper()
	gp, wp := got.Points(), want.Points()
	if len(gp) != len(wp) {
		t.Fatalf("unexpected number of points: %v != %v", len(gp), len(wp))
	}
	if got.Closed() != want.Closed() {
		t.Fatalf("unexpected closed flag: %v != %v", got.Closed(), want.Closed())
	}
	for i := range gp {
		if !approxPoint(gp[i], wp[i]) {
			t.Errorf("unexpected point %v: %v != %v", i, gp[i], wp[i])
		}
	}
}

func TestScaleInvariantIdentity(t *testing.T) {
	w := NewScaleInvariantAt(Line(Pt(2, 1), Pt(3, 1)), Vec{1, 0}, Pt(2, 1))
	got := w.ApplyTransform(Identity())

	if got.Direction() != w.Direction() {
		t.Errorf("identity changed the direction: %v", got.Direction())
	}
	if got.Location() != w.Location() {
		t.Errorf("identity changed the location: %v", got.Location())
	}
	approxPath(t, got.Payload(), w.Payload().ApplyTransform(Identity()))
}

// A pure rotation about the global origin must hit the payload exactly
// like it would hit an unwrapped object: the rotate-about-anchor and
// translate components recombine to the original rotation.
func TestScaleInvariantPureRotation(t *testing.T) {
	payload := Line(Pt(2, 1), Pt(3, 1))
	w := NewScaleInvariantAt(payload, Vec{1, 0}, Pt(2, 1))

	rot := Rotation(Deg(90))
	got := w.ApplyTransform(rot)

	approxPath(t, got.Payload(), payload.ApplyTransform(rot))

	if !approxPoint(got.Location(), rot.ApplyPoint(Pt(2, 1))) {
		t.Errorf("unexpected location: %v", got.Location())
	}

	gotAngle := DirectionOf(got.Direction()).Angle().Degrees()
	if !approx(gotAngle, 90) {
		t.Errorf("unexpected direction angle: %v != 90", gotAngle)
	}
}

// A rotation about the stored anchor itself turns the payload in place.
func TestScaleInvariantRotationAboutAnchor(t *testing.T) {
	anchor := Pt(2, 1)
	payload := Line(anchor, Pt(3, 1))
	w := NewScaleInvariantAt(payload, Vec{1, 0}, anchor)

	got := w.ApplyTransform(RotationAbout(anchor, Deg(90)))

	if !approxPoint(got.Location(), anchor) {
		t.Errorf("anchor moved: %v", got.Location())
	}
	approxPath(t, got.Payload(), NewPath(anchor, Pt(2, 2)))
}

func TestScaleInvariantPureTranslation(t *testing.T) {
	payload := Line(Pt(2, 1), Pt(3, 1))
	w := NewScaleInvariantAt(payload, Vec{1, 0}, Pt(2, 1))

	delta := Vec{5, -2}
	got := w.ApplyTransform(Translation(delta))

	if got.Direction() != w.Direction() {
		t.Errorf("translation changed the direction: %v", got.Direction())
	}
	if got.Location() != Pt(7, -1) {
		t.Errorf("unexpected location: %v", got.Location())
	}
	approxPath(t, got.Payload(), payload.ApplyTransform(Translation(delta)))
}

// The defining property: a non-uniform scale along the stored direction
// leaves the payload completely untouched.
func TestScaleInvariantNonUniformScale(t *testing.T) {
	payload := Line(Origin, Pt(1, 0))
	w := NewScaleInvariant(payload, Vec{1, 0})

	got := w.ApplyTransform(Scaling(2, 1))

	// the X axis is an eigenvector of this scale: angle unchanged
	gotAngle := DirectionOf(got.Direction()).Angle().Degrees()
	if !approx(gotAngle, 0) {
		t.Errorf("unexpected direction angle: %v != 0", gotAngle)
	}
	if got.Location() != Origin {
		t.Errorf("unexpected location: %v", got.Location())
	}
	// payload shape and position must be exactly as before
	approxPath(t, got.Payload(), payload)
}

// A scale off the direction axis still never distorts the payload: only
// the induced rotation and the anchor displacement reach it.
func TestScaleInvariantScalePreservesShape(t *testing.T) {
	payload := Arrowhead(2).ApplyTransform(Translation(Vec{3, 3}))
	w := NewScaleInvariantAt(payload, Vec{1, 1}, Pt(3, 3))

	got := w.ApplyTransform(Scaling(4, 1))

	// side lengths are invariant under rotation + translation
	gp := got.Payload().Points()
	pp := payload.Points()
	for i := range pp {
		j := (i + 1) % len(pp)
		want := pp[j].Sub(pp[i]).Len()
		have := gp[j].Sub(gp[i]).Len()
		if !approx(want, have) {
			t.Errorf("side %v changed length: %v != %v", i, have, want)
		}
	}

	// while the anchor follows the full transform
	if !approxPoint(got.Location(), Pt(12, 3)) {
		t.Errorf("unexpected location: %v", got.Location())
	}
}

func TestScaleInvariantFreeze(t *testing.T) {
	payload := Line(Pt(2, 1), Pt(3, 1))
	w := NewScaleInvariantAt(payload, Vec{1, 0}, Pt(2, 1))

	// pre is the transform accumulated before the freeze boundary,
	// post is the one appended after it
	pre := Scaling(3, 3)
	post := Rotation(Deg(90))

	got := w.ApplyWithFreeze(pre, post)

	// the payload takes the post transform scale-free, then the pre
	// transform directly, scale included
	inner := w.ApplyTransform(post)
	approxPath(t, got.Payload(), inner.Payload().ApplyTransform(pre))
	approxPath(t, got.Payload(), NewPath(Pt(-3, 6), Pt(-3, 9)))

	// bookkeeping tracks the scale-free interpretation of both
	if !approxVec(got.Direction(), Vec{0, 3}) {
		t.Errorf("unexpected direction: %v", got.Direction())
	}
	if got.Location() != Origin {
		t.Errorf("location must reset to the origin after a freeze: %v", got.Location())
	}
}

func TestScaleInvariantMoveOrigin(t *testing.T) {
	w := NewScaleInvariantAt(Line(Pt(2, 1), Pt(3, 1)), Vec{1, 0}, Pt(2, 1))

	got := w.MoveOriginTo(Pt(1, 1))

	// direction is origin-invariant
	if got.Direction() != w.Direction() {
		t.Errorf("re-anchoring changed the direction: %v", got.Direction())
	}
	if got.Location() != Pt(1, 0) {
		t.Errorf("unexpected location: %v", got.Location())
	}
	approxPath(t, got.Payload(), NewPath(Pt(1, 0), Pt(2, 0)))
}

// Rotations beyond a half turn flip the sign of the measured angle
// difference because direction angles live in (-180, 180]. For the
// payload this makes no difference: a rotation by -135 degrees is the
// same rotation as one by +225 degrees.
func TestScaleInvariantLargeRotation(t *testing.T) {
	payload := Line(Origin, Pt(1, 0))
	w := NewScaleInvariant(payload, Vec{1, 0})

	got := w.ApplyTransform(Rotation(Deg(225)))
	approxPath(t, got.Payload(), payload.ApplyTransform(Rotation(Deg(-135))))
}

type recordRenderer struct {
	paths []Path
}

func (r *recordRenderer) Path(p Path) {
	r.paths = append(r.paths, p)
}

func TestScaleInvariantRenderDelegation(t *testing.T) {
	payload := Arrowhead(4)
	w := NewScaleInvariantAt(payload, Vec{0, 1}, Pt(9, 9))

	var direct, wrapped recordRenderer
	payload.Render(&direct)
	w.Render(&wrapped)

	diff := cmp.Diff(direct.paths, wrapped.paths, cmp.AllowUnexported(Path{}))
	if diff != "" {
		t.Errorf("wrapper render differs from payload render:\n%v", diff)
	}
}
