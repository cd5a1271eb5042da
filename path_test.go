package dia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	err := NewPath().Validate()
	if err == nil {
		t.Errorf("empty path should not be valid")
	}
	if !IsValidationError(err) {
		t.Errorf("expected a validation error, got %v", err)
	}

	err = Line(Origin, Pt(1, 1)).Validate()
	if err != nil {
		t.Errorf("a line should be valid: %v", err)
	}

	err = Line(Origin, Pt(1, 1)).Close().Validate()
	if err == nil {
		t.Errorf("a closed path with two points should not be valid")
	}

	err = Arrowhead(10).Validate()
	if err != nil {
		t.Errorf("an arrowhead should be valid: %v", err)
	}
}

func TestPathTransform(t *testing.T) {
	p := Line(Origin, Pt(1, 0))
	q := p.ApplyTransform(Translation(Vec{0, 2}))

	assert.Equal(t, []Point{Pt(0, 2), Pt(1, 2)}, q.Points())

	// the original path is untouched
	assert.Equal(t, []Point{Origin, Pt(1, 0)}, p.Points())
}

func TestPathMoveOrigin(t *testing.T) {
	p := Rect(Pt(2, 2), Pt(4, 4)).MoveOriginTo(Pt(2, 2))

	assert.Equal(t, []Point{Origin, Pt(2, 0), Pt(2, 2), Pt(0, 2)}, p.Points())
	assert.True(t, p.Closed())
}

func TestArrowhead(t *testing.T) {
	a := Arrowhead(10)

	assert.True(t, a.Closed())
	pts := a.Points()
	assert.Len(t, pts, 3)

	// tip at the origin, pointing along +X
	assert.Equal(t, Origin, pts[0])
	for _, p := range pts[1:] {
		if p.X >= 0 {
			t.Errorf("arrowhead body should lie behind the tip: %v", p)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect(Pt(1, 1), Pt(3, 2))

	assert.True(t, r.Closed())
	assert.Equal(t, []Point{Pt(1, 1), Pt(3, 1), Pt(3, 2), Pt(1, 2)}, r.Points())
}
