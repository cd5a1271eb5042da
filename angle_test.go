package dia

import (
	"math"
	"testing"
)

func TestAngleUnits(t *testing.T) {
	a := Deg(180)
	if !approx(a.Radians(), math.Pi) {
		t.Errorf("unexpected radians for 180 deg: %v", a.Radians())
	}
	if !approx(a.Degrees(), 180) {
		t.Errorf("unexpected degrees: %v", a.Degrees())
	}

	b := Turns(0.25)
	if !approx(b.Radians(), math.Pi/2) {
		t.Errorf("unexpected radians for quarter turn: %v", b.Radians())
	}

	if Rad(1.5).Radians() != 1.5 {
		t.Errorf("Rad should store the value unchanged")
	}
}

// Subtraction must stay unwrapped: the decomposition algorithm relies
// on the exact signed difference, not its value modulo a full turn.
func TestAngleSubUnwrapped(t *testing.T) {
	a := Deg(350)
	b := Deg(10)

	d := a.Sub(b)
	if !approx(d.Degrees(), 340) {
		t.Errorf("unexpected difference: %v != 340", d.Degrees())
	}

	d = b.Sub(a)
	if !approx(d.Degrees(), -340) {
		t.Errorf("unexpected difference: %v != -340", d.Degrees())
	}
}

func TestAngleNormalized(t *testing.T) {
	cases := []struct {
		in, want float64 // degrees
	}{
		{0, 0},
		{90, 90},
		{450, 90},
		{-90, 270},
		{-340, 20},
	}
	for _, c := range cases {
		got := Deg(c.in).Normalized().Degrees()
		if !approx(got, c.want) {
			t.Errorf("unexpected normalized angle for %v: %v != %v", c.in, got, c.want)
		}
	}

	if Turns(1).Normalized() != 0 {
		t.Errorf("a full turn should normalize to zero: %v", Turns(1).Normalized())
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
