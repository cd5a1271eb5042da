package dia

import "math"

// Envelope is the axis-aligned bounding summary of a diagram fragment.
// The zero value is the empty envelope, which bounds nothing and is
// the identity of Union.
//
// Scale-invariant primitives deliberately report an empty envelope:
// their true footprint depends on which transforms land before or
// after a freeze boundary and cannot be cached (see ScaleInvPrim).
type Envelope struct {
	set      bool
	min, max Point
}

// EmptyEnvelope returns the envelope that bounds nothing.
func EmptyEnvelope() Envelope {
	return Envelope{}
}

// EnvelopeOf returns the smallest envelope containing all given points.
func EnvelopeOf(pts ...Point) Envelope {
	var e Envelope
	for _, p := range pts {
		e = e.stretch(p)
	}
	return e
}

// Empty reports whether the envelope bounds nothing.
func (e Envelope) Empty() bool {
	return !e.set
}

// Min returns the lower-left corner. Only meaningful when not empty.
func (e Envelope) Min() Point {
	return e.min
}

// Max returns the upper-right corner. Only meaningful when not empty.
func (e Envelope) Max() Point {
	return e.max
}

// Width returns the horizontal extent, 0 for the empty envelope.
func (e Envelope) Width() float64 {
	if !e.set {
		return 0
	}
	return e.max.X - e.min.X
}

// Height returns the vertical extent, 0 for the empty envelope.
func (e Envelope) Height() float64 {
	if !e.set {
		return 0
	}
	return e.max.Y - e.min.Y
}

// Union returns the smallest envelope containing both e and o.
// The empty envelope is the identity.
func (e Envelope) Union(o Envelope) Envelope {
	if !e.set {
		return o
	}
	if !o.set {
		return e
	}
	return Envelope{
		set: true,
		min: Pt(math.Min(e.min.X, o.min.X), math.Min(e.min.Y, o.min.Y)),
		max: Pt(math.Max(e.max.X, o.max.X), math.Max(e.max.Y, o.max.Y)),
	}
}

func (e Envelope) stretch(p Point) Envelope {
	if !e.set {
		return Envelope{set: true, min: p, max: p}
	}
	return Envelope{
		set: true,
		min: Pt(math.Min(e.min.X, p.X), math.Min(e.min.Y, p.Y)),
		max: Pt(math.Max(e.max.X, p.X), math.Max(e.max.Y, p.Y)),
	}
}

// PathEnvelope returns the envelope of a path's points.
func PathEnvelope(p Path) Envelope {
	return EnvelopeOf(p.Points()...)
}
