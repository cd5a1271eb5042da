package dia

import "github.com/google/uuid"

// Primitive is one renderable unit inside a diagram, together with its
// cached bounding summary. Each primitive carries a unique ID so that
// the surrounding system can key caches and overlays by primitive.
type Primitive struct {
	id  string
	obj Renderable
	env Envelope
}

// ID returns the primitive's unique identifier.
func (p Primitive) ID() string {
	return p.id
}

// Envelope returns the primitive's bounding summary.
func (p Primitive) Envelope() Envelope {
	return p.env
}

// Diagram is a composite of primitives. Diagrams form a monoid under
// Compose: the zero value is the empty diagram, composition appends.
// Rendering happens in composition order, first composed drawn first.
//
// Diagrams are value types; composing diagrams never mutates the
// operands, so a sub-diagram can safely be shared between several
// composition sites.
type Diagram struct {
	prims []Primitive
}

// Prim creates a diagram holding a single renderable with the given
// bounding summary.
func Prim(obj Renderable, env Envelope) Diagram {
	p := Primitive{
		id:  uuid.New().String(),
		obj: obj,
		env: env,
	}
	return Diagram{prims: []Primitive{p}}
}

// PathPrim creates a diagram holding a single path, with the path's
// own envelope.
func PathPrim(p Path) Diagram {
	return Prim(p, PathEnvelope(p))
}

// ScaleInvPrim wraps payload in a ScaleInvariant pointing along dir
// and registers it as a primitive with an empty envelope.
//
// The envelope is empty on purpose: envelopes are computed once and
// cached, but a scale-invariant object's true footprint is not known
// until final render time. Scale-invariant primitives therefore
// contribute no bounding information to their container and must not
// be used as layout anchors; they are meant for decoration only.
func ScaleInvPrim[T Payload[T]](payload T, dir Vec) Diagram {
	return Prim(NewScaleInvariant(payload, dir), EmptyEnvelope())
}

// Compose concatenates diagrams into one.
func Compose(ds ...Diagram) Diagram {
	var out Diagram
	for _, d := range ds {
		out.prims = append(out.prims, d.prims...)
	}
	return out
}

// Envelope returns the union of all primitive envelopes.
func (d Diagram) Envelope() Envelope {
	var e Envelope
	for _, p := range d.prims {
		e = e.Union(p.env)
	}
	return e
}

// Render draws all primitives in composition order.
func (d Diagram) Render(r Renderer) {
	for _, p := range d.prims {
		p.obj.Render(r)
	}
}

// NumPrims returns the number of primitives in the diagram.
func (d Diagram) NumPrims() int {
	return len(d.prims)
}

// Prims returns the diagram's primitives in composition order.
// The returned slice must not be modified.
func (d Diagram) Prims() []Primitive {
	return d.prims
}
