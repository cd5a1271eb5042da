package dia

// Renderer is the drawing capability supplied by a rendering backend
// (see pkg/render). The geometric core never draws by itself; it hands
// concrete shapes to a Renderer.
type Renderer interface {
	// Path draws a polyline, filled if the path is closed.
	Path(Path)
}

// Renderable is anything that can draw itself through a Renderer.
type Renderable interface {
	Render(Renderer)
}

// Path is an open polyline or a closed polygon, the one concrete shape
// type of the core. Paths are value types: transforming a path returns
// a new path and leaves the original untouched.
type Path struct {
	pts    []Point
	closed bool
}

// NewPath creates an open path through the given points.
func NewPath(pts ...Point) Path {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Path{pts: cp}
}

// Close returns the path as a closed polygon.
func (p Path) Close() Path {
	q := p.clone()
	q.closed = true
	return q
}

// Closed reports whether the path is a closed polygon.
func (p Path) Closed() bool {
	return p.closed
}

// Points returns the path's points in drawing order.
// The returned slice must not be modified.
func (p Path) Points() []Point {
	return p.pts
}

// Validate checks that the path describes a drawable shape.
func (p Path) Validate() error {
	if len(p.pts) < 2 {
		return NewValidationError("path needs at least two points, has %v", len(p.pts))
	}
	if p.closed && len(p.pts) < 3 {
		return NewValidationError("closed path needs at least three points, has %v", len(p.pts))
	}
	return nil
}

// ApplyTransform returns the path with every point mapped through t.
func (p Path) ApplyTransform(t Transform) Path {
	q := p.clone()
	for i, pt := range q.pts {
		q.pts[i] = t.ApplyPoint(pt)
	}
	return q
}

// MoveOriginTo re-expresses every point of the path relative to the
// new origin o.
func (p Path) MoveOriginTo(o Point) Path {
	q := p.clone()
	for i, pt := range q.pts {
		q.pts[i] = pt.MoveOriginTo(o)
	}
	return q
}

// Render draws the path.
func (p Path) Render(r Renderer) {
	r.Path(p)
}

func (p Path) clone() Path {
	cp := make([]Point, len(p.pts))
	copy(cp, p.pts)
	return Path{pts: cp, closed: p.closed}
}

var _ Payload[Path] = Path{}

// Arrowhead returns the canonical decoration shape: a closed triangle
// of the given size with its tip at the origin, pointing along the
// positive X axis. Wrap it in a ScaleInvariant to keep it undistorted
// under non-uniform scaling of the surrounding diagram.
func Arrowhead(size float64) Path {
	return NewPath(
		Pt(0, 0),
		Pt(-size, size/2),
		Pt(-size, -size/2),
	).Close()
}

// Line returns the open path from a to b.
func Line(a, b Point) Path {
	return NewPath(a, b)
}

// Rect returns the closed axis-aligned rectangle spanned by two
// opposite corners.
func Rect(a, b Point) Path {
	return NewPath(
		a,
		Pt(b.X, a.Y),
		b,
		Pt(a.X, b.Y),
	).Close()
}
