package geom

// Rect is an axis-aligned rectangle in canvas space, closed on all edges.
// Min holds the component-wise minimum corner, Max the maximum.
type Rect struct {
	Min Point
	Max Point
}

// RectFromCorners builds a Rect from two opposite corners in any order.
func RectFromCorners(p, q Point) Rect {
	return Rect{
		Min: Point{min(p.X(), q.X()), min(p.Y(), q.Y())},
		Max: Point{max(p.X(), q.X()), max(p.Y(), q.Y())},
	}
}

// RectFromPoint returns the degenerate Rect covering a single point.
func RectFromPoint(p Point) Rect {
	return Rect{Min: p, Max: p}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X() - r.Min.X()
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y() - r.Min.Y()
}

// Union returns the smallest Rect covering both r and other
// (component-wise min of mins, max of maxes).
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{min(r.Min.X(), other.Min.X()), min(r.Min.Y(), other.Min.Y())},
		Max: Point{max(r.Max.X(), other.Max.X()), max(r.Max.Y(), other.Max.Y())},
	}
}

// UnionPoint returns the smallest Rect covering r and the point p.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(RectFromPoint(p))
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// ContainsRect reports whether other lies fully inside r, edges included.
// Partial overlap is not containment.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X() >= r.Min.X() && other.Max.X() <= r.Max.X() &&
		other.Min.Y() >= r.Min.Y() && other.Max.Y() <= r.Max.Y()
}

// Overlaps reports whether r and other share any point, edges included.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X() <= other.Max.X() && other.Min.X() <= r.Max.X() &&
		r.Min.Y() <= other.Max.Y() && other.Min.Y() <= r.Max.Y()
}
