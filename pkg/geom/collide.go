package geom

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// SegmentDistSq returns the squared distance from p to the closest point on
// the segment ab. A degenerate segment (a == b) falls back to point distance.
func SegmentDistSq(p, a, b Point) float32 {
	ab := b.Sub(a)
	denom := ab.LenSqr()
	if denom == 0 {
		return DistSq(p, a)
	}
	t := mgl.Clamp(p.Sub(a).Dot(ab)/denom, 0, 1)
	return DistSq(p, a.Add(ab.Mul(t)))
}

// DiskHitsPoint reports whether p lies within the disk of the given radius
// centered at center.
func DiskHitsPoint(center Point, radius float32, p Point) bool {
	return DistSq(center, p) <= radius*radius
}

// DiskHitsSegment reports whether the disk of the given radius centered at
// center touches the segment ab.
func DiskHitsSegment(center Point, radius float32, a, b Point) bool {
	return SegmentDistSq(center, a, b) <= radius*radius
}

// SegmentsCross reports whether the segments p1p2 and q1q2 intersect.
// Collinear touch counts as a hit: the eraser must not pass through a
// stroke it grazes exactly.
func SegmentsCross(p1, p2, q1, q2 Point) bool {
	d1 := cross(q2.Sub(q1), p1.Sub(q1))
	d2 := cross(q2.Sub(q1), p2.Sub(q1))
	d3 := cross(p2.Sub(p1), q1.Sub(p1))
	d4 := cross(p2.Sub(p1), q2.Sub(p1))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

// onSegment reports whether p, already known to be collinear with ab, lies
// within the segment's bounding box.
func onSegment(a, b, p Point) bool {
	return p.X() >= min(a.X(), b.X()) && p.X() <= max(a.X(), b.X()) &&
		p.Y() >= min(a.Y(), b.Y()) && p.Y() <= max(a.Y(), b.Y())
}
