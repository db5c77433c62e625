// Package geom provides the 2D geometry primitives for the canvas engine:
// points in canvas space, axis-aligned rectangles, and the collision
// predicates used by the eraser.
package geom

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// Point is a position in canvas (world) space.
//
// It aliases mgl32.Vec2 so callers get vector arithmetic (Add, Sub, Dot,
// Len) without conversion at the boundary to the rendering layer.
type Point = mgl.Vec2

// Pt is a convenience constructor for a Point.
func Pt(x, y float32) Point {
	return Point{x, y}
}

// DistSq returns the squared distance between two points.
// Callers compare against squared thresholds to avoid the square root.
func DistSq(p, q Point) float32 {
	return p.Sub(q).LenSqr()
}

// cross returns the scalar 2D cross product of two vectors. Its sign gives
// the orientation of the turn from a to b.
func cross(a, b Point) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}
