package canvas

import (
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// Erase deactivates every active stroke the eraser touched this frame.
//
// The eraser is a disk of the given radius at to; from is where it was on
// the previous frame. Each consecutive segment pair of a stroke is tested
// against two predicates: the disk itself, and the travel path from→to.
// The travel test is what keeps fast cursor motion from skipping over thin
// strokes between two samples.
//
// A stroke erases atomically: the first hit deactivates the whole stroke,
// records one Erased event, and ends the scan of that stroke.
func (c *Canvas) Erase(from, to geom.Point, radius float32) {
	for i := range c.Strokes {
		stroke := &c.Strokes[i]
		if !stroke.Active {
			continue
		}
		if c.spanHit(stroke.Span, from, to, radius) {
			stroke.Active = false
			c.History.Push(Event{Kind: EventErased, Stroke: i})
		}
	}
}

// spanHit reports whether the eraser's position or travel path touches any
// segment window of the span.
func (c *Canvas) spanHit(span Span, from, to geom.Point, radius float32) bool {
	if span.Size == 0 {
		return false
	}

	if span.Size == 1 {
		p := c.Segments[span.Start]
		if geom.DiskHitsPoint(to, radius, p) {
			return true
		}
		thickness := c.Opts.EraserThickness
		return geom.SegmentDistSq(p, from, to) <= thickness*thickness
	}

	for i := span.Start; i+1 < span.End(); i++ {
		a, b := c.Segments[i], c.Segments[i+1]
		if geom.DiskHitsSegment(to, radius, a, b) {
			return true
		}
		if geom.SegmentsCross(from, to, a, b) {
			return true
		}
	}
	return false
}
