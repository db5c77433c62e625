package canvas

import (
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// StrokeBounds returns the axis-aligned bounding box of the stroke at
// index i, the component-wise min/max over its span. It reports false for
// a stroke with no points yet.
func (c *Canvas) StrokeBounds(i int) (geom.Rect, bool) {
	span := c.Strokes[i].Span
	if span.Size == 0 {
		return geom.Rect{}, false
	}

	rect := geom.RectFromPoint(c.Segments[span.Start])
	for _, p := range c.Segments[span.Start+1 : span.End()] {
		rect = rect.UnionPoint(p)
	}
	return rect, true
}

// Bounds returns the union of every active stroke's bounding box. It
// reports false when no active stroke has any points.
func (c *Canvas) Bounds() (geom.Rect, bool) {
	var rect geom.Rect
	found := false

	for i := range c.Strokes {
		if !c.Strokes[i].Active {
			continue
		}
		b, ok := c.StrokeBounds(i)
		if !ok {
			continue
		}
		if !found {
			rect, found = b, true
			continue
		}
		rect = rect.Union(b)
	}
	return rect, found
}

// SelectIn returns the indices of active strokes whose bounding boxes lie
// fully inside rect. Partial overlap does not select: a stroke that only
// clips the marquee edge stays out of the selection.
func (c *Canvas) SelectIn(rect geom.Rect) []int {
	var selected []int
	for i := range c.Strokes {
		if !c.Strokes[i].Active {
			continue
		}
		b, ok := c.StrokeBounds(i)
		if ok && rect.ContainsRect(b) {
			selected = append(selected, i)
		}
	}
	return selected
}

// VisibleIn returns the indices of active strokes whose bounding boxes
// overlap the viewport. Renderers cull everything else before drawing.
func (c *Canvas) VisibleIn(viewport geom.Rect) []int {
	var visible []int
	for i := range c.Strokes {
		if !c.Strokes[i].Active {
			continue
		}
		b, ok := c.StrokeBounds(i)
		if ok && viewport.Overlaps(b) {
			visible = append(visible, i)
		}
	}
	return visible
}
