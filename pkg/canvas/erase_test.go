package canvas_test

import (
	"testing"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// drawLine starts a stroke and adds each point with a coalescing distance
// small enough to keep them all.
func drawLine(c *canvas.Canvas, points ...geom.Point) {
	c.StartStroke(red, 4)
	for _, p := range points {
		c.AddPoint(p, 1)
	}
}

func TestEraseByDiskContact(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	drawLine(c, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))

	c.Erase(geom.Pt(100, 0), geom.Pt(100, 100), 5)

	if c.Strokes[0].Active {
		t.Error("touched stroke must be deactivated")
	}
	events := c.History.Events()
	if len(events) != 2 || events[1] != (canvas.Event{Kind: canvas.EventErased, Stroke: 0}) {
		t.Errorf("history = %+v, want [Drawn(0) Erased(0)]", events)
	}
	if c.History.Undone() != 0 {
		t.Errorf("undone = %d, want 0", c.History.Undone())
	}
}

func TestEraseAtomicity(t *testing.T) {
	t.Parallel()

	// A long stroke; the eraser touches only its middle segment.
	c := canvas.New()
	drawLine(c,
		geom.Pt(0, 0), geom.Pt(50, 0), geom.Pt(100, 0),
		geom.Pt(150, 0), geom.Pt(200, 0))

	c.Erase(geom.Pt(75, 30), geom.Pt(75, 3), 5)

	if c.Strokes[0].Active {
		t.Error("a single touched segment must deactivate the entire stroke")
	}
	if got := c.History.Len(); got != 2 {
		t.Errorf("history len = %d, want 2 (one Erased event per stroke)", got)
	}
}

func TestEraseByTravelPathCrossing(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	drawLine(c, geom.Pt(0, 0), geom.Pt(10, 0))

	// The cursor jumped across the stroke between frames; the disk itself
	// never comes near.
	c.Erase(geom.Pt(5, -50), geom.Pt(5, 50), 1)

	if c.Strokes[0].Active {
		t.Error("fast travel across a stroke must still erase it")
	}
}

func TestEraseMissesDistantStroke(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	drawLine(c, geom.Pt(0, 0), geom.Pt(10, 0))

	c.Erase(geom.Pt(0, 100), geom.Pt(10, 100), 5)

	if !c.Strokes[0].Active {
		t.Error("distant stroke must stay active")
	}
	if c.History.Len() != 1 {
		t.Errorf("history len = %d, want 1 (no Erased event)", c.History.Len())
	}
}

func TestEraseSinglePointStroke(t *testing.T) {
	t.Parallel()

	t.Run("disk contact", func(t *testing.T) {
		t.Parallel()

		c := canvas.New()
		drawLine(c, geom.Pt(5, 5))
		c.Erase(geom.Pt(0, 8), geom.Pt(5, 8), 5)

		if c.Strokes[0].Active {
			t.Error("point within the eraser disk must be erased")
		}
	})

	t.Run("travel path proximity", func(t *testing.T) {
		t.Parallel()

		c := canvas.New()
		drawLine(c, geom.Pt(5, 5))
		// Disk misses at both samples, but the travel path passes within
		// the eraser thickness of the point.
		c.Erase(geom.Pt(-20, 5), geom.Pt(30, 5), 1)

		if c.Strokes[0].Active {
			t.Error("point near the travel path must be erased")
		}
	})

	t.Run("out of reach", func(t *testing.T) {
		t.Parallel()

		c := canvas.New()
		drawLine(c, geom.Pt(5, 50))
		c.Erase(geom.Pt(-20, 5), geom.Pt(30, 5), 1)

		if !c.Strokes[0].Active {
			t.Error("point beyond disk and travel thickness must stay active")
		}
	})
}

func TestEraseSkipsInactiveStrokes(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	drawLine(c, geom.Pt(0, 0), geom.Pt(10, 0))

	c.Erase(geom.Pt(5, -5), geom.Pt(5, 5), 2)
	c.Erase(geom.Pt(5, -5), geom.Pt(5, 5), 2)

	if got := c.History.Len(); got != 2 {
		t.Errorf("history len = %d, want 2 (second erase must not re-erase)", got)
	}
}

func TestEraseMultipleStrokes(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	drawLine(c, geom.Pt(0, 10), geom.Pt(100, 10))
	drawLine(c, geom.Pt(0, 20), geom.Pt(100, 20))
	drawLine(c, geom.Pt(0, 200), geom.Pt(100, 200))

	// One swipe down through the first two strokes.
	c.Erase(geom.Pt(50, 0), geom.Pt(50, 30), 2)

	if c.Strokes[0].Active || c.Strokes[1].Active {
		t.Error("both crossed strokes must be deactivated")
	}
	if !c.Strokes[2].Active {
		t.Error("stroke outside the swipe must stay active")
	}
	if got := c.History.Len(); got != 5 {
		t.Errorf("history len = %d, want 5 (three draws + two erases)", got)
	}
}

func TestEraseUndoRedoRoundTrip(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	drawLine(c, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))
	c.Erase(geom.Pt(100, 0), geom.Pt(100, 100), 5)

	event, ok := c.Undo()
	if !ok || event != (canvas.Event{Kind: canvas.EventErased, Stroke: 0}) {
		t.Fatalf("undo = %+v/%v, want Erased(0)/true", event, ok)
	}
	if !c.Strokes[0].Active {
		t.Error("undoing an erase must restore the stroke")
	}
	if c.History.Undone() != 1 {
		t.Errorf("undone = %d, want 1", c.History.Undone())
	}

	event, ok = c.Redo()
	if !ok || event != (canvas.Event{Kind: canvas.EventErased, Stroke: 0}) {
		t.Fatalf("redo = %+v/%v, want Erased(0)/true", event, ok)
	}
	if c.Strokes[0].Active {
		t.Error("redoing an erase must hide the stroke again")
	}
}

func TestEraseOnEmptyCanvas(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.Erase(geom.Pt(0, 0), geom.Pt(10, 10), 5)

	if c.History.Len() != 0 {
		t.Errorf("history len = %d, want 0", c.History.Len())
	}
}
