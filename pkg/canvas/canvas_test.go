package canvas_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

var red = color.RGBA{R: 255, A: 255}

func TestStartStrokeRecordsDrawnEvent(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)

	if len(c.Strokes) != 1 {
		t.Fatalf("strokes = %d, want 1", len(c.Strokes))
	}
	stroke := c.Strokes[0]
	if !stroke.Active {
		t.Error("new stroke must be active")
	}
	if stroke.Span != (canvas.Span{Start: 0, Size: 0}) {
		t.Errorf("span = %+v, want {0 0}", stroke.Span)
	}
	if stroke.Color != red || stroke.Width != 4 {
		t.Errorf("style = %v/%v, want %v/4", stroke.Color, stroke.Width, red)
	}

	events := c.History.Events()
	if len(events) != 1 || events[0] != (canvas.Event{Kind: canvas.EventDrawn, Stroke: 0}) {
		t.Errorf("history = %+v, want [Drawn(0)]", events)
	}
}

func TestAddPointBuildsSpan(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)
	c.AddPoint(geom.Pt(0, 0), 10)
	c.AddPoint(geom.Pt(100, 0), 10)
	c.AddPoint(geom.Pt(100, 100), 10)

	if len(c.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(c.Segments))
	}
	if got := c.Strokes[0].Span; got != (canvas.Span{Start: 0, Size: 3}) {
		t.Errorf("span = %+v, want {0 3}", got)
	}
	if c.History.Len() != 1 {
		t.Errorf("history len = %d, want 1", c.History.Len())
	}

	want := []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100)}
	points := c.Points(0)
	for i, p := range want {
		if points[i] != p {
			t.Errorf("point %d = %v, want %v", i, points[i], p)
		}
	}
}

func TestAddPointCoalescesNearSamples(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)
	c.AddPoint(geom.Pt(0, 0), 10)
	c.AddPoint(geom.Pt(3, 4), 10)

	if len(c.Segments) != 1 {
		t.Fatalf("segments = %d, want 1 (near sample coalesced)", len(c.Segments))
	}
	if c.Segments[0] != geom.Pt(3, 4) {
		t.Errorf("last point = %v, want overwritten to (3,4)", c.Segments[0])
	}

	c.AddPoint(geom.Pt(20, 0), 10)
	if len(c.Segments) != 2 || c.Strokes[0].Span.Size != 2 {
		t.Errorf("segments/span = %d/%d, want 2/2 after a far sample",
			len(c.Segments), c.Strokes[0].Span.Size)
	}
}

func TestAddPointSplitsAtCap(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)
	for i := 0; i < canvas.DefaultMaxStrokePoints; i++ {
		c.AddPoint(geom.Pt(float32(i)*20, 0), 10)
	}

	if len(c.Strokes) != 1 {
		t.Fatalf("strokes = %d before overflow, want 1", len(c.Strokes))
	}

	c.AddPoint(geom.Pt(1000, 0), 10)

	if len(c.Strokes) != 2 {
		t.Fatalf("strokes = %d after overflow, want 2", len(c.Strokes))
	}

	first, second := c.Strokes[0], c.Strokes[1]
	if first.Span.Size != canvas.DefaultMaxStrokePoints {
		t.Errorf("first span size = %d, want %d", first.Span.Size, canvas.DefaultMaxStrokePoints)
	}
	if second.Span != (canvas.Span{Start: 50, Size: 2}) {
		t.Errorf("second span = %+v, want {50 2}", second.Span)
	}
	if second.Color != first.Color || second.Width != first.Width {
		t.Error("successor stroke must keep the style")
	}

	// The successor starts with a copy of the closing point, keeping the
	// polyline continuous across the split.
	if c.Segments[first.Span.End()-1] != c.Segments[second.Span.Start] {
		t.Error("successor must begin at the previous stroke's last point")
	}

	events := c.History.Events()
	if len(events) != 2 || events[1] != (canvas.Event{Kind: canvas.EventDrawn, Stroke: 1}) {
		t.Errorf("history = %+v, want [Drawn(0) Drawn(1)]", events)
	}
}

func TestAddPointWithoutStrokePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("AddPoint on a canvas with no strokes must panic")
		}
	}()

	c := canvas.New()
	c.AddPoint(geom.Pt(0, 0), 10)
}

func TestSpanInvariantHolds(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	for s := 0; s < 5; s++ {
		c.StartStroke(red, 2)
		for i := 0; i < 70; i++ {
			c.AddPoint(geom.Pt(float32(i*15), float32(s*40)), 10)
		}
		c.Erase(geom.Pt(-50, float32(s*40)), geom.Pt(-40, float32(s*40)), 5)
	}
	c.Undo()
	c.Redo()
	c.StartStroke(red, 2)

	if err := c.ValidateSpans(); err != nil {
		t.Errorf("span invariant violated: %v", err)
	}
}

func TestUndoRedoFlipsVisibility(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)
	c.AddPoint(geom.Pt(0, 0), 10)

	event, ok := c.Undo()
	if !ok || event != (canvas.Event{Kind: canvas.EventDrawn, Stroke: 0}) {
		t.Fatalf("undo = %+v/%v, want Drawn(0)/true", event, ok)
	}
	if c.Strokes[0].Active {
		t.Error("undoing a draw must hide the stroke")
	}
	if c.History.Undone() != 1 {
		t.Errorf("undone = %d, want 1", c.History.Undone())
	}

	event, ok = c.Redo()
	if !ok || event != (canvas.Event{Kind: canvas.EventDrawn, Stroke: 0}) {
		t.Fatalf("redo = %+v/%v, want Drawn(0)/true", event, ok)
	}
	if !c.Strokes[0].Active {
		t.Error("redoing a draw must show the stroke again")
	}
}

func TestUndoOnEmptyCanvas(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	if _, ok := c.Undo(); ok {
		t.Error("undo on an empty canvas must report false")
	}
	if _, ok := c.Redo(); ok {
		t.Error("redo on an empty canvas must report false")
	}
}

func TestNewEditInvalidatesRedo(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)
	c.AddPoint(geom.Pt(0, 0), 10)
	c.StartStroke(red, 4)
	c.AddPoint(geom.Pt(50, 50), 10)

	c.Undo()
	if c.Strokes[1].Active {
		t.Fatal("undo must hide the second stroke")
	}

	c.StartStroke(red, 4)

	if _, ok := c.Redo(); ok {
		t.Error("redo after a new edit must report false")
	}
	if c.Strokes[1].Active {
		t.Error("the orphaned stroke stays hidden")
	}
	// The stroke data itself is never deleted, only unreachable via history.
	if len(c.Strokes) != 3 {
		t.Errorf("strokes = %d, want 3", len(c.Strokes))
	}
	if c.History.Len() != 2 {
		t.Errorf("history len = %d, want 2 (suffix discarded, new draw appended)", c.History.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)
	c.AddPoint(geom.Pt(0, 0), 10)
	c.AddPoint(geom.Pt(100, 0), 10)

	clone := c.Clone()

	c.AddPoint(geom.Pt(200, 0), 10)
	c.StartStroke(red, 2)

	if len(clone.Segments) != 2 {
		t.Errorf("clone segments = %d, want 2 (unchanged by original's edits)", len(clone.Segments))
	}
	if len(clone.Strokes) != 1 {
		t.Errorf("clone strokes = %d, want 1", len(clone.Strokes))
	}

	clone.Erase(geom.Pt(0, -10), geom.Pt(0, 10), 5)
	if !c.Strokes[0].Active {
		t.Error("erase on the clone must not touch the original")
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	c := canvas.New()
	c.StartStroke(red, 4)
	c.AddPoint(geom.Pt(0, 0), 10)
	c.AddPoint(geom.Pt(100, 0), 10)
	c.StartStroke(red, 2)
	c.AddPoint(geom.Pt(0, 50), 10)
	c.Erase(geom.Pt(0, 40), geom.Pt(0, 60), 15)
	c.Undo()

	got := c.Stats()
	want := canvas.Stats{
		Strokes:       2,
		ActiveStrokes: 2,
		Segments:      3,
		Events:        3,
		Undone:        1,
	}
	if got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
}

func TestValidateSpans(t *testing.T) {
	t.Parallel()

	t.Run("valid canvas", func(t *testing.T) {
		t.Parallel()

		c := canvas.New()
		c.StartStroke(red, 4)
		c.AddPoint(geom.Pt(0, 0), 10)
		if err := c.ValidateSpans(); err != nil {
			t.Errorf("ValidateSpans: %v", err)
		}
	})

	t.Run("span past the end", func(t *testing.T) {
		t.Parallel()

		c := canvas.New()
		c.Segments = []geom.Point{geom.Pt(0, 0)}
		c.Strokes = []canvas.Stroke{{Active: true, Span: canvas.Span{Start: 0, Size: 2}}}

		if err := c.ValidateSpans(); !errors.Is(err, canvas.ErrSpanOutOfRange) {
			t.Errorf("err = %v, want ErrSpanOutOfRange", err)
		}
	})

	t.Run("inactive strokes are checked too", func(t *testing.T) {
		t.Parallel()

		c := canvas.New()
		c.Strokes = []canvas.Stroke{{Active: false, Span: canvas.Span{Start: 5, Size: 1}}}

		if err := c.ValidateSpans(); !errors.Is(err, canvas.ErrSpanOutOfRange) {
			t.Errorf("err = %v, want ErrSpanOutOfRange", err)
		}
	})
}
