// Package canvas implements the vector canvas engine: an append-only stroke
// and segment store with undo/redo history, spatial erasing, and
// bounding-box queries for culling and selection.
//
// A canvas is single-threaded by contract. One owner (the application frame
// loop) serializes every call; there is no locking inside the engine.
// Background work such as autosave operates on a Clone, never on the live
// canvas.
package canvas

import (
	"image/color"
	"slices"

	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
	"github.com/AndrewKraevskii/screen-drawer/pkg/history"
)

// Engine policy defaults. Split cap and coalescing distance bound the cost
// of bounding-box culling, not correctness; both are tunable.
const (
	DefaultMaxStrokePoints  = 50
	DefaultCoalesceDistance = 10
	DefaultEraserThickness  = 8
)

// Options holds the tunable policy knobs of a canvas.
type Options struct {
	// MaxStrokePoints caps how many points a single stroke's span may hold.
	// A stroke at the cap is split: growth continues in a successor stroke
	// with the same style. Small per-stroke bounding boxes keep viewport
	// culling and marquee tests cheap.
	MaxStrokePoints int

	// EraserThickness is the hit width around the eraser's travel path used
	// when testing single-point strokes against fast cursor motion.
	EraserThickness float32
}

// DefaultOptions returns the canvas defaults.
func DefaultOptions() Options {
	return Options{
		MaxStrokePoints: DefaultMaxStrokePoints,
		EraserThickness: DefaultEraserThickness,
	}
}

// withDefaults fills zero-valued fields with the package defaults.
func (o Options) withDefaults() Options {
	if o.MaxStrokePoints <= 0 {
		o.MaxStrokePoints = DefaultMaxStrokePoints
	}
	if o.EraserThickness <= 0 {
		o.EraserThickness = DefaultEraserThickness
	}
	return o
}

// Canvas is one drawing surface: strokes indexing into a shared append-only
// segment sequence, the history log of draw/erase actions, and the view
// state of the surrounding application.
//
// Fields are exported for rendering and persistence; treat them as
// read-only outside this package and mutate through the operations.
type Canvas struct {
	Strokes  []Stroke
	Segments []geom.Point
	History  history.Log[Event]
	Camera   Camera
	Opts     Options
}

// New returns an empty canvas with default options.
func New() *Canvas {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions returns an empty canvas with the given options;
// zero-valued fields fall back to the defaults.
func NewWithOptions(opts Options) *Canvas {
	return &Canvas{
		Camera: DefaultCamera(),
		Opts:   opts.withDefaults(),
	}
}

// StartStroke begins a new stroke with the given style and makes it
// current. The matching Drawn event is recorded before the stroke exists,
// so an immediate undo hides exactly this stroke.
func (c *Canvas) StartStroke(col color.RGBA, width float32) {
	c.History.Push(Event{Kind: EventDrawn, Stroke: len(c.Strokes)})
	c.Strokes = append(c.Strokes, Stroke{
		Active: true,
		Span:   Span{Start: len(c.Segments)},
		Color:  col,
		Width:  width,
	})
}

// AddPoint extends the current stroke with a sampled cursor position.
//
// Samples closer than minDistance to the stroke's last point overwrite it
// instead of appending (squared-distance compare), coalescing
// high-frequency input into fewer meaningful points. When the span is at
// the MaxStrokePoints cap, the stroke is split first: a successor stroke
// with the same style takes over, seeded with the closing point so the
// polyline stays continuous across the split.
//
// AddPoint panics if no stroke has been started.
func (c *Canvas) AddPoint(pos geom.Point, minDistance float32) {
	cur := c.current()

	if cur.Span.Size > 0 {
		last := &c.Segments[cur.Span.End()-1]
		if geom.DistSq(*last, pos) < minDistance*minDistance {
			*last = pos
			return
		}
	}

	if cur.Span.Size >= c.Opts.MaxStrokePoints {
		c.split()
		cur = c.current()
	}

	c.Segments = append(c.Segments, pos)
	cur.Span.Size++
}

// split closes the current stroke at its cap and starts a successor with
// the same style, seeded with a copy of the closing point.
func (c *Canvas) split() {
	prev := c.current()
	bridge := c.Segments[prev.Span.End()-1]

	c.StartStroke(prev.Color, prev.Width)
	c.Segments = append(c.Segments, bridge)
	c.current().Span.Size = 1
}

// current returns the stroke receiving points.
func (c *Canvas) current() *Stroke {
	if len(c.Strokes) == 0 {
		panic("canvas: no stroke started")
	}
	return &c.Strokes[len(c.Strokes)-1]
}

// Points returns the stroke's window into the shared segment sequence.
// The slice aliases canvas storage; callers must not modify or append.
func (c *Canvas) Points(i int) []geom.Point {
	span := c.Strokes[i].Span
	return c.Segments[span.Start:span.End():span.End()]
}

// Clone returns a deep copy sharing no mutable state with the original.
// Owners hand clones to background savers so the live canvas stays under a
// single thread.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{
		Strokes:  slices.Clone(c.Strokes),
		Segments: slices.Clone(c.Segments),
		History:  c.History.Clone(),
		Camera:   c.Camera,
		Opts:     c.Opts,
	}
}

// Stats summarizes a canvas for tooling and logs.
type Stats struct {
	Strokes       int
	ActiveStrokes int
	Segments      int
	Events        int
	Undone        int
}

// Stats counts the canvas's strokes, segments, and history entries.
func (c *Canvas) Stats() Stats {
	stats := Stats{
		Strokes:  len(c.Strokes),
		Segments: len(c.Segments),
		Events:   c.History.Len(),
		Undone:   c.History.Undone(),
	}
	for i := range c.Strokes {
		if c.Strokes[i].Active {
			stats.ActiveStrokes++
		}
	}
	return stats
}
