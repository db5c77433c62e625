package analysis

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Analyze transforms a canvas into a Report.
// It performs a single pass over the strokes to compute all views.
// A nil canvas yields an empty report.
func Analyze(c *canvas.Canvas, opts Options) *Report {
	report := &Report{
		Path:          opts.Path,
		FileSize:      opts.FileSize,
		FormatVersion: opts.FormatVersion,
		Version:       ReportVersion,
		Timestamp:     time.Now(),
	}

	if c == nil {
		return report
	}

	stats := c.Stats()
	report.Totals = Totals{
		Strokes:       stats.Strokes,
		ActiveStrokes: stats.ActiveStrokes,
		ErasedStrokes: stats.Strokes - stats.ActiveStrokes,
		Segments:      stats.Segments,
		Events:        stats.Events,
		Undone:        stats.Undone,
	}
	report.Camera = CameraState{
		Zoom:     c.Camera.Zoom,
		Target:   PointEntry{X: c.Camera.Target.X(), Y: c.Camera.Target.Y()},
		Offset:   PointEntry{X: c.Camera.Offset.X(), Y: c.Camera.Offset.Y()},
		Rotation: c.Camera.Rotation,
	}

	byColor := make(map[string]*ColorAnalysis)

	for i := range c.Strokes {
		entry := strokeEntry(c, i)
		if entry.Active {
			report.Totals.InkLength += entry.Length
		}

		ca, ok := byColor[entry.Color]
		if !ok {
			ca = &ColorAnalysis{Color: entry.Color}
			byColor[entry.Color] = ca
		}
		ca.Strokes++
		if entry.Active {
			ca.ActiveStrokes++
		}
		ca.Points += entry.Points
		ca.Length += entry.Length
		ca.StrokeIndexes = append(ca.StrokeIndexes, i)

		if opts.IncludeStrokes {
			report.Strokes = append(report.Strokes, entry)
		}
	}

	if bounds, ok := c.Bounds(); ok {
		report.Totals.Extent = boundsEntry(bounds)
	}

	if opts.IncludeByColor {
		report.ByColor = buildByColor(byColor, opts)
	}
	if opts.IncludeHistory {
		report.History = historyEntries(c)
	}

	return report
}

// strokeEntry computes the report entry for a single stroke. Length is
// measured for erased strokes too; only InkLength filters on activity.
func strokeEntry(c *canvas.Canvas, i int) StrokeEntry {
	stroke := c.Strokes[i]
	entry := StrokeEntry{
		Index:  i,
		Active: stroke.Active,
		Points: stroke.Span.Size,
		Width:  stroke.Width,
		Color:  colorKey(stroke),
		Length: polylineLength(c.Points(i)),
	}
	if bounds, ok := c.StrokeBounds(i); ok {
		entry.Bounds = boundsEntry(bounds)
	}
	return entry
}

// colorKey renders a stroke's color as #RRGGBBAA, the grouping key for the
// per-color aggregation.
func colorKey(s canvas.Stroke) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", s.Color.R, s.Color.G, s.Color.B, s.Color.A)
}

// polylineLength sums the segment lengths of a point sequence.
func polylineLength(points []geom.Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += math.Hypot(
			float64(points[i].X()-points[i-1].X()),
			float64(points[i].Y()-points[i-1].Y()),
		)
	}
	return length
}

func boundsEntry(r geom.Rect) *BoundsEntry {
	return &BoundsEntry{
		MinX:   r.Min.X(),
		MinY:   r.Min.Y(),
		MaxX:   r.Max.X(),
		MaxY:   r.Max.Y(),
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// historyEntries flattens the history log. Entries at or past the cursor
// are the undone suffix a redo would replay.
func historyEntries(c *canvas.Canvas) []HistoryEntry {
	events := c.History.Events()
	if len(events) == 0 {
		return nil
	}

	undoneFrom := len(events) - c.History.Undone()
	entries := make([]HistoryEntry, 0, len(events))
	for i, event := range events {
		entries = append(entries, HistoryEntry{
			Index:  i,
			Kind:   event.Kind.String(),
			Stroke: event.Stroke,
			Undone: i >= undoneFrom,
		})
	}
	return entries
}

// buildByColor constructs the sorted ByColor slice from accumulated data.
func buildByColor(byColor map[string]*ColorAnalysis, opts Options) []ColorAnalysis {
	result := make([]ColorAnalysis, 0, len(byColor))
	for _, ca := range byColor {
		result = append(result, *ca)
	}
	sortColorAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func sortColorAnalysis(colors []ColorAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(colors, func(left, right ColorAnalysis) int {
		var result int
		switch sortBy {
		case SortByColor:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Color, right.Color)
		case SortByStrokes:
			result = cmp.Compare(left.Strokes, right.Strokes)
		default: // SortByInk
			result = cmp.Compare(left.Length, right.Length)
		}
		if desc {
			result = -result
		}
		if result == 0 {
			// Tie-break on the color key so ordering stays deterministic.
			result = cmp.Compare(left.Color, right.Color)
		}
		return result
	})
}
