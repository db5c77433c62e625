package analysis

import "time"

// Report contains pre-computed views of a canvas.
// Computed once by Analyze(), consumed by renderers and scripts.
type Report struct {
	// Path is the session file the canvas was decoded from.
	Path string `json:"path,omitempty"`

	// FileSize is the session file's size in bytes.
	FileSize int64 `json:"fileSize,omitempty"`

	// FormatVersion is the drawfile format version the canvas carries.
	FormatVersion int `json:"formatVersion,omitempty"`

	// Strokes is the flat per-stroke list for detailed output.
	Strokes []StrokeEntry `json:"strokes,omitempty"`

	// ByColor groups strokes by pen color.
	ByColor []ColorAnalysis `json:"byColor,omitempty"`

	// History is the flattened event log with the undone suffix marked.
	History []HistoryEntry `json:"history,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Camera is the persisted view state.
	Camera CameraState `json:"camera"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// StrokeEntry represents a single stroke in the report.
type StrokeEntry struct {
	Index  int          `json:"index"`
	Active bool         `json:"active"`
	Points int          `json:"points"`
	Width  float32      `json:"width"`
	Color  string       `json:"color"`
	Length float64      `json:"length"`
	Bounds *BoundsEntry `json:"bounds,omitempty"`
}

// BoundsEntry is an axis-aligned bounding box in canvas coordinates.
type BoundsEntry struct {
	MinX   float32 `json:"minX"`
	MinY   float32 `json:"minY"`
	MaxX   float32 `json:"maxX"`
	MaxY   float32 `json:"maxY"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// ColorAnalysis contains aggregated data for a single pen color.
type ColorAnalysis struct {
	Color         string  `json:"color"`
	Strokes       int     `json:"strokes"`
	ActiveStrokes int     `json:"activeStrokes"`
	Points        int     `json:"points"`
	Length        float64 `json:"length"`
	StrokeIndexes []int   `json:"strokeIndexes,omitempty"`
}

// HistoryEntry represents one event of the history log.
type HistoryEntry struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Stroke int    `json:"stroke"`
	Undone bool   `json:"undone,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Strokes       int          `json:"strokes"`
	ActiveStrokes int          `json:"activeStrokes"`
	ErasedStrokes int          `json:"erasedStrokes"`
	Segments      int          `json:"segments"`
	Events        int          `json:"events"`
	Undone        int          `json:"undone"`
	InkLength     float64      `json:"inkLength"`
	Extent        *BoundsEntry `json:"extent,omitempty"`
}

// HasInk returns true if any active stroke has drawn length.
func (t Totals) HasInk() bool {
	return t.InkLength > 0
}

// CameraState is the persisted view state of the canvas.
type CameraState struct {
	Zoom     float32    `json:"zoom"`
	Target   PointEntry `json:"target"`
	Offset   PointEntry `json:"offset"`
	Rotation float32    `json:"rotation"`
}

// PointEntry is a 2D coordinate in canvas space.
type PointEntry struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}
