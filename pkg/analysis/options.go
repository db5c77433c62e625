package analysis

// SortField specifies how to sort the per-color analysis.
type SortField string

const (
	// SortByInk sorts by total drawn length (descending by default).
	SortByInk SortField = "ink"
	// SortByStrokes sorts by stroke count.
	SortByStrokes SortField = "strokes"
	// SortByColor sorts alphabetically by color key.
	SortByColor SortField = "color"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByInk, SortByStrokes, SortByColor:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeStrokes includes the flat per-stroke list.
	IncludeStrokes bool

	// IncludeByColor includes the per-color aggregation.
	IncludeByColor bool

	// IncludeHistory includes the flattened event log.
	IncludeHistory bool

	// SortBy specifies how to sort ByColor.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// Path identifies the analyzed file in the report.
	// If empty, the field is omitted from the output.
	Path string

	// FileSize is the analyzed file's size in bytes.
	FileSize int64

	// FormatVersion is the file format version the canvas was decoded
	// from.
	FormatVersion int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeStrokes: true,
		IncludeByColor: true,
		IncludeHistory: true,
		SortBy:         SortByInk,
		SortDesc:       true,
	}
}
