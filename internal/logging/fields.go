// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldSize  = "size"

	// Canvas fields.
	FieldStrokes  = "strokes"
	FieldSegments = "segments"
	FieldEvents   = "events"
	FieldUndone   = "undone"

	// Session fields.
	FieldInterval = "interval"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
