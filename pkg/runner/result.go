package runner

import "github.com/AndrewKraevskii/screen-drawer/pkg/canvas"

// FileOutcome is the result of checking one session file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Stats describes the decoded canvas. Zero when Err is set.
	Stats canvas.Stats

	// Err is set if the file could not be read or failed its check.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesChecked is the number of files that passed their check.
	FilesChecked int

	// FilesFailed is the number of files whose check returned an error.
	FilesFailed int

	// Strokes, ActiveStrokes, Segments, and Events sum the canvas stats
	// of every checked file.
	Strokes       int
	ActiveStrokes int
	Segments      int
	Events        int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, in discovery
	// order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed its check.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesChecked++
	r.Stats.Strokes += outcome.Stats.Strokes
	r.Stats.ActiveStrokes += outcome.Stats.ActiveStrokes
	r.Stats.Segments += outcome.Stats.Segments
	r.Stats.Events += outcome.Stats.Events
}
