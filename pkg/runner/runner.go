package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
)

// CheckFunc inspects one session file and reports the stats of the canvas
// it holds. Implementations must be safe for concurrent use.
type CheckFunc func(ctx context.Context, path string) (canvas.Stats, error)

// Runner fans a CheckFunc out over many session files.
type Runner struct {
	// Check is the per-file operation, typically decode-and-validate.
	Check CheckFunc
}

// New creates a new Runner with the given check.
func New(check CheckFunc) *Runner {
	return &Runner{Check: check}
}

// Run discovers files under opts.Paths and checks them concurrently.
// It returns one FileOutcome per discovered file, in discovery order,
// plus aggregate stats. A failing check is recorded in its outcome, not
// returned; Run's own error means discovery failed or the context was
// cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect by path first.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Rebuild in discovery order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker checks files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		stats, err := r.Check(ctx, path)
		if err != nil {
			outcome.Err = err
		} else {
			outcome.Stats = stats
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
