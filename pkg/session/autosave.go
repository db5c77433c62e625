package session

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AndrewKraevskii/screen-drawer/internal/logging"
	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/drawfile"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
)

// DefaultInterval is how often the autosaver flushes when the caller does
// not choose an interval.
const DefaultInterval = 30 * time.Second

// Autosaver periodically writes the most recent canvas snapshot offered
// to it. Offers between ticks replace each other, so a burst of drawing
// costs one write, and a snapshot identical to what is already on disk
// costs none.
type Autosaver struct {
	store    *Store
	interval time.Duration

	mu      sync.Mutex
	pending *canvas.Canvas

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewAutosaver starts the background flush loop. A non-positive interval
// falls back to DefaultInterval. The loop stops when ctx is cancelled or
// Close is called.
func NewAutosaver(ctx context.Context, store *Store, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = DefaultInterval
	}

	a := &Autosaver{
		store:    store,
		interval: interval,
		done:     make(chan struct{}),
	}

	a.wg.Add(1)
	go a.run(ctx)
	return a
}

// Offer hands the autosaver a snapshot to persist on the next tick. The
// canvas is cloned, so the caller may keep mutating it. A later offer
// supersedes an unwritten earlier one.
func (a *Autosaver) Offer(c *canvas.Canvas) {
	snapshot := c.Clone()

	a.mu.Lock()
	a.pending = snapshot
	a.mu.Unlock()
}

// Close stops the flush loop and writes any snapshot still pending.
func (a *Autosaver) Close(ctx context.Context) error {
	a.once.Do(func() { close(a.done) })
	a.wg.Wait()

	snapshot := a.take()
	if snapshot == nil {
		return nil
	}
	return a.write(ctx, snapshot)
}

func (a *Autosaver) run(ctx context.Context) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.done:
			return
		case <-ticker.C:
			a.flush(ctx)
		}
	}
}

// flush writes the pending snapshot, if any. Failures are logged rather
// than returned: the next tick retries unless a newer offer arrived.
func (a *Autosaver) flush(ctx context.Context) {
	snapshot := a.take()
	if snapshot == nil {
		return
	}

	if err := a.write(ctx, snapshot); err != nil {
		logging.FromContext(ctx).Warn("autosave failed",
			logging.FieldPath, a.store.path, logging.FieldError, err)

		a.mu.Lock()
		if a.pending == nil {
			a.pending = snapshot
		}
		a.mu.Unlock()
	}
}

// take removes and returns the pending snapshot.
func (a *Autosaver) take() *canvas.Canvas {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := a.pending
	a.pending = nil
	return snapshot
}

func (a *Autosaver) write(ctx context.Context, c *canvas.Canvas) error {
	var buf bytes.Buffer
	if err := drawfile.Encode(&buf, c); err != nil {
		return fmt.Errorf("encode autosave: %w", err)
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, a.store.path, buf.Bytes(), a.store.mode)
	if err != nil {
		return err
	}
	if written {
		logging.FromContext(ctx).Debug("autosave written", logging.FieldPath, a.store.path)
	}
	return nil
}
