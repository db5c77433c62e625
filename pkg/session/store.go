// Package session persists the canvas between runs.
//
// Loading is deliberately forgiving: a missing or unreadable session file
// must never keep the overlay from starting, so every load produces a
// usable canvas even if it has to be a fresh one. Saving goes through an
// atomic write so a crash mid-save cannot destroy the previous session.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/AndrewKraevskii/screen-drawer/internal/logging"
	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/drawfile"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
)

// Store reads and writes one canvas session file.
type Store struct {
	path string
	mode fs.FileMode
	opts canvas.Options
}

// NewStore returns a store for the session file at path. A zero mode
// falls back to fsutil.DefaultFileMode; opts tune every canvas the store
// hands out.
func NewStore(path string, mode fs.FileMode, opts canvas.Options) *Store {
	if mode == 0 {
		mode = fsutil.DefaultFileMode
	}
	return &Store{path: path, mode: mode, opts: opts}
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the session file and returns the canvas it holds. It does
// not fail: a missing file means a first run and a corrupt one is logged
// and set aside, so the caller always gets a canvas to draw on. The
// logger travels in ctx via logging.WithLogger.
func (s *Store) Load(ctx context.Context) *canvas.Canvas {
	logger := logging.FromContext(ctx)
	fresh := canvas.NewWithOptions(s.opts)

	data, err := fsutil.ReadFile(ctx, s.path)
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		logger.Info("no session file, starting fresh", logging.FieldPath, s.path)
		return fresh
	case err != nil:
		logger.Warn("session file unreadable, starting fresh",
			logging.FieldPath, s.path, logging.FieldError, err)
		return fresh
	}

	c, err := drawfile.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Warn("session file corrupt, starting fresh",
			logging.FieldPath, s.path, logging.FieldError, err)
		return fresh
	}
	c.Opts = fresh.Opts

	stats := c.Stats()
	logger.Debug("session restored",
		logging.FieldPath, s.path,
		logging.FieldStrokes, stats.Strokes,
		logging.FieldSegments, stats.Segments,
		logging.FieldEvents, stats.Events)
	return c
}

// Save writes the canvas to the session file atomically.
func (s *Store) Save(ctx context.Context, c *canvas.Canvas) error {
	var buf bytes.Buffer
	if err := drawfile.Encode(&buf, c); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, s.path, buf.Bytes(), s.mode); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	stats := c.Stats()
	logging.FromContext(ctx).Debug("session saved",
		logging.FieldPath, s.path,
		logging.FieldStrokes, stats.Strokes,
		logging.FieldSegments, stats.Segments,
		logging.FieldEvents, stats.Events)
	return nil
}
