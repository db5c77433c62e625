// Package config defines the tunable settings of the drawing engine and
// its session layer, with YAML serialization for on-disk config files.
//
// The zero value of Config is not useful; start from Default and override.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/session"
)

// Defaults for settings that have no engine- or session-level constant.
const (
	// DefaultConfigName is the config file looked up in the working
	// directory and in the user config dir.
	DefaultConfigName = ".screen-drawer.yml"

	// DefaultSavePath is where the canvas session file is written when
	// the config does not name one.
	DefaultSavePath = "canvas.sdr"
)

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Session SessionConfig `yaml:"session"`
}

// CanvasConfig tunes the drawing engine itself.
type CanvasConfig struct {
	// MaxStrokePoints caps a stroke's point count; a stroke that grows
	// past it is split into a chained continuation stroke.
	MaxStrokePoints int `yaml:"max_stroke_points"`

	// CoalesceDistance is the minimum distance between consecutive
	// stored points. Input points closer than this to the previous one
	// replace it instead of appending.
	CoalesceDistance float32 `yaml:"coalesce_distance"`

	// EraserThickness is the radius of the eraser's travel path.
	EraserThickness float32 `yaml:"eraser_thickness"`
}

// SessionConfig controls where and how the canvas is persisted.
type SessionConfig struct {
	// Path is the canvas session file.
	Path string `yaml:"path"`

	// FileMode is the permission mode for session files. Zero means the
	// platform default.
	FileMode FileMode `yaml:"file_mode,omitempty"`

	Autosave AutosaveConfig `yaml:"autosave"`
}

// AutosaveConfig controls the background autosave loop.
type AutosaveConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Interval Duration `yaml:"interval"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			MaxStrokePoints:  canvas.DefaultMaxStrokePoints,
			CoalesceDistance: canvas.DefaultCoalesceDistance,
			EraserThickness:  canvas.DefaultEraserThickness,
		},
		Session: SessionConfig{
			Path: DefaultSavePath,
			Autosave: AutosaveConfig{
				Enabled:  true,
				Interval: Duration(session.DefaultInterval),
			},
		},
	}
}

// Options converts the canvas section into engine options.
func (c CanvasConfig) Options() canvas.Options {
	return canvas.Options{
		MaxStrokePoints: c.MaxStrokePoints,
		EraserThickness: c.EraserThickness,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if c.Canvas.MaxStrokePoints < 2 {
		return fmt.Errorf("%w: canvas.max_stroke_points must be at least 2, got %d",
			ErrInvalidConfig, c.Canvas.MaxStrokePoints)
	}
	if c.Canvas.CoalesceDistance < 0 {
		return fmt.Errorf("%w: canvas.coalesce_distance must not be negative, got %g",
			ErrInvalidConfig, c.Canvas.CoalesceDistance)
	}
	if c.Canvas.EraserThickness <= 0 {
		return fmt.Errorf("%w: canvas.eraser_thickness must be positive, got %g",
			ErrInvalidConfig, c.Canvas.EraserThickness)
	}

	if c.Session.Path == "" {
		return fmt.Errorf("%w: session.path must not be empty", ErrInvalidConfig)
	}
	if mode := fs.FileMode(c.Session.FileMode); mode&^fs.ModePerm != 0 {
		return fmt.Errorf("%w: session.file_mode %#o has non-permission bits",
			ErrInvalidConfig, mode)
	}
	if c.Session.Autosave.Enabled && c.Session.Autosave.Interval <= 0 {
		return fmt.Errorf("%w: session.autosave.interval must be positive when autosave is enabled, got %s",
			ErrInvalidConfig, time.Duration(c.Session.Autosave.Interval))
	}

	return nil
}

// Clone creates a copy of the configuration. All fields are value types,
// so a shallow copy is a deep copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
