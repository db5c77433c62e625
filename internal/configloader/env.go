package configloader

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/AndrewKraevskii/screen-drawer/pkg/config"
)

// envPrefix is the prefix for all screen-drawer environment variables.
const envPrefix = "SCREEN_DRAWER_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeFloat
	envTypeDuration
	envTypeMode
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"SESSION_PATH":      {field: "session.path", typ: envTypeString},
	"SESSION_FILE_MODE": {field: "session.file_mode", typ: envTypeMode},
	"AUTOSAVE":          {field: "session.autosave.enabled", typ: envTypeBool},
	"AUTOSAVE_INTERVAL": {field: "session.autosave.interval", typ: envTypeDuration},
	"MAX_STROKE_POINTS": {field: "canvas.max_stroke_points", typ: envTypeInt},
	"COALESCE_DISTANCE": {field: "canvas.coalesce_distance", typ: envTypeFloat},
	"ERASER_THICKNESS":  {field: "canvas.eraser_thickness", typ: envTypeFloat},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with SCREEN_DRAWER_ (e.g. SCREEN_DRAWER_AUTOSAVE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: invalid boolean for %s: %q (expected true/false/1/0)",
				config.ErrInvalidConfig, envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: invalid integer for %s: %q",
				config.ErrInvalidConfig, envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeFloat:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid number for %s: %q",
				config.ErrInvalidConfig, envVar, value)
		}
		return setFloatField(cfg, mapping.field, float32(f))
	case envTypeDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: invalid duration for %s: %q (expected e.g. 30s or 2m)",
				config.ErrInvalidConfig, envVar, value)
		}
		return setDurationField(cfg, mapping.field, d)
	case envTypeMode:
		mode, err := strconv.ParseUint(value, 8, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid octal file mode for %s: %q",
				config.ErrInvalidConfig, envVar, value)
		}
		return setModeField(cfg, mapping.field, config.FileMode(mode))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "session.path":
		cfg.Session.Path = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "session.autosave.enabled":
		cfg.Session.Autosave.Enabled = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "canvas.max_stroke_points":
		cfg.Canvas.MaxStrokePoints = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setFloatField sets a float field on the config by field path.
func setFloatField(cfg *config.Config, field string, value float32) error {
	switch field {
	case "canvas.coalesce_distance":
		cfg.Canvas.CoalesceDistance = value
	case "canvas.eraser_thickness":
		cfg.Canvas.EraserThickness = value
	default:
		return fmt.Errorf("unknown float field: %s", field)
	}
	return nil
}

// setDurationField sets a duration field on the config by field path.
func setDurationField(cfg *config.Config, field string, value time.Duration) error {
	switch field {
	case "session.autosave.interval":
		cfg.Session.Autosave.Interval = config.Duration(value)
	default:
		return fmt.Errorf("unknown duration field: %s", field)
	}
	return nil
}

// setModeField sets a file mode field on the config by field path.
func setModeField(cfg *config.Config, field string, value config.FileMode) error {
	switch field {
	case "session.file_mode":
		cfg.Session.FileMode = value
	default:
		return fmt.Errorf("unknown file mode field: %s", field)
	}
	return nil
}
