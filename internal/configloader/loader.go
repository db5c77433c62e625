// Package configloader resolves the effective configuration for the CLI.
// It implements XDG-compliant discovery, hierarchical merging of user and
// project config files, and environment variable overrides.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AndrewKraevskii/screen-drawer/pkg/config"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory the project config search starts from.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// Unlike discovered files, an explicit file must exist.
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string
}

// Load resolves the effective configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (SCREEN_DRAWER_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.screen-drawer.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/screen-drawer/config.yaml)
//  5. Built-in defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	// Merge sources from lowest to highest precedence. Each file decodes
	// onto the same struct, so a later source overrides only the settings
	// it actually sets.
	cfg := config.Default()

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := mergeFile(ctx, cfg, paths.User); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if paths.Project != "" {
		if err := mergeFile(ctx, cfg, paths.Project); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		if err := mergeFile(ctx, cfg, opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("load config %s: %w", opts.ExplicitPath, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("apply environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// mergeFile decodes the YAML file at path onto cfg.
func mergeFile(ctx context.Context, cfg *config.Config, path string) error {
	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}
