// Package cli provides the Cobra command structure for drawfile.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndrewKraevskii/screen-drawer/internal/configloader"
	"github.com/AndrewKraevskii/screen-drawer/internal/logging"
	"github.com/AndrewKraevskii/screen-drawer/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root drawfile command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "drawfile",
		Short: "Inspect and manage canvas session files",
		Long: `drawfile works with the session files of the screen drawing overlay.

A session file holds everything needed to restore a drawing: the stroke
geometry, the colors and widths, the full undo history with its cursor,
and the camera. drawfile can summarize such a file, verify that it
decodes cleanly, and set up a configuration file for the overlay.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// commandContext returns the command's context, or a background one when
// cobra was driven without any.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the effective configuration for the command. The
// root --config flag names an explicit file; otherwise user and project
// config files are discovered, with SCREEN_DRAWER_* variables on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		explicit = ""
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		ExplicitPath: explicit,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.Default()
	for _, path := range result.LoadedFrom {
		logger.Debug("config loaded", logging.FieldPath, path)
	}

	return result.Config, nil
}
