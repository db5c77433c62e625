package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AndrewKraevskii/screen-drawer/internal/logging"
	"github.com/AndrewKraevskii/screen-drawer/pkg/config"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
)

// configTemplateHeader introduces the generated config file.
const configTemplateHeader = `# screen-drawer configuration.
# Engine tunables live under "canvas", persistence under "session".
# Every setting shown here is the built-in default.`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Create a new ` + config.DefaultConfigName + ` configuration file in the current
directory with the built-in defaults. The file can be customized to tune
the drawing engine and the session autosave behavior.

Examples:
  drawfile init                     Create ` + config.DefaultConfigName + `
  drawfile init --output custom.yml   Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: "+config.DefaultConfigName+")")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = config.DefaultConfigName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.Default().ToYAMLWithHeader(configTemplateHeader)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}
