package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndrewKraevskii/screen-drawer/internal/ui/pretty"
	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/drawfile"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
	"github.com/AndrewKraevskii/screen-drawer/pkg/runner"
)

// ErrVerifyFailed is returned when at least one file fails verification.
var ErrVerifyFailed = errors.New("verification failed")

type verifyFlags struct {
	jobs int
}

func newVerifyCommand() *cobra.Command {
	flags := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify [paths...]",
		Short: "Check that session files decode cleanly",
		Long: `Decode each session file and run the full set of structural checks:
magic tag, format version, stroke spans against the segment store, event
stroke indices, and the history cursor.

Arguments may be files or directories; directories are searched
recursively for session files. Without arguments, verifies the session
file named in the configuration. Exits non-zero if any file fails.

Examples:
  drawfile verify                   Verify the configured session file
  drawfile verify a.sdr b.sdr       Verify specific files
  drawfile verify ./sessions        Verify every session file in a tree
  drawfile verify --jobs 8 ./walls  Use eight parallel workers`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = all CPUs)")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string, flags *verifyFlags) error {
	ctx := commandContext(cmd)

	paths := args
	if len(paths) == 0 {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		paths = []string{cfg.Session.Path}
	}

	result, err := runner.New(verifyFile).Run(ctx, runner.Options{
		Paths: paths,
		Jobs:  flags.jobs,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(result.Files) == 0 {
		fmt.Fprintln(out, "no session files found")
		return nil
	}

	styles := pretty.NewStyles(colorEnabled(cmd, out))
	for _, file := range result.Files {
		fmt.Fprint(out, styles.FormatVerifyResult(file.Path, file.Stats, file.Err))
	}

	if result.HasFailures() {
		return fmt.Errorf("%w: %d of %d files", ErrVerifyFailed,
			result.Stats.FilesFailed, result.Stats.FilesDiscovered)
	}
	return nil
}

// verifyFile decodes one session file and reports its stats.
func verifyFile(ctx context.Context, path string) (canvas.Stats, error) {
	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return canvas.Stats{}, err
	}

	c, err := drawfile.Decode(bytes.NewReader(data))
	if err != nil {
		return canvas.Stats{}, err
	}

	return c.Stats(), nil
}
