package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AndrewKraevskii/screen-drawer/internal/logging"
	"github.com/AndrewKraevskii/screen-drawer/internal/ui/pretty"
	"github.com/AndrewKraevskii/screen-drawer/pkg/analysis"
	"github.com/AndrewKraevskii/screen-drawer/pkg/drawfile"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
)

// Output formats for the inspect command.
const (
	formatText = "text"
	formatJSON = "json"
)

type inspectFlags struct {
	format  string
	oneLine bool
	strokes bool
	events  bool
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a canvas session file",
		Long: `Summarize what a canvas session file contains: stroke and segment
counts, the state of the undo history, and the saved camera.

Without a file argument, inspects the session file named in the
configuration.

Examples:
  drawfile inspect                  Inspect the configured session file
  drawfile inspect board.sdr        Inspect a specific file
  drawfile inspect --strokes        Also list every stroke in a table
  drawfile inspect --events         Also list the history event log
  drawfile inspect --one-line       Single-line summary, for scripts
  drawfile inspect --format json    Full machine-readable report`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text or json")
	cmd.Flags().BoolVar(&flags.oneLine, "one-line", false, "print a single summary line")
	cmd.Flags().BoolVar(&flags.strokes, "strokes", false, "list each stroke in a table")
	cmd.Flags().BoolVar(&flags.events, "events", false, "list the history event log")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, flags *inspectFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	if flags.format != formatText && flags.format != formatJSON {
		return fmt.Errorf("unknown format %q (expected text or json)", flags.format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := cfg.Session.Path
	if len(args) > 0 {
		path = args[0]
	}

	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}
	logger.Debug("session file read", logging.FieldPath, path, logging.FieldSize, len(data))

	c, err := drawfile.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	out := cmd.OutOrStdout()

	if flags.format == formatJSON {
		opts := analysis.DefaultOptions()
		opts.Path = path
		opts.FileSize = int64(len(data))
		opts.FormatVersion = drawfile.Version

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(analysis.Analyze(c, opts)); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	}

	styles := pretty.NewStyles(colorEnabled(cmd, out))

	report := pretty.Report{
		Path:    path,
		Size:    int64(len(data)),
		Version: drawfile.Version,
		Stats:   c.Stats(),
		Camera:  c.Camera,
	}

	if flags.oneLine {
		fmt.Fprint(out, styles.FormatSummaryOneLine(report))
	} else {
		fmt.Fprint(out, styles.FormatSummary(report))
	}

	if flags.strokes {
		formatter := pretty.NewTableFormatter(styles, colorEnabled(cmd, out), terminalWidth(out))
		fmt.Fprint(out, "\n", formatter.FormatTable(c))
	}

	if flags.events {
		fmt.Fprint(out, "\n", styles.SummaryTitle.Render("History"), "\n", styles.FormatEvents(c))
	}

	return nil
}

// colorEnabled resolves the root --color flag against the writer.
func colorEnabled(cmd *cobra.Command, writer io.Writer) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.IsColorEnabled(mode, writer)
}

// terminalWidth attempts to get the terminal width from the writer. Zero
// means unknown; the table formatter falls back to its own default.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 0
}
