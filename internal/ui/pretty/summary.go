package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
)

const summaryDividerWidth = 40

// Report aggregates what inspect shows about one session file.
type Report struct {
	Path    string
	Size    int64
	Version int
	Stats   canvas.Stats
	Camera  canvas.Camera
}

// FormatSummaryOneLine formats a session report as a single line.
// Example: "canvas.sdr: 12 strokes (9 active), 420 segments, 14 events".
func (s *Styles) FormatSummaryOneLine(report Report) string {
	stats := report.Stats

	parts := []string{
		fmt.Sprintf("%d strokes (%d active)", stats.Strokes, stats.ActiveStrokes),
		fmt.Sprintf("%d segments", stats.Segments),
		fmt.Sprintf("%d events", stats.Events),
	}
	if stats.Undone > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d undone", stats.Undone)))
	}

	return s.Bold.Render(report.Path) + ": " + strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats a session report as a summary block.
func (s *Styles) FormatSummary(report Report) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Session"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  File:            " + s.SummaryValue.Render(report.Path) + "\n")
	builder.WriteString("  Size:            " + s.SummaryValue.Render(humanSize(report.Size)) + "\n")
	builder.WriteString("  Format version:  " + s.SummaryValue.Render(strconv.Itoa(report.Version)) + "\n")

	builder.WriteString("\n")

	stats := report.Stats
	builder.WriteString("  Strokes:         " +
		s.SummaryValue.Render(fmt.Sprintf("%d (%d active)", stats.Strokes, stats.ActiveStrokes)) + "\n")
	builder.WriteString("  Segments:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.Segments)) + "\n")
	builder.WriteString("  History:         " +
		s.SummaryValue.Render(fmt.Sprintf("%d events, %d undone", stats.Events, stats.Undone)) + "\n")

	builder.WriteString("\n")
	builder.WriteString("  Camera:          " + s.SummaryValue.Render(formatCamera(report.Camera)) + "\n")

	return builder.String()
}

// FormatVerifyResult formats the outcome of a verify run for one file.
func (s *Styles) FormatVerifyResult(path string, stats canvas.Stats, err error) string {
	if err != nil {
		return s.Failure.Render("FAIL") + " " + path + ": " + err.Error() + "\n"
	}
	detail := fmt.Sprintf(" (%d strokes, %d segments, %d events)",
		stats.Strokes, stats.Segments, stats.Events)
	return s.Success.Render("OK") + "   " + path + s.Dim.Render(detail) + "\n"
}

func formatCamera(cam canvas.Camera) string {
	out := fmt.Sprintf("zoom %.2f at (%.1f, %.1f)", cam.Zoom, cam.Target.X(), cam.Target.Y())
	if cam.Rotation != 0 {
		out += fmt.Sprintf(", rotated %.1f°", cam.Rotation)
	}
	return out
}

// humanSize renders a byte count with a binary unit suffix.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
