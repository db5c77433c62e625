package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 6 // #, STATE, POINTS, WIDTH, COLOR, BOUNDS
	minIndexWidth    = 3
	minStateWidth    = 6
	minPointsWidth   = 6
	minPenWidth      = 5
	minColorWidth    = 9
	minBoundsWidth   = 22
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single stroke in the stroke table.
type TableRow struct {
	Index  string
	State  string
	Points string
	Width  string
	Color  string
	Bounds string
	Active bool
}

// TableFormatter formats a canvas's strokes as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats the canvas's strokes as a styled table.
func (t *TableFormatter) FormatTable(c *canvas.Canvas) string {
	if c == nil || len(c.Strokes) == 0 {
		return ""
	}

	rows := t.collectRows(c)
	colWidths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, colWidths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// collectRows converts each stroke into a renderable row.
func (t *TableFormatter) collectRows(c *canvas.Canvas) []TableRow {
	rows := make([]TableRow, 0, len(c.Strokes))

	for i := range c.Strokes {
		stroke := &c.Strokes[i]

		state := "erased"
		if stroke.Active {
			state = "active"
		}

		bounds := "-"
		if rect, ok := c.StrokeBounds(i); ok {
			bounds = fmt.Sprintf("(%.0f, %.0f) .. (%.0f, %.0f)",
				rect.Min.X(), rect.Min.Y(), rect.Max.X(), rect.Max.Y())
		}

		rows = append(rows, TableRow{
			Index:  fmt.Sprintf("%d", i),
			State:  state,
			Points: fmt.Sprintf("%d", stroke.Span.Size),
			Width:  fmt.Sprintf("%g", stroke.Width),
			Color:  fmt.Sprintf("#%02X%02X%02X%02X", stroke.Color.R, stroke.Color.G, stroke.Color.B, stroke.Color.A),
			Bounds: bounds,
			Active: stroke.Active,
		})
	}

	return rows
}

type columnWidths struct {
	index  int
	state  int
	points int
	width  int
	color  int
	bounds int
}

// calculateColumnWidths determines column widths based on content,
// constrained to the terminal width by shrinking the bounds column.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		index:  minIndexWidth,
		state:  minStateWidth,
		points: minPointsWidth,
		width:  minPenWidth,
		color:  minColorWidth,
		bounds: minBoundsWidth,
	}

	for _, row := range rows {
		widths.index = max(widths.index, len(row.Index))
		widths.points = max(widths.points, len(row.Points))
		widths.width = max(widths.width, len(row.Width))
		widths.bounds = max(widths.bounds, len(row.Bounds))
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.bounds = max(minBoundsWidth, widths.bounds-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.index + widths.state + widths.points + widths.width +
		widths.color + widths.bounds + (tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %-*s  %-*s ",
		widths.index, "#",
		widths.state, "STATE",
		widths.points, "POINTS",
		widths.width, "WIDTH",
		widths.color, "COLOR",
		widths.bounds, "BOUNDS",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row styled by stroke state.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %-*s  %-*s ",
		widths.index, row.Index,
		widths.state, row.State,
		widths.points, row.Points,
		widths.width, row.Width,
		widths.color, row.Color,
		widths.bounds, truncateString(row.Bounds, widths.bounds),
	)

	return t.getRowStyle(row.Active).Render(content)
}

// getRowStyle returns the style for a stroke state.
func (t *TableFormatter) getRowStyle(active bool) lipgloss.Style {
	if active {
		return t.styles.TableActiveRow
	}
	return t.styles.TableErasedRow
}

// formatLegend formats the legend explaining the row styling.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: erased strokes stay listed; undo restores them")
	}

	erasedSample := t.styles.TableErasedRow.Render("erased")
	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s rows stay listed; undo restores them", erasedSample),
	)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
