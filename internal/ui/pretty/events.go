package pretty

import (
	"fmt"
	"strings"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
)

// FormatEvents formats the canvas's history log, oldest first. Entries
// past the undo cursor are marked so a reader can see what redo would
// replay.
func (s *Styles) FormatEvents(c *canvas.Canvas) string {
	events := c.History.Events()
	if len(events) == 0 {
		return s.Dim.Render("  (empty history)") + "\n"
	}

	liveCount := len(events) - c.History.Undone()

	var builder strings.Builder
	for i, event := range events {
		line := fmt.Sprintf("  %3d  %s  stroke %d",
			i, s.FormatEventKind(event.Kind), event.Stroke)

		if i >= liveCount {
			line += "  " + s.EventUndone.Render("(undone)")
		}

		builder.WriteString(line)
		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatEventKind returns a styled, fixed-width event kind label.
func (s *Styles) FormatEventKind(kind canvas.EventKind) string {
	switch kind {
	case canvas.EventDrawn:
		return s.EventDrawn.Render("drawn ")
	case canvas.EventErased:
		return s.EventErased.Render("erased")
	default:
		return fmt.Sprintf("%-6v", kind)
	}
}
