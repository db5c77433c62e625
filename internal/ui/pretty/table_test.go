package pretty_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndrewKraevskii/screen-drawer/internal/ui/pretty"
	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// tableCanvas builds a canvas with one active and one erased stroke.
func tableCanvas() *canvas.Canvas {
	c := canvas.New()

	c.StartStroke(color.RGBA{R: 255, A: 255}, 2)
	c.AddPoint(geom.Pt(0, 0), 0)
	c.AddPoint(geom.Pt(100, 50), 0)

	c.StartStroke(color.RGBA{G: 255, A: 255}, 4)
	c.AddPoint(geom.Pt(-10, -10), 0)
	c.AddPoint(geom.Pt(30, 30), 0)
	c.Strokes[1].Active = false

	return c
}

func TestFormatTable(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120)

	out := formatter.FormatTable(tableCanvas())

	assert.Contains(t, out, "STATE")
	assert.Contains(t, out, "POINTS")
	assert.Contains(t, out, "BOUNDS")
	assert.Contains(t, out, "active")
	assert.Contains(t, out, "erased")
	assert.Contains(t, out, "#FF0000FF")
	assert.Contains(t, out, "#00FF00FF")
	assert.Contains(t, out, "(0, 0) .. (100, 50)")
	assert.Contains(t, out, "(-10, -10) .. (30, 30)")
	assert.Contains(t, out, "Legend:")
}

func TestFormatTable_EmptyCanvas(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120)

	assert.Empty(t, formatter.FormatTable(canvas.New()))
	assert.Empty(t, formatter.FormatTable(nil))
}

func TestFormatTable_ConstrainsToTerminalWidth(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 60)

	out := formatter.FormatTable(tableCanvas())

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 80, "line %q is wider than expected", line)
	}
}

func TestFormatTable_EmptyStrokeHasNoBounds(t *testing.T) {
	c := canvas.New()
	c.StartStroke(color.RGBA{A: 255}, 1)

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120)
	out := formatter.FormatTable(c)

	assert.Contains(t, out, "-")
}
