package canvas

import (
	"errors"
	"fmt"

	"image/color"
)

// ErrSpanOutOfRange indicates a stroke whose span reaches past the end of
// the segment sequence.
var ErrSpanOutOfRange = errors.New("stroke span out of range")

// Span is a contiguous index range into the canvas's segment sequence.
// Spans of different strokes never overlap: segments are only appended, and
// only the most recently created stroke grows.
type Span struct {
	Start int
	Size  int
}

// End returns the index one past the span's last segment.
func (s Span) End() int {
	return s.Start + s.Size
}

// Stroke is one continuous drawing gesture: a span over the shared segment
// sequence plus style. Active is the soft-delete flag; an erased stroke
// keeps its data so undo can restore it.
type Stroke struct {
	Active bool
	Span   Span
	Color  color.RGBA
	Width  float32
}

// ValidateSpans checks every stroke's span against the segment sequence and
// returns ErrSpanOutOfRange on the first violation. Inactive strokes are
// checked too: undo can re-activate any stroke, so a dormant bad span is a
// latent crash.
func (c *Canvas) ValidateSpans() error {
	n := len(c.Segments)
	for i := range c.Strokes {
		span := c.Strokes[i].Span
		if span.Start < 0 || span.Size < 0 || span.Start > n || span.Size > n-span.Start {
			return fmt.Errorf("%w: stroke %d spans [%d, %d) of %d segments",
				ErrSpanOutOfRange, i, span.Start, span.Start+span.Size, n)
		}
	}
	return nil
}
