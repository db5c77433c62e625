package drawfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// Encode writes the canvas to w in the current format version.
//
// Write errors propagate uninterpreted and may leave a partial stream
// behind; callers that write to files are expected to encode into a buffer
// and rename atomically over the destination (see fsutil.WriteAtomic).
func Encode(w io.Writer, c *canvas.Canvas) error {
	e := &encoder{w: w}

	e.raw(magic[:])
	e.u8(Version)

	e.u64(uint64(len(c.Segments)))
	for _, p := range c.Segments {
		e.point(p)
	}

	e.u64(uint64(len(c.Strokes)))
	for i := range c.Strokes {
		e.stroke(&c.Strokes[i])
	}

	events := c.History.Events()
	e.u64(uint64(len(events)))
	for _, event := range events {
		e.event(event)
	}
	e.u64(uint64(c.History.Undone()))

	e.camera(c.Camera)

	if e.err != nil {
		return fmt.Errorf("encode canvas: %w", e.err)
	}
	return nil
}

// encoder writes fixed-size fields through a scratch buffer and keeps the
// first write error, turning later calls into no-ops.
type encoder struct {
	w       io.Writer
	err     error
	scratch [8]byte
}

func (e *encoder) raw(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) u8(v uint8) {
	e.scratch[0] = v
	e.raw(e.scratch[:1])
}

func (e *encoder) u64(v uint64) {
	binary.LittleEndian.PutUint64(e.scratch[:8], v)
	e.raw(e.scratch[:8])
}

func (e *encoder) f32(v float32) {
	binary.LittleEndian.PutUint32(e.scratch[:4], math.Float32bits(v))
	e.raw(e.scratch[:4])
}

func (e *encoder) bool(v bool) {
	if v {
		e.u8(1)
	} else {
		e.u8(0)
	}
}

func (e *encoder) point(p geom.Point) {
	e.f32(p.X())
	e.f32(p.Y())
}

func (e *encoder) stroke(s *canvas.Stroke) {
	e.bool(s.Active)
	e.u64(uint64(s.Span.Start))
	e.u64(uint64(s.Span.Size))
	e.raw([]byte{s.Color.R, s.Color.G, s.Color.B, s.Color.A})
	e.f32(s.Width)
}

func (e *encoder) event(event canvas.Event) {
	e.u8(uint8(event.Kind))
	e.u64(uint64(event.Stroke))
}

func (e *encoder) camera(cam canvas.Camera) {
	e.f32(cam.Zoom)
	e.point(cam.Target)
	e.point(cam.Offset)
	e.f32(cam.Rotation)
}
