package drawfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/AndrewKraevskii/screen-drawer/pkg/canvas"
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// Decode reads a canvas from r and validates its structure: magic tag,
// format version, stroke spans against the segment count, event stroke
// indices, and the history cursor. Any violation makes the whole file
// unreadable; there is no partial recovery.
//
// The decoded canvas carries default options; owners tune Opts afterwards.
func Decode(r io.Reader) (*canvas.Canvas, error) {
	d := &decoder{r: bufio.NewReader(r)}

	var header [headerSize]byte
	if _, err := io.ReadFull(d.r, header[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !bytes.Equal(header[:3], magic[:]) {
		return nil, fmt.Errorf("%w: got % x", ErrMagicMismatch, header[:3])
	}
	if header[3] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[3])
	}

	c := canvas.New()

	segments, err := d.segments()
	if err != nil {
		return nil, err
	}
	c.Segments = segments

	strokes, err := d.strokes()
	if err != nil {
		return nil, err
	}
	c.Strokes = strokes

	events, undone, err := d.events(len(strokes))
	if err != nil {
		return nil, err
	}
	if err := c.History.Restore(events, undone); err != nil {
		return nil, fmt.Errorf("restore history: %w", err)
	}

	camera, err := d.camera()
	if err != nil {
		return nil, err
	}
	c.Camera = camera

	if err := c.ValidateSpans(); err != nil {
		return nil, err
	}
	return c, nil
}

// decoder reads fixed-size fields through a scratch buffer.
type decoder struct {
	r       *bufio.Reader
	scratch [8]byte
}

func (d *decoder) segments() ([]geom.Point, error) {
	count, err := d.u64()
	if err != nil {
		return nil, fmt.Errorf("read segment count: %w", err)
	}

	// Grow by appending rather than trusting the declared count: a corrupt
	// huge count then runs out of input instead of out of memory.
	var segments []geom.Point
	for i := uint64(0); i < count; i++ {
		p, err := d.point()
		if err != nil {
			return nil, fmt.Errorf("read segment %d of %d: %w", i, count, err)
		}
		segments = append(segments, p)
	}
	return segments, nil
}

func (d *decoder) strokes() ([]canvas.Stroke, error) {
	count, err := d.u64()
	if err != nil {
		return nil, fmt.Errorf("read stroke count: %w", err)
	}

	var strokes []canvas.Stroke
	for i := uint64(0); i < count; i++ {
		stroke, err := d.stroke()
		if err != nil {
			return nil, fmt.Errorf("read stroke %d of %d: %w", i, count, err)
		}
		strokes = append(strokes, stroke)
	}
	return strokes, nil
}

func (d *decoder) stroke() (canvas.Stroke, error) {
	var record [strokeSize]byte
	if _, err := io.ReadFull(d.r, record[:]); err != nil {
		return canvas.Stroke{}, err
	}

	// Span fields convert u64 -> int; a value past the int range turns
	// negative and fails the span validation after decoding.
	return canvas.Stroke{
		Active: record[0] != 0,
		Span: canvas.Span{
			Start: int(binary.LittleEndian.Uint64(record[1:9])),
			Size:  int(binary.LittleEndian.Uint64(record[9:17])),
		},
		Color: color4(record[17:21]),
		Width: math.Float32frombits(binary.LittleEndian.Uint32(record[21:25])),
	}, nil
}

func (d *decoder) events(strokeCount int) ([]canvas.Event, int, error) {
	count, err := d.u64()
	if err != nil {
		return nil, 0, fmt.Errorf("read event count: %w", err)
	}

	var events []canvas.Event
	for i := uint64(0); i < count; i++ {
		event, err := d.event(strokeCount)
		if err != nil {
			return nil, 0, fmt.Errorf("read event %d of %d: %w", i, count, err)
		}
		events = append(events, event)
	}

	undone, err := d.u64()
	if err != nil {
		return nil, 0, fmt.Errorf("read history cursor: %w", err)
	}
	return events, int(undone), nil
}

func (d *decoder) event(strokeCount int) (canvas.Event, error) {
	var record [eventSize]byte
	if _, err := io.ReadFull(d.r, record[:]); err != nil {
		return canvas.Event{}, err
	}

	index := int(binary.LittleEndian.Uint64(record[1:9]))
	if index < 0 || index >= strokeCount {
		return canvas.Event{}, fmt.Errorf("%w: stroke %d of %d", ErrEventOutOfRange, index, strokeCount)
	}
	return canvas.Event{
		Kind:   canvas.EventKind(record[0]),
		Stroke: index,
	}, nil
}

func (d *decoder) camera() (canvas.Camera, error) {
	var record [cameraSize]byte
	if _, err := io.ReadFull(d.r, record[:]); err != nil {
		return canvas.Camera{}, fmt.Errorf("read camera: %w", err)
	}

	return canvas.Camera{
		Zoom:     f32(record[0:4]),
		Target:   geom.Pt(f32(record[4:8]), f32(record[8:12])),
		Offset:   geom.Pt(f32(record[12:16]), f32(record[16:20])),
		Rotation: f32(record[20:24]),
	}, nil
}

func (d *decoder) u64() (uint64, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d.scratch[:8]), nil
}

func (d *decoder) point() (geom.Point, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:segmentSize]); err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(f32(d.scratch[0:4]), f32(d.scratch[4:8])), nil
}

func f32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func color4(b []byte) color.RGBA {
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}
