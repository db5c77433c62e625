// Package drawfile implements the binary save format for canvases.
//
// A drawfile is a little-endian stream: a 3-byte magic tag and a version
// byte, then the segment, stroke, and history event records each prefixed
// with a u64 count, the history cursor, and the trailing camera state. All
// fields are encoded explicitly field by field, so the layout is identical
// across platforms.
//
// The format carries no checksum. Decoding validates structure (magic,
// version, span ranges, event indices, history cursor) and nothing else;
// bit-level corruption that keeps spans in range goes undetected.
package drawfile

import (
	"errors"
)

// Version is the current format version, bumped on any layout change.
const Version = 1

// magic opens every drawfile.
var magic = [3]byte{'S', 'D', 'R'}

var (
	// ErrMagicMismatch indicates the source is not a drawfile at all.
	ErrMagicMismatch = errors.New("magic mismatch")

	// ErrUnsupportedVersion indicates a drawfile written by a newer format
	// revision than this package understands.
	ErrUnsupportedVersion = errors.New("unsupported drawfile version")

	// ErrEventOutOfRange indicates a history event referencing a stroke
	// index the file does not declare.
	ErrEventOutOfRange = errors.New("history event references unknown stroke")
)

// Record sizes in bytes. Strokes are active flag + span start/size +
// RGBA + width; events are kind + stroke index.
const (
	headerSize  = 4
	segmentSize = 8
	strokeSize  = 25
	eventSize   = 9
	cameraSize  = 24
)
