package canvas

import (
	"github.com/AndrewKraevskii/screen-drawer/pkg/geom"
)

// Camera is the view state of the surrounding application: zoom, pan
// target in canvas space, viewport offset in screen space, and rotation.
// The engine never interprets it; it is persisted with the canvas so a
// session resumes at the same view.
type Camera struct {
	Zoom     float32
	Target   geom.Point
	Offset   geom.Point
	Rotation float32
}

// DefaultCamera returns the identity view: no pan, no rotation, 1:1 zoom.
func DefaultCamera() Camera {
	return Camera{Zoom: 1}
}
