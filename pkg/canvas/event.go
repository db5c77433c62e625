package canvas

// EventKind identifies what a history event recorded.
type EventKind uint8

const (
	// EventDrawn records that a stroke was created.
	EventDrawn EventKind = iota
	// EventErased records that a stroke was deactivated by the eraser.
	EventErased
)

// String returns the kind's name for logs and tooling output.
func (k EventKind) String() string {
	switch k {
	case EventDrawn:
		return "drawn"
	case EventErased:
		return "erased"
	default:
		return "unknown"
	}
}

// Event is one entry in the canvas history log. It carries no behavior and
// no payload beyond the stroke index: the kind combined with the direction
// of travel (undo or redo) determines which visibility flip to apply.
type Event struct {
	Kind   EventKind
	Stroke int
}

// direction is the way the history cursor is moving.
type direction int

const (
	directionUndo direction = iota
	directionRedo
)

// apply flips the visibility recorded by event in the given direction.
// This is the single dispatch point for history interpretation.
func apply(c *Canvas, event Event, dir direction) {
	stroke := &c.Strokes[event.Stroke]
	switch event.Kind {
	case EventDrawn:
		stroke.Active = dir == directionRedo
	case EventErased:
		stroke.Active = dir == directionUndo
	}
}

// Undo rolls back the most recent active history event and returns it.
// It reports false when there is nothing left to undo.
func (c *Canvas) Undo() (Event, bool) {
	event, ok := c.History.Undo()
	if !ok {
		return Event{}, false
	}
	apply(c, event, directionUndo)
	return event, true
}

// Redo re-applies the most recently undone event and returns it.
// It reports false when there is nothing to redo.
func (c *Canvas) Redo() (Event, bool) {
	event, ok := c.History.Redo()
	if !ok {
		return Event{}, false
	}
	apply(c, event, directionRedo)
	return event, true
}
