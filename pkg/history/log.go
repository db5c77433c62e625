// Package history provides a generic append-only undo/redo log.
//
// The log never mutates or removes recorded events. Undo and redo only move
// a cursor counting how many trailing events are currently rolled back; the
// caller interprets each returned event and applies the matching state
// change. Keeping the event data immutable makes the log trivially
// serializable.
package history

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCursorOutOfRange indicates a restore with an undone count outside
// [0, len(events)].
var ErrCursorOutOfRange = errors.New("history cursor out of range")

// Log records events of type E in order and tracks how many of the most
// recent ones are currently undone.
//
// The active prefix is events[:len(events)-undone]; the suffix is redoable
// but not applied. The zero value is an empty log ready for use.
type Log[E any] struct {
	events []E
	undone int
}

// Push appends an event. If any events are currently undone, the redoable
// suffix is discarded first: a new edit invalidates redo.
func (l *Log[E]) Push(event E) {
	if l.undone != 0 {
		l.events = l.events[:len(l.events)-l.undone]
		l.undone = 0
	}
	l.events = append(l.events, event)
}

// Undo rolls back the most recent active event and returns it. It reports
// false when every event is already undone.
func (l *Log[E]) Undo() (E, bool) {
	if l.undone == len(l.events) {
		var zero E
		return zero, false
	}
	l.undone++
	return l.events[len(l.events)-l.undone], true
}

// Redo returns the most recently undone event and marks it applied again.
// It reports false when nothing is undone.
func (l *Log[E]) Redo() (E, bool) {
	if l.undone == 0 {
		var zero E
		return zero, false
	}
	event := l.events[len(l.events)-l.undone]
	l.undone--
	return event, true
}

// Len returns the total number of recorded events, undone ones included.
func (l *Log[E]) Len() int {
	return len(l.events)
}

// Undone returns the number of trailing events currently rolled back.
func (l *Log[E]) Undone() int {
	return l.undone
}

// Events returns the recorded events in order, oldest first. The slice is
// shared with the log and must not be modified by the caller.
func (l *Log[E]) Events() []E {
	return l.events
}

// Restore replaces the log's contents with a recorded event sequence and
// cursor, validating the cursor range. Used when reconstructing a log from
// persisted state.
func (l *Log[E]) Restore(events []E, undone int) error {
	if undone < 0 || undone > len(events) {
		return fmt.Errorf("%w: %d with %d events", ErrCursorOutOfRange, undone, len(events))
	}
	l.events = events
	l.undone = undone
	return nil
}

// Clone returns a deep copy of the log.
func (l *Log[E]) Clone() Log[E] {
	return Log[E]{events: slices.Clone(l.events), undone: l.undone}
}
