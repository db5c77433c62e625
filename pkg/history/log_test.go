package history_test

import (
	"errors"
	"testing"

	"github.com/AndrewKraevskii/screen-drawer/pkg/history"
)

func TestLogPushUndoRedo(t *testing.T) {
	t.Parallel()

	var log history.Log[string]

	log.Push("a")
	log.Push("b")
	log.Push("c")

	if log.Len() != 3 || log.Undone() != 0 {
		t.Fatalf("after pushes: len=%d undone=%d, want 3/0", log.Len(), log.Undone())
	}

	event, ok := log.Undo()
	if !ok || event != "c" {
		t.Fatalf("first undo = %q/%v, want c/true", event, ok)
	}
	event, ok = log.Undo()
	if !ok || event != "b" {
		t.Fatalf("second undo = %q/%v, want b/true", event, ok)
	}
	if log.Undone() != 2 {
		t.Fatalf("undone = %d, want 2", log.Undone())
	}

	event, ok = log.Redo()
	if !ok || event != "b" {
		t.Fatalf("redo = %q/%v, want b/true", event, ok)
	}
	if log.Undone() != 1 {
		t.Fatalf("undone after redo = %d, want 1", log.Undone())
	}
}

func TestLogUndoExhausted(t *testing.T) {
	t.Parallel()

	var log history.Log[int]

	if _, ok := log.Undo(); ok {
		t.Error("undo on empty log must report false")
	}

	log.Push(1)
	if _, ok := log.Undo(); !ok {
		t.Fatal("undo with one event must succeed")
	}
	if _, ok := log.Undo(); ok {
		t.Error("undo past the oldest event must report false")
	}
	if log.Undone() != 1 {
		t.Errorf("undone = %d, want 1", log.Undone())
	}
}

func TestLogRedoWithoutUndo(t *testing.T) {
	t.Parallel()

	var log history.Log[int]
	log.Push(1)

	if _, ok := log.Redo(); ok {
		t.Error("redo with nothing undone must report false")
	}
	if log.Undone() != 0 {
		t.Errorf("undone = %d, want 0", log.Undone())
	}
}

func TestLogPushDiscardsRedoableSuffix(t *testing.T) {
	t.Parallel()

	var log history.Log[string]
	log.Push("a")
	log.Push("b")
	log.Push("c")

	log.Undo()
	log.Undo()
	log.Push("d")

	if log.Len() != 2 || log.Undone() != 0 {
		t.Fatalf("after push over undone: len=%d undone=%d, want 2/0", log.Len(), log.Undone())
	}
	if _, ok := log.Redo(); ok {
		t.Error("redo after a fresh push must report false")
	}

	event, ok := log.Undo()
	if !ok || event != "d" {
		t.Errorf("undo = %q/%v, want d/true", event, ok)
	}
	event, ok = log.Undo()
	if !ok || event != "a" {
		t.Errorf("undo = %q/%v, want a/true (b and c discarded)", event, ok)
	}
}

func TestLogUndoRedoInverse(t *testing.T) {
	t.Parallel()

	var log history.Log[int]
	log.Push(7)
	log.Push(8)

	undone, _ := log.Undo()
	redone, _ := log.Redo()
	if undone != redone {
		t.Errorf("undo returned %d but redo returned %d", undone, redone)
	}
	if log.Undone() != 0 {
		t.Errorf("undone = %d, want 0 after undo+redo", log.Undone())
	}
}

func TestLogCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	var log history.Log[int]
	ops := []string{
		"push", "undo", "undo", "redo", "push", "push",
		"undo", "push", "redo", "redo", "undo", "undo", "undo",
	}

	for i, op := range ops {
		switch op {
		case "push":
			log.Push(i)
		case "undo":
			log.Undo()
		case "redo":
			log.Redo()
		}
		if log.Undone() < 0 || log.Undone() > log.Len() {
			t.Fatalf("after op %d (%s): undone=%d len=%d out of bounds", i, op, log.Undone(), log.Len())
		}
	}
}

func TestLogRestore(t *testing.T) {
	t.Parallel()

	t.Run("valid cursor", func(t *testing.T) {
		t.Parallel()

		var log history.Log[string]
		if err := log.Restore([]string{"a", "b", "c"}, 1); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if log.Len() != 3 || log.Undone() != 1 {
			t.Fatalf("len=%d undone=%d, want 3/1", log.Len(), log.Undone())
		}

		event, ok := log.Redo()
		if !ok || event != "c" {
			t.Errorf("redo = %q/%v, want c/true", event, ok)
		}
	})

	t.Run("cursor beyond events", func(t *testing.T) {
		t.Parallel()

		var log history.Log[string]
		err := log.Restore([]string{"a"}, 2)
		if !errors.Is(err, history.ErrCursorOutOfRange) {
			t.Errorf("err = %v, want ErrCursorOutOfRange", err)
		}
	})

	t.Run("negative cursor", func(t *testing.T) {
		t.Parallel()

		var log history.Log[string]
		err := log.Restore(nil, -1)
		if !errors.Is(err, history.ErrCursorOutOfRange) {
			t.Errorf("err = %v, want ErrCursorOutOfRange", err)
		}
	})
}

func TestLogClone(t *testing.T) {
	t.Parallel()

	var log history.Log[int]
	log.Push(1)
	log.Push(2)
	log.Undo()

	clone := log.Clone()
	clone.Push(3)

	if log.Len() != 2 || log.Undone() != 1 {
		t.Errorf("original mutated by clone edit: len=%d undone=%d", log.Len(), log.Undone())
	}
	if clone.Len() != 2 || clone.Undone() != 0 {
		t.Errorf("clone: len=%d undone=%d, want 2/0", clone.Len(), clone.Undone())
	}
}
