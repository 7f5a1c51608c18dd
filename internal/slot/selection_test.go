package slot

import (
	"reflect"
	"testing"
)

func TestSelectionToggle(t *testing.T) {
	t.Run("double toggle is a net no-op", func(t *testing.T) {
		s := NewSelection()
		if !s.Toggle("2025-02-01_1") {
			t.Error("first toggle should select")
		}
		if s.Toggle("2025-02-01_1") {
			t.Error("second toggle should deselect")
		}
		if len(s.Snapshot()) != 0 {
			t.Errorf("got snapshot %v, want empty", s.Snapshot())
		}
	})

	t.Run("odd toggle count leaves it selected", func(t *testing.T) {
		s := NewSelection()
		for i := 0; i < 3; i++ {
			s.Toggle("2025-02-01_1")
		}
		if !s.Has("2025-02-01_1") {
			t.Error("expected slot selected after three toggles")
		}
	})
}

func TestSelectionReplaceAll(t *testing.T) {
	s := NewSelection()
	s.Toggle("old_1")
	s.ReplaceAll([]string{"a", "b", "a", "c"})

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(s.Snapshot(), want) {
		t.Errorf("got %v, want %v", s.Snapshot(), want)
	}
	if s.Has("old_1") {
		t.Error("replace should drop previous members")
	}
}

func TestSelectionClear(t *testing.T) {
	s := NewSelection()
	s.ReplaceAll([]string{"a", "b"})
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("got len %d, want 0", s.Len())
	}
	// Clearing twice is fine.
	s.Clear()
	if got := s.Snapshot(); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestSelectionSnapshotOrder(t *testing.T) {
	s := NewSelection()
	s.Toggle("c")
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("a") // remove
	s.Toggle("a") // re-add at the end

	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(s.Snapshot(), want) {
		t.Errorf("got %v, want %v", s.Snapshot(), want)
	}

	// Snapshot is a copy; mutating it must not affect the selection.
	s.Snapshot()[0] = "mutated"
	if s.Snapshot()[0] != "c" {
		t.Error("snapshot leaked internal state")
	}
}
