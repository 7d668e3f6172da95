package engine

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/dshills/lscore/internal/engine/buffer"
)

func TestCheckpointGrouping(t *testing.T) {
	t.Run("without checkpoint", func(t *testing.T) {
		d := New()
		_ = d.Insert("a", Exact())
		_ = d.Insert("b", Exact())

		if undo, _ := d.UndoRedoDepth(); undo != 1 {
			t.Fatalf("expected one packet, got %d", undo)
		}
		if n, err := d.Undo(1); n != 1 || err != nil {
			t.Fatalf("Undo(1) = %d, %v", n, err)
		}
		if d.Text() != "" {
			t.Errorf("Text() = %q", d.Text())
		}
	})

	t.Run("with checkpoint", func(t *testing.T) {
		d := New()
		_ = d.Insert("a", Exact())
		d.Checkpoint()
		_ = d.Insert("b", Exact())

		if undo, _ := d.UndoRedoDepth(); undo != 2 {
			t.Fatalf("expected two packets, got %d", undo)
		}
		_ = d.UndoOnce()
		if d.Text() != "a" {
			t.Errorf("after first undo: %q", d.Text())
		}
		_ = d.UndoOnce()
		if d.Text() != "" {
			t.Errorf("after second undo: %q", d.Text())
		}
	})

	t.Run("repeated checkpoints", func(t *testing.T) {
		d := New()
		d.Checkpoint()
		d.Checkpoint()
		_ = d.Insert("a", Exact())
		d.Checkpoint()
		d.Checkpoint()
		_ = d.Insert("b", Exact())

		if undo, _ := d.UndoRedoDepth(); undo != 2 {
			t.Errorf("expected two packets, got %d", undo)
		}
	})
}

func TestRemoveAcrossRowsUndo(t *testing.T) {
	d := FromText("abc\ndef\nghi")
	for _, p := range []Position{pos(0, 1), pos(1, 2), pos(2, 1), pos(2, 3)} {
		_, _ = d.CreateAnchor(p)
	}
	_ = d.SetCursorAndMark(pos(1, 0), pos(0, 3))
	d.Checkpoint()
	before := capture(d)

	if err := d.Remove(At(buffer.RangeFrom(0, 1, 1, 2))); err != nil {
		t.Fatal(err)
	}
	assertAnchorsValid(t, d)

	if _, err := d.Undo(1); err != nil {
		t.Fatal(err)
	}
	if after := capture(d); !reflect.DeepEqual(after, before) {
		t.Errorf("undo did not restore:\n got %+v\nwant %+v", after, before)
	}
}

func TestUndoRedoSymmetry(t *testing.T) {
	d := FromText("Hello\nworld")
	_ = d.Insert("X", at(0, 2))
	d.Checkpoint()
	h, _ := d.CreateAnchor(pos(1, 3))
	_ = d.SetIndentation(buffer.Tabs(2))
	d.Checkpoint()
	_ = d.Remove(At(buffer.RangeFrom(0, 4, 1, 1)))
	d.Checkpoint()
	d.SetLanguage("none")

	final := capture(d)

	n, err := d.Undo(4)
	if n != 4 || err != nil {
		t.Fatalf("Undo(4) = %d, %v", n, err)
	}
	if d.Text() != "Hello\nworld" {
		t.Errorf("after undo: %q", d.Text())
	}
	if _, err := d.Anchor(h); !errors.Is(err, ErrNonexistentAnchor) {
		t.Errorf("anchor should be gone after undo, got %v", err)
	}

	n, err = d.Redo(4)
	if n != 4 || err != nil {
		t.Fatalf("Redo(4) = %d, %v", n, err)
	}
	if got := capture(d); !reflect.DeepEqual(got, final) {
		t.Errorf("redo did not restore:\n got %+v\nwant %+v", got, final)
	}
}

func TestUndoExhausted(t *testing.T) {
	d := New()
	_ = d.Insert("a", Exact())
	d.Checkpoint()
	_ = d.Insert("b", Exact())

	n, err := d.Undo(5)
	if n != 2 {
		t.Errorf("expected 2 undos, got %d", n)
	}
	if !errors.Is(err, ErrNoMoreUndos) {
		t.Fatalf("expected ErrNoMoreUndos, got %v", err)
	}
	var he *HistoryError
	if !errors.As(err, &he) || he.Completed != 2 || he.Requested != 5 || he.Op != "undo" {
		t.Errorf("expected *HistoryError, got %#v", err)
	}

	n, err = d.Redo(3)
	if n != 2 || !errors.Is(err, ErrNoMoreRedos) {
		t.Errorf("Redo(3) = %d, %v", n, err)
	}
	if d.Text() != "ab" {
		t.Errorf("Text() = %q", d.Text())
	}
}

func TestUndoOnceEmpty(t *testing.T) {
	d := New()
	if err := d.UndoOnce(); !errors.Is(err, ErrNoMoreUndos) {
		t.Errorf("expected ErrNoMoreUndos, got %v", err)
	}
	if err := d.RedoOnce(); !errors.Is(err, ErrNoMoreRedos) {
		t.Errorf("expected ErrNoMoreRedos, got %v", err)
	}
	if n, err := d.Undo(0); n != 0 || err != nil {
		t.Errorf("Undo(0) = %d, %v", n, err)
	}
}

func TestEditAfterUndoClearsRedo(t *testing.T) {
	d := New()
	_ = d.Insert("a", Exact())
	_ = d.UndoOnce()

	if _, redo := d.UndoRedoDepth(); redo != 1 {
		t.Fatalf("expected one redo, got %d", redo)
	}
	_ = d.Insert("b", Exact())
	if _, redo := d.UndoRedoDepth(); redo != 0 {
		t.Errorf("edit should clear redo, got %d", redo)
	}
}

func TestEditAfterUndoStartsNewPacket(t *testing.T) {
	d := New()
	_ = d.Insert("a", Exact())
	d.Checkpoint()
	_ = d.Insert("b", Exact())
	_ = d.UndoOnce()
	_ = d.Insert("c", Exact())

	if undo, _ := d.UndoRedoDepth(); undo != 2 {
		t.Fatalf("expected two packets, got %d", undo)
	}
	_ = d.UndoOnce()
	if d.Text() != "a" {
		t.Errorf("Text() = %q", d.Text())
	}
}

func TestCheckpointClearsRedo(t *testing.T) {
	d := New()
	_ = d.Insert("a", Exact())
	_ = d.UndoOnce()
	d.Checkpoint()

	if _, redo := d.UndoRedoDepth(); redo != 0 {
		t.Errorf("checkpoint should clear redo, got %d", redo)
	}
}

func TestForget(t *testing.T) {
	d := New()
	_ = d.Insert("a", Exact())
	d.Checkpoint()
	_ = d.Insert("b", Exact())
	_ = d.UndoOnce()

	d.ForgetRedos()
	if undo, redo := d.UndoRedoDepth(); undo != 1 || redo != 0 {
		t.Errorf("after ForgetRedos: (%d, %d)", undo, redo)
	}

	d.ForgetEverything()
	if undo, redo := d.UndoRedoDepth(); undo != 0 || redo != 0 {
		t.Errorf("after ForgetEverything: (%d, %d)", undo, redo)
	}
	if d.Text() != "a" {
		t.Errorf("forgetting history changed the text to %q", d.Text())
	}
}

func TestMaxUndoPackets(t *testing.T) {
	d := New(WithMaxUndoPackets(2))
	for _, s := range []string{"a", "b", "c"} {
		d.Checkpoint()
		_ = d.Insert(s, Exact())
	}

	n, err := d.Undo(3)
	if n != 2 || !errors.Is(err, ErrNoMoreUndos) {
		t.Errorf("Undo(3) = %d, %v", n, err)
	}
	if d.Text() != "a" {
		t.Errorf("Text() = %q", d.Text())
	}
}

func TestSetIndentation(t *testing.T) {
	d := New()

	if err := d.SetIndentation(buffer.Indentation{SpacesPerTab: 0}); !errors.Is(err, ErrInvalidIndentation) {
		t.Errorf("expected ErrInvalidIndentation, got %v", err)
	}

	if err := d.SetIndentation(buffer.Tabs(8)); err != nil {
		t.Fatal(err)
	}
	if d.Indentation() != buffer.Tabs(8) {
		t.Errorf("Indentation() = %s", d.Indentation())
	}

	_ = d.UndoOnce()
	if d.Indentation() != buffer.DefaultIndentation() {
		t.Errorf("after undo: %s", d.Indentation())
	}
}

func TestUnchangedSettersAreRecorded(t *testing.T) {
	tests := []struct {
		name string
		set  func(d *Document) error
	}{
		{"indentation", func(d *Document) error { return d.SetIndentation(d.Indentation()) }},
		{"language", func(d *Document) error { d.SetLanguage(d.Language()); return nil }},
		{"mark", func(d *Document) error { return d.SetMark(d.Mark()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromText("abc", WithRegistry(nil))
			if err := tt.set(d); err != nil {
				t.Fatal(err)
			}
			if undo, _ := d.UndoRedoDepth(); undo != 1 {
				t.Fatalf("undo depth %d, want 1", undo)
			}

			before := capture(d)
			if err := d.UndoOnce(); err != nil {
				t.Fatal(err)
			}
			if got := capture(d); !reflect.DeepEqual(got, before) {
				t.Errorf("undo changed state:\n got %+v\nwant %+v", got, before)
			}
		})
	}
}

func TestRevision(t *testing.T) {
	d := FromText("abc")
	if d.Revision() != 0 {
		t.Fatalf("initial revision %d", d.Revision())
	}

	_ = d.SetCursor(pos(0, 1))
	if d.Revision() != 0 {
		t.Errorf("anchor move bumped revision to %d", d.Revision())
	}

	_ = d.Insert("x", Exact())
	r := d.Revision()
	if r == 0 {
		t.Error("insert should bump revision")
	}

	_ = d.UndoOnce()
	if d.Revision() <= r {
		t.Errorf("undo should bump revision, got %d after %d", d.Revision(), r)
	}
}

// TestRandomEditsUndoRedo drives a document through random edits, each in
// its own packet, then checks that undo and redo walk back and forth through
// exactly the recorded states.
func TestRandomEditsUndoRedo(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pieces := []string{"a", "bc", "\n", "兄", "😀", "\U0001F44D\U0001F3FD", "\U0001F1FA\U0001F1F8", "x\ny", "\r\n"}

	randomPosition := func(d *Document) Position {
		row := rng.Intn(d.LineCount())
		return pos(row, rng.Intn(d.LineLen(row)+1))
	}

	for round := 0; round < 20; round++ {
		d := FromText("first line\nsecond\n\nlast 兄弟")
		states := []state{capture(d)}

		for step := 0; step < 40; step++ {
			d.Checkpoint()

			switch op := rng.Intn(4); {
			case op == 0:
				if _, err := d.CreateAnchor(randomPosition(d)); err != nil {
					t.Fatal(err)
				}
			case op == 1:
				r := buffer.NewRange(randomPosition(d), randomPosition(d))
				if !r.IsEmpty() {
					if err := d.Remove(At(r)); err != nil {
						t.Fatal(err)
					}
					break
				}
				fallthrough
			default:
				text := pieces[rng.Intn(len(pieces))]
				if err := d.Insert(text, ExactAt(buffer.EmptyRange(randomPosition(d)))); err != nil {
					t.Fatal(err)
				}
			}

			assertAnchorsValid(t, d)
			states = append(states, capture(d))
		}

		for i := len(states) - 2; i >= 0; i-- {
			if err := d.UndoOnce(); err != nil {
				t.Fatalf("round %d: undo to state %d: %v", round, i, err)
			}
			assertAnchorsValid(t, d)
			if got := capture(d); !reflect.DeepEqual(got, states[i]) {
				t.Fatalf("round %d: undo to state %d:\n got %+v\nwant %+v", round, i, got, states[i])
			}
		}

		if n, err := d.Redo(len(states) - 1); err != nil || n != len(states)-1 {
			t.Fatalf("round %d: Redo = %d, %v", round, n, err)
		}
		if got := capture(d); !reflect.DeepEqual(got, states[len(states)-1]) {
			t.Fatalf("round %d: redo did not restore final state", round)
		}
	}
}
