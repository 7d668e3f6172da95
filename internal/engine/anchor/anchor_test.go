package anchor

import (
	"errors"
	"testing"

	"github.com/dshills/lscore/internal/engine/buffer"
)

func TestNewStoreReserved(t *testing.T) {
	s := NewStore()

	if s.Len() != 2 {
		t.Fatalf("expected 2 anchors, got %d", s.Len())
	}
	for _, h := range []Handle{Cursor, Mark} {
		a, ok := s.Get(h)
		if !ok {
			t.Fatalf("%s missing", h)
		}
		if !a.Position.IsZero() {
			t.Errorf("%s at %s, want origin", h, a.Position)
		}
	}
	if s.NextHandle() != 2 {
		t.Errorf("counter should start at 2, got %d", s.NextHandle())
	}
}

func TestStoreCreateMonotonic(t *testing.T) {
	s := NewStore()

	h1 := s.Create(At(buffer.NewPosition(0, 1)))
	h2 := s.Create(At(buffer.NewPosition(0, 2)))
	if h1 != 2 || h2 != 3 {
		t.Fatalf("handles = %d, %d; want 2, 3", h1, h2)
	}

	if err := s.Remove(h2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	h3 := s.Create(At(buffer.Position{}))
	if h3 != 4 {
		t.Errorf("handle reused: got %d, want 4", h3)
	}
}

func TestStoreSet(t *testing.T) {
	s := NewStore()

	if err := s.Set(Cursor, At(buffer.NewPosition(1, 3))); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	a, _ := s.Get(Cursor)
	if a.Position != buffer.NewPosition(1, 3) {
		t.Errorf("cursor at %s", a.Position)
	}

	err := s.Set(42, At(buffer.Position{}))
	if !errors.Is(err, ErrNonexistentAnchor) {
		t.Errorf("expected ErrNonexistentAnchor, got %v", err)
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name     string
		handle   Handle
		expected error
	}{
		{"cursor", Cursor, ErrCannotRemoveAnchor},
		{"mark", Mark, ErrCannotRemoveAnchor},
		{"missing", 7, ErrNonexistentAnchor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Remove(tt.handle); !errors.Is(err, tt.expected) {
				t.Errorf("Remove(%d) = %v, want %v", tt.handle, err, tt.expected)
			}
		})
	}

	if s.Len() != 2 {
		t.Errorf("failed removals changed the store: len %d", s.Len())
	}
}

func TestStoreCreateAt(t *testing.T) {
	s := NewStore()
	h := s.Create(At(buffer.NewPosition(0, 4)))
	if err := s.Remove(h); err != nil {
		t.Fatal(err)
	}

	if err := s.CreateAt(h, At(buffer.NewPosition(0, 4))); err != nil {
		t.Fatalf("CreateAt failed: %v", err)
	}
	if a, ok := s.Get(h); !ok || a.Position != buffer.NewPosition(0, 4) {
		t.Errorf("anchor not restored: %v %v", a, ok)
	}

	if err := s.CreateAt(h, At(buffer.Position{})); !errors.Is(err, ErrHandleInUse) {
		t.Errorf("expected ErrHandleInUse, got %v", err)
	}
	if err := s.CreateAt(Cursor, At(buffer.Position{})); !errors.Is(err, ErrHandleInUse) {
		t.Errorf("expected ErrHandleInUse for cursor, got %v", err)
	}

	if err := s.CreateAt(10, At(buffer.Position{})); err != nil {
		t.Fatal(err)
	}
	if s.NextHandle() != 11 {
		t.Errorf("counter not advanced past forced handle: %d", s.NextHandle())
	}
}

func TestStoreHandlesSorted(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Create(At(buffer.Position{}))
	}

	handles := s.Handles()
	for i, h := range handles {
		if h != Handle(i) {
			t.Fatalf("Handles() = %v", handles)
		}
	}
}

func TestStoreCloneEqual(t *testing.T) {
	s := NewStore()
	s.Create(At(buffer.NewPosition(2, 2)))

	clone := s.Clone()
	if !s.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	_ = clone.Set(Mark, At(buffer.NewPosition(1, 1)))
	if s.Equal(clone) {
		t.Error("modifying clone should not affect original")
	}
	if a, _ := s.Get(Mark); !a.Position.IsZero() {
		t.Error("original mark moved")
	}
}

func TestStoreEach(t *testing.T) {
	s := NewStore()
	a := s.Create(At(buffer.NewPosition(1, 2)))
	b := s.Create(At(buffer.NewPosition(3, 0)))
	_ = s.Remove(a)

	seen := make(map[Handle]buffer.Position)
	s.Each(func(h Handle, an Anchor) {
		if _, dup := seen[h]; dup {
			t.Errorf("handle %s visited twice", h)
		}
		seen[h] = an.Position
	})

	want := map[Handle]buffer.Position{
		Cursor: {},
		Mark:   {},
		b:      buffer.NewPosition(3, 0),
	}
	if len(seen) != len(want) {
		t.Fatalf("visited %d anchors, want %d", len(seen), len(want))
	}
	for h, p := range want {
		if got, ok := seen[h]; !ok || got != p {
			t.Errorf("%s: got %s (visited %v), want %s", h, got, ok, p)
		}
	}
}

func TestHandleString(t *testing.T) {
	tests := []struct {
		h        Handle
		expected string
	}{
		{Cursor, "cursor"},
		{Mark, "mark"},
		{5, "anchor#5"},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.expected {
			t.Errorf("Handle(%d).String() = %q, want %q", tt.h, got, tt.expected)
		}
	}
}
