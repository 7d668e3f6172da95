package anchor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/lscore/internal/engine/buffer"
)

// Errors returned by store operations.
var (
	// ErrNonexistentAnchor indicates the handle does not name an anchor.
	ErrNonexistentAnchor = errors.New("nonexistent anchor")

	// ErrCannotRemoveAnchor indicates an attempt to remove the cursor or mark.
	ErrCannotRemoveAnchor = errors.New("cannot remove reserved anchor")

	// ErrHandleInUse indicates a forced handle already names an anchor.
	ErrHandleInUse = errors.New("anchor handle in use")
)

// Handle is an opaque, stable identifier for an anchor.
type Handle uint64

// Reserved handles.
const (
	Cursor Handle = 0
	Mark   Handle = 1

	firstHandle Handle = 2
)

// IsReserved returns true for the cursor and mark handles.
func (h Handle) IsReserved() bool {
	return h < firstHandle
}

// String returns a human-readable representation of the handle.
func (h Handle) String() string {
	switch h {
	case Cursor:
		return "cursor"
	case Mark:
		return "mark"
	default:
		return fmt.Sprintf("anchor#%d", uint64(h))
	}
}

// Anchor is a tracked position.
// Anchor is an immutable value type.
type Anchor struct {
	Position buffer.Position
}

// At returns an anchor at p.
func At(p buffer.Position) Anchor {
	return Anchor{Position: p}
}

// String returns a human-readable representation of the anchor.
func (a Anchor) String() string {
	return fmt.Sprintf("Anchor%s", a.Position)
}

// Store maps handles to anchors.
// The cursor and mark are always present.
type Store struct {
	anchors map[Handle]Anchor
	next    Handle
}

// NewStore creates a store holding only the cursor and mark, both at (0, 0).
func NewStore() *Store {
	return &Store{
		anchors: map[Handle]Anchor{
			Cursor: {},
			Mark:   {},
		},
		next: firstHandle,
	}
}

// Get returns the anchor for h.
func (s *Store) Get(h Handle) (Anchor, bool) {
	a, ok := s.anchors[h]
	return a, ok
}

// Has returns true if h names an anchor.
func (s *Store) Has(h Handle) bool {
	_, ok := s.anchors[h]
	return ok
}

// Set replaces the anchor for an existing handle.
func (s *Store) Set(h Handle, value Anchor) error {
	if _, ok := s.anchors[h]; !ok {
		return fmt.Errorf("set %s: %w", h, ErrNonexistentAnchor)
	}
	s.anchors[h] = value
	return nil
}

// Create adds an anchor under a fresh handle and returns the handle.
func (s *Store) Create(value Anchor) Handle {
	h := s.next
	s.next++
	s.anchors[h] = value
	return h
}

// CreateAt adds an anchor under a specific handle. It exists so that undo
// and redo can bring a removed anchor back under its original identity.
// The counter is advanced past h so the handle is never issued again.
func (s *Store) CreateAt(h Handle, value Anchor) error {
	if _, ok := s.anchors[h]; ok {
		return fmt.Errorf("create %s: %w", h, ErrHandleInUse)
	}
	s.anchors[h] = value
	if h >= s.next {
		s.next = h + 1
	}
	return nil
}

// Remove deletes the anchor for h.
func (s *Store) Remove(h Handle) error {
	if h.IsReserved() {
		return fmt.Errorf("remove %s: %w", h, ErrCannotRemoveAnchor)
	}
	if _, ok := s.anchors[h]; !ok {
		return fmt.Errorf("remove %s: %w", h, ErrNonexistentAnchor)
	}
	delete(s.anchors, h)
	return nil
}

// Each calls fn for every anchor in unspecified order.
// fn must not add or remove anchors.
func (s *Store) Each(fn func(h Handle, a Anchor)) {
	for h, a := range s.anchors {
		fn(h, a)
	}
}

// Handles returns all handles in ascending order.
func (s *Store) Handles() []Handle {
	result := make([]Handle, 0, len(s.anchors))
	for h := range s.anchors {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Len returns the number of anchors, including the cursor and mark.
func (s *Store) Len() int {
	return len(s.anchors)
}

// NextHandle returns the handle the next Create call will assign.
func (s *Store) NextHandle() Handle {
	return s.next
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	clone := &Store{
		anchors: make(map[Handle]Anchor, len(s.anchors)),
		next:    s.next,
	}
	for h, a := range s.anchors {
		clone.anchors[h] = a
	}
	return clone
}

// Equal returns true if both stores hold the same handles at the same
// positions. The handle counters are not compared.
func (s *Store) Equal(other *Store) bool {
	if len(s.anchors) != len(other.anchors) {
		return false
	}
	for h, a := range s.anchors {
		if b, ok := other.anchors[h]; !ok || a != b {
			return false
		}
	}
	return true
}
