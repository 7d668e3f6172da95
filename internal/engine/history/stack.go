package history

import "errors"

// Common errors for history operations.
var (
	ErrNoMoreUndos = errors.New("no more undos")
	ErrNoMoreRedos = errors.New("no more redos")
)

// Stacks holds undo and redo packets for one document.
//
// Stacks does no locking; it belongs to exactly one document and is mutated
// only from the document's owner.
type Stacks struct {
	undoStack []*Packet
	redoStack []*Packet

	// checkpoint is set when the next PushUndo must start a new packet.
	checkpoint bool

	// maxPackets bounds the undo stack; 0 means unbounded.
	maxPackets int
}

// NewStacks creates empty stacks with no packet limit.
func NewStacks() *Stacks {
	return &Stacks{}
}

// PushUndo records the inverse of a change that was just performed.
// The redo stack is cleared. The change joins the top undo packet unless the
// undo stack is empty or a checkpoint was requested.
func (s *Stacks) PushUndo(c Change) {
	s.redoStack = nil

	if len(s.undoStack) == 0 || s.checkpoint {
		s.undoStack = append(s.undoStack, &Packet{})
		s.enforceLimit()
	}
	top := s.undoStack[len(s.undoStack)-1]
	top.Add(c)

	s.checkpoint = false
}

// Checkpoint requests that the next PushUndo start a new packet.
// The redo stack is cleared. Repeated calls before the next push have no
// further effect.
func (s *Stacks) Checkpoint() {
	s.redoStack = nil
	s.checkpoint = true
}

// UndoOnce reverts the top undo packet onto t and pushes the result onto the
// redo stack. The packet that was reverted is returned.
func (s *Stacks) UndoOnce(t Target) (*Packet, error) {
	if len(s.undoStack) == 0 {
		return nil, ErrNoMoreUndos
	}

	packet := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]

	s.redoStack = append(s.redoStack, packet.Revert(t))

	// Later edits must not merge into a packet that was already undone.
	s.checkpoint = true
	return packet, nil
}

// RedoOnce reverts the top redo packet onto t and pushes the result onto the
// undo stack. The packet that was reverted is returned.
func (s *Stacks) RedoOnce(t Target) (*Packet, error) {
	if len(s.redoStack) == 0 {
		return nil, ErrNoMoreRedos
	}

	packet := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]

	s.undoStack = append(s.undoStack, packet.Revert(t))
	s.enforceLimit()

	s.checkpoint = true
	return packet, nil
}

// ForgetEverything drops all undo and redo history.
func (s *Stacks) ForgetEverything() {
	s.undoStack = nil
	s.redoStack = nil
	s.checkpoint = false
}

// ForgetRedos drops the redo history.
func (s *Stacks) ForgetRedos() {
	s.redoStack = nil
}

// Depth returns the number of undo and redo packets available.
func (s *Stacks) Depth() (undo, redo int) {
	return len(s.undoStack), len(s.redoStack)
}

// CanRedo returns true if redo is available.
func (s *Stacks) CanRedo() bool {
	return len(s.redoStack) > 0
}

// PeekUndo returns the next packet UndoOnce would revert.
func (s *Stacks) PeekUndo() (*Packet, bool) {
	if len(s.undoStack) == 0 {
		return nil, false
	}
	return s.undoStack[len(s.undoStack)-1], true
}

// SetMaxPackets bounds the undo stack to max packets, dropping the oldest
// packets when the bound is exceeded. Zero or a negative value removes the
// bound.
func (s *Stacks) SetMaxPackets(max int) {
	if max < 0 {
		max = 0
	}
	s.maxPackets = max
	s.enforceLimit()
}

// MaxPackets returns the undo stack bound, or 0 if unbounded.
func (s *Stacks) MaxPackets() int {
	return s.maxPackets
}

func (s *Stacks) enforceLimit() {
	if s.maxPackets == 0 || len(s.undoStack) <= s.maxPackets {
		return
	}
	excess := len(s.undoStack) - s.maxPackets
	s.undoStack = s.undoStack[excess:]
}
