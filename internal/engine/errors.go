package engine

import (
	"errors"
	"fmt"

	"github.com/dshills/lscore/internal/engine/anchor"
	"github.com/dshills/lscore/internal/engine/buffer"
	"github.com/dshills/lscore/internal/engine/history"
)

// Errors returned by document operations.
var (
	// ErrNonexistentAnchor indicates a handle that names no anchor.
	ErrNonexistentAnchor = anchor.ErrNonexistentAnchor

	// ErrCannotRemoveAnchor indicates an attempt to remove the cursor or mark.
	ErrCannotRemoveAnchor = anchor.ErrCannotRemoveAnchor

	// ErrNoMoreUndos indicates the undo stack ran out.
	ErrNoMoreUndos = history.ErrNoMoreUndos

	// ErrNoMoreRedos indicates the redo stack ran out.
	ErrNoMoreRedos = history.ErrNoMoreRedos

	// ErrInvalidIndex indicates a line index outside the document.
	ErrInvalidIndex = errors.New("invalid line index")

	// ErrInvalidPosition indicates a position outside the document.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidRange indicates a range that is unordered, outside the
	// document, or empty where text is required.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmptyString indicates an insertion of no text.
	ErrEmptyString = errors.New("empty string")

	// ErrCannotParse indicates no parse tree is available.
	ErrCannotParse = errors.New("cannot parse")

	// ErrInvalidIndentation indicates an indentation with a width below one.
	ErrInvalidIndentation = errors.New("invalid indentation")
)

// AnchorError records a failed operation on an anchor handle.
type AnchorError struct {
	Op     string
	Handle anchor.Handle
	Err    error
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Handle, e.Err)
}

func (e *AnchorError) Unwrap() error { return e.Err }

// PositionError records a failed operation on a position.
type PositionError struct {
	Op       string
	Position buffer.Position
	Err      error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Position, e.Err)
}

func (e *PositionError) Unwrap() error { return e.Err }

// RangeError records a failed operation on a range.
type RangeError struct {
	Op    string
	Range buffer.Range
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Range, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }

// IndexError records a line index outside the document.
type IndexError struct {
	Op    string
	Index int
	Lines int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d: %v (document has %d lines)", e.Op, e.Index, ErrInvalidIndex, e.Lines)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// HistoryError records how many steps of a multi-step undo or redo
// completed before the stack ran out.
type HistoryError struct {
	Op        string
	Requested int
	Completed int
	Err       error
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("%s: %v after %d of %d", e.Op, e.Err, e.Completed, e.Requested)
}

func (e *HistoryError) Unwrap() error { return e.Err }
