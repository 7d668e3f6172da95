package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/dshills/lscore/internal/engine/anchor"
	"github.com/dshills/lscore/internal/engine/buffer"
	"github.com/dshills/lscore/internal/engine/history"
	"github.com/dshills/lscore/internal/engine/syntax"
)

// Re-export commonly used types for convenience.
type (
	// Position is a row and codepoint column.
	Position = buffer.Position

	// Range is an ordered pair of positions.
	Range = buffer.Range

	// Indentation is an indentation policy.
	Indentation = buffer.Indentation

	// Handle identifies an anchor.
	Handle = anchor.Handle

	// Chain is a root-to-leaf sequence of syntactic regions.
	Chain = syntax.Chain
)

// Reserved anchor handles.
const (
	CursorHandle = anchor.Cursor
	MarkHandle   = anchor.Mark
)

// Document is a line-organized text buffer with anchors, undo/redo and
// syntactic context.
//
// A Document always holds at least one line and always holds the cursor and
// mark anchors. Every public mutation validates its arguments, records its
// inverse in the undo history, and leaves all anchors at valid positions.
//
// Document does no locking; callers serialize access.
type Document struct {
	id uuid.UUID

	lines       []buffer.Line
	anchors     *anchor.Store
	indentation buffer.Indentation
	language    string

	history        *history.Stacks
	maxUndoPackets int

	registry syntax.Registry
	parser   syntax.Parser
	tree     syntax.Tree
	dirty    bool // text or language changed since the last parse

	revision uint64

	log commonlog.Logger
}

// New creates an empty document: one empty line, cursor and mark at (0, 0).
func New(opts ...Option) *Document {
	return FromText("", opts...)
}

// FromText creates a document holding text. Line terminators "\r\n", "\n"
// and "\r" all split rows; the result always has at least one line.
func FromText(text string, opts ...Option) *Document {
	d := &Document{
		id:             uuid.New(),
		lines:          buffer.NewLines(buffer.SplitLines(text)),
		anchors:        anchor.NewStore(),
		indentation:    buffer.DefaultIndentation(),
		history:        history.NewStacks(),
		maxUndoPackets: DefaultMaxUndoPackets,
		registry:       syntax.NewTreeSitterRegistry(),
		log:            commonlog.GetLogger("lscore.engine"),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.history.SetMaxPackets(d.maxUndoPackets)
	d.dirty = true
	d.updateParse()

	return d
}

// ID returns the document's identity, stable for its lifetime.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Revision returns a counter that increases on every text mutation,
// including undo and redo.
func (d *Document) Revision() uint64 {
	return d.revision
}

// Text returns the whole document with rows joined by "\n".
func (d *Document) Text() string {
	return buffer.JoinLines(buffer.Texts(d.lines))
}

// TextRange returns the text within r, rows joined by "\n".
func (d *Document) TextRange(r Range) (string, error) {
	if !d.RangeValid(r) {
		return "", &RangeError{Op: "text range", Range: r, Err: ErrInvalidRange}
	}
	return buffer.JoinLines(d.linesIn(r)), nil
}

// linesIn returns the pieces of each row covered by r. r must be valid.
func (d *Document) linesIn(r Range) []string {
	b, e := r.Beginning, r.Ending
	if b.Row == e.Row {
		return []string{d.lines[b.Row].Slice(b.Column, e.Column)}
	}

	pieces := make([]string, 0, e.Row-b.Row+1)
	pieces = append(pieces, d.lines[b.Row].Tail(b.Column))
	for row := b.Row + 1; row < e.Row; row++ {
		pieces = append(pieces, d.lines[row].Text())
	}
	pieces = append(pieces, d.lines[e.Row].Head(e.Column))
	return pieces
}

// Line returns the text of row i.
func (d *Document) Line(i int) (string, error) {
	if i < 0 || i >= len(d.lines) {
		return "", &IndexError{Op: "line", Index: i, Lines: len(d.lines)}
	}
	return d.lines[i].Text(), nil
}

// Lines returns a copy of every row's text.
func (d *Document) Lines() []string {
	return buffer.Texts(d.lines)
}

// LineCount returns the number of rows. It is never less than one.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineLen returns the codepoint length of row i, or -1 if i is out of range.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.lines) {
		return -1
	}
	return d.lines[i].Len()
}

// End returns the position after the last codepoint of the document.
func (d *Document) End() Position {
	last := len(d.lines) - 1
	return buffer.NewPosition(last, d.lines[last].Len())
}

// PositionValid returns true if p addresses a row of the document and a
// column no greater than that row's codepoint length.
func (d *Document) PositionValid(p Position) bool {
	return p.Row >= 0 && p.Row < len(d.lines) &&
		p.Column >= 0 && p.Column <= d.lines[p.Row].Len()
}

// RangeValid returns true if both ends of r are valid and r is ordered.
func (d *Document) RangeValid(r Range) bool {
	return d.PositionValid(r.Beginning) && d.PositionValid(r.Ending) && r.IsOrdered()
}

// Indentation returns the indentation policy.
func (d *Document) Indentation() Indentation {
	return d.indentation
}

// Language returns the language identifier, or "" if none is set.
func (d *Document) Language() string {
	return d.language
}

// UndoRedoDepth returns the number of packets available to undo and redo.
func (d *Document) UndoRedoDepth() (undo, redo int) {
	return d.history.Depth()
}

// HasTree returns true if a parse tree is available.
func (d *Document) HasTree() bool {
	return d.tree != nil
}

// String returns a short description of the document for logs.
func (d *Document) String() string {
	return fmt.Sprintf("Document(%s, %d lines, %q)", d.id, len(d.lines), d.language)
}
