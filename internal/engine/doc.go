// Package engine provides the document model for lscore.
//
// The engine package serves as the main facade, combining line storage,
// anchors, undo/redo and syntactic context into one Document type.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: Position, Range, Line and Indentation values with codepoint helpers
//   - anchor: Handle-keyed store of tracked positions
//   - history: Self-inverting changes, packets and undo/redo stacks
//   - syntax: Parser collaborator interfaces, tree-sitter registry, context chains
//
// # Thread Safety
//
// Document does no locking. Callers serialize access.
//
// # Basic Usage
//
//	d := engine.FromText("Hello\nthere")
//
//	// Insert at an explicit range
//	at := buffer.EmptyRange(buffer.NewPosition(0, 5))
//	d.Insert(",", engine.ExactAt(at)) // "Hello,\nthere"
//
//	// Insert over the selection (cursor to mark)
//	d.SetCursor(buffer.NewPosition(1, 5))
//	d.Insert("!", engine.Exact()) // "Hello,\nthere!"
//
// # Columns
//
// Columns count Unicode codepoints. A flag emoji made of two regional
// indicators spans two columns, and a range may split it.
//
// # Anchors
//
// Anchors are positions that follow the text around them. The cursor and
// mark always exist under CursorHandle and MarkHandle; other anchors are
// created and removed by handle:
//
//	h, _ := d.CreateAnchor(buffer.NewPosition(1, 0))
//	d.Insert("x\n", engine.ExactAt(buffer.EmptyRange(buffer.NewPosition(0, 0))))
//	p, _ := d.Anchor(h) // (2, 0)
//
// # Undo/Redo
//
// Every mutation records its inverse. Mutations between two checkpoints
// form one packet, undone and redone as a unit:
//
//	d.Insert("a", engine.Exact())
//	d.Insert("b", engine.Exact())
//	d.Checkpoint()
//	d.Insert("c", engine.Exact())
//
//	d.Undo(1) // removes "c"
//	d.Undo(1) // removes "ab"
//	d.Redo(2)
//
// # Syntax
//
// With a language set, the document reparses after every text change using
// parsers from its registry (tree-sitter by default):
//
//	d := engine.FromText("package main", engine.WithLanguage("go"))
//	chain, _ := d.ContextAt(buffer.NewPosition(0, 8))
//	// source_file, package_clause, package_identifier
//
// # Error Handling
//
// Errors wrap package sentinels and can be tested with errors.Is:
//
//   - ErrNonexistentAnchor: Handle names no anchor
//   - ErrCannotRemoveAnchor: Cursor or mark removal
//   - ErrNoMoreUndos, ErrNoMoreRedos: History exhausted
//   - ErrInvalidIndex, ErrInvalidPosition, ErrInvalidRange: Out-of-bounds arguments
//   - ErrEmptyString: Insert of no text
//   - ErrCannotParse: No parse tree available
//   - ErrInvalidIndentation: Indentation width below one
//
// The concrete types AnchorError, PositionError, RangeError, IndexError and
// HistoryError carry the offending value.
package engine
