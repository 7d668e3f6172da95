// Package history provides the reversible change log behind undo and redo.
//
// Every mutation of a document is decomposed into small Change values. A
// Change is applied to a Target, which performs the edit without recording
// it and returns the exact Change that reverses it. Changes never carry
// side effects on anything else: an Insert does not move anchors. Anchor
// movement is recorded as separate AnchorSet changes, so the inverse of any
// change is always exactly one change.
//
// # Changes
//
// The variants form a closed set:
//   - Insert / Remove: text
//   - AnchorSet / AnchorInsert / AnchorRemove: anchors
//   - IndentationChange: the indentation policy
//   - LanguageChange: the language identifier
//
// # Packets
//
// Changes are grouped into Packets. One packet is one user-visible undo
// step. Reverting a packet applies the inverses of its changes in reverse
// order.
//
// # Stacks
//
// Stacks holds the undo and redo packets:
//
//	stacks := history.NewStacks()
//	stacks.PushUndo(inverse)   // joins the top packet
//	stacks.Checkpoint()        // the next push starts a new packet
//	stacks.UndoOnce(target)    // revert the top packet onto the redo stack
//	stacks.RedoOnce(target)
package history
