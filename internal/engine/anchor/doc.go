// Package anchor provides the handle-keyed store of tracked positions used by
// a document.
//
// Anchors represent cursors, marks, breakpoints, folds and anything else that
// needs to stay attached to a place in the text while the text changes.
// Clients never hold an anchor directly; they hold a Handle and look the
// anchor up. Handles are never reused, so a handle held across edits either
// still names the same anchor or names nothing.
//
// # Reserved Handles
//
// Every store contains Cursor (handle 0) and Mark (handle 1). They cannot be
// removed. New anchors receive handles from a counter that starts at 2.
//
// # Performance
//
// Lookups are O(1). Text edits rebase every anchor, so an edit costs O(n) in
// the number of anchors.
package anchor
