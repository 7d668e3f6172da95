package engine

import (
	"github.com/dshills/lscore/internal/engine/anchor"
	"github.com/dshills/lscore/internal/engine/buffer"
	"github.com/dshills/lscore/internal/engine/history"
)

// Anchor returns the position of the anchor named by h.
func (d *Document) Anchor(h Handle) (Position, error) {
	a, ok := d.anchors.Get(h)
	if !ok {
		return Position{}, &AnchorError{Op: "anchor", Handle: h, Err: ErrNonexistentAnchor}
	}
	return a.Position, nil
}

// Handles returns every anchor handle in ascending order, cursor and mark
// first.
func (d *Document) Handles() []Handle {
	return d.anchors.Handles()
}

// Cursor returns the cursor position.
func (d *Document) Cursor() Position {
	a, _ := d.anchors.Get(anchor.Cursor)
	return a.Position
}

// Mark returns the mark position.
func (d *Document) Mark() Position {
	a, _ := d.anchors.Get(anchor.Mark)
	return a.Position
}

// Selection returns the ordered range between the cursor and the mark.
func (d *Document) Selection() Range {
	return buffer.NewRange(d.Cursor(), d.Mark())
}

// SetAnchor moves the anchor named by h to p. The move is recorded even when
// the anchor is already at p.
func (d *Document) SetAnchor(h Handle, p Position) error {
	if !d.anchors.Has(h) {
		return &AnchorError{Op: "set anchor", Handle: h, Err: ErrNonexistentAnchor}
	}
	if !d.PositionValid(p) {
		return &PositionError{Op: "set anchor", Position: p, Err: ErrInvalidPosition}
	}
	d.perform(history.AnchorSet{Handle: h, Value: anchor.At(p)})
	return nil
}

// CreateAnchor adds an anchor at p and returns its handle. Handles are
// never reused, even after the anchor is removed.
func (d *Document) CreateAnchor(p Position) (Handle, error) {
	if !d.PositionValid(p) {
		return 0, &PositionError{Op: "create anchor", Position: p, Err: ErrInvalidPosition}
	}
	h := d.anchors.NextHandle()
	d.perform(history.AnchorInsert{Handle: h, Value: anchor.At(p)})
	return h, nil
}

// RemoveAnchor deletes the anchor named by h. The cursor and mark cannot be
// removed.
func (d *Document) RemoveAnchor(h Handle) error {
	if h.IsReserved() {
		return &AnchorError{Op: "remove anchor", Handle: h, Err: ErrCannotRemoveAnchor}
	}
	if !d.anchors.Has(h) {
		return &AnchorError{Op: "remove anchor", Handle: h, Err: ErrNonexistentAnchor}
	}
	d.perform(history.AnchorRemove{Handle: h})
	return nil
}

// SetCursor moves the cursor to p.
func (d *Document) SetCursor(p Position) error {
	return d.SetAnchor(anchor.Cursor, p)
}

// SetMark moves the mark to p.
func (d *Document) SetMark(p Position) error {
	return d.SetAnchor(anchor.Mark, p)
}

// SetCursorAndMark moves both reserved anchors. Neither moves unless both
// positions are valid. Pass the same position twice to collapse the
// selection.
func (d *Document) SetCursorAndMark(cursor, mark Position) error {
	for _, p := range []Position{cursor, mark} {
		if !d.PositionValid(p) {
			return &PositionError{Op: "set cursor and mark", Position: p, Err: ErrInvalidPosition}
		}
	}
	_ = d.SetAnchor(anchor.Cursor, cursor)
	_ = d.SetAnchor(anchor.Mark, mark)
	return nil
}

// SetSelection places the mark at the beginning of r and the cursor at its
// end.
func (d *Document) SetSelection(r Range) error {
	if !d.RangeValid(r) {
		return &RangeError{Op: "set selection", Range: r, Err: ErrInvalidRange}
	}
	return d.SetCursorAndMark(r.Ending, r.Beginning)
}
