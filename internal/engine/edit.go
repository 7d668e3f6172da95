package engine

import (
	"fmt"

	"github.com/dshills/lscore/internal/engine/anchor"
	"github.com/dshills/lscore/internal/engine/buffer"
	"github.com/dshills/lscore/internal/engine/history"
)

// InsertOptions controls Insert.
type InsertOptions struct {
	// Range is replaced by the inserted text. Nil means the selection.
	Range *Range

	// Escapes requests expansion of escape sequences in the text.
	Escapes bool

	// Indent requests re-indenting inserted rows to the surrounding code.
	Indent bool

	// Spacing requests automatic spacing around the inserted text.
	Spacing bool
}

// Exact inserts the text verbatim over the selection.
func Exact() InsertOptions {
	return InsertOptions{}
}

// ExactAt inserts the text verbatim over r.
func ExactAt(r Range) InsertOptions {
	return InsertOptions{Range: &r}
}

// RemoveOptions controls Remove.
type RemoveOptions struct {
	// Range is removed. Nil means the selection.
	Range *Range
}

// Selection removes the selection.
func Selection() RemoveOptions {
	return RemoveOptions{}
}

// At removes r.
func At(r Range) RemoveOptions {
	return RemoveOptions{Range: &r}
}

// Insert places text over the target range, which is the selection unless
// opts names one. A non-empty target is removed first. Anchors at or after
// the insertion point move with the text that followed them.
//
// Only verbatim insertion is implemented; the Escapes, Indent and Spacing
// flags are accepted and ignored.
func (d *Document) Insert(text string, opts InsertOptions) error {
	if text == "" {
		return fmt.Errorf("insert: %w", ErrEmptyString)
	}
	target, err := d.resolve("insert", opts.Range)
	if err != nil {
		return err
	}
	if opts.Escapes || opts.Indent || opts.Spacing {
		d.log.Debug("insert formatting flags are not supported, inserting verbatim", "document", d.id.String())
	}

	if !target.IsEmpty() {
		d.remove(target)
	}
	d.insert(buffer.SplitLines(text), target.Beginning)
	d.updateParse()
	return nil
}

// Remove deletes the target range, which is the selection unless opts names
// one. Anchors inside the range collapse to its beginning; anchors after it
// move back with the text that followed them.
func (d *Document) Remove(opts RemoveOptions) error {
	target, err := d.resolve("remove", opts.Range)
	if err != nil {
		return err
	}
	if target.IsEmpty() {
		return &RangeError{Op: "remove", Range: target, Err: ErrInvalidRange}
	}

	d.remove(target)
	d.updateParse()
	return nil
}

func (d *Document) resolve(op string, r *Range) (Range, error) {
	if r == nil {
		return d.Selection(), nil
	}
	if !d.RangeValid(*r) {
		return Range{}, &RangeError{Op: op, Range: *r, Err: ErrInvalidRange}
	}
	return *r, nil
}

// insert records the insertion of lines at at and the anchor moves it
// causes. at must be valid.
func (d *Document) insert(lines []string, at Position) {
	extra := len(lines) - 1
	width := buffer.RuneCount(lines[extra])

	moves := d.rebase(func(p Position) Position {
		switch {
		case p.Row == at.Row && p.Column >= at.Column:
			if extra == 0 {
				return buffer.NewPosition(p.Row, p.Column+width)
			}
			return buffer.NewPosition(p.Row+extra, width+p.Column-at.Column)
		case p.Row > at.Row:
			return buffer.NewPosition(p.Row+extra, p.Column)
		default:
			return p
		}
	})

	d.perform(history.Insert{Lines: lines, Position: at})
	d.moveAnchors(moves)
}

// remove records the removal of r and the anchor moves it causes. r must be
// valid.
func (d *Document) remove(r Range) {
	b, e := r.Beginning, r.Ending

	moves := d.rebase(func(p Position) Position {
		switch {
		case p.Compare(b) <= 0:
			return p
		case p.Compare(e) <= 0:
			return b
		case p.Row == e.Row:
			return buffer.NewPosition(b.Row, b.Column+p.Column-e.Column)
		default:
			return buffer.NewPosition(p.Row-(e.Row-b.Row), p.Column)
		}
	})

	d.perform(history.Remove{Range: r})
	d.moveAnchors(moves)
}

type anchorMove struct {
	handle anchor.Handle
	to     Position
}

// rebase maps every anchor through fn and returns those that move, in
// handle order.
func (d *Document) rebase(fn func(Position) Position) []anchorMove {
	var moves []anchorMove
	for _, h := range d.anchors.Handles() {
		a, _ := d.anchors.Get(h)
		if to := fn(a.Position); to != a.Position {
			moves = append(moves, anchorMove{handle: h, to: to})
		}
	}
	return moves
}

func (d *Document) moveAnchors(moves []anchorMove) {
	for _, m := range moves {
		d.perform(history.AnchorSet{Handle: m.handle, Value: anchor.At(m.to)})
	}
}
