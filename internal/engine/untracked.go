package engine

import (
	"fmt"
	"slices"

	"github.com/dshills/lscore/internal/engine/anchor"
	"github.com/dshills/lscore/internal/engine/buffer"
	"github.com/dshills/lscore/internal/engine/history"
)

// untracked exposes a document's unrecorded primitives to the history
// package. Each primitive returns its inverse and panics on input that
// public operations would have rejected.
type untracked Document

var _ history.Target = (*untracked)(nil)

func (d *Document) target() *untracked {
	return (*untracked)(d)
}

func (u *untracked) doc() *Document {
	return (*Document)(u)
}

// perform applies c without validation and records its inverse.
func (d *Document) perform(c history.Change) {
	d.history.PushUndo(history.Apply(c, d.target()))
}

func (d *Document) textChanged() {
	d.dirty = true
	d.revision++
}

func (u *untracked) InsertUntracked(lines []string, at buffer.Position) history.Change {
	d := u.doc()
	if len(lines) == 0 {
		panic("engine: insert of zero lines")
	}
	if !d.PositionValid(at) {
		panic(fmt.Sprintf("engine: insert at invalid position %s", at))
	}

	row := d.lines[at.Row]
	head, tail := row.Head(at.Column), row.Tail(at.Column)

	if len(lines) == 1 {
		d.lines[at.Row] = buffer.NewLine(head + lines[0] + tail)
	} else {
		replacement := make([]buffer.Line, 0, len(lines))
		replacement = append(replacement, buffer.NewLine(head+lines[0]))
		for _, l := range lines[1 : len(lines)-1] {
			replacement = append(replacement, buffer.NewLine(l))
		}
		replacement = append(replacement, buffer.NewLine(lines[len(lines)-1]+tail))
		d.lines = slices.Replace(d.lines, at.Row, at.Row+1, replacement...)
	}
	d.textChanged()

	ins := history.Insert{Lines: lines, Position: at}
	return history.Remove{Range: ins.Span()}
}

func (u *untracked) RemoveUntracked(r buffer.Range) history.Change {
	d := u.doc()
	if !d.RangeValid(r) {
		panic(fmt.Sprintf("engine: remove of invalid range %s", r))
	}

	removed := d.linesIn(r)
	b, e := r.Beginning, r.Ending
	if b.Row == e.Row {
		d.lines[b.Row] = d.lines[b.Row].Remove(b.Column, e.Column)
	} else {
		joined := buffer.NewLine(d.lines[b.Row].Head(b.Column) + d.lines[e.Row].Tail(e.Column))
		d.lines = slices.Replace(d.lines, b.Row, e.Row+1, joined)
	}
	d.textChanged()

	return history.Insert{Lines: removed, Position: b}
}

func (u *untracked) SetAnchorUntracked(h anchor.Handle, value anchor.Anchor) history.Change {
	d := u.doc()
	previous, ok := d.anchors.Get(h)
	if !ok {
		panic(fmt.Sprintf("engine: set of nonexistent %s", h))
	}
	// Packets may pass through transiently invalid positions while being
	// reverted, so only the handle is checked here.
	_ = d.anchors.Set(h, value)
	return history.AnchorSet{Handle: h, Value: previous}
}

func (u *untracked) InsertAnchorUntracked(h anchor.Handle, value anchor.Anchor) history.Change {
	d := u.doc()
	if err := d.anchors.CreateAt(h, value); err != nil {
		panic(fmt.Sprintf("engine: insert of %s: %v", h, err))
	}
	return history.AnchorRemove{Handle: h}
}

func (u *untracked) RemoveAnchorUntracked(h anchor.Handle) history.Change {
	d := u.doc()
	previous, ok := d.anchors.Get(h)
	if !ok {
		panic(fmt.Sprintf("engine: remove of nonexistent %s", h))
	}
	if err := d.anchors.Remove(h); err != nil {
		panic(fmt.Sprintf("engine: remove of %s: %v", h, err))
	}
	return history.AnchorInsert{Handle: h, Value: previous}
}

func (u *untracked) SetIndentationUntracked(value buffer.Indentation) history.Change {
	d := u.doc()
	previous := d.indentation
	d.indentation = value
	return history.IndentationChange{Value: previous}
}

func (u *untracked) SetLanguageUntracked(language string) history.Change {
	d := u.doc()
	previous := d.language
	d.language = language
	d.parser = nil
	d.tree = nil
	d.dirty = true
	return history.LanguageChange{Value: previous}
}
