package engine

import (
	"fmt"

	"github.com/dshills/lscore/internal/engine/buffer"
	"github.com/dshills/lscore/internal/engine/history"
	"github.com/dshills/lscore/internal/engine/syntax"
)

// SetIndentation replaces the indentation policy.
func (d *Document) SetIndentation(ind Indentation) error {
	if !ind.Valid() {
		return fmt.Errorf("set indentation %s: %w", ind, ErrInvalidIndentation)
	}
	d.perform(history.IndentationChange{Value: ind})
	return nil
}

// SetLanguage replaces the language identifier, drops the current parser
// and tree, and reparses with a parser for the new language if the
// registry has one. An unknown language leaves the document without a
// tree; it is not an error.
func (d *Document) SetLanguage(language string) {
	d.perform(history.LanguageChange{Value: language})
	d.updateParse()
}

// updateParse reparses the whole document if its text or language changed
// since the last parse. Failures leave the document without a tree.
func (d *Document) updateParse() {
	if !d.dirty {
		return
	}
	d.dirty = false
	d.tree = nil

	if d.language == "" || d.registry == nil {
		return
	}

	if d.parser == nil {
		parser, ok := d.registry.AcquireParser(d.language)
		if !ok {
			d.log.Debug("no parser for language", "document", d.id.String(), "language", d.language)
			return
		}
		d.parser = parser
		d.log.Debugf("acquired %q parser for %s", d.language, d.id)
	}

	tree, err := d.parser.Parse([]byte(d.Text()), nil)
	if err != nil {
		d.log.Warningf("parse of %s failed: %s", d.id, err)
		return
	}
	d.tree = tree
}

type lineSource []buffer.Line

func (s lineSource) LineCount() int {
	return len(s)
}

func (s lineSource) LineText(row int) string {
	return s[row].Text()
}

// ContextAt returns the chain of syntactic regions enclosing p, outermost
// first.
func (d *Document) ContextAt(p Position) (Chain, error) {
	if !d.PositionValid(p) {
		return nil, &PositionError{Op: "context", Position: p, Err: ErrInvalidPosition}
	}
	if d.tree == nil {
		return nil, &PositionError{Op: "context", Position: p, Err: ErrCannotParse}
	}
	return syntax.ContextAt(d.tree, lineSource(d.lines), p), nil
}

// PrettyPrint renders the parse tree, one node per line.
func (d *Document) PrettyPrint() (string, error) {
	if d.tree == nil {
		return "", fmt.Errorf("pretty print: %w", ErrCannotParse)
	}
	return syntax.PrettyPrint(d.tree, lineSource(d.lines)), nil
}
