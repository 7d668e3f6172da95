package engine

import (
	"github.com/tliron/commonlog"

	"github.com/dshills/lscore/internal/engine/buffer"
	"github.com/dshills/lscore/internal/engine/syntax"
)

// DefaultMaxUndoPackets is the undo bound used when no option sets one.
// Zero means unbounded.
const DefaultMaxUndoPackets = 0

// Option configures a Document during creation.
type Option func(*Document)

// WithLanguage sets the initial language identifier.
func WithLanguage(language string) Option {
	return func(d *Document) {
		d.language = language
	}
}

// WithRegistry sets the registry parsers are acquired from.
// A nil registry disables parsing.
func WithRegistry(r syntax.Registry) Option {
	return func(d *Document) {
		d.registry = r
	}
}

// WithIndentation sets the initial indentation policy.
// Invalid policies are ignored.
func WithIndentation(ind buffer.Indentation) Option {
	return func(d *Document) {
		if ind.Valid() {
			d.indentation = ind
		}
	}
}

// WithMaxUndoPackets bounds the undo history.
func WithMaxUndoPackets(max int) Option {
	return func(d *Document) {
		if max >= 0 {
			d.maxUndoPackets = max
		}
	}
}

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(log commonlog.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}
