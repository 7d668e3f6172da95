package history

import (
	"fmt"
	"strings"

	"github.com/dshills/lscore/internal/engine/anchor"
	"github.com/dshills/lscore/internal/engine/buffer"
)

// Target performs changes without recording them. Each method returns the
// change that reverses the one it performed.
//
// Implementations panic when handed input that violates their invariants
// (an out-of-range position, a missing handle). Callers are responsible for
// validating before anything reaches a Target.
type Target interface {
	InsertUntracked(lines []string, at buffer.Position) Change
	RemoveUntracked(r buffer.Range) Change
	SetAnchorUntracked(h anchor.Handle, value anchor.Anchor) Change
	InsertAnchorUntracked(h anchor.Handle, value anchor.Anchor) Change
	RemoveAnchorUntracked(h anchor.Handle) Change
	SetIndentationUntracked(value buffer.Indentation) Change
	SetLanguageUntracked(language string) Change
}

// Change is a reified, reversible modification of a document.
// The set of implementations is closed to this package.
type Change interface {
	fmt.Stringer
	isChange()
}

// Insert represents inserting Lines at Position. Lines holds at least one
// element; consecutive elements are separated by line breaks.
type Insert struct {
	Lines    []string
	Position buffer.Position
}

// Remove represents removing the text within Range.
type Remove struct {
	Range buffer.Range
}

// AnchorSet represents moving an existing anchor to Value.
type AnchorSet struct {
	Handle anchor.Handle
	Value  anchor.Anchor
}

// AnchorInsert represents creating an anchor under Handle.
type AnchorInsert struct {
	Handle anchor.Handle
	Value  anchor.Anchor
}

// AnchorRemove represents removing the anchor under Handle.
type AnchorRemove struct {
	Handle anchor.Handle
}

// IndentationChange represents replacing the indentation policy.
type IndentationChange struct {
	Value buffer.Indentation
}

// LanguageChange represents replacing the language identifier.
type LanguageChange struct {
	Value string
}

func (Insert) isChange()            {}
func (Remove) isChange()            {}
func (AnchorSet) isChange()         {}
func (AnchorInsert) isChange()      {}
func (AnchorRemove) isChange()      {}
func (IndentationChange) isChange() {}
func (LanguageChange) isChange()    {}

// Text returns the inserted text with "\n" between lines.
func (c Insert) Text() string {
	return strings.Join(c.Lines, "\n")
}

// End returns the position just after the inserted text.
func (c Insert) End() buffer.Position {
	last := len(c.Lines) - 1
	if last == 0 {
		return buffer.Position{Row: c.Position.Row, Column: c.Position.Column + buffer.RuneCount(c.Lines[0])}
	}
	return buffer.Position{Row: c.Position.Row + last, Column: buffer.RuneCount(c.Lines[last])}
}

// Span returns the range the inserted text occupies once applied.
func (c Insert) Span() buffer.Range {
	return buffer.Range{Beginning: c.Position, Ending: c.End()}
}

func (c Insert) String() string {
	return fmt.Sprintf("Insert(%q at %s)", c.Text(), c.Position)
}

func (c Remove) String() string {
	return fmt.Sprintf("Remove(%s)", c.Range)
}

func (c AnchorSet) String() string {
	return fmt.Sprintf("AnchorSet(%s to %s)", c.Handle, c.Value.Position)
}

func (c AnchorInsert) String() string {
	return fmt.Sprintf("AnchorInsert(%s at %s)", c.Handle, c.Value.Position)
}

func (c AnchorRemove) String() string {
	return fmt.Sprintf("AnchorRemove(%s)", c.Handle)
}

func (c IndentationChange) String() string {
	return fmt.Sprintf("IndentationChange(%s)", c.Value)
}

func (c LanguageChange) String() string {
	return fmt.Sprintf("LanguageChange(%q)", c.Value)
}

// Apply performs c on t and returns the inverse change.
func Apply(c Change, t Target) Change {
	switch c := c.(type) {
	case Insert:
		return t.InsertUntracked(c.Lines, c.Position)
	case Remove:
		return t.RemoveUntracked(c.Range)
	case AnchorSet:
		return t.SetAnchorUntracked(c.Handle, c.Value)
	case AnchorInsert:
		return t.InsertAnchorUntracked(c.Handle, c.Value)
	case AnchorRemove:
		return t.RemoveAnchorUntracked(c.Handle)
	case IndentationChange:
		return t.SetIndentationUntracked(c.Value)
	case LanguageChange:
		return t.SetLanguageUntracked(c.Value)
	default:
		panic(fmt.Sprintf("history: unknown change %T", c))
	}
}

// TouchesText returns true if c modifies the text of a document.
func TouchesText(c Change) bool {
	switch c.(type) {
	case Insert, Remove:
		return true
	default:
		return false
	}
}
