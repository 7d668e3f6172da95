package syntax

import (
	"fmt"

	"github.com/dshills/lscore/internal/engine/buffer"
)

// Point is a row and byte column as reported by a parser.
type Point struct {
	Row    uint32
	Column uint32 // byte offset within the row
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Column)
}

// Node is one node of a parse tree. Children are ordered and their spans do
// not overlap.
type Node interface {
	Kind() string
	StartPoint() Point
	EndPoint() Point
	ChildCount() int
	Child(i int) Node
}

// Tree is a parse tree.
type Tree interface {
	Root() Node
}

// Parser turns source text into a tree. previous may be nil.
type Parser interface {
	Parse(source []byte, previous Tree) (Tree, error)
}

// Registry hands out parsers by language identifier.
type Registry interface {
	AcquireParser(language string) (Parser, bool)
}

// RegistryFunc adapts a function to the Registry interface.
type RegistryFunc func(language string) (Parser, bool)

// AcquireParser calls f.
func (f RegistryFunc) AcquireParser(language string) (Parser, bool) {
	return f(language)
}

// Source exposes the rows of a document.
type Source interface {
	LineCount() int
	LineText(row int) string
}

// Lines is a Source over plain strings.
type Lines []string

// LineCount implements Source.
func (l Lines) LineCount() int {
	return len(l)
}

// LineText implements Source.
func (l Lines) LineText(row int) string {
	return l[row]
}

// ToPoint converts a codepoint position to a parser point.
func ToPoint(src Source, p buffer.Position) Point {
	column := buffer.ColumnToByte(src.LineText(p.Row), p.Column)
	return Point{Row: uint32(p.Row), Column: uint32(column)}
}

// ToPosition converts a parser point to a codepoint position. Points past
// the last row map to the end of the document.
func ToPosition(src Source, p Point) buffer.Position {
	row := int(p.Row)
	if row >= src.LineCount() {
		last := src.LineCount() - 1
		return buffer.Position{Row: last, Column: buffer.RuneCount(src.LineText(last))}
	}
	return buffer.Position{Row: row, Column: buffer.ByteToColumn(src.LineText(row), int(p.Column))}
}

// NodeRange returns the codepoint range spanned by n.
func NodeRange(src Source, n Node) buffer.Range {
	return buffer.Range{
		Beginning: ToPosition(src, n.StartPoint()),
		Ending:    ToPosition(src, n.EndPoint()),
	}
}
