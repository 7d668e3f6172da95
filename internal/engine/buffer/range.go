package buffer

import "fmt"

// Range represents a span between two positions.
// Beginning is inclusive, Ending is exclusive.
type Range struct {
	Beginning Position
	Ending    Position
}

// NewRange creates a Range from two positions, ordering them so that
// Beginning <= Ending.
func NewRange(a, b Position) Range {
	return Range{Beginning: MinPosition(a, b), Ending: MaxPosition(a, b)}
}

// RangeFrom creates a Range from raw coordinates.
// The endpoints are not reordered.
func RangeFrom(beginRow, beginColumn, endRow, endColumn int) Range {
	return Range{
		Beginning: Position{Row: beginRow, Column: beginColumn},
		Ending:    Position{Row: endRow, Column: endColumn},
	}
}

// EmptyRange returns the empty range located at p.
func EmptyRange(p Position) Range {
	return Range{Beginning: p, Ending: p}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Beginning, r.Ending)
}

// IsEmpty returns true if the range has no extent.
func (r Range) IsEmpty() bool {
	return r.Beginning == r.Ending
}

// IsOrdered returns true if Beginning <= Ending.
func (r Range) IsOrdered() bool {
	return r.Beginning.Compare(r.Ending) <= 0
}

// Contains returns true if p lies within the range, treating both ends
// as inclusive.
func (r Range) Contains(p Position) bool {
	return p.Compare(r.Beginning) >= 0 && p.Compare(r.Ending) <= 0
}

// IsSingleRow returns true if the range starts and ends on the same row.
func (r Range) IsSingleRow() bool {
	return r.Beginning.Row == r.Ending.Row
}
