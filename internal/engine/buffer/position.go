package buffer

import "fmt"

// Position represents a row and column in a document.
// Both Row and Column are 0-indexed.
// Column is measured in codepoints from the start of the row.
type Position struct {
	Row    int // 0-indexed row
	Column int // 0-indexed column (codepoints within the row)
}

// NewPosition creates a Position.
func NewPosition(row, column int) Position {
	return Position{Row: row, Column: column}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
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

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the origin (0, 0).
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Column == 0
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if b.After(a) {
		return b
	}
	return a
}
