package buffer

import (
	"strings"
	"unicode/utf8"
)

// Line is one row of a document.
// Line is an immutable value type; the codepoint length is computed once
// when the line is built.
type Line struct {
	text   string
	length int
}

// NewLine creates a line from text, which must not contain line terminators.
func NewLine(text string) Line {
	return Line{text: text, length: utf8.RuneCountInString(text)}
}

// Text returns the content of the line.
func (l Line) Text() string {
	return l.text
}

// Len returns the length of the line in codepoints.
func (l Line) Len() int {
	return l.length
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return l.text
}

// Slice returns the text between codepoint columns from and to.
func (l Line) Slice(from, to int) string {
	return Slice(l.text, from, to)
}

// Head returns the text before column.
func (l Line) Head(column int) string {
	return l.text[:ColumnToByte(l.text, column)]
}

// Tail returns the text from column to the end of the line.
func (l Line) Tail(column int) string {
	return l.text[ColumnToByte(l.text, column):]
}

// Insert returns a new line with s inserted at column.
func (l Line) Insert(column int, s string) Line {
	at := ColumnToByte(l.text, column)
	return NewLine(l.text[:at] + s + l.text[at:])
}

// Remove returns a new line with the columns [from, to) removed.
func (l Line) Remove(from, to int) Line {
	start := ColumnToByte(l.text, from)
	end := ColumnToByte(l.text, to)
	return NewLine(l.text[:start] + l.text[end:])
}

// RuneCount returns the number of codepoints in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ColumnToByte converts a codepoint column to a byte offset within s.
// Columns past the end of s map to len(s).
func ColumnToByte(s string, column int) int {
	if column <= 0 {
		return 0
	}
	col := 0
	for i := range s {
		if col == column {
			return i
		}
		col++
	}
	return len(s)
}

// ByteToColumn converts a byte offset within s to a codepoint column.
// An offset in the middle of a multi-byte sequence counts the partial
// codepoint as consumed. Offsets past the end of s map to RuneCount(s).
func ByteToColumn(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(s[:offset])
}

// Substring returns the text of s starting at codepoint start and extending
// for n codepoints. Out-of-range requests are truncated.
func Substring(s string, start, n int) string {
	if n <= 0 {
		return ""
	}
	from := ColumnToByte(s, start)
	rest := s[from:]
	return rest[:ColumnToByte(rest, n)]
}

// Slice returns the text of s between codepoint columns from and to.
func Slice(s string, from, to int) string {
	if to <= from {
		return ""
	}
	return Substring(s, from, to-from)
}

// SplitLines splits text into rows on "\r\n", "\n" and "\r".
// The result always holds at least one element and keeps the final
// segment even when it is empty, so JoinLines(SplitLines(s)) equals s for
// any s that uses "\n" terminators.
func SplitLines(text string) []string {
	if strings.IndexByte(text, '\r') >= 0 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return strings.Split(text, "\n")
}

// JoinLines joins rows with "\n".
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// NewLines builds Lines from plain strings.
func NewLines(texts []string) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = NewLine(t)
	}
	return lines
}

// Texts returns the content of each line.
func Texts(lines []Line) []string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return texts
}
