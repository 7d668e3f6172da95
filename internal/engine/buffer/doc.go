// Package buffer provides the value types and pure functions the document
// engine is built on. Nothing in this package holds state.
//
// The package provides:
//
//   - Position and Range: row/column coordinates with codepoint columns
//   - Line: one buffer row with a cached codepoint length
//   - Indentation: whitespace margin measurement and production
//   - Codepoint helpers for slicing strings and converting columns to and
//     from the byte offsets used by parsers
//
// Position Types:
//
// Columns count Unicode scalar values, not bytes and not grapheme clusters.
// A character such as "兄" is one column; an emoji written as two codepoints
// is two columns. Legal columns run from 0 up to and including the line
// length, so a position may sit after the last character of a line.
//
// Basic usage:
//
//	line := buffer.NewLine("let 兄弟 = 1;")
//	line.Len()                       // 11
//	buffer.ColumnToByte(line.Text(), 5) // 7
//
//	ind := buffer.Tabs(4)
//	ind.Indent("     Hello", 1, true) // "\t\t Hello"
package buffer
