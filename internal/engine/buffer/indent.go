package buffer

import (
	"fmt"
	"strings"
)

// DefaultSpacesPerTab is the tab width used when none is configured.
const DefaultSpacesPerTab = 4

// Indentation is a whitespace policy for line margins.
type Indentation struct {
	UseSpaces    bool // Produce margins from spaces only
	SpacesPerTab int  // Logical width of one tab, at least 1
}

// Tabs returns a policy that indents with tabs of width n, padding with
// spaces when the margin is not a multiple of n.
func Tabs(n int) Indentation {
	return Indentation{UseSpaces: false, SpacesPerTab: n}
}

// Spaces returns a policy that indents with spaces, n per level.
func Spaces(n int) Indentation {
	return Indentation{UseSpaces: true, SpacesPerTab: n}
}

// DefaultIndentation returns four-space indentation.
func DefaultIndentation() Indentation {
	return Spaces(DefaultSpacesPerTab)
}

// Valid returns true if the policy can be used.
func (ind Indentation) Valid() bool {
	return ind.SpacesPerTab >= 1
}

// String returns a human-readable representation of the policy.
func (ind Indentation) String() string {
	if ind.UseSpaces {
		return fmt.Sprintf("spaces(%d)", ind.SpacesPerTab)
	}
	return fmt.Sprintf("tabs(%d)", ind.SpacesPerTab)
}

// Measure scans the leading spaces and tabs of line. It returns the logical
// width of the margin, with each tab counting as SpacesPerTab, and the
// column of the first non-whitespace character.
func (ind Indentation) Measure(line string) (width, column int) {
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += ind.SpacesPerTab
		default:
			return width, column
		}
		column++
	}
	return width, column
}

// Produce renders a margin n logical spaces wide.
func (ind Indentation) Produce(n int) string {
	if n <= 0 {
		return ""
	}
	if ind.UseSpaces || ind.SpacesPerTab < 1 {
		return strings.Repeat(" ", n)
	}
	return strings.Repeat("\t", n/ind.SpacesPerTab) + strings.Repeat(" ", n%ind.SpacesPerTab)
}

// Indent recomputes the margin of line after shifting it by delta levels.
// Negative deltas dedent; the margin never goes below zero. When
// includeContent is false only the new margin is returned.
func (ind Indentation) Indent(line string, delta int, includeContent bool) string {
	width, column := ind.Measure(line)
	width += delta * ind.SpacesPerTab
	if width < 0 {
		width = 0
	}
	margin := ind.Produce(width)
	if !includeContent {
		return margin
	}
	return margin + line[ColumnToByte(line, column):]
}
