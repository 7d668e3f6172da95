package syntax

import (
	"fmt"
	"strings"

	"github.com/dshills/lscore/internal/engine/buffer"
)

// PrettyPrint renders tree as an indented listing, one node per line:
//
//	kind (startRow.startCol - endRow.endCol) "text"
//
// Columns are codepoints. The quoted source text is present only for nodes
// that start and end on the same row. Each level of depth indents by three
// spaces. The format is meant for debugging and tests.
func PrettyPrint(tree Tree, src Source) string {
	var b strings.Builder
	prettyPrint(&b, tree.Root(), src, 0)
	return b.String()
}

func prettyPrint(b *strings.Builder, n Node, src Source, depth int) {
	r := NodeRange(src, n)

	b.WriteString(strings.Repeat("   ", depth))
	b.WriteString(n.Kind())
	fmt.Fprintf(b, " (%d.%d - %d.%d)",
		r.Beginning.Row, r.Beginning.Column,
		r.Ending.Row, r.Ending.Column)

	if r.IsSingleRow() {
		fmt.Fprintf(b, " \"%s\"", buffer.Slice(src.LineText(r.Beginning.Row), r.Beginning.Column, r.Ending.Column))
	}
	b.WriteByte('\n')

	for i := 0; i < n.ChildCount(); i++ {
		prettyPrint(b, n.Child(i), src, depth+1)
	}
}
