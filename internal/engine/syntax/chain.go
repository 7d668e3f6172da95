package syntax

import (
	"strings"

	"github.com/dshills/lscore/internal/engine/buffer"
)

// Region is one syntactic context surrounding a position.
type Region struct {
	Kind  string
	Range buffer.Range
}

// String renders the region as "kind (r, c)-(r, c)".
func (r Region) String() string {
	return r.Kind + " " + r.Range.String()
}

// Chain is the root-to-leaf sequence of regions enclosing a position.
type Chain []Region

// String renders one region per line, each terminated by "\n".
func (c Chain) String() string {
	var b strings.Builder
	for _, r := range c {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Kinds returns the kind of each region, root first.
func (c Chain) Kinds() []string {
	kinds := make([]string, len(c))
	for i, r := range c {
		kinds[i] = r.Kind
	}
	return kinds
}

// Innermost returns the deepest region. The chain must not be empty.
func (c Chain) Innermost() Region {
	return c[len(c)-1]
}

// ContextAt walks tree from the root toward p. At each node it records the
// node's kind and codepoint range, then descends into the first child whose
// span contains p with both ends inclusive. The walk stops at a node with no
// such child.
//
// p must be valid in src.
func ContextAt(tree Tree, src Source, p buffer.Position) Chain {
	point := ToPoint(src, p)

	var chain Chain
	node := tree.Root()
	for node != nil {
		chain = append(chain, Region{Kind: node.Kind(), Range: NodeRange(src, node)})
		node = childContaining(node, point)
	}
	return chain
}

func childContaining(n Node, point Point) Node {
	for i := 0; i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.StartPoint().Compare(point) <= 0 && point.Compare(child.EndPoint()) <= 0 {
			return child
		}
	}
	return nil
}
