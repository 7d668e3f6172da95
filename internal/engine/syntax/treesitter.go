package syntax

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// TreeSitterRegistry maps language identifiers to tree-sitter grammars.
// Each AcquireParser call returns a fresh parser.
type TreeSitterRegistry struct {
	languages map[string]*sitter.Language
}

// NewTreeSitterRegistry returns a registry preloaded with the bundled
// grammars, keyed by their usual file extension.
func NewTreeSitterRegistry() *TreeSitterRegistry {
	r := &TreeSitterRegistry{languages: make(map[string]*sitter.Language)}
	r.Register("rs", rust.GetLanguage())
	r.Register("cpp", cpp.GetLanguage())
	r.Register("java", java.GetLanguage())
	r.Register("js", javascript.GetLanguage())
	r.Register("py", python.GetLanguage())
	r.Register("ts", typescript.GetLanguage())
	r.Register("tsx", tsx.GetLanguage())
	r.Register("sh", bash.GetLanguage())
	r.Register("go", golang.GetLanguage())
	return r
}

// Register adds or replaces the grammar for id.
func (r *TreeSitterRegistry) Register(id string, lang *sitter.Language) {
	r.languages[id] = lang
}

// Languages returns the registered identifiers in sorted order.
func (r *TreeSitterRegistry) Languages() []string {
	ids := make([]string, 0, len(r.languages))
	for id := range r.languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AcquireParser implements Registry.
func (r *TreeSitterRegistry) AcquireParser(language string) (Parser, bool) {
	lang, ok := r.languages[language]
	if !ok {
		return nil, false
	}
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &treeSitterParser{parser: p}, true
}

type treeSitterParser struct {
	parser *sitter.Parser
}

// Parse reads the whole source. Edits are never reported to tree-sitter, so
// reusing previous would hand it stale nodes; it is ignored.
func (p *treeSitterParser) Parse(source []byte, _ Tree) (Tree, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	if tree == nil {
		return nil, errors.New("tree-sitter parse: no tree produced")
	}
	return &treeSitterTree{tree: tree}, nil
}

type treeSitterTree struct {
	tree *sitter.Tree
}

func (t *treeSitterTree) Root() Node {
	return treeSitterNode{node: t.tree.RootNode()}
}

type treeSitterNode struct {
	node *sitter.Node
}

func (n treeSitterNode) Kind() string {
	return n.node.Type()
}

func (n treeSitterNode) StartPoint() Point {
	p := n.node.StartPoint()
	return Point{Row: p.Row, Column: p.Column}
}

func (n treeSitterNode) EndPoint() Point {
	p := n.node.EndPoint()
	return Point{Row: p.Row, Column: p.Column}
}

func (n treeSitterNode) ChildCount() int {
	return int(n.node.ChildCount())
}

func (n treeSitterNode) Child(i int) Node {
	return treeSitterNode{node: n.node.Child(i)}
}
