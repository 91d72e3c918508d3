package astutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// ErrSyntax is returned when a source does not parse cleanly.
var ErrSyntax = errors.New("syntax error")

// Source is a parsed TSX file.
type Source struct {
	content []byte
	tree    *sitter.Tree
	root    *sitter.Node
}

// Parse parses TSX (a superset of TypeScript) source.
func Parse(ctx context.Context, content []byte) (*Source, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsx.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}

	return &Source{content: content, tree: tree, root: tree.RootNode()}, nil
}

// Content returns the source bytes.
func (s *Source) Content() []byte {
	return s.content
}

// Validate reports ErrSyntax with the first error location when the tree
// has ERROR or MISSING nodes.
func (s *Source) Validate() error {
	if !s.root.HasError() {
		return nil
	}
	if n := firstError(s.root); n != nil {
		p := n.StartPoint()
		return fmt.Errorf("%w at line %d, column %d", ErrSyntax, p.Row+1, p.Column+1)
	}
	return ErrSyntax
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsMissing() {
			if found := firstError(child); found != nil {
				return found
			}
		}
	}
	return nil
}

// Imports returns the top-level import statements in order.
func (s *Source) Imports() []*sitter.Node {
	var imports []*sitter.Node
	for i := 0; i < int(s.root.NamedChildCount()); i++ {
		child := s.root.NamedChild(i)
		if child.Type() == "import_statement" {
			imports = append(imports, child)
		}
	}
	return imports
}

// AfterLastImport returns the byte offset just past the last top-level
// import, or 0 when the file has none.
func (s *Source) AfterLastImport() int {
	imports := s.Imports()
	if len(imports) == 0 {
		return 0
	}
	return int(imports[len(imports)-1].EndByte())
}

// FindFirst returns the first node of the given type in document order.
func (s *Source) FindFirst(nodeType string) *sitter.Node {
	return findFirst(s.root, nodeType)
}

func findFirst(n *sitter.Node, nodeType string) *sitter.Node {
	if n.Type() == nodeType {
		return n
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if found := findFirst(n.NamedChild(i), nodeType); found != nil {
			return found
		}
	}
	return nil
}

// ClosingTagStart returns the offset of the "</" that closes the outermost
// JSX element, and false when the file has no JSX element with a closing tag.
func (s *Source) ClosingTagStart() (int, bool) {
	el := s.FindFirst("jsx_element")
	if el == nil {
		return 0, false
	}
	for i := int(el.NamedChildCount()) - 1; i >= 0; i-- {
		child := el.NamedChild(i)
		if child.Type() == "jsx_closing_element" {
			// the node can start at the whitespace before "</"
			start, end := int(child.StartByte()), int(child.EndByte())
			if off := bytes.Index(s.content[start:end], []byte("</")); off >= 0 {
				start += off
			}
			return start, true
		}
	}
	return 0, false
}

// Text returns the source text covered by n.
func (s *Source) Text(n *sitter.Node) string {
	return n.Content(s.content)
}
