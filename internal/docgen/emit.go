package docgen

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/internal/logger"
	"github.com/simonhull/kestrel/internal/scripts"
)

// Frameworks are the documentation sets pages are emitted for by default.
var Frameworks = []string{"web", "angular", "react"}

// OutputDir is the directory holding one framework's command pages.
func OutputDir(root, framework string) string {
	return filepath.Join(root, framework, "api-workspace", "npmscripts")
}

// Generator emits command reference pages.
type Generator struct {
	Root       string // docs root
	Frameworks []string
	Handlers   map[string]scripts.Handler
	Examples   map[string][]Example
	Renderer   *generator.Renderer
	Execute    generator.ExecuteOptions
}

// New returns a Generator for the workspace commands under root.
func New(root string) *Generator {
	return &Generator{
		Root:       root,
		Frameworks: Frameworks,
		Handlers:   scripts.Handlers(),
		Examples:   Examples,
		Renderer:   generator.NewRenderer(),
	}
}

// Pages renders every documented command.
func (g *Generator) Pages() ([]Page, error) {
	var pages []Page
	for _, cmd := range Commands(g.Handlers) {
		page, err := Render(g.Renderer, cmd, g.Examples[cmd.Command])
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Page renders the page for the command whose name or usage form is name.
func (g *Generator) Page(name string) (Page, error) {
	for key, h := range g.Handlers {
		if key == name || h.Original == name {
			return Render(g.Renderer, Introspect(h), g.Examples[h.Original])
		}
	}
	return Page{}, fmt.Errorf("unknown command %q", name)
}

// Generate clears and rewrites each framework's output directory in turn.
// A failure stops the run; frameworks after the failing one are untouched.
func (g *Generator) Generate(ctx context.Context) error {
	for _, framework := range g.Frameworks {
		if err := ctx.Err(); err != nil {
			return err
		}

		pages, err := g.Pages()
		if err != nil {
			return fmt.Errorf("%s: %w", framework, err)
		}

		dir := OutputDir(g.Root, framework)
		ops := []generator.Operation{&generator.RemoveAllOp{Path: dir}}
		for _, page := range pages {
			ops = append(ops, &generator.WriteFileOp{
				Path:    filepath.Join(dir, page.Name),
				Content: page.Content,
			})
		}

		// The directory is cleared first, so existing pages are not conflicts.
		opts := g.Execute
		opts.Force = true

		logger.Debug("writing command docs", logger.F("framework", framework), logger.F("pages", len(pages)))
		if err := generator.Execute(ctx, ops, opts); err != nil {
			return fmt.Errorf("%s docs: %w", framework, err)
		}
	}
	return nil
}
