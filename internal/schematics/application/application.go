// Package application scaffolds a React application project inside a
// workspace: its source files, registry entries, test projects and
// optional routing, styling and Babel setup.
package application

import (
	"context"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/internal/logger"
	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/schematics/cypress"
	"github.com/simonhull/kestrel/internal/schematics/jest"
	"github.com/simonhull/kestrel/internal/tree"
)

// Generator generates applications. E2E and UnitTest receive the test
// project setup; nil fields fall back to the Cypress and Jest generators.
type Generator struct {
	E2E      schematics.E2EGenerator
	UnitTest schematics.UnitTestGenerator
	Renderer *generator.Renderer
}

// New returns a Generator with the default test generators.
func New() *Generator {
	r := generator.NewRenderer()
	return &Generator{
		E2E:      &cypress.Generator{Renderer: r},
		UnitTest: &jest.Generator{Renderer: r},
		Renderer: r,
	}
}

// Rule returns the generation steps for already normalized options.
func (g *Generator) Rule(opts *NormalizedOptions) schematics.Rule {
	e2e, unit := g.E2E, g.UnitTest
	if e2e == nil {
		e2e = &cypress.Generator{Renderer: g.Renderer}
	}
	if unit == nil {
		unit = &jest.Generator{Renderer: g.Renderer}
	}

	return schematics.Chain(
		schematics.Named("init", initWorkspace(opts)),
		schematics.Named("lint files", addLintFiles(opts)),
		schematics.Named("application files", createApplicationFiles(g, opts)),
		schematics.Named("nx.json", updateNxJSON(opts)),
		schematics.Named("workspace.json", addProject(opts)),
		schematics.When(opts.E2ETestRunner == "cypress", schematics.Named("cypress", addCypress(e2e, opts))),
		schematics.When(opts.UnitTestRunner == "jest", schematics.Named("jest", addJest(unit, opts))),
		schematics.Named("styled module", addStyledModuleDependencies(opts)),
		schematics.Named("routing", addRouting(opts)),
		schematics.Named("babel", addBabel(opts)),
		schematics.Named("defaults", setDefaults(opts)),
	)
}

// Generate normalizes raw and stages the application into t. Nothing is
// written to disk; the caller commits t.
func (g *Generator) Generate(ctx context.Context, t *tree.Tree, raw Options) (*NormalizedOptions, error) {
	opts, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	logger.Info("generating application",
		logger.F("project", opts.ProjectName),
		logger.F("root", opts.AppProjectRoot),
		logger.F("style", opts.Style),
	)

	if err := g.Rule(opts)(ctx, t); err != nil {
		return nil, err
	}
	return opts, nil
}
