// Package cypress scaffolds Cypress end-to-end test projects.
package cypress

import (
	"context"
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/internal/logger"
	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/schematics/lint"
	"github.com/simonhull/kestrel/internal/schematics/versions"
	"github.com/simonhull/kestrel/internal/tree"
	"github.com/simonhull/kestrel/internal/workspace"
)

//go:embed all:files
var templates embed.FS

// Generator is the default schematics.E2EGenerator.
type Generator struct {
	Renderer *generator.Renderer
}

var _ schematics.E2EGenerator = (*Generator)(nil)

type templateData struct {
	Project        string
	ProjectRoot    string
	OffsetFromRoot string
}

// ProjectName returns the registry name of an e2e project.
func ProjectName(opts schematics.E2EOptions) string {
	name := generator.ToFileName(opts.Name)
	if opts.Directory == "" {
		return name
	}
	return strings.ReplaceAll(generator.ToFileName(opts.Directory), "/", "-") + "-" + name
}

// ProjectRoot returns the directory an e2e project lives in.
func ProjectRoot(opts schematics.E2EOptions) string {
	name := generator.ToFileName(opts.Name)
	if opts.Directory == "" {
		return path.Join("apps", name)
	}
	return path.Join("apps", generator.ToFileName(opts.Directory), name)
}

// GenerateE2EProject stages the Cypress project files and registers the
// project with e2e and lint targets.
func (g *Generator) GenerateE2EProject(ctx context.Context, t *tree.Tree, opts schematics.E2EOptions) error {
	if opts.Project == "" {
		return fmt.Errorf("cypress: project under test is required")
	}
	if opts.Linter == "" {
		opts.Linter = lint.ESLint
	}

	name := ProjectName(opts)
	root := ProjectRoot(opts)
	logger.Debug("generating e2e project", logger.F("project", name), logger.F("root", root))

	rule := schematics.Chain(
		func(ctx context.Context, t *tree.Tree) error {
			return workspace.AddDependencies(t, nil, map[string]string{
				"cypress":       versions.Cypress,
				"@nrwl/cypress": versions.Nx,
			})
		},
		func(ctx context.Context, t *tree.Tree) error {
			return schematics.ApplyTemplates(t, schematics.Templates{
				FS:   templates,
				Dir:  "files",
				Dest: root,
				Data: templateData{
					Project:        opts.Project,
					ProjectRoot:    root,
					OffsetFromRoot: schematics.OffsetFromRoot(root),
				},
				Renderer: g.Renderer,
			})
		},
		lint.Files(opts.Linter, root, nil),
		func(ctx context.Context, t *tree.Tree) error {
			return workspace.UpdateWorkspace(t, func(w *workspace.Workspace) error {
				return w.SetProject(name, workspace.Project{
					Root:        root,
					SourceRoot:  root + "/src",
					ProjectType: "application",
					Architect: map[string]workspace.Target{
						"e2e": {
							Builder: "@nrwl/cypress:cypress",
							Options: map[string]any{
								"cypressConfig":   root + "/cypress.json",
								"tsConfig":        root + "/tsconfig.e2e.json",
								"devServerTarget": opts.Project + ":serve",
							},
							Configurations: map[string]any{
								"production": map[string]any{
									"devServerTarget": opts.Project + ":serve:production",
								},
							},
						},
						"lint": lint.ProjectTarget(opts.Linter, root, root+"/tsconfig.e2e.json"),
					},
				})
			})
		},
		func(ctx context.Context, t *tree.Tree) error {
			return workspace.UpdateNx(t, func(doc workspace.Document) error {
				return workspace.SetNxProject(doc, name, workspace.NxProject{
					Tags:                 []string{},
					ImplicitDependencies: []string{opts.Project},
				})
			})
		},
	)
	return rule(ctx, t)
}
