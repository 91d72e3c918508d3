// Package jest wires the Jest unit test runner into a project.
package jest

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/internal/logger"
	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/schematics/versions"
	"github.com/simonhull/kestrel/internal/tree"
	"github.com/simonhull/kestrel/internal/workspace"
)

//go:embed files
var templates embed.FS

// SetupNone disables the generated test setup file.
const SetupNone = "none"

// Generator is the default schematics.UnitTestGenerator.
type Generator struct {
	Renderer *generator.Renderer
}

var _ schematics.UnitTestGenerator = (*Generator)(nil)

type templateData struct {
	Project         string
	ProjectRoot     string
	OffsetFromRoot  string
	SupportTSX      bool
	SkipSerializers bool
	SetupFile       bool
}

// GenerateUnitTestSetup stages jest.config.js and tsconfig.spec.json for an
// already registered project and adds its test target.
func (g *Generator) GenerateUnitTestSetup(ctx context.Context, t *tree.Tree, opts schematics.UnitTestOptions) error {
	w, err := workspace.ReadWorkspace(t)
	if err != nil {
		return fmt.Errorf("jest: %w", err)
	}
	project, ok, err := w.Project(opts.Project)
	if err != nil {
		return fmt.Errorf("jest: %w", err)
	}
	if !ok {
		return fmt.Errorf("jest: project %q is not registered", opts.Project)
	}
	root := project.Root
	logger.Debug("adding jest", logger.F("project", opts.Project), logger.F("root", root))

	setup := opts.SetupFile != "" && opts.SetupFile != SetupNone

	rule := schematics.Chain(
		func(ctx context.Context, t *tree.Tree) error {
			return workspace.AddDependencies(t, nil, map[string]string{
				"jest":        versions.Jest,
				"@types/jest": versions.TypesJest,
				"ts-jest":     versions.TsJest,
				"@nrwl/jest":  versions.Nx,
			})
		},
		schematics.When(!t.Exists("jest.config.js"), func(ctx context.Context, t *tree.Tree) error {
			content, err := fs.ReadFile(templates, "files/root/jest.config.js")
			if err != nil {
				return err
			}
			return t.Create("jest.config.js", content)
		}),
		func(ctx context.Context, t *tree.Tree) error {
			return schematics.ApplyTemplates(t, schematics.Templates{
				FS:   templates,
				Dir:  "files/project",
				Dest: root,
				Data: templateData{
					Project:         opts.Project,
					ProjectRoot:     root,
					OffsetFromRoot:  schematics.OffsetFromRoot(root),
					SupportTSX:      opts.SupportTSX,
					SkipSerializers: opts.SkipSerializers,
					SetupFile:       setup,
				},
				Renderer: g.Renderer,
			})
		},
		schematics.When(setup, func(ctx context.Context, t *tree.Tree) error {
			return t.Write(path.Join(root, "src/test-setup.ts"), []byte(""))
		}),
		func(ctx context.Context, t *tree.Tree) error {
			return workspace.UpdateWorkspace(t, func(w *workspace.Workspace) error {
				if err := w.AddTarget(opts.Project, "test", workspace.Target{
					Builder: "@nrwl/jest:jest",
					Options: map[string]any{
						"jestConfig": root + "/jest.config.js",
						"tsConfig":   root + "/tsconfig.spec.json",
					},
				}); err != nil {
					return err
				}
				return addLintTSConfig(w, opts.Project, root+"/tsconfig.spec.json")
			})
		},
		schematics.When(t.Exists(path.Join(root, "tsconfig.json")), func(ctx context.Context, t *tree.Tree) error {
			return addJestTypes(t, path.Join(root, "tsconfig.json"))
		}),
	)
	return rule(ctx, t)
}

// addLintTSConfig lists tsConfig on the project's lint target, if it has one.
func addLintTSConfig(w *workspace.Workspace, project, tsConfig string) error {
	p, _, err := w.Project(project)
	if err != nil {
		return err
	}
	target, ok := p.Architect["lint"]
	if !ok {
		return nil
	}
	options, ok := target.Options.(map[string]any)
	if !ok {
		return nil
	}
	existing, _ := options["tsConfig"].([]any)
	for _, c := range existing {
		if c == tsConfig {
			return nil
		}
	}
	options["tsConfig"] = append(existing, tsConfig)
	return w.AddTarget(project, "lint", target)
}

func addJestTypes(t *tree.Tree, tsconfig string) error {
	return workspace.Update(t, tsconfig, func(doc workspace.Document) error {
		compiler := doc.Object("compilerOptions")
		types, _ := compiler["types"].([]any)
		for _, ty := range types {
			if ty == "jest" {
				return nil
			}
		}
		compiler["types"] = append(types, "jest")
		return nil
	})
}
