package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/simonhull/kestrel/fledge/astutil"
	"github.com/simonhull/kestrel/internal/logger"
	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/schematics/lint"
	"github.com/simonhull/kestrel/internal/schematics/styled"
	"github.com/simonhull/kestrel/internal/schematics/versions"
	"github.com/simonhull/kestrel/internal/tree"
	"github.com/simonhull/kestrel/internal/workspace"
)

// ErrMissingFile is returned when a file a step edits is not in the tree.
var ErrMissingFile = errors.New("missing expected file")

// Collection is the schematic collection generated projects default to.
const Collection = "@nrwl/react"

const routerImport = "\nimport { Route, Link } from 'react-router-dom';"

const initialRoutes = `
{/* START: routes */}
{/* These routes and navigation have been generated for you */}
{/* Feel free to move and update them to fit your needs */}
<br/>
<hr/>
<br/>
<div role="navigation">
  <ul>
    <li><Link to="/">Home</Link></li>
    <li><Link to="/page-2">Page 2</Link></li>
  </ul>
</div>
<Route
  path="/"
  exact
  render={() => (
    <div>This is the generated root route. <Link to="/page-2">Click here for page 2.</Link></div>
  )}
/>
<Route
  path="/page-2"
  exact
  render={() => (
    <div><Link to="/">Click here to go back to root page.</Link></div>
  )}
/>
{/* END: routes */}
`

const polyfills = `
/*
 * Polyfill stable language features.
 * It's recommended to use @babel/preset-env and browserslist
 * to only include the polyfills necessary for the target browsers.
 */
import 'core-js/stable';

import 'regenerator-runtime/runtime';
`

// initWorkspace adds the framework packages and makes the React collection
// the workspace default.
func initWorkspace(opts *NormalizedOptions) schematics.Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		deps := map[string]string{
			"react":     versions.React,
			"react-dom": versions.ReactDom,
		}
		devDeps := map[string]string{
			"@nrwl/react":      versions.Nx,
			"@nrwl/web":        versions.Nx,
			"@types/react":     versions.TypesReact,
			"@types/react-dom": versions.TypesReactDom,
		}
		if opts.UnitTestRunner == "jest" {
			devDeps["@testing-library/react"] = versions.TestingLibraryReact
		}
		if err := workspace.AddDependencies(t, deps, devDeps); err != nil {
			return err
		}
		return workspace.UpdateWorkspace(t, func(w *workspace.Workspace) error {
			w.SetDefaultCollectionIfEmpty(Collection)
			return nil
		})
	}
}

func addLintFiles(opts *NormalizedOptions) schematics.Rule {
	var local map[string]any
	if opts.Linter == lint.ESLint {
		local = lint.ReactConfig()
	}
	return schematics.Chain(
		lint.Files(opts.Linter, opts.AppProjectRoot, local),
		schematics.When(opts.Linter == lint.ESLint, func(ctx context.Context, t *tree.Tree) error {
			return workspace.AddDependencies(t, nil, lint.ReactDevDependencies)
		}),
	)
}

func addCypress(e2e schematics.E2EGenerator, opts *NormalizedOptions) schematics.Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		return e2e.GenerateE2EProject(ctx, t, schematics.E2EOptions{
			Name:      opts.Name + "-e2e",
			Directory: opts.Directory,
			Project:   opts.ProjectName,
			Linter:    opts.Linter,
		})
	}
}

func addJest(unit schematics.UnitTestGenerator, opts *NormalizedOptions) schematics.Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		return unit.GenerateUnitTestSetup(ctx, t, schematics.UnitTestOptions{
			Project:         opts.ProjectName,
			SupportTSX:      true,
			SkipSerializers: true,
			SetupFile:       "none",
		})
	}
}

func addStyledModuleDependencies(opts *NormalizedOptions) schematics.Rule {
	deps, ok := styled.Lookup(opts.StyledModule)
	if !ok {
		return schematics.Noop
	}
	return func(ctx context.Context, t *tree.Tree) error {
		return workspace.AddDependencies(t, deps.Dependencies, deps.DevDependencies)
	}
}

func addRouting(opts *NormalizedOptions) schematics.Rule {
	if !opts.Routing {
		return schematics.Noop
	}
	componentPath := path.Join(opts.AppProjectRoot, "src/app", opts.FileName+".tsx")

	return schematics.Chain(
		func(ctx context.Context, t *tree.Tree) error {
			content, err := readRequired(t, componentPath)
			if err != nil {
				return err
			}
			out, ok, err := astutil.InsertBeforeClosingTag(ctx, content, routerImport, initialRoutes)
			if err != nil {
				return fmt.Errorf("adding routes to %s: %w", componentPath, err)
			}
			if !ok {
				logger.Warn("no JSX element to add routes to", logger.F("file", componentPath))
				return nil
			}
			return t.Overwrite(componentPath, out)
		},
		func(ctx context.Context, t *tree.Tree) error {
			return workspace.AddDependencies(t,
				map[string]string{"react-router-dom": versions.ReactRouter},
				map[string]string{"@types/react-router-dom": versions.TypesReactRouter},
			)
		},
	)
}

func addBabel(opts *NormalizedOptions) schematics.Rule {
	if !opts.Babel {
		return schematics.Noop
	}
	polyfillsPath := path.Join(opts.AppProjectRoot, "src/polyfills.ts")

	return schematics.Chain(
		func(ctx context.Context, t *tree.Tree) error {
			return workspace.AddDependencies(t, nil, map[string]string{
				"@babel/core":                       versions.BabelCore,
				"@babel/preset-env":                 versions.BabelPresetEnv,
				"@babel/preset-react":               versions.BabelPresetReact,
				"@babel/preset-typescript":          versions.BabelPresetTypeScript,
				"@babel/plugin-proposal-decorators": versions.BabelPluginDecorators,
				"babel-loader":                      versions.BabelLoader,
				"babel-plugin-macros":               versions.BabelPluginMacros,
				"core-js":                           versions.CoreJs,
				"regenerator-runtime":               versions.Regenerator,
			})
		},
		func(ctx context.Context, t *tree.Tree) error {
			content, err := readRequired(t, polyfillsPath)
			if err != nil {
				return err
			}
			out, err := astutil.AddGlobal(ctx, content, polyfills)
			if err != nil {
				return fmt.Errorf("adding polyfills to %s: %w", polyfillsPath, err)
			}
			return t.Overwrite(polyfillsPath, out)
		},
	)
}

// setDefaults records this run's choices as the defaults for later
// application, component and library generation.
func setDefaults(opts *NormalizedOptions) schematics.Rule {
	if opts.SkipWorkspaceJSON {
		return schematics.Noop
	}
	return func(ctx context.Context, t *tree.Tree) error {
		return workspace.UpdateWorkspace(t, func(w *workspace.Workspace) error {
			defaults := map[string]map[string]any{
				"application": {"babel": opts.Babel, "style": opts.Style, "linter": opts.Linter},
				"component":   {"style": opts.Style},
				"library":     {"style": opts.Style, "linter": opts.Linter},
			}
			// This run's choices win over stored defaults; stored keys it does
			// not set are kept.
			for _, kind := range []string{"application", "component", "library"} {
				if err := w.MergeSchematicDefaults(Collection, kind, defaults[kind]); err != nil {
					return err
				}
			}
			return nil
		})
	}
}

func readRequired(t *tree.Tree, p string) ([]byte, error) {
	content, err := t.Read(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, p)
	}
	return content, err
}
