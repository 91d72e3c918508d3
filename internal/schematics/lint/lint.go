// Package lint stages linter configuration for generated projects and
// builds their lint targets.
package lint

import (
	"context"
	_ "embed"
	"fmt"
	"path"

	"github.com/imdario/mergo"

	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/schematics/versions"
	"github.com/simonhull/kestrel/internal/tree"
	"github.com/simonhull/kestrel/internal/workspace"
)

// Supported linters.
const (
	ESLint = "eslint"
	TSLint = "tslint"
)

var (
	//go:embed react.eslintrc.json
	reactESLint []byte
	//go:embed root.eslintrc.json
	rootESLint []byte
	//go:embed root.tslint.json
	rootTSLint []byte
)

// ReactDevDependencies are the ESLint plugins the React config relies on.
var ReactDevDependencies = map[string]string{
	"eslint-plugin-import":      versions.EslintPluginImport,
	"eslint-plugin-jsx-a11y":    versions.EslintPluginJsxA11y,
	"eslint-plugin-react":       versions.EslintPluginReact,
	"eslint-plugin-react-hooks": versions.EslintPluginReactHooks,
}

// ReactConfig returns a fresh copy of the React ESLint configuration.
func ReactConfig() workspace.Document {
	doc, err := workspace.Decode(reactESLint)
	if err != nil {
		panic(fmt.Sprintf("lint: embedded react config: %v", err))
	}
	return doc
}

// ProjectTarget builds the lint target for a project.
func ProjectTarget(linter, projectRoot string, tsConfigs ...string) workspace.Target {
	if tsConfigs == nil {
		tsConfigs = []string{}
	}
	exclude := []string{"**/node_modules/**", "!" + projectRoot + "/**"}

	if linter == TSLint {
		return workspace.Target{
			Builder: "@angular-devkit/build-angular:tslint",
			Options: map[string]any{
				"tsConfig": tsConfigs,
				"exclude":  exclude,
			},
		}
	}
	return workspace.Target{
		Builder: "@nrwl/linter:lint",
		Options: map[string]any{
			"linter":   ESLint,
			"config":   path.Join(projectRoot, ".eslintrc"),
			"tsConfig": tsConfigs,
			"exclude":  exclude,
		},
	}
}

// Files stages the project linter config under projectRoot, creating the
// workspace root config (and its packages) first when it is missing.
// local is merged over the project ESLint config and ignored for tslint.
func Files(linter, projectRoot string, local map[string]any) schematics.Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		offset := schematics.OffsetFromRoot(projectRoot)

		switch linter {
		case ESLint:
			if err := ensureRoot(t, ".eslintrc", rootESLint, map[string]string{
				"eslint":                           versions.Eslint,
				"@typescript-eslint/parser":        versions.TypescriptEslint,
				"@typescript-eslint/eslint-plugin": versions.TypescriptEslint,
				"eslint-config-prettier":           versions.EslintConfigPrettier,
				"@nrwl/linter":                     versions.Nx,
			}); err != nil {
				return err
			}

			config := map[string]any{"rules": map[string]any{}}
			if local != nil {
				if err := mergo.Merge(&config, local, mergo.WithOverride); err != nil {
					return fmt.Errorf("merging eslint config: %w", err)
				}
			}
			config["extends"] = offset + ".eslintrc"
			return writeJSON(t, path.Join(projectRoot, ".eslintrc"), config)

		case TSLint:
			if err := ensureRoot(t, "tslint.json", rootTSLint, map[string]string{
				"tslint": versions.Tslint,
			}); err != nil {
				return err
			}
			return writeJSON(t, path.Join(projectRoot, "tslint.json"), map[string]any{
				"extends": offset + "tslint.json",
				"rules":   map[string]any{},
			})

		default:
			return fmt.Errorf("unsupported linter %q", linter)
		}
	}
}

func ensureRoot(t *tree.Tree, name string, content []byte, devDeps map[string]string) error {
	if t.Exists(name) {
		return nil
	}
	if err := t.Create(name, content); err != nil {
		return err
	}
	return workspace.AddDependencies(t, nil, devDeps)
}

func writeJSON(t *tree.Tree, p string, v map[string]any) error {
	out, err := workspace.Document(v).Encode()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", p, err)
	}
	return t.Write(p, out)
}
