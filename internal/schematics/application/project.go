package application

import (
	"context"
	"path"

	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/schematics/lint"
	"github.com/simonhull/kestrel/internal/tree"
	"github.com/simonhull/kestrel/internal/workspace"
)

// BuildOptions are the options of the build target.
type BuildOptions struct {
	DifferentialLoading bool     `json:"differentialLoading"`
	OutputPath          string   `json:"outputPath"`
	Index               string   `json:"index"`
	Main                string   `json:"main"`
	Polyfills           string   `json:"polyfills"`
	TSConfig            string   `json:"tsConfig"`
	Assets              []string `json:"assets"`
	Styles              []string `json:"styles"`
	Scripts             []string `json:"scripts"`
	WebpackConfig       string   `json:"webpackConfig,omitempty"`
}

// FileReplacement swaps one file for another in a build configuration.
type FileReplacement struct {
	Replace string `json:"replace"`
	With    string `json:"with"`
}

// Budget is a bundle size budget.
type Budget struct {
	Type           string `json:"type"`
	MaximumWarning string `json:"maximumWarning"`
	MaximumError   string `json:"maximumError"`
}

// ProductionBuild is the production configuration of the build target.
type ProductionBuild struct {
	FileReplacements []FileReplacement `json:"fileReplacements"`
	Optimization     bool              `json:"optimization"`
	OutputHashing    string            `json:"outputHashing"`
	SourceMap        bool              `json:"sourceMap"`
	ExtractCSS       bool              `json:"extractCss"`
	NamedChunks      bool              `json:"namedChunks"`
	ExtractLicenses  bool              `json:"extractLicenses"`
	VendorChunk      bool              `json:"vendorChunk"`
	Budgets          []Budget          `json:"budgets"`
}

// ServeOptions are the options of the serve target.
type ServeOptions struct {
	BuildTarget string `json:"buildTarget"`
}

func buildTarget(opts *NormalizedOptions) workspace.Target {
	root := opts.AppProjectRoot
	src := path.Join(root, "src")

	styles := []string{}
	if opts.StyledModule == "" {
		styles = append(styles, path.Join(src, "styles."+opts.Style))
	}

	build := BuildOptions{
		DifferentialLoading: !opts.Babel,
		OutputPath:          path.Join("dist", root),
		Index:               path.Join(src, "index.html"),
		Main:                path.Join(src, "main.tsx"),
		Polyfills:           path.Join(src, "polyfills.ts"),
		TSConfig:            path.Join(root, "tsconfig.app.json"),
		Assets:              []string{path.Join(src, "favicon.ico"), path.Join(src, "assets")},
		Styles:              styles,
		Scripts:             []string{},
	}
	if opts.Babel {
		build.WebpackConfig = "@nrwl/react/plugins/babel"
	}

	return workspace.Target{
		Builder: "@nrwl/web:build",
		Options: build,
		Configurations: map[string]any{
			"production": ProductionBuild{
				FileReplacements: []FileReplacement{{
					Replace: path.Join(src, "environments/environment.ts"),
					With:    path.Join(src, "environments/environment.prod.ts"),
				}},
				Optimization:    true,
				OutputHashing:   "all",
				SourceMap:       false,
				ExtractCSS:      true,
				NamedChunks:     false,
				ExtractLicenses: true,
				VendorChunk:     false,
				Budgets: []Budget{{
					Type:           "initial",
					MaximumWarning: "2mb",
					MaximumError:   "5mb",
				}},
			},
		},
	}
}

func serveTarget(opts *NormalizedOptions) workspace.Target {
	return workspace.Target{
		Builder: "@nrwl/web:dev-server",
		Options: ServeOptions{BuildTarget: opts.ProjectName + ":build"},
		Configurations: map[string]any{
			"production": ServeOptions{BuildTarget: opts.ProjectName + ":build:production"},
		},
	}
}

func addProject(opts *NormalizedOptions) schematics.Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		return workspace.UpdateWorkspace(t, func(w *workspace.Workspace) error {
			err := w.SetProject(opts.ProjectName, workspace.Project{
				Root:        opts.AppProjectRoot,
				SourceRoot:  path.Join(opts.AppProjectRoot, "src"),
				ProjectType: "application",
				Schematics:  map[string]any{},
				Architect: map[string]workspace.Target{
					"build": buildTarget(opts),
					"serve": serveTarget(opts),
					"lint":  lint.ProjectTarget(opts.Linter, opts.AppProjectRoot, path.Join(opts.AppProjectRoot, "tsconfig.app.json")),
				},
			})
			if err != nil {
				return err
			}
			w.SetDefaultProjectIfEmpty(opts.ProjectName)
			return nil
		})
	}
}

func updateNxJSON(opts *NormalizedOptions) schematics.Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		return workspace.UpdateNx(t, func(doc workspace.Document) error {
			return workspace.SetNxProject(doc, opts.ProjectName, workspace.NxProject{Tags: opts.ParsedTags})
		})
	}
}
