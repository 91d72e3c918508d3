package application

import (
	"context"
	"embed"
	"strings"

	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/tree"
)

//go:embed all:files
var templates embed.FS

type templateData struct {
	ProjectName    string
	ClassName      string
	FileName       string
	Style          string
	StyledModule   string
	Routing        bool
	Babel          bool
	OffsetFromRoot string
}

func createApplicationFiles(g *Generator, opts *NormalizedOptions) schematics.Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		return schematics.ApplyTemplates(t, schematics.Templates{
			FS:   templates,
			Dir:  "files/app",
			Dest: opts.AppProjectRoot,
			Data: templateData{
				ProjectName:    opts.ProjectName,
				ClassName:      opts.Names.ClassName,
				FileName:       opts.FileName,
				Style:          opts.Style,
				StyledModule:   opts.StyledModule,
				Routing:        opts.Routing,
				Babel:          opts.Babel,
				OffsetFromRoot: schematics.OffsetFromRoot(opts.AppProjectRoot),
			},
			Rename: map[string]string{
				"__fileName__": opts.FileName,
				"__style__":    opts.Style,
			},
			Filter:   templateFilter(opts),
			Renderer: g.Renderer,
		})
	}
}

// templateFilter drops stylesheets when a styled module replaces them, the
// component spec when unit tests are disabled and the Babel config when
// Babel is not used.
func templateFilter(opts *NormalizedOptions) func(string) bool {
	return func(rel string) bool {
		if opts.StyledModule != "" && strings.HasSuffix(rel, "."+opts.Style) {
			return false
		}
		if opts.UnitTestRunner == "none" && rel == "src/app/"+opts.FileName+".spec.tsx" {
			return false
		}
		if !opts.Babel && rel == ".babelrc" {
			return false
		}
		return true
	}
}
