package schematics

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/simonhull/kestrel/fledge/filesystem"
	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/internal/tree"
)

// TemplateSuffix marks files rendered with text/template. Other files are
// copied as-is. The suffix is dropped from the output name.
const TemplateSuffix = ".tmpl"

// Templates describes a template directory to materialize.
type Templates struct {
	FS       fs.FS
	Dir      string            // directory inside FS
	Dest     string            // tree path the directory maps to
	Data     any               // template data
	Rename   map[string]string // placeholder → value, e.g. "__fileName__" → "app"
	Filter   func(rel string) bool
	Renderer *generator.Renderer
}

// ApplyTemplates stages every file of tpl.Dir under tpl.Dest. Filter sees
// output paths relative to Dest, after renaming; returning false drops the file.
func ApplyTemplates(t *tree.Tree, tpl Templates) error {
	renderer := tpl.Renderer
	if renderer == nil {
		renderer = generator.NewRenderer()
	}

	files, err := filesystem.Files(tpl.FS, tpl.Dir, filesystem.WalkOptions{IncludeHidden: true, IgnoreDirs: []string{}})
	if err != nil {
		return fmt.Errorf("listing templates in %s: %w", tpl.Dir, err)
	}

	for _, rel := range files {
		out := rename(rel, tpl.Rename)
		isTemplate := strings.HasSuffix(out, TemplateSuffix)
		out = strings.TrimSuffix(out, TemplateSuffix)

		if tpl.Filter != nil && !tpl.Filter(out) {
			continue
		}

		src := path.Join(tpl.Dir, rel)
		var content []byte
		if isTemplate {
			content, err = renderer.RenderFS(tpl.FS, src, tpl.Data)
		} else {
			content, err = fs.ReadFile(tpl.FS, src)
		}
		if err != nil {
			return err
		}

		if err := t.Create(path.Join(tpl.Dest, out), content); err != nil {
			return err
		}
	}
	return nil
}

func rename(p string, placeholders map[string]string) string {
	for placeholder, value := range placeholders {
		p = strings.ReplaceAll(p, placeholder, value)
	}
	return p
}

// OffsetFromRoot returns the relative path from dir back to the workspace
// root: "apps/my-app" → "../../".
func OffsetFromRoot(dir string) string {
	dir = tree.Normalize(dir)
	if dir == "" {
		return ""
	}
	return strings.Repeat("../", len(strings.Split(dir, "/")))
}
