package cypress

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/kestrel/internal/schematics"
	"github.com/simonhull/kestrel/internal/tree"
	"github.com/simonhull/kestrel/internal/workspace"
)

func newWorkspace(t *testing.T) *tree.Tree {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"workspace.json": `{"version":1,"projects":{}}`,
		"nx.json":        `{"npmScope":"proj","projects":{}}`,
		"package.json":   `{"name":"proj","dependencies":{},"devDependencies":{}}`,
		".eslintrc":      `{"root":true}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return tree.New(dir)
}

func TestProjectNameAndRoot(t *testing.T) {
	tests := []struct {
		opts schematics.E2EOptions
		name string
		root string
	}{
		{schematics.E2EOptions{Name: "my-app-e2e"}, "my-app-e2e", "apps/my-app-e2e"},
		{schematics.E2EOptions{Name: "my-app-e2e", Directory: "myDir"}, "my-dir-my-app-e2e", "apps/my-dir/my-app-e2e"},
		{schematics.E2EOptions{Name: "a-e2e", Directory: "x/y"}, "x-y-a-e2e", "apps/x/y/a-e2e"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, ProjectName(tt.opts))
		assert.Equal(t, tt.root, ProjectRoot(tt.opts))
	}
}

func TestGenerateE2EProject(t *testing.T) {
	tr := newWorkspace(t)
	g := &Generator{}

	err := g.GenerateE2EProject(context.Background(), tr, schematics.E2EOptions{
		Name:    "my-app-e2e",
		Project: "my-app",
		Linter:  "eslint",
	})
	require.NoError(t, err)

	for _, f := range []string{
		"apps/my-app-e2e/cypress.json",
		"apps/my-app-e2e/tsconfig.e2e.json",
		"apps/my-app-e2e/src/integration/app.spec.ts",
		"apps/my-app-e2e/src/support/app.po.ts",
		"apps/my-app-e2e/.eslintrc",
	} {
		assert.True(t, tr.Exists(f), f)
	}

	spec, err := tr.Read("apps/my-app-e2e/src/integration/app.spec.ts")
	require.NoError(t, err)
	assert.Contains(t, string(spec), "Welcome to my-app!")

	cfg, err := tr.Read("apps/my-app-e2e/cypress.json")
	require.NoError(t, err)
	assert.Contains(t, string(cfg), `"../../dist/cypress/apps/my-app-e2e/videos"`)

	w, err := workspace.ReadWorkspace(tr)
	require.NoError(t, err)
	p, ok, err := w.Project("my-app-e2e")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "@nrwl/cypress:cypress", p.Architect["e2e"].Builder)
	assert.Equal(t, "my-app:serve", p.Architect["e2e"].Options.(map[string]any)["devServerTarget"])
	assert.Equal(t, "@nrwl/linter:lint", p.Architect["lint"].Builder)

	data, err := tr.Read("nx.json")
	require.NoError(t, err)
	doc, err := workspace.Decode(data)
	require.NoError(t, err)
	entry, ok, err := workspace.NxProjectOf(doc, "my-app-e2e")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"my-app"}, entry.ImplicitDependencies)
}

func TestGenerateE2EProjectRequiresProject(t *testing.T) {
	err := (&Generator{}).GenerateE2EProject(context.Background(), newWorkspace(t), schematics.E2EOptions{Name: "x-e2e"})
	assert.Error(t, err)
}
