package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/kestrel/internal/tree"
	"github.com/simonhull/kestrel/internal/workspace"
)

func newTree(t *testing.T) *tree.Tree {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"ws"}`), 0o644))
	return tree.New(dir)
}

func readDoc(t *testing.T, tr *tree.Tree, p string) workspace.Document {
	t.Helper()
	data, err := tr.Read(p)
	require.NoError(t, err)
	doc, err := workspace.Decode(data)
	require.NoError(t, err)
	return doc
}

func TestFilesESLint(t *testing.T) {
	tr := newTree(t)

	rule := Files(ESLint, "apps/my-app", ReactConfig())
	require.NoError(t, rule(context.Background(), tr))

	project := readDoc(t, tr, "apps/my-app/.eslintrc")
	assert.Equal(t, "../../.eslintrc", project["extends"])
	rules, ok := project.Lookup("rules")
	require.True(t, ok)
	assert.Contains(t, rules, "react-hooks/rules-of-hooks")

	assert.True(t, tr.Exists(".eslintrc"))
	manifest := readDoc(t, tr, "package.json")
	_, ok = workspace.DependencyVersion(manifest, "eslint")
	assert.True(t, ok)
}

func TestFilesKeepsExistingRootConfig(t *testing.T) {
	tr := newTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(tr.Root(), ".eslintrc"), []byte(`{"root":true}`), 0o644))

	require.NoError(t, Files(ESLint, "apps/a", nil)(context.Background(), tr))

	assert.NotContains(t, tr.Files(), ".eslintrc")
	assert.NotContains(t, tr.Files(), "package.json")
}

func TestFilesTSLint(t *testing.T) {
	tr := newTree(t)

	require.NoError(t, Files(TSLint, "apps/nested/app", nil)(context.Background(), tr))

	project := readDoc(t, tr, "apps/nested/app/tslint.json")
	assert.Equal(t, "../../../tslint.json", project["extends"])
	assert.True(t, tr.Exists("tslint.json"))
}

func TestFilesUnknownLinter(t *testing.T) {
	err := Files("jshint", "apps/a", nil)(context.Background(), newTree(t))
	assert.Error(t, err)
}

func TestProjectTarget(t *testing.T) {
	eslint := ProjectTarget(ESLint, "apps/my-app", "apps/my-app/tsconfig.app.json")
	assert.Equal(t, "@nrwl/linter:lint", eslint.Builder)
	opts := eslint.Options.(map[string]any)
	assert.Equal(t, "apps/my-app/.eslintrc", opts["config"])
	assert.Equal(t, []string{"**/node_modules/**", "!apps/my-app/**"}, opts["exclude"])
	assert.Equal(t, []string{"apps/my-app/tsconfig.app.json"}, opts["tsConfig"])

	tslint := ProjectTarget(TSLint, "apps/my-app")
	assert.Equal(t, "@angular-devkit/build-angular:tslint", tslint.Builder)
	assert.NotContains(t, tslint.Options.(map[string]any), "config")
}
