package jest

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

const registry = `{
  "version": 1,
  "projects": {
    "my-app": {
      "root": "apps/my-app",
      "sourceRoot": "apps/my-app/src",
      "projectType": "application",
      "schematics": {},
      "architect": {
        "lint": {
          "builder": "@nrwl/linter:lint",
          "options": {"tsConfig": ["apps/my-app/tsconfig.app.json"]}
        }
      }
    }
  }
}`

func newWorkspace(t *testing.T) *tree.Tree {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"workspace.json":            registry,
		"package.json":              `{"name":"proj"}`,
		"apps/my-app/tsconfig.json": `{"compilerOptions":{"types":["node"]}}`,
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return tree.New(dir)
}

func TestGenerateUnitTestSetup(t *testing.T) {
	tr := newWorkspace(t)

	err := (&Generator{}).GenerateUnitTestSetup(context.Background(), tr, schematics.UnitTestOptions{
		Project:         "my-app",
		SupportTSX:      true,
		SkipSerializers: true,
		SetupFile:       SetupNone,
	})
	require.NoError(t, err)

	config, err := tr.Read("apps/my-app/jest.config.js")
	require.NoError(t, err)
	assert.Contains(t, string(config), "name: 'my-app'")
	assert.Contains(t, string(config), "preset: '../../jest.config.js'")
	assert.Contains(t, string(config), "'^.+\\\\.[tj]sx?$': 'ts-jest'")
	assert.NotContains(t, string(config), "snapshotSerializers")
	assert.NotContains(t, string(config), "setupFilesAfterEnv")

	assert.True(t, tr.Exists("apps/my-app/tsconfig.spec.json"))
	assert.True(t, tr.Exists("jest.config.js"))
	assert.False(t, tr.Exists("apps/my-app/src/test-setup.ts"))

	w, err := workspace.ReadWorkspace(tr)
	require.NoError(t, err)
	p, _, err := w.Project("my-app")
	require.NoError(t, err)
	assert.Equal(t, "@nrwl/jest:jest", p.Architect["test"].Builder)

	lintOpts := p.Architect["lint"].Options.(map[string]any)
	assert.Equal(t, []any{"apps/my-app/tsconfig.app.json", "apps/my-app/tsconfig.spec.json"}, lintOpts["tsConfig"])

	tsconfig, err := tr.Read("apps/my-app/tsconfig.json")
	require.NoError(t, err)
	assert.Contains(t, string(tsconfig), `"jest"`)
}

func TestGenerateUnitTestSetupWithSetupFile(t *testing.T) {
	tr := newWorkspace(t)

	err := (&Generator{}).GenerateUnitTestSetup(context.Background(), tr, schematics.UnitTestOptions{
		Project:   "my-app",
		SetupFile: "react",
	})
	require.NoError(t, err)

	assert.True(t, tr.Exists("apps/my-app/src/test-setup.ts"))
	config, err := tr.Read("apps/my-app/jest.config.js")
	require.NoError(t, err)
	assert.Contains(t, string(config), "setupFilesAfterEnv")
	assert.Contains(t, string(config), "snapshotSerializers")
}

func TestGenerateUnitTestSetupUnknownProject(t *testing.T) {
	err := (&Generator{}).GenerateUnitTestSetup(context.Background(), newWorkspace(t), schematics.UnitTestOptions{Project: "nope"})
	assert.ErrorContains(t, err, `"nope"`)
}
