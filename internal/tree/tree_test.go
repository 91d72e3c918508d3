package tree

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/kestrel/fledge/generator"
)

func writeDisk(t *testing.T, root, p, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(p))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "apps/my-app/src/main.tsx", Normalize("./apps/my-app/src/main.tsx"))
	assert.Equal(t, "workspace.json", Normalize("/workspace.json"))
	assert.Equal(t, "apps/b", Normalize("apps/a/../b"))
}

func TestTree_ReadFallsThroughToDisk(t *testing.T) {
	root := t.TempDir()
	writeDisk(t, root, "workspace.json", `{"version":1}`)
	tr := New(root)

	got, err := tr.Read("workspace.json")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(got))

	require.NoError(t, tr.Overwrite("workspace.json", []byte(`{"version":2}`)))
	got, err = tr.Read("./workspace.json")
	require.NoError(t, err)
	assert.Equal(t, `{"version":2}`, string(got))

	_, err = tr.Read("nx.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestTree_CreateTwiceFails(t *testing.T) {
	tr := New(t.TempDir())

	require.NoError(t, tr.Create("apps/my-app/src/main.tsx", []byte("a")))
	assert.ErrorIs(t, tr.Create("apps/my-app/src/main.tsx", []byte("b")), fs.ErrExist)
	assert.True(t, tr.Exists("apps/my-app/src/main.tsx"))
}

func TestTree_OverwriteMissingFails(t *testing.T) {
	tr := New(t.TempDir())
	assert.ErrorIs(t, tr.Overwrite("nx.json", []byte("{}")), fs.ErrNotExist)
}

func TestTree_OrderIsStagingOrder(t *testing.T) {
	tr := New(t.TempDir())
	require.NoError(t, tr.Create("b.ts", nil))
	require.NoError(t, tr.Create("a.ts", nil))
	require.NoError(t, tr.Write("b.ts", []byte("x")))

	assert.Equal(t, []string{"b.ts", "a.ts"}, tr.Files())
	assert.Equal(t, 2, tr.Len())
}

func TestTree_CommitWritesFiles(t *testing.T) {
	root := t.TempDir()
	writeDisk(t, root, "package.json", "{}")
	tr := New(root)

	require.NoError(t, tr.Create("apps/my-app/src/main.tsx", []byte("main")))
	require.NoError(t, tr.Overwrite("package.json", []byte(`{"dependencies":{}}`)))

	res, err := tr.Commit(context.Background(), CommitOptions{Writer: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, []string{"apps/my-app/src/main.tsx", "package.json"}, res.Written)
	got, _ := os.ReadFile(filepath.Join(root, "apps", "my-app", "src", "main.tsx"))
	assert.Equal(t, "main", string(got))
	got, _ = os.ReadFile(filepath.Join(root, "package.json"))
	assert.Equal(t, `{"dependencies":{}}`, string(got))
}

func TestTree_CommitDryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	tr := New(root)
	require.NoError(t, tr.Create("apps/my-app/src/main.tsx", []byte("main")))

	var buf bytes.Buffer
	res, err := tr.Commit(context.Background(), CommitOptions{DryRun: true, Writer: &buf})
	require.NoError(t, err)

	assert.Equal(t, []string{"apps/my-app/src/main.tsx"}, res.Written)
	assert.Contains(t, buf.String(), "[DRY RUN]")
	assert.NoFileExists(t, filepath.Join(root, "apps", "my-app", "src", "main.tsx"))
}

func TestTree_CommitConflicts(t *testing.T) {
	tests := []struct {
		name        string
		strategy    generator.Strategy
		wantErr     bool
		wantContent string
		wantSkipped bool
	}{
		{name: "fail", strategy: generator.StrategyFail, wantErr: true, wantContent: "old"},
		{name: "skip", strategy: generator.StrategySkip, wantContent: "old", wantSkipped: true},
		{name: "force", strategy: generator.StrategyForce, wantContent: "new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeDisk(t, root, "apps/my-app/src/app/app.tsx", "old")
			tr := New(root)
			require.NoError(t, tr.Create("apps/my-app/src/app/app.tsx", []byte("new")))
			require.NoError(t, tr.Create("apps/my-app/src/main.tsx", []byte("main")))

			resolver, err := generator.NewResolver(tt.strategy)
			require.NoError(t, err)

			res, err := tr.Commit(context.Background(), CommitOptions{Resolver: resolver, Writer: &bytes.Buffer{}})
			got, _ := os.ReadFile(filepath.Join(root, "apps", "my-app", "src", "app", "app.tsx"))
			assert.Equal(t, tt.wantContent, string(got))

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, generator.ErrConflict)
				assert.NoFileExists(t, filepath.Join(root, "apps", "my-app", "src", "main.tsx"))
				return
			}
			require.NoError(t, err)
			if tt.wantSkipped {
				assert.Equal(t, []string{"apps/my-app/src/app/app.tsx"}, res.Skipped)
			}
		})
	}
}

func TestTree_CommitUnchangedIsNotConflict(t *testing.T) {
	root := t.TempDir()
	writeDisk(t, root, "apps/my-app/src/main.tsx", "same")
	tr := New(root)
	require.NoError(t, tr.Create("apps/my-app/src/main.tsx", []byte("same")))

	res, err := tr.Commit(context.Background(), CommitOptions{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"apps/my-app/src/main.tsx"}, res.Unchanged)
	assert.Empty(t, res.Written)
}
