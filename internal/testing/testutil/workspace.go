package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Minimal workspace files written by NewTestWorkspace.
const (
	WorkspaceJSON = `{
  "version": 1,
  "projects": {}
}
`
	NxJSON = `{
  "npmScope": "proj",
  "projects": {}
}
`
	PackageJSON = `{
  "name": "proj",
  "version": "0.0.0",
  "dependencies": {},
  "devDependencies": {}
}
`
)

// TestWorkspace is a temporary monorepo workspace for testing
type TestWorkspace struct {
	Root string
	t    *testing.T
}

// NewTestWorkspace creates a workspace with empty registry, tag registry
// and manifest files.
func NewTestWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()

	w := &TestWorkspace{Root: t.TempDir(), t: t}
	w.WriteFile("workspace.json", WorkspaceJSON)
	w.WriteFile("nx.json", NxJSON)
	w.WriteFile("package.json", PackageJSON)
	return w
}

// WriteFile writes a file relative to the workspace root, creating parents.
func (w *TestWorkspace) WriteFile(path, content string) {
	w.t.Helper()

	full := filepath.Join(w.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		w.t.Fatalf("creating %s: %v", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		w.t.Fatalf("writing %s: %v", path, err)
	}
}

// FileExists checks if a file exists in the workspace
func (w *TestWorkspace) FileExists(path string) bool {
	w.t.Helper()

	_, err := os.Stat(filepath.Join(w.Root, filepath.FromSlash(path)))
	return err == nil
}

// ReadFile reads a file from the workspace
func (w *TestWorkspace) ReadFile(path string) (string, error) {
	w.t.Helper()

	content, err := os.ReadFile(filepath.Join(w.Root, filepath.FromSlash(path)))
	return string(content), err
}

// Chdir switches the working directory to the workspace root for the rest
// of the test.
func (w *TestWorkspace) Chdir() {
	w.t.Helper()
	w.t.Chdir(w.Root)
}
