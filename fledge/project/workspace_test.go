package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectWorkspace_FromNestedDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "workspace.json"), []byte(`{"version":1}`), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "apps", "my-app", "src")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	ws, err := DetectWorkspace(nested)
	if err != nil {
		t.Fatalf("DetectWorkspace() error = %v", err)
	}

	want, _ := filepath.EvalSymlinks(root)
	got, _ := filepath.EvalSymlinks(ws.Root)
	if got != want {
		t.Errorf("Root = %q, want %q", got, want)
	}
	if ws.Config != "workspace.json" {
		t.Errorf("Config = %q, want workspace.json", ws.Config)
	}
}

func TestDetectWorkspace_AngularJSON(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "angular.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	ws, err := DetectWorkspace(root)
	if err != nil {
		t.Fatalf("DetectWorkspace() error = %v", err)
	}
	if ws.Config != "angular.json" {
		t.Errorf("Config = %q, want angular.json", ws.Config)
	}
	if !IsWorkspace(root) {
		t.Error("IsWorkspace() = false, want true")
	}
}

func TestDetectWorkspace_NotFound(t *testing.T) {
	_, err := DetectWorkspace(t.TempDir())
	if !errors.Is(err, ErrNotWorkspace) {
		t.Errorf("error = %v, want ErrNotWorkspace", err)
	}
}
