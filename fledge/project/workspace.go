package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotWorkspace is returned when no workspace root is found.
var ErrNotWorkspace = errors.New("not inside a workspace")

// Markers are the files that identify a workspace root, in priority order.
var Markers = []string{"workspace.json", "angular.json"}

// Workspace describes a detected workspace root
type Workspace struct {
	Root   string // Absolute directory path
	Config string // Registry file name found in Root
}

// DetectWorkspace walks up from start until a directory contains one of
// Markers.
func DetectWorkspace(start string) (*Workspace, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		for _, marker := range Markers {
			info, err := os.Stat(filepath.Join(dir, marker))
			if err == nil && !info.IsDir() {
				return &Workspace{Root: dir, Config: marker}, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: no %s found above %s", ErrNotWorkspace, Markers[0], start)
		}
		dir = parent
	}
}

// IsWorkspace reports whether dir itself is a workspace root.
func IsWorkspace(dir string) bool {
	for _, marker := range Markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
