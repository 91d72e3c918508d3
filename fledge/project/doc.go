// Package project locates the workspace a command runs in.
//
// A workspace root is the nearest ancestor directory holding one of the
// registry files in Markers:
//
//	root, err := project.DetectWorkspace(".")
//	if errors.Is(err, project.ErrNotWorkspace) {
//	    // not inside a workspace
//	}
package project
