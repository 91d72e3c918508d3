package filesystem

import (
	"io/fs"
	"path"
	"strings"
)

// DefaultIgnoreDirs are common directories to skip during traversal
var DefaultIgnoreDirs = []string{
	"node_modules", ".git", ".svn", ".hg",
	"dist", "tmp", ".idea", ".vscode",
}

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs     []string // Directories to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // File name patterns to skip (e.g., "*.orig")
	IncludeHidden  bool     // Include dot files and dot dirs
}

// Walk visits every file and directory below root in fsys, in lexical order.
// Return fs.SkipDir from visitor to skip a directory.
func Walk(fsys fs.FS, root string, opts WalkOptions, visitor func(path string, d fs.DirEntry) error) error {
	ignoreDirs := opts.IgnoreDirs
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}

	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return visitor(p, d)
		}

		name := d.Name()
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			for _, ignore := range ignoreDirs {
				if name == ignore {
					return fs.SkipDir
				}
			}
			return visitor(p, d)
		}

		for _, pattern := range opts.IgnorePatterns {
			if matched, _ := path.Match(pattern, name); matched {
				return nil
			}
		}
		return visitor(p, d)
	})
}

// Files returns the slash-separated paths of all files below root,
// relative to root.
func Files(fsys fs.FS, root string, opts WalkOptions) ([]string, error) {
	var files []string
	err := Walk(fsys, root, opts, func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, root)
		files = append(files, strings.TrimPrefix(rel, "/"))
		return nil
	})
	return files, err
}
