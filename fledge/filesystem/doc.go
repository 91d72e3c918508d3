// Package filesystem walks template trees with the usual ignore rules.
//
// Walk works on any fs.FS, so the same code walks embedded templates and
// directories on disk (via os.DirFS):
//
//	err := filesystem.Walk(templates, "files/app", filesystem.WalkOptions{
//	    IgnorePatterns: []string{"*.orig"},
//	}, func(path string, d fs.DirEntry) error {
//	    // path is slash-separated and relative to the FS root
//	    return nil
//	})
package filesystem
