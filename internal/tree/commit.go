package tree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/simonhull/kestrel/fledge/generator"
)

// CommitOptions configures Commit
type CommitOptions struct {
	DryRun   bool
	Quiet    bool
	Resolver *generator.Resolver // nil fails on any conflict
	Writer   io.Writer
}

// CommitResult lists what Commit did, by tree path
type CommitResult struct {
	Written   []string // created or updated
	Skipped   []string // kept on disk by the conflict resolver
	Unchanged []string // staged content equal to the disk
}

// Commit writes the staged changes to disk.
//
// Conflicts (a Create over an existing file with different content) are
// resolved before anything is written. The writes then run as one
// generator batch, so a failure rolls back the files already written.
func (t *Tree) Commit(ctx context.Context, opts CommitOptions) (*CommitResult, error) {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = generator.NewResolverWith(generator.FailStrategy{})
	}

	result := &CommitResult{}
	var ops []generator.Operation

	for _, a := range t.Actions() {
		diskPath := t.DiskPath(a.Path)

		existing, err := os.ReadFile(diskPath)
		onDisk := err == nil
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", a.Path, err)
		}

		if onDisk && bytes.Equal(existing, a.Content) {
			result.Unchanged = append(result.Unchanged, a.Path)
			continue
		}

		if onDisk && a.Kind == Create {
			res, err := resolver.ResolveConflict(a.Path, existing, a.Content)
			if err != nil {
				return nil, err
			}
			if res == generator.Skip {
				result.Skipped = append(result.Skipped, a.Path)
				continue
			}
		}

		ops = append(ops, &generator.WriteFileOp{
			Path:      diskPath,
			Content:   a.Content,
			Mode:      0644,
			Overwrite: onDisk,
		})
		result.Written = append(result.Written, a.Path)
	}

	err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: opts.DryRun,
		Quiet:  opts.Quiet,
		Writer: opts.Writer,
	})
	if err != nil {
		return nil, fmt.Errorf("committing %d files: %w", len(ops), err)
	}
	return result, nil
}
