package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrFileExists is returned by WriteFileOp.Validate when the target exists
// and Force is not set.
var ErrFileExists = errors.New("file already exists")

// Operation is a file system change that can be checked before it runs.
//
// Validate reports whether Execute would succeed. force=true disables
// conflict checks. Description is the line printed for the change, e.g.
// "Create apps/my-app/src/main.tsx (412 bytes)".
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// Targeted is implemented by operations that modify known files.
// Execute journals those files so they can be restored on failure.
type Targeted interface {
	Targets() []string
}

// WriteFileOp writes Content to Path, creating parent directories.
//
// Overwrite marks a write to a file the generator read and updated (for
// example workspace.json); such writes never count as conflicts.
type WriteFileOp struct {
	Path      string
	Content   []byte
	Mode      fs.FileMode
	Overwrite bool
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	if !force && !op.Overwrite {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, op.Path)
		}
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", op.Path, err)
	}

	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	return os.WriteFile(op.Path, op.Content, mode)
}

func (op *WriteFileOp) Description() string {
	verb := "Create"
	if op.Overwrite {
		verb = "Update"
	}
	return fmt.Sprintf("%s %s (%d bytes)", verb, op.Path, len(op.Content))
}

func (op *WriteFileOp) Targets() []string {
	return []string{op.Path}
}

// RemoveAllOp deletes a directory tree. A missing directory is not an error.
type RemoveAllOp struct {
	Path string
}

func (op *RemoveAllOp) Validate(ctx context.Context, force bool) error {
	clean := filepath.Clean(op.Path)
	if op.Path == "" || clean == "." || clean == string(filepath.Separator) {
		return fmt.Errorf("refusing to remove %q", op.Path)
	}
	return nil
}

func (op *RemoveAllOp) Execute(ctx context.Context) error {
	if err := os.RemoveAll(op.Path); err != nil {
		return fmt.Errorf("removing %s: %w", op.Path, err)
	}
	return nil
}

func (op *RemoveAllOp) Description() string {
	return fmt.Sprintf("Clear %s", op.Path)
}
