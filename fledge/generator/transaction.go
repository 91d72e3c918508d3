package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Transaction journals the prior state of files so a failed batch can be undone.
type Transaction struct {
	journal   []snapshot
	seen      map[string]bool
	committed bool
}

// snapshot is the state of one path before the transaction touched it
type snapshot struct {
	path    string
	existed bool
	content []byte
	mode    fs.FileMode
}

// NewTransaction creates an empty transaction
func NewTransaction() *Transaction {
	return &Transaction{
		journal: make([]snapshot, 0),
		seen:    make(map[string]bool),
	}
}

// Snapshot records the current state of path. Recording the same path twice
// keeps the first snapshot, which is the state to restore.
func (t *Transaction) Snapshot(path string) error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}
	if t.seen[path] {
		return nil
	}

	snap := snapshot{path: path}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s for rollback: %w", path, err)
		}
		snap.existed = true
		snap.content = content
		snap.mode = info.Mode().Perm()
	case errors.Is(err, fs.ErrNotExist):
		// new file: rollback removes it
	default:
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	t.seen[path] = true
	t.journal = append(t.journal, snap)
	return nil
}

// Commit marks the transaction as complete. A committed transaction cannot
// be rolled back.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}
	t.committed = true
	return nil
}

// Rollback restores every journaled path, newest first.
// It keeps going after a failure and returns the first error.
func (t *Transaction) Rollback() error {
	if t.committed {
		return nil
	}

	var first error
	for i := len(t.journal) - 1; i >= 0; i-- {
		snap := t.journal[i]

		var err error
		if snap.existed {
			err = os.WriteFile(snap.path, snap.content, snap.mode)
		} else if rmErr := os.Remove(snap.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = rmErr
		}

		if err != nil && first == nil {
			first = fmt.Errorf("restoring %s: %w", snap.path, err)
		}
	}

	t.journal = nil
	return first
}
