// Package tree stages file changes over a workspace directory.
//
// Reads fall through to disk until a path is staged. Nothing touches the
// disk until Commit, which hands the staged changes to the fledge generator
// as one batch.
package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Kind says how a staged path relates to the disk.
type Kind int

const (
	// Create stages a new file. It conflicts with a file already on disk.
	Create Kind = iota
	// Overwrite replaces a file the caller read first.
	Overwrite
)

func (k Kind) String() string {
	if k == Overwrite {
		return "overwrite"
	}
	return "create"
}

// Action is one staged change
type Action struct {
	Kind    Kind
	Path    string // slash-separated, relative to the tree root
	Content []byte
}

// Tree is an ordered set of staged files over a root directory.
// A Tree is not safe for concurrent use.
type Tree struct {
	root    string
	staged  map[string]*Action
	ordered []string
}

// New creates an empty tree over root.
func New(root string) *Tree {
	return &Tree{
		root:   root,
		staged: make(map[string]*Action),
	}
}

// Root returns the directory the tree is staged over.
func (t *Tree) Root() string {
	return t.root
}

// Normalize cleans p into the tree's path form: slash-separated, relative,
// no leading "./" or "/".
func Normalize(p string) string {
	p = path.Clean("/" + filepath.ToSlash(p))
	return strings.TrimPrefix(p, "/")
}

// DiskPath maps a tree path to its location on disk.
func (t *Tree) DiskPath(p string) string {
	return filepath.Join(t.root, filepath.FromSlash(Normalize(p)))
}

// Read returns the staged content of p, or the disk content when p is not
// staged. Missing files yield an error wrapping fs.ErrNotExist.
func (t *Tree) Read(p string) ([]byte, error) {
	p = Normalize(p)
	if a, ok := t.staged[p]; ok {
		return clone(a.Content), nil
	}

	data, err := os.ReadFile(t.DiskPath(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", p, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// Exists reports whether p is staged or present on disk.
func (t *Tree) Exists(p string) bool {
	p = Normalize(p)
	if _, ok := t.staged[p]; ok {
		return true
	}
	info, err := os.Stat(t.DiskPath(p))
	return err == nil && !info.IsDir()
}

// Create stages a new file. Creating a path that is already staged is an
// error; creating over a disk file is allowed and resolved at commit.
func (t *Tree) Create(p string, content []byte) error {
	p = Normalize(p)
	if p == "" {
		return fmt.Errorf("create: empty path")
	}
	if _, ok := t.staged[p]; ok {
		return fmt.Errorf("create %s: %w", p, fs.ErrExist)
	}

	t.stage(&Action{Kind: Create, Path: p, Content: clone(content)})
	return nil
}

// Overwrite replaces the content of an existing (staged or disk) file.
func (t *Tree) Overwrite(p string, content []byte) error {
	p = Normalize(p)
	if a, ok := t.staged[p]; ok {
		a.Content = clone(content)
		return nil
	}
	if !t.Exists(p) {
		return fmt.Errorf("overwrite %s: %w", p, fs.ErrNotExist)
	}

	t.stage(&Action{Kind: Overwrite, Path: p, Content: clone(content)})
	return nil
}

// Write overwrites p when it exists and creates it otherwise.
func (t *Tree) Write(p string, content []byte) error {
	if t.Exists(p) {
		return t.Overwrite(p, content)
	}
	return t.Create(p, content)
}

func (t *Tree) stage(a *Action) {
	t.staged[a.Path] = a
	t.ordered = append(t.ordered, a.Path)
}

// Actions returns the staged changes in staging order.
func (t *Tree) Actions() []Action {
	out := make([]Action, 0, len(t.ordered))
	for _, p := range t.ordered {
		out = append(out, *t.staged[p])
	}
	return out
}

// Files returns the staged paths in staging order.
func (t *Tree) Files() []string {
	return append([]string(nil), t.ordered...)
}

// Len returns the number of staged paths.
func (t *Tree) Len() int {
	return len(t.ordered)
}

// clone copies b, never returning nil so empty files stay writable.
func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return bytes.Clone(b)
}
