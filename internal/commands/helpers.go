package commands

import (
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/ddddddO/gtree"
	"golang.org/x/term"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/fledge/project"
	"github.com/simonhull/kestrel/internal/workspace"
)

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// findWorkspace locates the workspace root from dir, or from the working
// directory when dir is empty.
func findWorkspace(dir string) (*project.Workspace, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}

	ws, err := project.DetectWorkspace(dir)
	if err != nil {
		return nil, err
	}
	if ws.Config != workspace.RegistryFile {
		return nil, fmt.Errorf("%s: %s workspaces are not supported, expected %s", ws.Root, ws.Config, workspace.RegistryFile)
	}
	return ws, nil
}

// conflictStrategy picks how existing files are handled. Flags win over
// the configured strategy; without either, terminals get a prompt and
// everything else fails on conflict.
func conflictStrategy(force, skip bool, configured string) generator.Strategy {
	switch {
	case force:
		return generator.StrategyForce
	case skip:
		return generator.StrategySkip
	case configured != "":
		return generator.Strategy(configured)
	case isInteractive():
		return generator.StrategyPrompt
	default:
		return generator.StrategyFail
	}
}

// printTree lists files as a directory tree under a root label.
func printTree(w io.Writer, label string, files []string) error {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	root := gtree.NewRoot(label)
	nodes := map[string]*gtree.Node{"": root}

	var node func(dir string) *gtree.Node
	node = func(dir string) *gtree.Node {
		if n, ok := nodes[dir]; ok {
			return n
		}
		parent := path.Dir(dir)
		if parent == "." {
			parent = ""
		}
		n := node(parent).Add(path.Base(dir))
		nodes[dir] = n
		return n
	}

	for _, f := range sorted {
		dir := path.Dir(f)
		if dir == "." {
			dir = ""
		}
		node(dir).Add(path.Base(f))
	}

	return gtree.OutputFromRoot(w, root)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, strings.TrimSuffix(word, "s"))
}
