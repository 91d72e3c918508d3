// Package format runs the workspace code formatter over generated files.
package format

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/simonhull/kestrel/fledge/exec"
	"github.com/simonhull/kestrel/fledge/output"
	"github.com/simonhull/kestrel/internal/logger"
)

// Formatter runs a formatter command with file paths appended.
type Formatter struct {
	name       string
	args       []string
	extensions []string
	executor   *exec.Executor
	spinner    bool
}

// Options configures a Formatter
type Options struct {
	Command    string   // command line, e.g. "npx prettier --write"
	Extensions []string // formattable extensions including the dot; empty means all
	Dir        string   // workspace root
	Executor   *exec.Executor
	Spinner    bool
}

// New parses opts.Command into a Formatter.
func New(opts Options) (*Formatter, error) {
	words, err := shellwords.Parse(opts.Command)
	if err != nil {
		return nil, fmt.Errorf("parsing formatter command %q: %w", opts.Command, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("formatter command is empty")
	}

	executor := opts.Executor
	if executor == nil {
		executor = exec.NewExecutor(&exec.Options{Dir: opts.Dir})
	}

	return &Formatter{
		name:       words[0],
		args:       words[1:],
		extensions: opts.Extensions,
		executor:   executor,
		spinner:    opts.Spinner,
	}, nil
}

// Select returns the files with a formattable extension, in order.
func (f *Formatter) Select(files []string) []string {
	if len(f.extensions) == 0 {
		return slices.Clone(files)
	}
	var out []string
	for _, file := range files {
		if slices.Contains(f.extensions, strings.ToLower(path.Ext(file))) {
			out = append(out, file)
		}
	}
	return out
}

// Command returns the invocation for files without running it.
func (f *Formatter) Command(files []string) *exec.Command {
	cmd := exec.NewCommand(f.executor, f.name).WithArgs(f.args...).WithArgs(files...)
	if f.spinner {
		cmd.WithSpinner("Formatting files")
	}
	return cmd
}

// Run formats the selected files. A formatter that is not installed is
// reported as a warning and is not an error.
func (f *Formatter) Run(ctx context.Context, files []string) error {
	selected := f.Select(files)
	if len(selected) == 0 {
		return nil
	}

	cmd := f.Command(selected)
	logger.Debug("running formatter", logger.F("command", cmd.String()))

	err := cmd.Run(ctx)
	if errors.Is(err, exec.ErrCommandNotFound) {
		output.Warn(fmt.Sprintf("Formatter %s not found, skipping formatting", f.name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("formatting %d files: %w", len(selected), err)
	}
	return nil
}
