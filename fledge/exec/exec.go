package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCommandNotFound is returned when the executable is not on PATH.
var ErrCommandNotFound = errors.New("command not found")

// Executor runs external commands
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	env    []string
	dir    string

	// For mocking in tests
	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Options configures command execution
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    []string // Additional environment variables
	Dir    string   // Working directory
}

// NewExecutor creates an executor. nil options mean the process streams and
// the current directory.
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}

	e := &Executor{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		env:         opts.Env,
		dir:         opts.Dir,
		commandFunc: exec.CommandContext,
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	return e
}

// Dir returns the working directory commands run in.
func (e *Executor) Dir() string {
	return e.dir
}

// Run executes a command, streaming its output to the executor's writers.
// Cancelling ctx kills the process.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	return e.run(ctx, e.stdout, e.stderr, name, args...)
}

func (e *Executor) run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := e.commandFunc(ctx, name, args...)
	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	switch {
	case err == nil:
		return nil
	case isCommandNotFound(err):
		return fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	case ctx.Err() != nil:
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	default:
		return fmt.Errorf("%s failed: %w", name, err)
	}
}

// RunWithSpinner runs a command behind a progress spinner. The command's
// stdout is discarded; stderr is written to the executor's stderr only if
// the command fails.
func (e *Executor) RunWithSpinner(ctx context.Context, message string, name string, args ...string) error {
	var stderr bytes.Buffer

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(e.stderr), tea.WithInput(nil))
	spinnerDone := make(chan struct{})
	go func() {
		defer close(spinnerDone)
		// spinner failures never fail the command
		_, _ = p.Run()
	}()

	err := e.run(ctx, io.Discard, &stderr, name, args...)

	p.Send(spinnerDoneMsg{err: err})
	select {
	case <-spinnerDone:
	case <-time.After(500 * time.Millisecond):
		p.Quit()
		<-spinnerDone
	}

	if err != nil && stderr.Len() > 0 {
		_, _ = e.stderr.Write(stderr.Bytes())
	}
	return err
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✖ %s\n", m.message)
		}
		return fmt.Sprintf("✔ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

func isCommandNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}

// Command builds a command invocation fluently
type Command struct {
	executor   *Executor
	name       string
	args       []string
	spinnerMsg string
}

// NewCommand starts building an invocation of name.
func NewCommand(executor *Executor, name string) *Command {
	return &Command{executor: executor, name: name}
}

// WithArgs adds arguments to the command
func (c *Command) WithArgs(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// WithSpinner enables spinner with the given message
func (c *Command) WithSpinner(message string) *Command {
	c.spinnerMsg = message
	return c
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	if c.spinnerMsg != "" {
		return c.executor.RunWithSpinner(ctx, c.spinnerMsg, c.name, c.args...)
	}
	return c.executor.Run(ctx, c.name, c.args...)
}

// String returns the command line, for logs and dry runs
func (c *Command) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}
