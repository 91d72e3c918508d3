package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts conflict resolution.
var ErrCancelled = errors.New("generation cancelled")

// ErrConflict is returned by the fail strategy.
var ErrConflict = errors.New("file conflict")

// ConflictResolution represents what to do with an existing file
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	Cancel
)

func (c ConflictResolution) String() string {
	switch c {
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	default:
		return "cancel"
	}
}

// Strategy names a conflict policy as accepted on the command line.
type Strategy string

const (
	StrategyPrompt Strategy = "prompt"
	StrategyForce  Strategy = "force"
	StrategySkip   Strategy = "skip"
	StrategyFail   Strategy = "fail"
)

// ConflictStrategy determines how to resolve conflicts
type ConflictStrategy interface {
	Resolve(path string, existing, newer []byte) (ConflictResolution, error)
}

// Resolver decides what happens to generated files that already exist on disk.
type Resolver struct {
	strategy ConflictStrategy
}

// NewResolver returns a resolver for the named strategy.
func NewResolver(s Strategy) (*Resolver, error) {
	switch s {
	case StrategyForce:
		return &Resolver{strategy: ForceStrategy{}}, nil
	case StrategySkip:
		return &Resolver{strategy: SkipStrategy{}}, nil
	case StrategyFail, "":
		return &Resolver{strategy: FailStrategy{}}, nil
	case StrategyPrompt:
		return &Resolver{strategy: &InteractiveStrategy{Out: os.Stdout}}, nil
	default:
		return nil, fmt.Errorf("unknown conflict strategy %q (want prompt, force, skip or fail)", s)
	}
}

// NewResolverWith wraps a custom strategy.
func NewResolverWith(s ConflictStrategy) *Resolver {
	return &Resolver{strategy: s}
}

// ResolveConflict decides the fate of path. Cancel is reported as ErrCancelled.
func (r *Resolver) ResolveConflict(path string, existing, newer []byte) (ConflictResolution, error) {
	res, err := r.strategy.Resolve(path, existing, newer)
	if err != nil {
		return Cancel, err
	}
	if res == Cancel {
		return Cancel, ErrCancelled
	}
	return res, nil
}

// ForceStrategy always overwrites.
type ForceStrategy struct{}

func (ForceStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always keeps the existing file.
type SkipStrategy struct{}

func (SkipStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Skip, nil
}

// FailStrategy refuses to touch existing files.
type FailStrategy struct{}

func (FailStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Cancel, fmt.Errorf("%w: %s already exists (use --force or --skip)", ErrConflict, path)
}

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const showDiffChoice = -1

// InteractiveStrategy asks the user, offering to show the diff first.
type InteractiveStrategy struct {
	Out io.Writer
}

func (s *InteractiveStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	for {
		choice := int(Cancel)
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[int]().
				Title(warningStyle.Render("File conflict: ")+titleStyle.Render(path)).
				Options(
					huh.NewOption("Show diff and decide", showDiffChoice),
					huh.NewOption("Skip (keep existing file)", int(Skip)),
					huh.NewOption("Overwrite (replace with generated content)", int(Overwrite)),
					huh.NewOption("Cancel generation", int(Cancel)),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return Cancel, nil
			}
			return Cancel, fmt.Errorf("conflict prompt: %w", err)
		}

		if choice != showDiffChoice {
			return ConflictResolution(choice), nil
		}

		if err := s.showDiff(path, existing, newer); err != nil {
			return Cancel, err
		}
	}
}

func (s *InteractiveStrategy) showDiff(path string, existing, newer []byte) error {
	diff, err := UnifiedDiff(path, existing, newer)
	if err != nil {
		return fmt.Errorf("computing diff: %w", err)
	}
	diff = ColorizeDiff(diff)

	// Short diffs print inline; long ones get a scrollable pager.
	if strings.Count(diff, "\n") <= 20 {
		fmt.Fprintln(s.Out, diff)
		return nil
	}

	if _, err := tea.NewProgram(newDiffViewer(path, diff), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("showing diff: %w", err)
	}
	return nil
}

// diffViewer is a full-screen pager for long diffs
type diffViewer struct {
	path     string
	diff     string
	viewport viewport.Model
	ready    bool
}

func newDiffViewer(path, diff string) diffViewer {
	return diffViewer{path: path, diff: diff}
}

func (m diffViewer) Init() tea.Cmd {
	return nil
}

func (m diffViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "enter":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m diffViewer) View() string {
	if !m.ready {
		return "Loading diff..."
	}
	header := borderStyle.Render("── " + m.path + " ──")
	footer := borderStyle.Render(fmt.Sprintf("[↑/↓] scroll  [q] back  %3.f%%", m.viewport.ScrollPercent()*100))
	return header + "\n" + m.viewport.View() + "\n" + footer
}
