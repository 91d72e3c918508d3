package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompter reads answers from In and writes questions to Out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

var std = NewPrompter(os.Stdin, os.Stdout)

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
//	name := input.Prompt("Application name", "my-app")
//	// Displays: Application name (my-app): _
func Prompt(message, defaultValue string) string {
	return std.Prompt(message, defaultValue)
}

// Confirm asks the user a yes/no question. See Prompter.Confirm.
func Confirm(message string, defaultYes bool) bool {
	return std.Confirm(message, defaultYes)
}

func (p *Prompter) Prompt(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprint(p.out, promptStyle.Render(message)+" "+
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(p.out, promptStyle.Render(message)+": ")
	}

	answer, err := p.readLine()
	if err != nil || answer == "" {
		return defaultValue
	}
	return answer
}

// Confirm returns true for y/yes in any case. Enter (or EOF) returns defaultYes.
func (p *Prompter) Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprint(p.out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	answer, err := p.readLine()
	if err != nil || answer == "" {
		return defaultYes
	}

	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// readLine returns the trimmed line. A final line without a newline still counts.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
