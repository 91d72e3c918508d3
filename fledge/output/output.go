package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	mu          sync.Mutex
	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// Commands call this from the --verbose persistent flag.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// SetOutput redirects all output to w and returns the previous writer.
// Tests use it to capture what a command printed.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// Success prints a completed operation.
//
//	output.Success("Generated application my-app")
func Success(msg string) {
	emit(successStyle.Render("✔ " + msg))
}

// Warn prints a non-fatal problem the user should know about.
func Warn(msg string) {
	emit(warnStyle.Render("⚠ " + msg))
}

// Error prints a failure that stopped the command.
func Error(msg string) {
	emit(errorStyle.Render("✖ " + msg))
}

// Info prints a status update or heading.
func Info(msg string) {
	emit(infoStyle.Render(msg))
}

// Step prints an indented follow-up item.
//
//	output.Step("nx serve my-app")
func Step(msg string) {
	emit(stepStyle.Render("   " + msg))
}

// Verbose prints a debug line, only when verbose mode is enabled.
func Verbose(msg string) {
	mu.Lock()
	enabled := verboseMode
	mu.Unlock()
	if enabled {
		emit(stepStyle.Render("· " + msg))
	}
}

func emit(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, s)
}
