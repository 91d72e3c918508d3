package exec

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StreamingWriter prefixes and styles each complete line written to it.
// Used to relay tool output in verbose mode.
type StreamingWriter struct {
	prefix string
	style  lipgloss.Style
	writer io.Writer
	buffer []byte
}

// NewStreamingWriter creates a formatted output writer
func NewStreamingWriter(writer io.Writer, prefix string, color lipgloss.Color) *StreamingWriter {
	return &StreamingWriter{
		prefix: prefix,
		style:  lipgloss.NewStyle().Foreground(color),
		writer: writer,
	}
}

// Write formats and writes output line by line. A trailing partial line is
// held until the next Write or Flush.
func (s *StreamingWriter) Write(p []byte) (int, error) {
	s.buffer = append(s.buffer, p...)

	lines := strings.Split(string(s.buffer), "\n")
	s.buffer = []byte(lines[len(lines)-1])

	for _, line := range lines[:len(lines)-1] {
		if _, err := io.WriteString(s.writer, s.formatLine(line)+"\n"); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush writes any remaining buffered content
func (s *StreamingWriter) Flush() error {
	if len(s.buffer) == 0 {
		return nil
	}
	_, err := io.WriteString(s.writer, s.formatLine(string(s.buffer))+"\n")
	s.buffer = s.buffer[:0]
	return err
}

func (s *StreamingWriter) formatLine(line string) string {
	return s.style.Render(s.prefix + line)
}
