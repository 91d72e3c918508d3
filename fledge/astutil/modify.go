package astutil

import (
	"context"
	"fmt"
	"sort"
)

// Change inserts Text at byte offset Pos of the original source.
type Change struct {
	Pos  int
	Text string
}

// Modifier queues insertions against one parsed source.
type Modifier struct {
	src     *Source
	changes []Change
}

// NewModifier creates a modifier for src.
func NewModifier(src *Source) *Modifier {
	return &Modifier{src: src}
}

// Insert queues text at pos. Offsets refer to the original source, so
// queued changes never shift each other.
func (m *Modifier) Insert(pos int, text string) {
	m.changes = append(m.changes, Change{Pos: pos, Text: text})
}

// Changes returns the queued changes.
func (m *Modifier) Changes() []Change {
	return m.changes
}

// Apply splices all changes into the source and checks the result parses.
func (m *Modifier) Apply(ctx context.Context) ([]byte, error) {
	out, err := ApplyChanges(m.src.content, m.changes)
	if err != nil {
		return nil, err
	}

	parsed, err := Parse(ctx, out)
	if err != nil {
		return nil, err
	}
	if err := parsed.Validate(); err != nil {
		return nil, fmt.Errorf("edit produced invalid source: %w", err)
	}
	return out, nil
}

// ApplyChanges splices changes into content. Changes at the same offset keep
// their queue order.
func ApplyChanges(content []byte, changes []Change) ([]byte, error) {
	sorted := make([]Change, len(changes))
	copy(sorted, changes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	size := len(content)
	for _, c := range sorted {
		if c.Pos < 0 || c.Pos > len(content) {
			return nil, fmt.Errorf("insert position %d out of range [0, %d]", c.Pos, len(content))
		}
		size += len(c.Text)
	}

	out := make([]byte, 0, size)
	last := 0
	for _, c := range sorted {
		out = append(out, content[last:c.Pos]...)
		out = append(out, c.Text...)
		last = c.Pos
	}
	return append(out, content[last:]...), nil
}
