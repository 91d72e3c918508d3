// Package docgen generates markdown reference pages for the workspace
// commands defined in package scripts.
package docgen

import (
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/simonhull/kestrel/internal/scripts"
)

// CommandDescriptor describes one workspace command for documentation.
type CommandDescriptor struct {
	Command     string // original usage form
	Description string
	Options     []OptionDescriptor
}

// OptionDescriptor describes one flag. Default is empty when the flag has no
// meaningful default.
type OptionDescriptor struct {
	Command     string // "--flag"
	Description string
	Default     string
}

// Name returns the flag name without the leading dashes.
func (o OptionDescriptor) Name() string {
	return strings.TrimPrefix(o.Command, "--")
}

// excludedPrefixes name commands that are not reference material.
var excludedPrefixes = []string{"run", "generate"}

// Introspect runs the handler's builder against a fresh flag set and
// describes the flags it declares, in declaration order.
func Introspect(h scripts.Handler) CommandDescriptor {
	fs := pflag.NewFlagSet(h.Original, pflag.ContinueOnError)
	fs.SortFlags = false
	if h.Builder != nil {
		h.Builder(fs)
	}

	desc := CommandDescriptor{Command: h.Original, Description: h.Description}
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		def := f.DefValue
		if _, ok := f.Annotations[scripts.AnnotationNoDefault]; ok || def == "[]" {
			def = ""
		}
		desc.Options = append(desc.Options, OptionDescriptor{
			Command:     "--" + f.Name,
			Description: f.Usage,
			Default:     def,
		})
	})
	return desc
}

// Commands describes every documented handler, ordered by command name.
func Commands(handlers map[string]scripts.Handler) []CommandDescriptor {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		if excluded(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]CommandDescriptor, 0, len(names))
	for _, name := range names {
		out = append(out, Introspect(handlers[name]))
	}
	return out
}

func excluded(name string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// SortOptions orders options by flag name using byte-wise comparison, so
// upper case sorts before lower case.
func SortOptions(opts []OptionDescriptor) []OptionDescriptor {
	sorted := make([]OptionDescriptor, len(opts))
	copy(sorted, opts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return sorted
}
