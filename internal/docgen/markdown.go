package docgen

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/simonhull/kestrel/fledge/generator"
)

const fence = "```"

// InstallHint follows the usage block on every page.
const InstallHint = "Install `@nrwl/cli` globally to invoke the command directly using `nx`, or use `npm run nx` or `yarn nx`."

var pageTemplate = strings.TrimPrefix(dedent.Dedent(`
	# {{.Command}}

	{{.Description}}

	## Usage

	`+fence+`bash
	nx {{.Command}}
	`+fence+`

	`+InstallHint+`
	{{- if .Examples}}

	### Examples
	{{- range .Examples}}

	{{.Description}}:

	`+fence+`bash
	nx {{.Command}}
	`+fence+`
	{{- end}}
	{{- end}}
	{{- if .Options}}

	## Options
	{{- range .Options}}

	### {{.Name}}
	{{- if .Default}}

	Default: `+"`{{.Default}}`"+`
	{{- end}}
	{{- if .Description}}

	{{.Description}}
	{{- end}}
	{{- end}}
	{{- end}}
`), "\n")

// Page is one rendered reference page.
type Page struct {
	Name    string // file name, e.g. "affected-apps.md"
	Content []byte
}

type pageData struct {
	Command     string
	Description string
	Examples    []Example
	Options     []OptionDescriptor
}

var slugStrip = regexp.MustCompile(`[\]\[.]+`)

// Slug derives a file name stem from a command's usage form: colons and
// spaces become hyphens, brackets and dots are dropped.
func Slug(command string) string {
	s := strings.NewReplacer(":", "-", " ", "-").Replace(command)
	return slugStrip.ReplaceAllString(s, "")
}

// Render renders the reference page for cmd. examples may be nil.
func Render(r *generator.Renderer, cmd CommandDescriptor, examples []Example) (Page, error) {
	if r == nil {
		r = generator.NewRenderer()
	}

	content, err := r.RenderString("npmscripts-page", pageTemplate, pageData{
		Command:     cmd.Command,
		Description: cmd.Description,
		Examples:    examples,
		Options:     SortOptions(cmd.Options),
	})
	if err != nil {
		return Page{}, fmt.Errorf("rendering %s: %w", cmd.Command, err)
	}

	page := Page{Name: Slug(cmd.Command) + ".md", Content: content}
	if err := checkTitle(page, cmd.Command); err != nil {
		return Page{}, err
	}
	return page, nil
}

// Heading is a markdown heading.
type Heading struct {
	Level int
	Text  string
}

// Headings lists the headings of a markdown document in order.
func Headings(src []byte) []Heading {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{Level: h.Level, Text: nodeText(h, src)})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// checkTitle verifies a page opens with a level-1 heading naming command.
func checkTitle(page Page, command string) error {
	headings := Headings(page.Content)
	if len(headings) == 0 || headings[0].Level != 1 || headings[0].Text != command {
		return fmt.Errorf("page %s: expected title %q", page.Name, command)
	}
	return nil
}
