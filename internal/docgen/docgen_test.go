package docgen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/internal/scripts"
)

func testHandlers() map[string]scripts.Handler {
	return map[string]scripts.Handler{
		"affected": {
			Original:    "affected",
			Description: "Run task for affected projects",
			Builder: func(fs *pflag.FlagSet) {
				fs.String("target", "", "Task to run for affected projects")
				fs.Int("maxParallel", 3, "Max number of parallel processes")
				fs.Bool("all", false, "All projects")
			},
		},
		"report": {
			Original:    "report",
			Description: "Reports useful version numbers",
			Builder:     func(fs *pflag.FlagSet) {},
		},
		"run-many": {Original: "run-many", Description: "Run many", Builder: func(fs *pflag.FlagSet) {}},
		"generate": {Original: "generate [schematic]", Description: "Generate", Builder: func(fs *pflag.FlagSet) {}},
		"runner":   {Original: "runner", Description: "excluded by prefix", Builder: func(fs *pflag.FlagSet) {}},
		"list":     {Original: "list [plugin]", Description: "List plugins", Builder: func(fs *pflag.FlagSet) {}},
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"affected":                   "affected",
		"format:write":               "format-write",
		"affected:dep-graph":         "affected-dep-graph",
		"workspace-schematic [name]": "workspace-schematic-name",
		"workspace-lint [files..]":   "workspace-lint-files",
		"a:b:c d e":                  "a-b-c-d-e",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestIntrospect(t *testing.T) {
	h := scripts.Handler{
		Original:    "demo",
		Description: "Demo",
		Builder: func(fs *pflag.FlagSet) {
			fs.String("zeta", "z", "last")
			fs.StringSlice("exclude", []string{}, "excluded projects")
			fs.String("base", "", "base ref")
			fs.Bool("hidden", false, "not shown")
			_ = fs.MarkHidden("hidden")
			fs.Bool("quiet", false, "no default")
			_ = fs.SetAnnotation("quiet", scripts.AnnotationNoDefault, []string{"true"})
		},
	}

	got := Introspect(h)
	assert.Equal(t, "demo", got.Command)
	assert.Equal(t, []OptionDescriptor{
		{Command: "--zeta", Description: "last", Default: "z"},
		{Command: "--exclude", Description: "excluded projects", Default: ""},
		{Command: "--base", Description: "base ref", Default: ""},
		{Command: "--quiet", Description: "no default", Default: ""},
	}, got.Options)
}

func TestIntrospect_FreshFlagSetEachTime(t *testing.T) {
	h := testHandlers()["affected"]
	first := Introspect(h)
	second := Introspect(h)
	assert.Equal(t, first, second)
}

func TestCommands_ExcludesRunAndGenerate(t *testing.T) {
	var names []string
	for _, c := range Commands(testHandlers()) {
		names = append(names, c.Command)
	}
	assert.Equal(t, []string{"affected", "list [plugin]", "report"}, names)
}

func TestSortOptions(t *testing.T) {
	opts := []OptionDescriptor{{Command: "--parallel"}, {Command: "--all"}, {Command: "--maxParallel"}, {Command: "--Zed"}, {Command: "--base"}}
	var got []string
	for _, o := range SortOptions(opts) {
		got = append(got, o.Name())
	}
	assert.Equal(t, []string{"Zed", "all", "base", "maxParallel", "parallel"}, got)
	assert.Equal(t, "--parallel", opts[0].Command, "input must not be reordered")
}

func TestRender_WithExamples(t *testing.T) {
	cmd := Introspect(testHandlers()["affected"])
	page, err := Render(nil, cmd, Examples["affected"])
	require.NoError(t, err)

	assert.Equal(t, "affected.md", page.Name)
	content := string(page.Content)
	assert.True(t, strings.HasPrefix(content, "# affected\n\nRun task for affected projects\n\n## Usage\n\n```bash\nnx affected\n```\n"))
	assert.Contains(t, content, InstallHint)
	assert.Contains(t, content, "### Examples")
	assert.Contains(t, content, "Run custom target for all affected projects:\n\n```bash\nnx affected --target=custom-target\n```")

	var options []string
	for _, h := range Headings(page.Content) {
		if h.Level == 3 && h.Text != "Examples" {
			options = append(options, h.Text)
		}
	}
	assert.Equal(t, []string{"all", "maxParallel", "target"}, options)

	assert.Contains(t, content, "### maxParallel\n\nDefault: `3`\n\nMax number of parallel processes")
	assert.Contains(t, content, "### all\n\nDefault: `false`\n\nAll projects")
	assert.Contains(t, content, "### target\n\nTask to run for affected projects")
}

func TestRender_WithoutExamplesOrOptions(t *testing.T) {
	page, err := Render(nil, Introspect(testHandlers()["report"]), nil)
	require.NoError(t, err)

	content := string(page.Content)
	assert.NotContains(t, content, "### Examples")
	assert.NotContains(t, content, "## Options")

	page, err = Render(nil, Introspect(testHandlers()["report"]), []Example{})
	require.NoError(t, err)
	assert.NotContains(t, string(page.Content), "### Examples")
}

func TestHeadings(t *testing.T) {
	src := []byte("# workspace-schematic [name]\n\ntext\n\n## Options\n\n### list-schematics\n")
	assert.Equal(t, []Heading{
		{Level: 1, Text: "workspace-schematic [name]"},
		{Level: 2, Text: "Options"},
		{Level: 3, Text: "list-schematics"},
	}, Headings(src))
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(OutputDir(root, "react"), "stale.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	var out bytes.Buffer
	g := &Generator{
		Root:       root,
		Frameworks: []string{"web", "react"},
		Handlers:   testHandlers(),
		Examples:   Examples,
		Renderer:   generator.NewRenderer(),
		Execute:    generator.ExecuteOptions{Writer: &out},
	}
	require.NoError(t, g.Generate(context.Background()))

	for _, framework := range []string{"web", "react"} {
		dir := OutputDir(root, framework)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.ElementsMatch(t, []string{"affected.md", "list-plugin.md", "report.md"}, names, framework)
	}
	assert.NoFileExists(t, stale)

	affected, err := os.ReadFile(filepath.Join(OutputDir(root, "web"), "affected.md"))
	require.NoError(t, err)
	assert.Contains(t, string(affected), "### Examples")
}

func TestGenerate_StopsOnFailure(t *testing.T) {
	root := t.TempDir()
	// A file where the web docs directory tree should be makes the batch fail.
	require.NoError(t, os.WriteFile(filepath.Join(root, "web"), []byte("x"), 0o644))

	g := New(root)
	g.Frameworks = []string{"web", "react"}
	g.Handlers = testHandlers()
	g.Execute = generator.ExecuteOptions{Quiet: true}

	err := g.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "web docs")
	assert.NoDirExists(t, OutputDir(root, "react"))
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer
	g := New(root)
	g.Execute = generator.ExecuteOptions{DryRun: true, Writer: &out}

	require.NoError(t, g.Generate(context.Background()))
	assert.NoDirExists(t, filepath.Join(root, "web"))
	assert.Contains(t, out.String(), "[DRY RUN] Create")
	assert.Contains(t, out.String(), "format-write.md")
}

func TestPage(t *testing.T) {
	g := New(t.TempDir())
	page, err := g.Page("workspace-schematic")
	require.NoError(t, err)
	assert.Equal(t, "workspace-schematic-name.md", page.Name)

	_, err = g.Page("nope")
	assert.Error(t, err)
}

func TestPages_RealHandlers(t *testing.T) {
	pages, err := New(t.TempDir()).Pages()
	require.NoError(t, err)

	byName := map[string]Page{}
	for _, p := range pages {
		byName[p.Name] = p
	}
	assert.Contains(t, byName, "format-write.md")
	assert.Contains(t, byName, "workspace-schematic-name.md")
	assert.NotContains(t, byName, "run-many.md")
	assert.Contains(t, string(byName["affected.md"].Content), "### Examples")
	assert.NotContains(t, string(byName["format-write.md"].Content), "### Examples")
}

func TestIntrospect_EveryRealHandler(t *testing.T) {
	for name, h := range scripts.Handlers() {
		var cmd CommandDescriptor
		require.NotPanics(t, func() { cmd = Introspect(h) }, name)
		assert.Equal(t, h.Original, cmd.Command, name)
	}

	cmd := Introspect(scripts.Handlers()["affected:dep-graph"])
	var exclude []OptionDescriptor
	for _, o := range cmd.Options {
		if o.Name() == "exclude" {
			exclude = append(exclude, o)
		}
	}
	require.Len(t, exclude, 1)
	assert.Equal(t, "List of projects delimited by commas to exclude from the dependency graph.", exclude[0].Description)
}
