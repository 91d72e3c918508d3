// Package scripts defines the workspace commands (the "nx" command surface)
// whose reference pages the doc generator emits.
//
// Each Handler carries its original usage string, a description and a
// Builder that declares its flags on a FlagSet.
package scripts

import (
	"github.com/spf13/pflag"
)

// AnnotationNoDefault marks a flag whose zero value is not a real default.
// Reference docs omit the default line for such flags.
const AnnotationNoDefault = "kestrel_no_default"

// Handler is one workspace command definition.
type Handler struct {
	Original    string // usage form, e.g. "workspace-schematic [name]"
	Description string
	Aliases     []string
	Builder     func(fs *pflag.FlagSet)
}

// Handlers returns the workspace commands keyed by command name.
func Handlers() map[string]Handler {
	handlers := map[string]Handler{
		"run": {
			Original:    "run [project][:target][:configuration] [options, ...]",
			Description: "Run a target for a project\n(e.g., nx run myapp:serve:production).\n\nYou can also use the infix notation to run a target:\n(e.g., nx serve myapp --configuration=production)",
			Builder:     func(fs *pflag.FlagSet) {},
		},
		"generate": {
			Original:    "generate [collection:][schematic] [options, ...]",
			Description: "Generate code\n(e.g., nx generate @nrwl/web:app myapp).",
			Aliases:     []string{"g"},
			Builder:     func(fs *pflag.FlagSet) {},
		},
		"run-many": {
			Original:    "run-many",
			Description: "Run task for multiple projects",
			Builder: func(fs *pflag.FlagSet) {
				withRunManyOptions(fs)
				withParallel(fs)
				withTarget(fs)
				withConfiguration(fs)
			},
		},
		"affected": {
			Original:    "affected",
			Description: "Run task for affected projects",
			Builder: func(fs *pflag.FlagSet) {
				withAffectedOptions(fs)
				withParallel(fs)
				withTarget(fs)
				withConfiguration(fs)
			},
		},
		"affected:apps": {
			Original:    "affected:apps",
			Description: "Print applications affected by changes",
			Builder: func(fs *pflag.FlagSet) {
				withAffectedOptions(fs)
				noDefault(fs, fs.Bool)("plain", false, "Produces a plain output for affected:apps and affected:libs")
			},
		},
		"affected:libs": {
			Original:    "affected:libs",
			Description: "Print libraries affected by changes",
			Builder: func(fs *pflag.FlagSet) {
				withAffectedOptions(fs)
				noDefault(fs, fs.Bool)("plain", false, "Produces a plain output for affected:apps and affected:libs")
			},
		},
		"affected:dep-graph": {
			Original:    "affected:dep-graph",
			Description: "Graph dependencies affected by changes",
			Builder: func(fs *pflag.FlagSet) {
				withAffectedOptions(fs)
				withDepGraphOptions(fs)
			},
		},
		"format:check": {
			Original:    "format:check",
			Description: "Check for un-formatted files",
			Builder:     withFormatOptions,
		},
		"format:write": {
			Original:    "format:write",
			Description: "Overwrite un-formatted files",
			Aliases:     []string{"format"},
			Builder:     withFormatOptions,
		},
		"workspace-lint": {
			Original:    "workspace-lint [files..]",
			Description: "Lint workspace or list of files",
			Builder:     func(fs *pflag.FlagSet) {},
		},
		"workspace-schematic": {
			Original:    "workspace-schematic [name]",
			Description: "Runs a workspace schematic from the tools/schematics directory",
			Builder: func(fs *pflag.FlagSet) {
				fs.Bool("list-schematics", false, "List the available workspace-schematics")
				noDefault(fs, fs.String)("name", "", "The name of your schematic")
			},
		},
		"dep-graph": {
			Original:    "dep-graph",
			Description: "Graph dependencies within workspace",
			Builder:     withDepGraphOptions,
		},
		"migrate": {
			Original:    "migrate",
			Description: "Creates a migrations file or runs migrations from the migrations file.\n- Migrate packages and create migrations.json (e.g., nx migrate @nrwl/workspace@latest)\n- Run migrations (e.g., nx migrate --run-migrations=migrations.json)",
			Builder:     func(fs *pflag.FlagSet) {},
		},
		"report": {
			Original:    "report",
			Description: "Reports useful version numbers to copy into the Nx issue template",
			Builder:     func(fs *pflag.FlagSet) {},
		},
		"list": {
			Original:    "list [plugin]",
			Description: "Lists installed plugins, capabilities of installed plugins and other available plugins.",
			Builder: func(fs *pflag.FlagSet) {
				noDefault(fs, fs.String)("plugin", "", "The name of an installed plugin to query")
			},
		},
	}

	for _, target := range []string{"build", "test", "e2e", "lint"} {
		handlers["affected:"+target] = Handler{
			Original:    "affected:" + target,
			Description: affectedDescriptions[target],
			Builder: func(fs *pflag.FlagSet) {
				withAffectedOptions(fs)
				withParallel(fs)
				withConfiguration(fs)
			},
		}
	}

	return handlers
}

var affectedDescriptions = map[string]string{
	"build": "Build applications and publishable libraries affected by changes",
	"test":  "Test projects affected by changes",
	"e2e":   "Run e2e tests for the applications affected by changes",
	"lint":  "Lint projects affected by changes",
}

// noDefault wraps a flag constructor so the declared flag is annotated with
// AnnotationNoDefault.
func noDefault[T any](fs *pflag.FlagSet, declare func(name string, value T, usage string) *T) func(name string, value T, usage string) {
	return func(name string, value T, usage string) {
		declare(name, value, usage)
		_ = fs.SetAnnotation(name, AnnotationNoDefault, []string{"true"})
	}
}

func withAffectedOptions(fs *pflag.FlagSet) {
	noDefault(fs, fs.StringSlice)("files", nil, "Change the way Nx is calculating the affected command by providing directly changed files, list of files delimited by commas")
	noDefault(fs, fs.Bool)("uncommitted", false, "Uncommitted changes")
	noDefault(fs, fs.Bool)("untracked", false, "Untracked changes")
	noDefault(fs, fs.Bool)("all", false, "All projects")
	noDefault(fs, fs.String)("base", "", "Base of the current branch (usually master)")
	noDefault(fs, fs.String)("head", "", "Latest commit of the current branch (usually HEAD)")
	fs.StringSlice("exclude", []string{}, "Exclude certain projects from being processed")
	fs.Bool("only-failed", false, "Isolate projects which previously failed")
	fs.Bool("verbose", false, "Print additional error stack trace on failure")
}

func withRunManyOptions(fs *pflag.FlagSet) {
	noDefault(fs, fs.StringSlice)("projects", nil, "Projects to run (comma delimited)")
	noDefault(fs, fs.Bool)("all", false, "Run the target on all projects in the workspace")
	fs.Bool("only-failed", false, "Only run the target on projects which previously failed")
	fs.Bool("verbose", false, "Print additional error stack trace on failure")
}

func withParallel(fs *pflag.FlagSet) {
	fs.Bool("parallel", false, "Parallelize the command")
	fs.Int("maxParallel", 3, "Max number of parallel processes. This flag is ignored if the parallel option is set to `false`.")
}

func withTarget(fs *pflag.FlagSet) {
	noDefault(fs, fs.String)("target", "", "Task to run for affected projects")
}

func withConfiguration(fs *pflag.FlagSet) {
	noDefault(fs, fs.String)("configuration", "", "This is the configuration to use when performing tasks on projects")
}

func withDepGraphOptions(fs *pflag.FlagSet) {
	noDefault(fs, fs.String)("file", "", "output file (e.g. --file=.vis/output.json)")
	noDefault(fs, fs.StringSlice)("filter", nil, "Use to limit the dependency graph to only show specific projects, list of projects delimited by commas.")
	// affected:dep-graph already has --exclude from the affected options;
	// the dep-graph description replaces its usage.
	const excludeUsage = "List of projects delimited by commas to exclude from the dependency graph."
	if f := fs.Lookup("exclude"); f != nil {
		f.Usage = excludeUsage
	} else {
		noDefault(fs, fs.StringSlice)("exclude", nil, excludeUsage)
	}
	noDefault(fs, fs.String)("host", "", "Bind the dep graph server to a specific ip address.")
}

func withFormatOptions(fs *pflag.FlagSet) {
	withAffectedOptions(fs)
	noDefault(fs, fs.StringSlice)("libs-and-apps", nil, "")
	noDefault(fs, fs.StringSlice)("apps", nil, "Projects to format (comma delimited)")
	noDefault(fs, fs.StringSlice)("libs", nil, "Projects to format (comma delimited)")
	noDefault(fs, fs.StringSlice)("projects", nil, "Projects to format (comma delimited)")
}
