package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/fledge/input"
	"github.com/simonhull/kestrel/fledge/output"
	"github.com/simonhull/kestrel/internal/config"
	"github.com/simonhull/kestrel/internal/format"
	"github.com/simonhull/kestrel/internal/logger"
	"github.com/simonhull/kestrel/internal/schematics/application"
	"github.com/simonhull/kestrel/internal/schematics/lint"
	"github.com/simonhull/kestrel/internal/schematics/styled"
	"github.com/simonhull/kestrel/internal/tree"
)

// GenerateCmd creates the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate projects in the workspace",
	}
	cmd.AddCommand(applicationCmd())
	return cmd
}

// generateFlags are the command-line settings that are not generator options
type generateFlags struct {
	workspace   string
	optionsFile string
	dryRun      bool
	force       bool
	skip        bool
	interactive bool
}

func applicationCmd() *cobra.Command {
	var opts application.Options
	var f generateFlags

	cmd := &cobra.Command{
		Use:     "application [name]",
		Aliases: []string{"app"},
		Short:   "Generate a React application",
		Long: `Generate a React application and its end-to-end test project.

The application is registered in workspace.json with build, serve, lint
and test targets, and in nx.json with its tags.

Examples:
  kestrel generate application my-app
  kestrel g app admin --directory tools --style styled-components --routing
  kestrel g app shop --options shop.json --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := findWorkspace(f.workspace)
			if err != nil {
				return err
			}

			cfg, err := config.Load(ws.Root)
			if err != nil {
				return err
			}
			if err := applyLogLevel(cmd, cfg.LogLevel); err != nil {
				return err
			}

			raw, err := collectOptions(cmd, args, opts, f, cfg)
			if err != nil {
				return err
			}

			return runApplication(cmd.Context(), cmd.OutOrStdout(), ws.Root, raw, f, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Directory, "directory", "", "Directory the application is placed in, under apps/")
	flags.StringVar(&opts.Style, "style", "", "Stylesheet format (css, scss, less, styl) or styling module (styled-components, @emotion/styled)")
	flags.BoolVar(&opts.Routing, "routing", false, "Set up React Router")
	flags.StringVar(&opts.Linter, "linter", "", "Linter for the application (eslint, tslint)")
	flags.StringVar(&opts.UnitTestRunner, "unit-test-runner", "", "Unit test runner (jest, none)")
	flags.StringVar(&opts.E2ETestRunner, "e2e-test-runner", "", "End-to-end test runner (cypress, none)")
	flags.StringVar(&opts.Tags, "tags", "", "Comma-separated tags for lint boundaries")
	flags.BoolVar(&opts.PascalCaseFiles, "pascal-case-files", false, "Use PascalCase for the root component file names")
	flags.BoolVar(&opts.Babel, "babel", false, "Use Babel instead of TypeScript for compilation")
	flags.BoolVar(&opts.SkipWorkspaceJSON, "skip-workspace-json", false, "Skip updating generator defaults in workspace.json")
	flags.BoolVar(&opts.SkipFormat, "skip-format", false, "Skip formatting the generated files")

	flags.StringVarP(&f.workspace, "workspace", "w", "", "Workspace root (default: detected from the working directory)")
	flags.StringVar(&f.optionsFile, "options", "", "JSON file with generator options; flags override its values")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Show what would be generated without writing files")
	flags.BoolVar(&f.force, "force", false, "Overwrite existing files without asking")
	flags.BoolVar(&f.skip, "skip", false, "Keep existing files without asking")
	flags.BoolVarP(&f.interactive, "interactive", "i", false, "Choose style, routing and linter interactively")

	cmd.MarkFlagsMutuallyExclusive("force", "skip")

	return cmd
}

// collectOptions merges the options file, explicit flags and configured
// defaults. Explicit flags win over the file, which wins over config.
func collectOptions(cmd *cobra.Command, args []string, flagOpts application.Options, f generateFlags, cfg *config.Config) (application.Options, error) {
	var raw application.Options
	if f.optionsFile != "" {
		data, err := os.ReadFile(f.optionsFile)
		if err != nil {
			return raw, fmt.Errorf("reading options: %w", err)
		}
		raw, err = application.DecodeOptions(data)
		if err != nil {
			return raw, fmt.Errorf("%s: %w", filepath.Base(f.optionsFile), err)
		}
	}

	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setBool := func(name string, dst *bool, v bool) {
		if flags.Changed(name) {
			*dst = v
		}
	}

	set("directory", &raw.Directory, flagOpts.Directory)
	set("style", &raw.Style, flagOpts.Style)
	set("linter", &raw.Linter, flagOpts.Linter)
	set("unit-test-runner", &raw.UnitTestRunner, flagOpts.UnitTestRunner)
	set("e2e-test-runner", &raw.E2ETestRunner, flagOpts.E2ETestRunner)
	set("tags", &raw.Tags, flagOpts.Tags)
	setBool("routing", &raw.Routing, flagOpts.Routing)
	setBool("pascal-case-files", &raw.PascalCaseFiles, flagOpts.PascalCaseFiles)
	setBool("babel", &raw.Babel, flagOpts.Babel)
	setBool("skip-workspace-json", &raw.SkipWorkspaceJSON, flagOpts.SkipWorkspaceJSON)
	setBool("skip-format", &raw.SkipFormat, flagOpts.SkipFormat)

	if len(args) > 0 {
		raw.Name = args[0]
	}

	applyConfigDefaults(&raw, cfg.Generate)

	if raw.Name == "" && isInteractive() {
		raw.Name = input.Prompt("What name would you like to use for the application?", "")
	}

	if f.interactive {
		if err := askOptions(&raw); err != nil {
			return raw, err
		}
	}

	return raw, nil
}

func applyConfigDefaults(raw *application.Options, d config.GenerateConfig) {
	if raw.Style == "" {
		raw.Style = d.Style
	}
	if raw.Linter == "" {
		raw.Linter = d.Linter
	}
	if raw.UnitTestRunner == "" {
		raw.UnitTestRunner = d.UnitTestRunner
	}
	if raw.E2ETestRunner == "" {
		raw.E2ETestRunner = d.E2ETestRunner
	}
}

// askOptions runs the interactive form for the options users most often
// choose per application.
var askOptions = func(raw *application.Options) error {
	styles := append([]string(nil), styled.PlainStyles...)
	styles = append(styles, "styled-components", "@emotion/styled")

	if raw.Style == "" {
		raw.Style = application.DefaultStyle
	}
	if raw.Linter == "" {
		raw.Linter = application.DefaultLinter
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which stylesheet format would you like to use?").
				Options(huh.NewOptions(styles...)...).
				Value(&raw.Style),
			huh.NewConfirm().
				Title("Would you like to add React Router to this application?").
				Value(&raw.Routing),
			huh.NewSelect[string]().
				Title("Which linter would you like to use?").
				Options(huh.NewOptions(lint.ESLint, lint.TSLint)...).
				Value(&raw.Linter),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("reading options: %w", err)
	}
	return nil
}

func runApplication(ctx context.Context, out io.Writer, root string, raw application.Options, f generateFlags, cfg *config.Config) error {
	t := tree.New(root)

	opts, err := application.New().Generate(ctx, t, raw)
	if err != nil {
		return err
	}

	if f.dryRun {
		if err := printTree(out, filepath.Base(root), t.Files()); err != nil {
			return err
		}
	}

	resolver, err := generator.NewResolver(conflictStrategy(f.force, f.skip, cfg.Generate.Conflict))
	if err != nil {
		return err
	}

	result, err := t.Commit(ctx, tree.CommitOptions{
		DryRun:   f.dryRun,
		Resolver: resolver,
		Writer:   out,
	})
	if err != nil {
		return err
	}

	if f.dryRun {
		output.Info("Dry run: no files were written")
		return nil
	}

	for _, p := range result.Skipped {
		output.Verbose("kept " + p)
	}

	if !opts.SkipFormat && len(result.Written) > 0 {
		formatter, err := format.New(format.Options{
			Command:    cfg.Formatter.Command,
			Extensions: cfg.Formatter.Extensions,
			Dir:        root,
			Spinner:    isInteractive(),
		})
		if err != nil {
			return err
		}
		if err := formatter.Run(ctx, result.Written); err != nil {
			return err
		}
	}

	logger.Debug("generated application",
		logger.F("project", opts.ProjectName),
		logger.F("written", len(result.Written)),
		logger.F("skipped", len(result.Skipped)))

	output.Success(fmt.Sprintf("Generated application %s in %s (%s)",
		opts.ProjectName, opts.AppProjectRoot, plural(len(result.Written), "file")))
	return nil
}
