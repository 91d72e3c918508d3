package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/fledge/input"
	"github.com/simonhull/kestrel/fledge/output"
	"github.com/simonhull/kestrel/internal/config"
	"github.com/simonhull/kestrel/internal/docgen"
)

type docsFlags struct {
	out        string
	frameworks []string
	preview    string
	dryRun     bool
	yes        bool
}

// DocsCmd creates the docs command, which regenerates the workspace
// command reference.
func DocsCmd() *cobra.Command {
	var f docsFlags

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate reference pages for the workspace commands",
		Long: `Generate one markdown page per workspace command for each
documentation set. Each set's output directory is cleared and rewritten.

Examples:
  kestrel docs
  kestrel docs --out site/docs --framework react
  kestrel docs --preview affected:apps`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}
			if err := applyLogLevel(cmd, cfg.LogLevel); err != nil {
				return err
			}

			if !cmd.Flags().Changed("out") {
				f.out = cfg.Docs.Output
			}
			if !cmd.Flags().Changed("framework") {
				f.frameworks = cfg.Docs.Frameworks
			}

			g := docgen.New(f.out)
			g.Frameworks = f.frameworks

			if f.preview != "" {
				return previewPage(cmd, g, f.preview)
			}

			if !f.dryRun && !f.yes && isInteractive() {
				msg := fmt.Sprintf("Replace the command pages under %s?", f.out)
				if !input.Confirm(msg, true) {
					output.Info("Cancelled")
					return nil
				}
			}

			g.Execute = generator.ExecuteOptions{
				DryRun: f.dryRun,
				Quiet:  !verbose,
				Writer: cmd.OutOrStdout(),
			}
			if err := g.Generate(cmd.Context()); err != nil {
				return err
			}

			if f.dryRun {
				output.Info("Dry run: no files were written")
				return nil
			}
			output.Success(fmt.Sprintf("Documentation generated for %s", strings.Join(f.frameworks, ", ")))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.out, "out", "o", "docs", "Documentation root")
	flags.StringSliceVar(&f.frameworks, "framework", docgen.Frameworks, "Documentation sets to generate")
	flags.StringVar(&f.preview, "preview", "", "Render one command's page to the terminal instead of writing files")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Show what would be written without touching the output")
	flags.BoolVarP(&f.yes, "yes", "y", false, "Do not ask before clearing the output directories")

	return cmd
}

func previewPage(cmd *cobra.Command, g *docgen.Generator, name string) error {
	page, err := g.Page(name)
	if err != nil {
		return err
	}

	if !isInteractive() {
		_, err := cmd.OutOrStdout().Write(page.Content)
		return err
	}

	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	rendered, err := r.Render(string(page.Content))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", page.Name, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
