// Package commands implements the kestrel command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/kestrel"
	"github.com/simonhull/kestrel/fledge/output"
	"github.com/simonhull/kestrel/internal/logger"
)

var verbose bool

// RootCmd creates the root command with every subcommand registered.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kestrel",
		Short: "Scaffold React applications in a monorepo workspace",
		Long: `Kestrel scaffolds front-end applications inside a monorepo workspace.

It generates the application sources, registers the project and its
build, serve, lint and test targets, and wires optional routing, styling,
Babel and test runner setup.

Learn more: https://github.com/simonhull/kestrel`,
		Version:           kestrel.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	cmd.AddCommand(GenerateCmd())
	cmd.AddCommand(DocsCmd())
	cmd.AddCommand(ConfigCmd())
	cmd.AddCommand(VersionCmd())

	return cmd
}

// DocsRootCmd creates the root command of the standalone docs binary.
func DocsRootCmd() *cobra.Command {
	cmd := DocsCmd()
	cmd.Use = "kestrel-docs"
	cmd.Version = kestrel.Version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	return cmd
}

// Execute runs the kestrel command line.
func Execute() error {
	return RootCmd().Execute()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	output.SetVerbose(verbose)

	level := logger.LevelWarn
	if verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.NewLogger(level, cmd.ErrOrStderr()))
	return nil
}

// applyLogLevel honours a configured log level unless --verbose was given.
func applyLogLevel(cmd *cobra.Command, name string) error {
	if verbose || name == "" {
		return nil
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.NewLogger(level, cmd.ErrOrStderr()))
	return nil
}

// VersionCmd prints the kestrel version.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kestrel v%s\n", kestrel.Version)
		},
	}
}
