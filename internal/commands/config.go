package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/kestrel/internal/config"
)

// ConfigCmd prints the effective configuration for the current directory.
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the settings kestrel uses in the current directory, after
merging kestrel.yaml and KESTREL_* environment variables over the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if ws, err := findWorkspace(""); err == nil {
				dir = ws.Root
			} else if wd, err := os.Getwd(); err == nil {
				dir = wd
			}

			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
