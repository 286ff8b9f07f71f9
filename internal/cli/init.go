package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/drills/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with default values.\nAn existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.configDir()
			if err != nil {
				return err
			}

			path, created, err := config.WriteDefault(dir)
			if err != nil {
				return sysError(err)
			}

			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "Created", path)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at", path)
			return nil
		},
	}
}
