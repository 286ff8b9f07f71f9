package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/drills/pkg/drills"
)

const modulePath = "github.com/mesh-intelligence/drills"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the drills version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "drills v%s\nmodule: %s\n", drills.Version, modulePath)
			return nil
		},
	}
}
