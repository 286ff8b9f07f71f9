package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <scenario>",
		Short: "Describe a scenario without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return writeJSON(cmd, scenarioInfo{Name: s.Name(), Topic: s.Topic(), Input: s.Input()})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:  %s\n", s.Name())
			fmt.Fprintf(out, "topic: %s\n", s.Topic())
			fmt.Fprintf(out, "input: %s\n", s.Input())
			return nil
		},
	}
}
