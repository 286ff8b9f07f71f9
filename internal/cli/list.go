package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// scenarioInfo is the JSON shape of a scenario in list and show output.
type scenarioInfo struct {
	Name  string `json:"name"`
	Topic string `json:"topic"`
	Input string `json:"input"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := a.registry.All()

			if a.jsonOutput() {
				infos := make([]scenarioInfo, 0, len(all))
				for _, s := range all {
					infos = append(infos, scenarioInfo{Name: s.Name(), Topic: s.Topic(), Input: s.Input()})
				}
				return writeJSON(cmd, infos)
			}

			for _, s := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Name(), s.Topic())
			}
			return nil
		},
	}
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
