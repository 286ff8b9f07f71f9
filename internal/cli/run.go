package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/drills/internal/runner"
	"github.com/mesh-intelligence/drills/pkg/types"
)

func newRunCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run one or more scenarios",
		Long: `Run executes the named scenarios in order and prints their output.
With --all every scenario runs in list order. With --json the output of
each run is collected into a JSON array instead.

Example:
  drills run color
  drills run direction drink
  drills run --all --json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("--all does not take scenario names")
			}
			if !all && len(args) == 0 {
				return errors.New("requires at least one scenario name or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := runner.New(a.registry, a.logger)

			var out io.Writer = cmd.OutOrStdout()
			if a.jsonOutput() {
				out = nil
			}

			var (
				results []runner.Result
				err     error
			)
			if all {
				results, err = r.RunAll(out)
			} else {
				results, err = r.RunNames(args, out)
			}
			if err != nil {
				if errors.Is(err, types.ErrScenarioNotFound) {
					return err
				}
				return sysError(err)
			}

			if a.jsonOutput() {
				return writeJSON(cmd, results)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every scenario")
	return cmd
}
