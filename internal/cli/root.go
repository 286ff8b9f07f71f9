// Package cli implements the drills command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/drills/internal/config"
	"github.com/mesh-intelligence/drills/internal/logging"
	"github.com/mesh-intelligence/drills/internal/paths"
	"github.com/mesh-intelligence/drills/internal/scenarios"
	"github.com/mesh-intelligence/drills/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by the subcommands of one root command.
// PersistentPreRunE fills cfg and logger before any subcommand runs.
type app struct {
	flags    rootFlags
	registry *scenarios.Registry
	cfg      config.Config
	logger   *zap.Logger
}

// NewRootCmd creates the top-level "drills" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		registry: scenarios.Default(),
		cfg:      config.Defaults(),
		logger:   zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "drills",
		Short: "Run small language-construct exercises",
		Long: "drills runs self-contained exercises for conditionals, enums, structs,\n" +
			"tuples and pattern matching. Each scenario prints fixed messages to stdout.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// Sync on stderr reports EINVAL on some platforms.
			_ = a.logger.Sync()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newRunCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args, reports any error on stderr and returns
// the process exit code.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. The version and init commands skip config loading.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" || cmd.Name() == "init" {
		return nil
	}

	dir, err := a.configDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}
	if a.flags.jsonMode {
		cfg.Output = config.OutputJSON
	}
	if a.flags.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return sysError(err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("config loaded", zap.String("config_dir", dir), zap.String("output", cfg.Output))
	return nil
}

func (a *app) configDir() (string, error) {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return "", sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	return dir, nil
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output == config.OutputJSON
}

// systemError marks failures of the environment rather than of user input.
type systemError struct {
	err error
}

func sysError(err error) error {
	return &systemError{err: err}
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

// exitCode maps an error to its process exit code.
func exitCode(err error) int {
	var sys *systemError
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrScenarioNotFound):
		return exitUserError
	case errors.As(err, &sys):
		return exitSysError
	default:
		return exitUserError
	}
}
