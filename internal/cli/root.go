// Package cli implements the datagrid command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/demo"
	"github.com/rshade/datagrid/internal/grid"
)

// ExitInconsistentRows is the process exit code for a rejected row collection.
const ExitInconsistentRows = 3

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// rootState carries what PersistentPreRunE resolves to the subcommands.
type rootState struct {
	cfg *config.Config

	// base is the unscoped logger handed to the grid and stored in the context;
	// logger is its "cli" component child.
	base    zerolog.Logger
	logger  zerolog.Logger
	logFile io.Closer
}

// NewRootCmd creates the root Cobra command for the datagrid CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
// lookupEnv only locates the config file; DATAGRID_* overrides are read by config.Load.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	state := &rootState{base: zerolog.Nop(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:          "datagrid",
		Short:        "Paginated data grid engine",
		Long:         "datagrid: browse row collections through a stable, paginated grid",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			state.cfg = cfg
			return setupLogging(cmd, state)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(state)
		},
	}

	cmd.PersistentFlags().String("config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
	cmd.PersistentFlags().Int("page-size", 0, "rows per page (overrides config file and env var)")
	cmd.PersistentFlags().Int("max-buttons", 0, "maximum pagination bar entries (overrides config file and env var)")
	cmd.PersistentFlags().Bool("preserve-page", false, "keep the current page when rows are appended")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	cmd.AddCommand(newDemoCmd(state), newRenderCmd(state))

	return cmd
}

const rootCmdExample = `  # Browse three generated tasks, press 'a' to add ten more
  datagrid demo

  # Start with 250 tasks, 25 per page
  datagrid demo --rows 250 --page-size 25

  # Print page 4 of 120 tasks as JSON
  datagrid render --rows 120 --page 4 --output json

  # Use a config file
  datagrid --config ./datagrid.yaml demo`

// loadConfig resolves the config file, then applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path, _ = lookupEnv(config.EnvConfigPath)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("page-size") {
		cfg.Grid.PageSize, _ = flags.GetInt("page-size")
	}
	if flags.Changed("max-buttons") {
		cfg.Grid.MaxButtons, _ = flags.GetInt("max-buttons")
	}
	if flags.Changed("preserve-page") {
		cfg.Grid.PreservePage, _ = flags.GetBool("preserve-page")
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newTaskGrid builds a task grid from the resolved configuration.
func newTaskGrid(state *rootState) *grid.Grid[demo.Task] {
	return grid.New(demo.Columns(), grid.Options{
		PageSize:   state.cfg.Grid.PageSize,
		MaxButtons: state.cfg.Grid.MaxButtons,
		Policy:     state.cfg.Grid.Policy(),
		Logger:     &state.base,
	})
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, grid.ErrDuplicateOrInconsistentRows):
		return ExitInconsistentRows
	default:
		return 1
	}
}
