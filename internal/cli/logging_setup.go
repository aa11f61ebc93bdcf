package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/logging"
)

// setupLogging configures logging from the resolved config and CLI flags, and stores
// the logger in the command context.
func setupLogging(cmd *cobra.Command, state *rootState) error {
	loggingCfg := state.cfg.Logging.ToLoggingConfig(cmd.ErrOrStderr())

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
	}

	// The interactive grid owns the terminal, so logs can be sent to a file instead.
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		state.logFile = f
		loggingCfg.Output = f
		loggingCfg.Format = logging.FormatJSON
	}

	state.base = logging.New(loggingCfg)
	state.logger = logging.ComponentLogger(state.base, "cli")
	cmd.SetContext(state.base.WithContext(cmd.Context()))

	state.logger.Debug().
		Str("command", cmd.Name()).
		Int("page_size", state.cfg.Grid.PageSize).
		Int("max_buttons", state.cfg.Grid.MaxButtons).
		Stringer("policy", state.cfg.Grid.Policy()).
		Msg("command started")
	return nil
}

// cleanupLogging closes the log file, if one was opened.
func cleanupLogging(state *rootState) error {
	if state.logFile == nil {
		return nil
	}
	err := state.logFile.Close()
	state.logFile = nil
	return err
}

// withLogCleanup wraps a RunE so the log file is closed even when run fails.
// Cobra skips PersistentPostRunE after a RunE error.
func withLogCleanup(state *rootState, run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.Join(err, cleanupLogging(state))
		}()
		return run(cmd, args)
	}
}
