package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/demo"
	"github.com/rshade/datagrid/internal/tui"
)

// appendBatch is the number of tasks added per key press.
const appendBatch = 10

// defaultDemoRows matches the three starter tasks of the demo.
const defaultDemoRows = 3

func newDemoCmd(state *rootState) *cobra.Command {
	var (
		rows  int
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse generated tasks in an interactive grid",
		Long: `Browse generated tasks in an interactive grid.

Use the arrow keys to change page and press 'a' to append ten tasks. When stdout is
not a terminal, or --plain is set, the first page is printed instead.`,
		Args: cobra.NoArgs,
		RunE: withLogCleanup(state, func(cmd *cobra.Command, _ []string) error {
			if rows < 0 {
				return fmt.Errorf("--rows must be >= 0, got %d", rows)
			}

			gen := demo.NewGenerator()
			tasks, err := gen.Generate(rows)
			if err != nil {
				return fmt.Errorf("generating tasks: %w", err)
			}

			g := newTaskGrid(state)
			if plain || !isTerminal(os.Stdout) {
				if err = g.Update(tasks); err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(g))
				return err
			}

			ctx := cmd.Context()
			appendFn := func(current []demo.Task) ([]demo.Task, error) {
				return gen.Append(current, appendBatch)
			}
			model, err := tui.NewGridModel(ctx, "Tasks", g, tasks, appendFn)
			if err != nil {
				return err
			}

			state.logger.Info().Int("rows", len(tasks)).Msg("interactive grid started")
			err = tui.Run(ctx, model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			state.logger.Info().Int("rows", len(model.Rows())).Msg("interactive grid closed")
			return err
		}),
	}

	cmd.Flags().IntVar(&rows, "rows", defaultDemoRows, "number of tasks to start with")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the first page instead of starting the interactive grid")

	return cmd
}
