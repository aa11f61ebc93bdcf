package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/demo"
	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/tui"
)

// Output formats supported by render.
const (
	outputTable = "table"
	outputJSON  = "json"
)

const defaultRenderRows = 100

// renderOutput is the JSON document printed by render --output json.
type renderOutput struct {
	Pagination pagination.Pagination `json:"pagination"`
	Zone       string                `json:"zone"`
	Buttons    []buttonOutput        `json:"buttons"`
	Columns    []string              `json:"columns"`
	Rows       []rowOutput           `json:"rows"`
}

type buttonOutput struct {
	Label    string `json:"label"`
	Page     int    `json:"page,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

type rowOutput struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

func newRenderCmd(state *rootState) *cobra.Command {
	var (
		rows   int
		page   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one page of generated tasks",
		Long: `Print one page of generated tasks with its pagination bar.

Pages past the end are clamped to the last page.`,
		Args: cobra.NoArgs,
		RunE: withLogCleanup(state, func(cmd *cobra.Command, _ []string) error {
			if rows < 0 {
				return fmt.Errorf("--rows must be >= 0, got %d", rows)
			}
			params := pagination.Params{
				Page:       page,
				PageSize:   state.cfg.Grid.PageSize,
				MaxButtons: state.cfg.Grid.MaxButtons,
			}
			if err := params.Validate(); err != nil {
				return err
			}

			tasks, err := demo.NewGenerator().Generate(rows)
			if err != nil {
				return fmt.Errorf("generating tasks: %w", err)
			}

			g := newTaskGrid(state)
			if err = g.Update(tasks); err != nil {
				return err
			}
			g.JumpTo(params.Page)

			switch output {
			case outputTable:
				_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(g))
				return err
			case outputJSON:
				return writeJSON(cmd.OutOrStdout(), g, params.MaxButtons)
			default:
				return fmt.Errorf("unsupported output format %q (want %q or %q)", output, outputTable, outputJSON)
			}
		}),
	}

	cmd.Flags().IntVar(&rows, "rows", defaultRenderRows, "number of tasks to generate")
	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "page to print (1-based)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	return cmd
}

func writeJSON[R grid.Row](w io.Writer, g *grid.Grid[R], maxButtons int) error {
	p := g.Pagination()
	out := renderOutput{
		Pagination: p,
		Zone:       pagination.ZoneFor(p, maxButtons).String(),
	}
	for _, b := range g.Buttons() {
		out.Buttons = append(out.Buttons, buttonOutput{Label: b.Label(), Page: b.Page, Selected: b.Selected})
	}
	for _, layout := range g.Layouts() {
		out.Columns = append(out.Columns, layout.Label)
	}
	out.Rows = make([]rowOutput, 0, p.PageSize)
	for _, row := range g.VisibleRows() {
		out.Rows = append(out.Rows, rowOutput{ID: row.ID, Cells: row.Cells})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
