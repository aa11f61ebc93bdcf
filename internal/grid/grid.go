package grid

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/rshade/datagrid/internal/pagination"
)

// Options configures a Grid.
type Options struct {
	// PageSize is the number of rows per page; values below 1 are clamped to 1.
	PageSize int

	// MaxButtons bounds the pagination bar; see pagination.PlanButtons.
	MaxButtons int

	// Policy decides what happens to the current page when rows are appended.
	Policy pagination.ResizePolicy

	// Logger receives reconciliation diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		PageSize:   pagination.DefaultPageSize,
		MaxButtons: pagination.DefaultMaxButtons,
		Policy:     pagination.ResetOnGrowth,
	}
}

// VisibleRow is one row of the current page with its display values.
type VisibleRow struct {
	ID    string
	Cells []string
}

// Grid owns the row state and pagination of one data grid instance.
// The presentation layer feeds it full row collections and navigation commands, then
// renders Page or VisibleRows. A Grid is not safe for concurrent use.
type Grid[R Row] struct {
	columns    []Column[R]
	layouts    []ColumnLayout
	rows       []R
	state      RowState
	pages      pagination.Pagination
	maxButtons int
	policy     pagination.ResizePolicy
	logger     zerolog.Logger
}

// New creates an empty Grid over columns.
func New[R Row](columns []Column[R], opts Options) *Grid[R] {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("component", "grid").Logger()
	}

	return &Grid[R]{
		columns:    columns,
		layouts:    Layouts(columns),
		pages:      pagination.Derive(0, opts.PageSize),
		maxButtons: opts.MaxButtons,
		policy:     opts.Policy,
		logger:     logger,
	}
}

// Update reconciles a freshly supplied row collection.
// On failure the previous rows, order and pagination stay in place and the
// *InconsistentRowsError is returned for the caller to surface.
func (g *Grid[R]) Update(rows []R) error {
	res, err := Reconcile(rows, g.state)
	if err == nil && !res.Grew {
		// Same length: rows replace the stored ones only if every identity kept its position.
		err = CheckPositions(rows, g.state)
	}
	if err != nil {
		Reconciliations.WithLabelValues(outcomeRejected).Inc()
		g.logRejection(err)
		return err
	}

	g.rows = rows
	if !res.Grew {
		Reconciliations.WithLabelValues(outcomeUnchanged).Inc()
		return nil
	}

	Reconciliations.WithLabelValues(outcomeGrown).Inc()
	RowsAppended.Add(float64(res.Added))

	g.state = res.State
	g.pages = pagination.Resize(g.pages, g.state.Len(), g.policy)

	g.logger.Debug().
		Int("added", res.Added).
		Int("total_rows", g.pages.TotalRows).
		Int("total_pages", g.pages.TotalPages).
		Int("current_page", g.pages.CurrentPage).
		Msg("rows appended")
	return nil
}

// Reset replaces the tracked state with one rebuilt from rows, for callers that
// intentionally removed or reordered rows. Duplicate identities are rejected and
// leave the previous state in place.
func (g *Grid[R]) Reset(rows []R) error {
	state, err := Rebuild(rows)
	if err != nil {
		Reconciliations.WithLabelValues(outcomeRejected).Inc()
		g.logRejection(err)
		return err
	}

	Reconciliations.WithLabelValues(outcomeRebuilt).Inc()
	g.rows = rows
	g.state = state
	g.pages = pagination.Resize(g.pages, state.Len(), g.policy)

	g.logger.Debug().
		Int("total_rows", g.pages.TotalRows).
		Int("total_pages", g.pages.TotalPages).
		Msg("row state rebuilt")
	return nil
}

func (g *Grid[R]) logRejection(err error) {
	event := g.logger.Warn().Err(err)
	var rowsErr *InconsistentRowsError
	if errors.As(err, &rowsErr) {
		event = event.
			Int("expected", rowsErr.Expected).
			Int("supplied", rowsErr.Supplied).
			Strs("duplicates", rowsErr.Duplicates).
			Strs("misplaced", rowsErr.Misplaced)
	}
	event.Msg("row reconciliation rejected, keeping last good state")
}

// State returns the tracked row state.
func (g *Grid[R]) State() RowState {
	return g.state
}

// Pagination returns the current page position.
func (g *Grid[R]) Pagination() pagination.Pagination {
	return g.pages
}

// Layouts returns the column layouts, computed once when the Grid was created.
func (g *Grid[R]) Layouts() []ColumnLayout {
	return g.layouts
}

// TotalWidth returns the summed advisory column width.
func (g *Grid[R]) TotalWidth() int {
	return TotalWidth(g.layouts)
}

// Page returns the identities visible on the current page.
func (g *Grid[R]) Page() []string {
	return pagination.Window(g.pages, g.state.order)
}

// VisibleRows returns the current page with display values computed through the columns.
func (g *Grid[R]) VisibleRows() []VisibleRow {
	ids := g.Page()
	visible := make([]VisibleRow, 0, len(ids))
	for _, id := range ids {
		pos, ok := g.state.Position(id)
		if !ok || pos >= len(g.rows) || g.rows[pos].Identity() != id {
			continue
		}
		visible = append(visible, VisibleRow{ID: id, Cells: Cells(g.rows[pos], g.columns)})
	}
	return visible
}

// Next moves to the next page.
func (g *Grid[R]) Next() pagination.Pagination {
	PageNavigations.WithLabelValues("next").Inc()
	g.pages = g.pages.Increment()
	return g.pages
}

// Previous moves to the previous page.
func (g *Grid[R]) Previous() pagination.Pagination {
	PageNavigations.WithLabelValues("previous").Inc()
	g.pages = g.pages.Decrement()
	return g.pages
}

// JumpTo moves to page n, clamped into range.
func (g *Grid[R]) JumpTo(n int) pagination.Pagination {
	PageNavigations.WithLabelValues("jump").Inc()
	g.pages = g.pages.JumpTo(n)
	return g.pages
}

// Buttons returns the pagination-bar plan for the current page.
func (g *Grid[R]) Buttons() []pagination.Button {
	return pagination.PlanButtons(g.pages, g.maxButtons)
}

// Activate applies a pagination-bar button and reports whether the page changed.
func (g *Grid[R]) Activate(b pagination.Button) bool {
	next, ok := b.Activate(g.pages)
	if !ok {
		return false
	}
	PageNavigations.WithLabelValues("button").Inc()
	g.pages = next
	return true
}
