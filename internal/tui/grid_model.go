package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
)

// AppendFunc returns a new collection extending rows, used by the add-rows key.
type AppendFunc[R grid.Row] func(rows []R) ([]R, error)

// GridModel is the Bubble Tea model for an interactive paginated grid.
type GridModel[R grid.Row] struct {
	title    string
	grid     *grid.Grid[R]
	rows     []R
	appendFn AppendFunc[R]

	keys    KeyMap
	help    help.Model
	printer *message.Printer
	logger  zerolog.Logger

	// focusPage is the pagination-bar button picked with tab; 0 when none is focused.
	focusPage int

	width    int
	err      error
	quitting bool
}

// NewGridModel loads rows into g and returns a model presenting it.
// appendFn may be nil, which disables the add-rows key.
func NewGridModel[R grid.Row](
	ctx context.Context,
	title string,
	g *grid.Grid[R],
	rows []R,
	appendFn AppendFunc[R],
) (*GridModel[R], error) {
	if err := g.Update(rows); err != nil {
		return nil, fmt.Errorf("loading initial rows: %w", err)
	}

	keys := DefaultKeyMap()
	keys.Append.SetEnabled(appendFn != nil)

	return &GridModel[R]{
		title:    title,
		grid:     g,
		rows:     rows,
		appendFn: appendFn,
		keys:     keys,
		help:     help.New(),
		printer:  NewPrinter(),
		logger:   logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		width:    defaultWidth,
	}, nil
}

// Init implements tea.Model.
func (m *GridModel[R]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *GridModel[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *GridModel[R]) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.grid.Next()

	case key.Matches(msg, m.keys.Previous):
		m.grid.Previous()

	case key.Matches(msg, m.keys.First):
		m.grid.JumpTo(1)

	case key.Matches(msg, m.keys.Last):
		m.grid.JumpTo(m.grid.Pagination().TotalPages)

	case key.Matches(msg, m.keys.Jump):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			m.grid.JumpTo(n)
		}

	case key.Matches(msg, m.keys.Focus):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.FocusPrevious):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Activate):
		m.activateFocused()

	case key.Matches(msg, m.keys.Append):
		m.appendRows()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// moveFocus steps the focused button through the page buttons of the current plan,
// wrapping at either end. Without a visible focus it starts next to the current page.
func (m *GridModel[R]) moveFocus(step int) {
	var pages []int
	for _, b := range m.grid.Buttons() {
		if b.Kind == pagination.PageButton {
			pages = append(pages, b.Page)
		}
	}
	if len(pages) == 0 {
		m.focusPage = 0
		return
	}

	i := slices.Index(pages, m.focusPage)
	if i < 0 {
		i = max(slices.Index(pages, m.grid.Pagination().CurrentPage), 0)
	}
	m.focusPage = pages[(i+step+len(pages))%len(pages)]
}

// activateFocused activates the focused button through the grid's button plan.
func (m *GridModel[R]) activateFocused() {
	for _, b := range m.grid.Buttons() {
		if b.Kind == pagination.PageButton && b.Page == m.focusPage {
			m.grid.Activate(b)
			return
		}
	}
}

// FocusedPage returns the page of the focused pagination-bar button, or 0.
func (m *GridModel[R]) FocusedPage() int {
	return m.focusPage
}

// appendRows extends the collection through appendFn. A rejected update keeps
// the current rows and is shown until the next successful one.
func (m *GridModel[R]) appendRows() {
	next, err := m.appendFn(m.rows)
	if err != nil {
		m.err = fmt.Errorf("generating rows: %w", err)
		return
	}
	if err = m.grid.Update(next); err != nil {
		m.err = err
		return
	}
	m.rows = next
	m.err = nil
}

// View implements tea.Model.
func (m *GridModel[R]) View() string {
	if m.quitting {
		return ""
	}
	start := time.Now()

	p := m.grid.Pagination()

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(RenderTable(m.grid.Layouts(), m.grid.VisibleRows()))
	b.WriteString("\n")
	b.WriteString(RenderPaginationBar(p, m.grid.Buttons(), m.focusPage))
	b.WriteString("  ")
	b.WriteString(RenderSummary(m.printer, p))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Update rejected: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	m.logger.Debug().
		Int("page", p.CurrentPage).
		Int("rows", p.TotalRows).
		Dur("elapsed", time.Since(start)).
		Msg("rendered grid")

	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}

// Rows returns the collection currently shown.
func (m *GridModel[R]) Rows() []R {
	return m.rows
}

// Err returns the last rejected update, or nil.
func (m *GridModel[R]) Err() error {
	return m.err
}

// Run starts an interactive program for m and blocks until the user quits.
func Run[R grid.Row](ctx context.Context, m *GridModel[R], opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running interactive grid: %w", err)
	}
	return nil
}
