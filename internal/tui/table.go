package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/pagination"
)

// CellWidth converts a column layout width into a terminal cell count.
func CellWidth(layoutWidth int) int {
	return max(layoutWidth/pixelsPerCell, minCellWidth)
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + pagination.EllipsisLabel
}

func renderCells(layouts []grid.ColumnLayout, values []string, style lipgloss.Style) string {
	cells := make([]string, 0, len(layouts))
	for i, layout := range layouts {
		w := CellWidth(layout.Width)
		var v string
		if i < len(values) {
			v = values[i]
		}
		cells = append(cells, style.Width(w).Render(truncate(v, w)))
	}
	return strings.Join(cells, " ")
}

// RenderTable renders a header line followed by one line per visible row.
func RenderTable(layouts []grid.ColumnLayout, rows []grid.VisibleRow) string {
	labels := make([]string, len(layouts))
	for i, layout := range layouts {
		labels[i] = layout.Label
	}

	var b strings.Builder
	b.WriteString(renderCells(layouts, labels, headerStyle))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(mutedStyle.Italic(true).Render("No rows"))
		b.WriteString("\n")
		return b.String()
	}

	for _, row := range rows {
		b.WriteString(renderCells(layouts, row.Cells, cellStyle))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPaginationBar renders the previous arrow, the planned buttons and the next arrow.
// The selected page is shown in brackets and the button for focusPage in parentheses,
// so both stay visible without color. A focusPage of 0 focuses nothing.
func RenderPaginationBar(p pagination.Pagination, buttons []pagination.Button, focusPage int) string {
	parts := make([]string, 0, len(buttons)+2) //nolint:mnd // Two arrows around the buttons.

	parts = append(parts, arrow(IconPrevious, p.HasPrevious()))
	for _, b := range buttons {
		var label string
		switch {
		case b.Kind == pagination.Ellipsis:
			parts = append(parts, mutedStyle.Render(b.Label()))
			continue
		case b.Selected:
			label = selectedStyle.Render("[" + b.Label() + "]")
		default:
			label = pageStyle.Render(b.Label())
		}
		if b.Page == focusPage {
			label = focusedStyle.Render("(" + label + ")")
		}
		parts = append(parts, label)
	}
	parts = append(parts, arrow(IconNext, p.HasNext()))

	return strings.Join(parts, " ")
}

func arrow(icon string, enabled bool) string {
	if enabled {
		return pageStyle.Render(icon)
	}
	return mutedStyle.Render(icon)
}

// NewPrinter returns the number printer used for summaries.
func NewPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// RenderSummary renders "first - last of total" for the current page.
func RenderSummary(printer *message.Printer, p pagination.Pagination) string {
	if p.TotalRows == 0 {
		return mutedStyle.Render("0 rows")
	}
	first, last := p.Range()
	return mutedStyle.Render(printer.Sprintf("%d - %d of %d", first, last, p.TotalRows))
}

// RenderPlain renders the current page of g without interactive chrome,
// for non-terminal output.
func RenderPlain[R grid.Row](g *grid.Grid[R]) string {
	p := g.Pagination()

	var b strings.Builder
	b.WriteString(RenderTable(g.Layouts(), g.VisibleRows()))
	b.WriteString("\n")
	b.WriteString(RenderPaginationBar(p, g.Buttons(), 0))
	b.WriteString("\n")
	b.WriteString(RenderSummary(NewPrinter(), p))
	b.WriteString("\n")
	return b.String()
}
