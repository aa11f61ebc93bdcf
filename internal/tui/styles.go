package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the grid views.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("212")
	ColorError     = lipgloss.Color("196")
)

// Icons used in the pagination bar.
const (
	IconPrevious = "‹"
	IconNext     = "›"
)

// defaultWidth is used until the terminal reports its size.
const defaultWidth = 80

// pixelsPerCell converts column layout widths into terminal cells.
const pixelsPerCell = 10

// minCellWidth keeps very narrow columns readable.
const minCellWidth = 3

//nolint:gochecknoglobals // Immutable style definitions shared across renders.
var (
	titleStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).MarginBottom(1)
	headerStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	cellStyle     = lipgloss.NewStyle().Foreground(ColorValue)
	selectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	focusedStyle  = lipgloss.NewStyle().Foreground(ColorHighlight).Underline(true)
	pageStyle     = lipgloss.NewStyle().Foreground(ColorLabel)
	mutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
