package pagination

import "strconv"

// MinButtons is the smallest button budget PlanButtons honours: one ellipsis on each side
// of a single page.
const MinButtons = 3

// EllipsisLabel is rendered in place of the pages an ellipsis hides.
const EllipsisLabel = "…"

// ButtonKind distinguishes page buttons from ellipsis markers.
type ButtonKind int

const (
	// PageButton navigates to Button.Page when activated.
	PageButton ButtonKind = iota
	// Ellipsis marks hidden pages and is not interactive.
	Ellipsis
)

// String returns the string representation of a ButtonKind.
func (k ButtonKind) String() string {
	switch k {
	case PageButton:
		return "page"
	case Ellipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// Zone identifies which layout PlanButtons chose for the current page.
type Zone int

const (
	// ZoneUncapped shows every page because they all fit.
	ZoneUncapped Zone = iota
	// ZoneLower shows the first pages followed by an ellipsis.
	ZoneLower
	// ZoneMid shows a window around the current page between two ellipses.
	ZoneMid
	// ZoneUpper shows an ellipsis followed by the last pages.
	ZoneUpper
)

// String returns the string representation of a Zone.
func (z Zone) String() string {
	switch z {
	case ZoneUncapped:
		return "uncapped"
	case ZoneLower:
		return "lower"
	case ZoneMid:
		return "mid"
	case ZoneUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// Button is a single entry in a pagination bar.
type Button struct {
	Kind ButtonKind

	// Page is the 1-based page number; zero for ellipsis markers.
	Page int

	// Selected marks the button for the current page. Selected buttons are not navigable.
	Selected bool
}

// Label returns the text shown on the button.
func (b Button) Label() string {
	if b.Kind == Ellipsis {
		return EllipsisLabel
	}
	return strconv.Itoa(b.Page)
}

// Navigable reports whether activating the button changes the page.
func (b Button) Navigable() bool {
	return b.Kind == PageButton && !b.Selected
}

// Activate applies the button to p. It returns the jumped-to Pagination and true for
// navigable buttons, and p unchanged and false for ellipsis markers and the selected page.
func (b Button) Activate(p Pagination) (Pagination, bool) {
	if !b.Navigable() {
		return p, false
	}
	return p.JumpTo(b.Page), true
}

// ZoneFor classifies the current page of p for a pagination bar holding at most maxButtons entries.
//
// The upper zone starts at current > N-M+1, mirroring the lower zone's current < M: both
// keep M-1 pages next to the ellipsis, so the current page is always among them.
func ZoneFor(p Pagination, maxButtons int) Zone {
	m := max(maxButtons, MinButtons)
	n := p.TotalPages
	if n <= m {
		return ZoneUncapped
	}

	current := clamp(p.CurrentPage, 1, n)
	switch {
	case current < m:
		return ZoneLower
	case current > n-m+1:
		return ZoneUpper
	default:
		return ZoneMid
	}
}

// PlanButtons returns the ordered pagination-bar entries for p using at most maxButtons slots.
// Budgets below MinButtons are raised to MinButtons. The current page is always present
// and marked Selected.
//
// Layouts, with M = maxButtons and N = total pages:
//   - N <= M: pages 1..N
//   - lower (current < M): pages 1..M-1, ellipsis
//   - upper (current > N-M+1): ellipsis, pages N-M+2..N
//   - mid: ellipsis, M-2 pages around current, ellipsis
func PlanButtons(p Pagination, maxButtons int) []Button {
	m := max(maxButtons, MinButtons)
	n := p.TotalPages
	current := clamp(p.CurrentPage, 1, max(n, 1))

	buttons := make([]Button, 0, min(n, m))
	pages := func(from, to int) {
		for page := from; page <= to; page++ {
			buttons = append(buttons, Button{Kind: PageButton, Page: page, Selected: page == current})
		}
	}
	ellipsis := func() {
		buttons = append(buttons, Button{Kind: Ellipsis})
	}

	switch ZoneFor(p, m) {
	case ZoneUncapped:
		pages(1, n)
	case ZoneLower:
		pages(1, m-1)
		ellipsis()
	case ZoneUpper:
		ellipsis()
		pages(n-m+2, n)
	case ZoneMid:
		width := m - 2
		from := current - (width-1)/2
		ellipsis()
		pages(from, from+width-1)
		ellipsis()
	}

	return buttons
}
