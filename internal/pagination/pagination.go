package pagination

import "slices"

// ResizePolicy decides what happens to the current page when the row count changes.
type ResizePolicy int

const (
	// ResetOnGrowth moves back to the first page whenever the row count changes.
	ResetOnGrowth ResizePolicy = iota
	// PreservePage keeps the current page, clamped into the new page range.
	PreservePage
)

// String returns the string representation of a ResizePolicy.
func (rp ResizePolicy) String() string {
	switch rp {
	case ResetOnGrowth:
		return "reset"
	case PreservePage:
		return "preserve"
	default:
		return "unknown"
	}
}

// Pagination describes the current page position over a row collection.
// Values are immutable: navigation methods return a new Pagination.
type Pagination struct {
	// CurrentPage is the 1-based page being displayed.
	CurrentPage int `json:"current_page" yaml:"current_page"`

	// PageSize is the number of rows per page (always >= 1).
	PageSize int `json:"page_size" yaml:"page_size"`

	// TotalRows is the number of rows being paginated.
	TotalRows int `json:"total_rows" yaml:"total_rows"`

	// TotalPages is ceil(TotalRows / PageSize); 0 only when TotalRows is 0.
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// Derive creates a Pagination on page 1 for the given row count and page size.
// Page sizes below MinPageSize are clamped to MinPageSize; negative row counts count as zero.
func Derive(totalRows, pageSize int) Pagination {
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if totalRows < 0 {
		totalRows = 0
	}

	return Pagination{
		CurrentPage: 1,
		PageSize:    pageSize,
		TotalRows:   totalRows,
		TotalPages:  pageCount(totalRows, pageSize),
	}
}

// pageCount is ceil(rows/size) computed without overflow. size must be positive.
func pageCount(rows, size int) int {
	pages := rows / size
	if rows%size > 0 {
		pages++
	}
	return pages
}

// onPage reports whether page holds at least one of rows, without computing
// (page-1)*size, which overflows for arbitrary exported field values.
func onPage(page, rows, size int) bool {
	return size >= 1 && rows > 0 && page >= 1 && page <= pageCount(rows, size)
}

// Resize re-derives p for a new row count, keeping the page size.
// With ResetOnGrowth the result is on page 1; with PreservePage the current page
// is carried over and clamped into the new range.
func Resize(p Pagination, totalRows int, policy ResizePolicy) Pagination {
	next := Derive(totalRows, p.PageSize)
	if policy == PreservePage {
		next.CurrentPage = clamp(p.CurrentPage, 1, next.lastPage())
	}
	return next
}

// Increment moves to the next page, staying on the last page if already there.
func (p Pagination) Increment() Pagination {
	p.CurrentPage = min(p.CurrentPage+1, p.lastPage())
	return p
}

// Decrement moves to the previous page, staying on page 1 if already there.
func (p Pagination) Decrement() Pagination {
	p.CurrentPage = max(p.CurrentPage-1, 1)
	return p
}

// JumpTo moves to page n. Out-of-range pages are clamped to the nearest valid page.
func (p Pagination) JumpTo(n int) Pagination {
	p.CurrentPage = clamp(n, 1, p.lastPage())
	return p
}

// HasPrevious reports whether a page exists before the current one.
func (p Pagination) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a page exists after the current one.
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Range returns the 1-based positions of the first and last rows on the current page.
// Both are 0 when there are no rows.
//
//nolint:nonamedreturns // Named returns document which bound is which.
func (p Pagination) Range() (first, last int) {
	if !onPage(p.CurrentPage, p.TotalRows, p.PageSize) {
		return 0, 0
	}
	first = (p.CurrentPage-1)*p.PageSize + 1
	last = first + min(p.PageSize, p.TotalRows-first+1) - 1
	return first, last
}

// lastPage is the highest valid CurrentPage; an empty collection still has page 1.
func (p Pagination) lastPage() int {
	return max(p.TotalPages, 1)
}

// Window returns the identities visible on the current page of p.
// It never fails: an empty order or an out-of-range page yields an empty slice.
// The result is a copy, so callers may keep it after order changes.
func Window(p Pagination, order []string) []string {
	page := max(p.CurrentPage, 1)
	if !onPage(page, len(order), p.PageSize) {
		return []string{}
	}

	start := (page - 1) * p.PageSize
	end := start + min(p.PageSize, len(order)-start)
	return slices.Clone(order[start:end])
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
