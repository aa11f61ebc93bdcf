package pagination

import (
	"errors"
	"fmt"
)

// Pagination defaults and validation limits.
const (
	DefaultPageSize   = 10
	MinPageSize       = 1
	MaxPageSize       = 1000
	DefaultPage       = 1
	MinPage           = 1
	DefaultMaxButtons = 10
	MaxButtonsLimit   = 100
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 1000")
	ErrInvalidMaxButtons = errors.New("max-buttons must be between 3 and 100")
)

// Params holds the page selection flags accepted by the CLI.
type Params struct {
	// Page is the 1-based page to show.
	Page int

	// PageSize is the number of rows per page.
	PageSize int

	// MaxButtons bounds the number of entries in the pagination bar.
	MaxButtons int
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:       DefaultPage,
		PageSize:   DefaultPageSize,
		MaxButtons: DefaultMaxButtons,
	}
}

// Validate checks that every field is within its allowed range.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if err := ValidatePageSize(p.PageSize); err != nil {
		return err
	}
	return ValidateMaxButtons(p.MaxButtons)
}

// ValidatePageSize reports ErrInvalidPageSize when size is outside [MinPageSize, MaxPageSize].
func ValidatePageSize(size int) error {
	if size < MinPageSize || size > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	return nil
}

// ValidateMaxButtons reports ErrInvalidMaxButtons when n is outside [MinButtons, MaxButtonsLimit].
func ValidateMaxButtons(n int) error {
	if n < MinButtons || n > MaxButtonsLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxButtons, n)
	}
	return nil
}

// Apply derives a Pagination for totalRows and jumps to the requested page.
// Pages past the end are clamped to the last page.
func (p Params) Apply(totalRows int) Pagination {
	return Derive(totalRows, p.PageSize).JumpTo(p.Page)
}
