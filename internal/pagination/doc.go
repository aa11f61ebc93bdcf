// Package pagination provides the page arithmetic behind the data grid.
//
// This package contains the pure pagination logic used by the grid and its renderers, including:
//   - Pagination: an immutable page position derived from a row count and page size
//   - Window: the slice of row identities visible on the current page
//   - PlanButtons: the compressed page-button layout for bounded-width pagination bars
//   - Params: CLI flag validation for page and page-size selection
//
// Every operation returns a new value instead of mutating its receiver, so callers can keep
// the previous Pagination around and compare it with the next one.
package pagination
