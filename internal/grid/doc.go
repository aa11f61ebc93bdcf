// Package grid provides a reusable tabular-grid engine over caller-defined rows and columns.
//
// The engine keeps a stable, identity-keyed presentation order for rows across repeated
// updates, even when the caller rebuilds its row collection wholesale on every update.
// Key pieces:
//   - Row and Column: the capability contract callers implement for their own types
//   - RowState and Reconcile: the append-only identity tracker
//   - Grid: a single-owner adapter that persists RowState and Pagination between updates
//
// Reconcile refuses to guess when rows vanish or identities repeat: it returns an
// InconsistentRowsError and the previous state is kept as the last known good view.
// Callers that intentionally remove rows use Rebuild (or Grid.Reset) instead.
//
// Nothing in this package performs I/O or spawns goroutines. A Grid is owned by exactly
// one caller and is not safe for concurrent use.
package grid
