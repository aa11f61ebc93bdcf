package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateOrInconsistentRows is matched by every InconsistentRowsError via errors.Is.
var ErrDuplicateOrInconsistentRows = errors.New("duplicate or inconsistent rows")

// maxReportedIDs caps how many identities of each kind appear in an error message.
const maxReportedIDs = 5

// InconsistentRowsError reports a row collection that cannot be explained as append-only
// growth of the previous one: identities repeat, or known rows were removed, replaced or moved.
type InconsistentRowsError struct {
	// Expected is the row count that pure growth would have produced.
	Expected int

	// Supplied is the row count actually supplied.
	Supplied int

	// Duplicates lists identities that appeared more than once, in first-seen order.
	Duplicates []string

	// Misplaced lists tracked identities whose row is no longer at its tracked position,
	// in presentation order.
	Misplaced []string
}

// Error implements the error interface.
func (e *InconsistentRowsError) Error() string {
	msg := fmt.Sprintf("%s: expected %d rows, supplied %d", ErrDuplicateOrInconsistentRows, e.Expected, e.Supplied)
	if len(e.Duplicates) > 0 {
		msg += "; duplicate identities: " + joinIDs(e.Duplicates)
	}
	if len(e.Misplaced) > 0 {
		msg += "; misplaced identities: " + joinIDs(e.Misplaced)
	}
	return msg
}

func joinIDs(ids []string) string {
	if len(ids) <= maxReportedIDs {
		return strings.Join(ids, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(ids[:maxReportedIDs], ", "), len(ids)-maxReportedIDs)
}

// Is reports whether target is ErrDuplicateOrInconsistentRows.
func (e *InconsistentRowsError) Is(target error) bool {
	return target == ErrDuplicateOrInconsistentRows
}
