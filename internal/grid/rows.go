package grid

import (
	"maps"
	"slices"
)

// RowState is the tracked presentation order and the identity-to-position index.
// Every identity in the order has exactly one index entry and vice versa.
// RowState values are never modified after construction; Reconcile returns new ones.
type RowState struct {
	order []string
	index map[string]int
}

// Len returns the number of tracked rows.
func (s RowState) Len() int {
	return len(s.order)
}

// Order returns a copy of the tracked identities in presentation order.
func (s RowState) Order() []string {
	return slices.Clone(s.order)
}

// Position returns the index of id in the most recently reconciled source collection.
func (s RowState) Position(id string) (int, bool) {
	pos, ok := s.index[id]
	return pos, ok
}

// Contains reports whether id is tracked.
func (s RowState) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Equal reports whether s and other track the same order and positions.
func (s RowState) Equal(other RowState) bool {
	return slices.Equal(s.order, other.order) && maps.Equal(s.index, other.index)
}

// Reconciliation is the result of a successful Reconcile.
type Reconciliation struct {
	// State is the new RowState, or the previous one when nothing grew.
	State RowState

	// Grew reports whether rows were appended; page counts must be re-derived when true.
	Grew bool

	// Added is the number of appended identities.
	Added int
}

// Reconcile merges a freshly supplied row collection into prev.
//
// When the collection has the same length as prev, prev is returned as is; callers that
// read rows by position should confirm the layout with CheckPositions. Otherwise every
// identity absent from prev is appended in supplied order and indexed at prev.Len()+i.
// Growth must happen at the tail: known rows stay at their tracked positions.
// A collection that repeats identities, moves known rows, or whose length cannot be
// explained by pure growth, yields an *InconsistentRowsError together with prev.
//
// prev is never modified.
func Reconcile[R Row](rows []R, prev RowState) (Reconciliation, error) {
	if len(rows) == prev.Len() {
		return Reconciliation{State: prev}, nil
	}

	var (
		added      []string
		duplicates []string
		seen       = make(map[string]struct{}, len(rows))
	)
	for _, row := range rows {
		id := row.Identity()
		if _, dup := seen[id]; dup {
			if !slices.Contains(duplicates, id) {
				duplicates = append(duplicates, id)
			}
			continue
		}
		seen[id] = struct{}{}
		if !prev.Contains(id) {
			added = append(added, id)
		}
	}

	expected := prev.Len() + len(added)
	if len(duplicates) > 0 || expected != len(rows) {
		return Reconciliation{State: prev}, &InconsistentRowsError{
			Expected:   expected,
			Supplied:   len(rows),
			Duplicates: duplicates,
		}
	}
	if err := CheckPositions(rows, prev); err != nil {
		return Reconciliation{State: prev}, err
	}

	index := make(map[string]int, expected)
	maps.Copy(index, prev.index)
	for i, id := range added {
		index[id] = prev.Len() + i
	}

	return Reconciliation{
		State: RowState{
			order: slices.Concat(prev.order, added),
			index: index,
		},
		Grew:  true,
		Added: len(added),
	}, nil
}

// CheckPositions reports an *InconsistentRowsError listing every identity of s whose
// row in rows is missing from its tracked position. A nil result means rows[pos]
// belongs to id for every tracked (id, pos).
func CheckPositions[R Row](rows []R, s RowState) error {
	var misplaced []string
	for _, id := range s.order {
		pos := s.index[id]
		if pos >= len(rows) || rows[pos].Identity() != id {
			misplaced = append(misplaced, id)
		}
	}
	if len(misplaced) == 0 {
		return nil
	}
	return &InconsistentRowsError{
		Expected:  s.Len(),
		Supplied:  len(rows),
		Misplaced: misplaced,
	}
}

// Rebuild creates a RowState from scratch, in supplied order.
// Use it when rows were intentionally removed or reordered; Reconcile rejects both.
func Rebuild[R Row](rows []R) (RowState, error) {
	var (
		order      = make([]string, 0, len(rows))
		index      = make(map[string]int, len(rows))
		duplicates []string
	)
	for i, row := range rows {
		id := row.Identity()
		if _, dup := index[id]; dup {
			if !slices.Contains(duplicates, id) {
				duplicates = append(duplicates, id)
			}
			continue
		}
		index[id] = i
		order = append(order, id)
	}

	if len(duplicates) > 0 {
		return RowState{}, &InconsistentRowsError{
			Expected:   len(order),
			Supplied:   len(rows),
			Duplicates: duplicates,
		}
	}
	return RowState{order: order, index: index}, nil
}
