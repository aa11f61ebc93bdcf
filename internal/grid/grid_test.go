package grid

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/pagination"
)

type task struct {
	id          int
	name        string
	description string
}

func (t task) Identity() string { return strconv.Itoa(t.id) }

type taskField int

const (
	fieldID taskField = iota
	fieldName
	fieldDescription
)

func (f taskField) Value(t task) string {
	switch f {
	case fieldID:
		return strconv.Itoa(t.id)
	case fieldName:
		return t.name
	case fieldDescription:
		return t.description
	default:
		return ""
	}
}

func (f taskField) Layout() ColumnLayout {
	switch f {
	case fieldID:
		return ColumnLayout{Label: "Id", Width: 50, Sortable: true}
	case fieldName:
		return ColumnLayout{Label: "Task Name", Width: 150, Editable: true, Sortable: true}
	default:
		return ColumnLayout{Label: "Description", Width: 200, Editable: true, Sortable: true}
	}
}

func taskColumns() []Column[task] {
	return []Column[task]{fieldID, fieldName, fieldDescription}
}

func makeTasks(from, n int) []task {
	tasks := make([]task, n)
	for i := range tasks {
		id := from + i
		tasks[i] = task{id: id, name: "Task " + strconv.Itoa(id), description: "Task " + strconv.Itoa(id) + " Description"}
	}
	return tasks
}

func newTestGrid(t *testing.T, opts Options) (*Grid[task], *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	opts.Logger = &logger
	return New(taskColumns(), opts), &buf
}

func TestColumnContract(t *testing.T) {
	row := task{id: 1, name: "Task 1", description: "Description 1"}

	assert.Equal(t, "1", fieldID.Value(row))
	assert.Equal(t, "Task 1", fieldName.Value(row))
	assert.Equal(t, "Description 1", fieldDescription.Value(row))
	assert.Equal(t, []string{"1", "Task 1", "Description 1"}, Cells(row, taskColumns()))
	assert.Empty(t, taskField(42).Value(row))
}

func TestLayouts(t *testing.T) {
	layouts := Layouts(taskColumns())
	require.Len(t, layouts, 3)
	assert.Equal(t, "Task Name", layouts[1].Label)
	assert.True(t, layouts[1].Editable)
	assert.False(t, layouts[0].Editable)
	assert.Equal(t, 400, TotalWidth(layouts))
	assert.Zero(t, TotalWidth(nil))
}

func TestGrid_Update(t *testing.T) {
	g, _ := newTestGrid(t, Options{PageSize: 10, MaxButtons: 10})

	require.NoError(t, g.Update(makeTasks(0, 105)))

	p := g.Pagination()
	assert.Equal(t, 11, p.TotalPages)
	assert.Equal(t, 105, p.TotalRows)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, g.Page())

	g.JumpTo(11)
	assert.Len(t, g.Page(), 5)

	rows := g.VisibleRows()
	require.Len(t, rows, 5)
	assert.Equal(t, "100", rows[0].ID)
	assert.Equal(t, []string{"100", "Task 100", "Task 100 Description"}, rows[0].Cells)
}

func TestGrid_EmptyGrid(t *testing.T) {
	g, _ := newTestGrid(t, DefaultOptions())

	require.NoError(t, g.Update(nil))
	assert.Empty(t, g.Page())
	assert.Empty(t, g.VisibleRows())
	assert.Equal(t, 0, g.Pagination().TotalPages)
	assert.Equal(t, 1, g.Next().CurrentPage)
	assert.Empty(t, g.Buttons())
}

func TestGrid_GrowthPolicy(t *testing.T) {
	t.Run("reset", func(t *testing.T) {
		g, _ := newTestGrid(t, Options{PageSize: 5, Policy: pagination.ResetOnGrowth})
		require.NoError(t, g.Update(makeTasks(0, 20)))
		g.JumpTo(3)
		require.NoError(t, g.Update(makeTasks(0, 30)))
		assert.Equal(t, 1, g.Pagination().CurrentPage)
		assert.Equal(t, 6, g.Pagination().TotalPages)
	})

	t.Run("preserve", func(t *testing.T) {
		g, _ := newTestGrid(t, Options{PageSize: 5, Policy: pagination.PreservePage})
		require.NoError(t, g.Update(makeTasks(0, 20)))
		g.JumpTo(3)
		require.NoError(t, g.Update(makeTasks(0, 30)))
		assert.Equal(t, 3, g.Pagination().CurrentPage)
		assert.Equal(t, []string{"10", "11", "12", "13", "14"}, g.Page())
	})
}

func TestGrid_UnchangedUpdateKeepsPage(t *testing.T) {
	g, _ := newTestGrid(t, Options{PageSize: 5})
	rows := makeTasks(0, 20)
	require.NoError(t, g.Update(rows))
	g.JumpTo(2)
	before := g.State()

	require.NoError(t, g.Update(makeTasks(0, 20)))
	assert.Equal(t, 2, g.Pagination().CurrentPage)
	assert.True(t, before.Equal(g.State()))
}

func TestGrid_UnchangedUpdateRefreshesValues(t *testing.T) {
	g, _ := newTestGrid(t, Options{PageSize: 5})
	require.NoError(t, g.Update(makeTasks(0, 3)))

	edited := makeTasks(0, 3)
	edited[1].name = "Renamed"
	require.NoError(t, g.Update(edited))

	assert.Equal(t, "Renamed", g.VisibleRows()[1].Cells[1])
}

func TestGrid_RejectedUpdateKeepsLastGoodState(t *testing.T) {
	g, buf := newTestGrid(t, Options{PageSize: 5})
	require.NoError(t, g.Update(makeTasks(0, 12)))
	g.JumpTo(2)
	state := g.State()
	pages := g.Pagination()

	rejectedBefore := testutil.ToFloat64(Reconciliations.WithLabelValues(outcomeRejected))

	bad := append(makeTasks(0, 12), task{id: 3, name: "dup"})
	err := g.Update(bad)
	require.ErrorIs(t, err, ErrDuplicateOrInconsistentRows)

	assert.True(t, state.Equal(g.State()))
	assert.Equal(t, pages, g.Pagination())
	assert.Equal(t, "Task 5", g.VisibleRows()[0].Cells[1])
	assert.InDelta(t, rejectedBefore+1, testutil.ToFloat64(Reconciliations.WithLabelValues(outcomeRejected)), 0)

	var entry map[string]any
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "grid", entry["component"])
	assert.EqualValues(t, 12, entry["expected"])
	assert.EqualValues(t, 13, entry["supplied"])
	assert.Equal(t, []any{"3"}, entry["duplicates"])
}

func TestGrid_RejectsRowsThatBreakIdentityPairing(t *testing.T) {
	tests := []struct {
		name string
		rows []task
	}{
		{name: "new row inserted before known rows", rows: append(makeTasks(3, 1), makeTasks(1, 2)...)},
		{name: "same length with a replaced row", rows: append(makeTasks(1, 1), makeTasks(9, 1)...)},
		{name: "same length with rows swapped", rows: []task{makeTasks(2, 1)[0], makeTasks(1, 1)[0]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, buf := newTestGrid(t, Options{PageSize: 5})
			require.NoError(t, g.Update(makeTasks(1, 2)))

			err := g.Update(tt.rows)
			require.ErrorIs(t, err, ErrDuplicateOrInconsistentRows)
			var rowsErr *InconsistentRowsError
			require.ErrorAs(t, err, &rowsErr)
			assert.NotEmpty(t, rowsErr.Misplaced)
			assert.Contains(t, buf.String(), `"misplaced"`)

			visible := g.VisibleRows()
			require.Len(t, visible, 2)
			for _, row := range visible {
				assert.Equal(t, row.ID, row.Cells[0], "identity is paired with its own cells")
			}
			assert.Equal(t, "Task 2", visible[1].Cells[1])
		})
	}
}

func TestGrid_Reset(t *testing.T) {
	g, _ := newTestGrid(t, Options{PageSize: 5})
	require.NoError(t, g.Update(makeTasks(0, 12)))

	// Removing rows is rejected by Update but accepted by Reset.
	shrunk := makeTasks(4, 6)
	require.Error(t, g.Update(shrunk))
	require.NoError(t, g.Reset(shrunk))

	assert.Equal(t, 6, g.State().Len())
	assert.Equal(t, 2, g.Pagination().TotalPages)
	assert.Equal(t, []string{"4", "5", "6", "7", "8"}, g.Page())

	require.ErrorIs(t, g.Reset([]task{{id: 1}, {id: 1}}), ErrDuplicateOrInconsistentRows)
	assert.Equal(t, 6, g.State().Len())
}

func TestGrid_Navigation(t *testing.T) {
	g, _ := newTestGrid(t, Options{PageSize: 10, MaxButtons: 10})
	require.NoError(t, g.Update(makeTasks(0, 1000)))

	assert.Equal(t, 1, g.Previous().CurrentPage)
	assert.Equal(t, 2, g.Next().CurrentPage)
	assert.Equal(t, 100, g.JumpTo(101).CurrentPage)
	assert.Equal(t, 100, g.Next().CurrentPage)
	assert.Equal(t, 1, g.JumpTo(0).CurrentPage)
}

func TestGrid_Buttons(t *testing.T) {
	g, _ := newTestGrid(t, Options{PageSize: 10, MaxButtons: 10})
	require.NoError(t, g.Update(makeTasks(0, 1000)))

	buttons := g.Buttons()
	require.Len(t, buttons, 10)
	assert.Equal(t, pagination.Ellipsis, buttons[9].Kind)

	assert.False(t, g.Activate(buttons[0]), "selected page is inert")
	assert.False(t, g.Activate(buttons[9]), "ellipsis is inert")
	assert.True(t, g.Activate(buttons[4]))
	assert.Equal(t, 5, g.Pagination().CurrentPage)

	g.JumpTo(50)
	assert.Equal(t, pagination.ZoneMid, pagination.ZoneFor(g.Pagination(), 10))
	g.JumpTo(100)
	assert.Equal(t, pagination.Ellipsis, g.Buttons()[0].Kind)
}

func TestGrid_LayoutsAndWidth(t *testing.T) {
	g := New(taskColumns(), DefaultOptions())
	assert.Len(t, g.Layouts(), 3)
	assert.Equal(t, 400, g.TotalWidth())
}
