// Package demo provides the task rows and columns shown by the datagrid demo.
package demo

import (
	"crypto/rand"
	"io"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/datagrid/internal/grid"
)

// Task is a demo row. Its identity is a ULID so rows stay distinct across sessions
// and sort by creation time.
type Task struct {
	ID          ulid.ULID
	Number      int
	Name        string
	Description string
}

// Identity implements grid.Row.
func (t Task) Identity() string {
	return t.ID.String()
}

// TaskField is a column of the task grid.
type TaskField int

const (
	// FieldNumber shows the task sequence number.
	FieldNumber TaskField = iota
	// FieldName shows the task name.
	FieldName
	// FieldDescription shows the task description.
	FieldDescription
)

// Value implements grid.Column.
func (f TaskField) Value(t Task) string {
	switch f {
	case FieldNumber:
		return strconv.Itoa(t.Number)
	case FieldName:
		return t.Name
	case FieldDescription:
		return t.Description
	default:
		return ""
	}
}

// Layout implements grid.Column.
func (f TaskField) Layout() grid.ColumnLayout {
	switch f {
	case FieldNumber:
		return grid.ColumnLayout{Label: "Id", Width: 50, Sortable: true}
	case FieldName:
		return grid.ColumnLayout{Label: "Task Name", Width: 150, Editable: true, Sortable: true}
	case FieldDescription:
		return grid.ColumnLayout{Label: "Description", Width: 200, Editable: true, Sortable: true}
	default:
		return grid.ColumnLayout{}
	}
}

// Columns returns the task grid columns in display order.
func Columns() []grid.Column[Task] {
	return []grid.Column[Task]{FieldNumber, FieldName, FieldDescription}
}

// Generator creates tasks with increasing numbers and monotonic ULIDs.
// It is not safe for concurrent use.
type Generator struct {
	next    int
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator returns a Generator numbering tasks from 1.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(time.Now, ulid.Monotonic(rand.Reader, 0))
}

// NewGeneratorWithSource returns a Generator using the given clock and entropy,
// which makes identities reproducible in tests.
func NewGeneratorWithSource(now func() time.Time, entropy io.Reader) *Generator {
	return &Generator{next: 1, now: now, entropy: entropy}
}

// Generate returns n new tasks.
func (g *Generator) Generate(n int) ([]Task, error) {
	tasks := make([]Task, 0, max(n, 0))
	for range n {
		id, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
		if err != nil {
			return nil, err
		}
		number := g.next
		g.next++
		tasks = append(tasks, Task{
			ID:          id,
			Number:      number,
			Name:        "Task " + strconv.Itoa(number),
			Description: "Task " + strconv.Itoa(number) + " Description",
		})
	}
	return tasks, nil
}

// Append returns a new collection holding rows followed by n generated tasks.
// rows itself is not modified, mirroring how a presentation layer rebuilds its
// collection on every update.
func (g *Generator) Append(rows []Task, n int) ([]Task, error) {
	added, err := g.Generate(n)
	if err != nil {
		return nil, err
	}
	out := make([]Task, 0, len(rows)+len(added))
	out = append(out, rows...)
	return append(out, added...), nil
}
