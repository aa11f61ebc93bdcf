package grid

// Row is any value with a stable identity.
// Identity must stay constant for the logical lifetime of the row and be unique
// within a single supplied collection.
type Row interface {
	Identity() string
}

// ColumnLayout is the display metadata of a column.
// Width is advisory: the engine sums it for fixed-width consumers but never enforces it.
type ColumnLayout struct {
	Label    string `json:"label"    yaml:"label"`
	Width    int    `json:"width"    yaml:"width"`
	Editable bool   `json:"editable" yaml:"editable"`
	Sortable bool   `json:"sortable" yaml:"sortable"`
}

// Column extracts display values from rows of type R.
// Value must be side-effect free and must not panic for any row it is paired with;
// when no value can be computed it returns an empty string or a placeholder.
type Column[R Row] interface {
	Value(row R) string
	Layout() ColumnLayout
}

// Layouts calls Layout once per column.
func Layouts[R Row](columns []Column[R]) []ColumnLayout {
	layouts := make([]ColumnLayout, len(columns))
	for i, col := range columns {
		layouts[i] = col.Layout()
	}
	return layouts
}

// TotalWidth sums the advisory widths of layouts.
func TotalWidth(layouts []ColumnLayout) int {
	total := 0
	for _, l := range layouts {
		total += l.Width
	}
	return total
}

// Cells returns the display value of row for each column, in column order.
func Cells[R Row](row R, columns []Column[R]) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = col.Value(row)
	}
	return cells
}
