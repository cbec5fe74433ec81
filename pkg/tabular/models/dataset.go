// Package models defines data structures for loaded tabular data.
package models

// ColumnType is the type inferred for every cell of a column.
type ColumnType string

const (
	// TypeInt columns hold int64 cell values.
	TypeInt ColumnType = "int"
	// TypeFloat columns hold float64 cell values, or nil for missing cells.
	TypeFloat ColumnType = "float"
	// TypeString columns hold the raw cell text.
	TypeString ColumnType = "string"
)

// Column describes one column of a dataset.
type Column struct {
	// Name is the header text (trimmed).
	Name string
	// Type is the inferred cell type.
	Type ColumnType
}

// Row maps column name to cell value.
type Row map[string]interface{}

// Clone returns a shallow copy of the row. Cell values are immutable scalars.
func (r Row) Clone() Row {
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Dataset is an in-memory table loaded from a single source file.
type Dataset struct {
	// Name is the source file name (no path).
	Name string
	// Columns lists the columns in header order.
	Columns []Column
	// Rows holds data rows in file order.
	Rows []Row
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnNames returns column names in header order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}
