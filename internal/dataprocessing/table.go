package dataprocessing

import (
	"slices"

	"vitalscli/pkg/contracts/domain"
)

// Cell is one table value. Missing cells carry no value.
type Cell struct {
	Value   any
	Missing bool
}

// Present wraps a known value
func Present(v any) Cell {
	return Cell{Value: v}
}

// Absent is the missing cell
func Absent() Cell {
	return Cell{Missing: true}
}

// Float returns the cell as a float64 when it holds a present number
func (c Cell) Float() (float64, bool) {
	if c.Missing {
		return 0, false
	}
	switch v := c.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Table is an ordered set of named columns and rows of cells.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// Len returns the number of rows
func (t Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of column, or -1
func (t Table) Index(column string) int {
	return slices.Index(t.Columns, column)
}

// HasColumn reports whether the header contains column
func (t Table) HasColumn(column string) bool {
	return t.Index(column) >= 0
}

// Clone returns a deep copy of the header and rows
func (t Table) Clone() Table {
	rows := make([][]Cell, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = slices.Clone(row)
	}
	return Table{
		Columns: slices.Clone(t.Columns),
		Rows:    rows,
	}
}

// Column returns the cells of column in row order
func (t Table) Column(column string) []Cell {
	idx := t.Index(column)
	if idx < 0 {
		return nil
	}
	cells := make([]Cell, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = row[idx]
	}
	return cells
}

// Records converts every row to a column-ordered record.
// Missing cells become nil so they serialize as null.
func (t Table) Records() []domain.Record {
	records := make([]domain.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		values := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			if row[i].Missing {
				values[col] = nil
				continue
			}
			values[col] = row[i].Value
		}
		records = append(records, domain.Record{
			Columns: t.Columns,
			Values:  values,
		})
	}
	return records
}

// TableFromReadings builds a two-column readings table
func TableFromReadings(readings []domain.Reading) Table {
	t := Table{
		Columns: []string{domain.ColumnHeartRate, domain.ColumnOxygenLevel},
		Rows:    make([][]Cell, 0, len(readings)),
	}
	for _, r := range readings {
		t.Rows = append(t.Rows, []Cell{floatCell(r.HeartRate), floatCell(r.OxygenLevel)})
	}
	return t
}

func floatCell(v *float64) Cell {
	if v == nil {
		return Absent()
	}
	return Present(*v)
}
