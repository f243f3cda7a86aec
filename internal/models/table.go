package models

// Row holds one record of an export keyed by column name.
// A missing key means the cell was absent from the source; reads treat
// absent cells as empty strings.
type Row map[string]string

// Get returns the cell value for the given column, or "" when the cell
// is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// Table is an ordered set of columns plus the rows that carry them.
// Column order drives serialization and display; individual rows may
// omit cells.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		Rows:    []Row{},
	}
}

// HasColumn reports whether the table carries a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the table's column order if it is not
// already present. Existing rows are left untouched; their cells for the
// new column read as empty until written.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
}

// RemoveColumn drops a column from the table's column order and deletes
// its cells from every row. Removing an absent column is a no-op.
func (t *Table) RemoveColumn(name string) {
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if c != name {
			kept = append(kept, c)
		}
	}
	t.Columns = kept
	for _, row := range t.Rows {
		delete(row, name)
	}
}

// AppendRow adds a row to the end of the table.
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// Clone returns a deep copy of the table. Mutating the copy's rows or
// column order leaves the original untouched.
func (t *Table) Clone() *Table {
	clone := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		clone.Rows = append(clone.Rows, row.Clone())
	}
	return clone
}

// Reorder rearranges the table's columns to follow the preferred order.
// See ReorderColumns for the ordering rules.
func (t *Table) Reorder(preferred []string) {
	t.Columns = ReorderColumns(t.Columns, preferred)
}

// ReorderColumns returns the column list rearranged so that columns named
// in preferred come first, in preferred's order, skipping preferred names
// the list does not contain. Columns not named in preferred follow, keeping
// their original relative order. The input slice is not modified.
func ReorderColumns(columns []string, preferred []string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	ordered := make([]string, 0, len(columns))
	chosen := make(map[string]bool, len(preferred))
	for _, p := range preferred {
		if present[p] && !chosen[p] {
			ordered = append(ordered, p)
			chosen[p] = true
		}
	}
	for _, c := range columns {
		if !chosen[c] {
			ordered = append(ordered, c)
			chosen[c] = true
		}
	}
	return ordered
}
