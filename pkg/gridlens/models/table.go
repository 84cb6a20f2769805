package models

// Row is one data row of a normalized table, aligned positionally with the
// table's column labels.
type Row []Value

// NormalizedTable is a typed table: non-empty column labels (not necessarily
// unique) and data rows in source order. Tables are treated as immutable;
// edits produce a new table via WithEdits.
type NormalizedTable struct {
	// Columns holds the column labels in order. Labels are non-empty after
	// trimming but may repeat; access by label resolves to the first match.
	Columns []string `json:"columns"`
	// Rows holds the data rows in source order.
	Rows []Row `json:"rows"`
}

// TitledSubTable pairs a section title with the normalized table found
// beneath it.
type TitledSubTable struct {
	// Title is the trimmed text of the title row delimiting the sub-table.
	Title string `json:"title"`
	// Table is the normalized table extracted from the title's span.
	Table NormalizedTable `json:"table"`
}

// CellEdit describes a single cell change against a normalized table.
// Column is a positional index so duplicate labels stay addressable.
type CellEdit struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Value  string `json:"value"`
}

// ColumnIndex returns the index of the first column with the given label,
// or -1 when no column matches.
func (t NormalizedTable) ColumnIndex(label string) int {
	for i, c := range t.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// ColumnValues returns the values of the column at the given index in row
// order. Rows shorter than the index contribute an absent value.
func (t NormalizedTable) ColumnValues(col int) []Value {
	values := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		if col >= 0 && col < len(row) {
			values[i] = row[col]
		}
	}
	return values
}

// Clone returns a deep copy of the table.
func (t NormalizedTable) Clone() NormalizedTable {
	out := NormalizedTable{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append(Row(nil), row...)
	}
	return out
}

// WithEdits returns a new table with the given edits applied. Edit values go
// through the same coercion as normalization, so a numeric-looking edit
// becomes a number and a blank edit becomes an absent cell. Edits outside the
// table bounds are ignored. The receiver is left untouched.
func (t NormalizedTable) WithEdits(edits []CellEdit) NormalizedTable {
	out := t.Clone()
	for _, e := range edits {
		if e.Row < 0 || e.Row >= len(out.Rows) {
			continue
		}
		if e.Column < 0 || e.Column >= len(out.Columns) || e.Column >= len(out.Rows[e.Row]) {
			continue
		}
		out.Rows[e.Row][e.Column] = ParseValue(e.Value)
	}
	return out
}

// ToGrid renders the table back into a raw grid: one header row holding the
// column labels followed by the data rows, values formatted as they would be
// in a delimited export. Normalizing the result with header row 0 reproduces
// the same table.
func (t NormalizedTable) ToGrid() RawGrid {
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				cells[i] = row[i].String()
			}
		}
		rows = append(rows, cells)
	}
	return NewRawGrid(rows)
}
