package models

import "strings"

// RawGrid is an unprocessed rows-by-columns block of cell text with no
// assumed schema. An empty string is an absent cell. The grid is rectangular:
// every row has the same column count.
type RawGrid struct {
	// Cells holds the grid content, row-major.
	Cells [][]string `json:"cells"`
}

// NewRawGrid builds a rectangular grid from possibly ragged rows. Short rows
// are padded with empty cells; the input rows are copied, not aliased.
func NewRawGrid(rows [][]string) RawGrid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		cells[i] = padded
	}
	return RawGrid{Cells: cells}
}

// RowCount returns the number of rows in the grid.
func (g RawGrid) RowCount() int {
	return len(g.Cells)
}

// ColumnCount returns the number of columns in the grid.
func (g RawGrid) ColumnCount() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Cell returns the cell text at (row, col), or "" when out of range.
func (g RawGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Cells) {
		return ""
	}
	if col < 0 || col >= len(g.Cells[row]) {
		return ""
	}
	return g.Cells[row][col]
}

// Row returns the cells of a single row, or nil when out of range.
func (g RawGrid) Row(row int) []string {
	if row < 0 || row >= len(g.Cells) {
		return nil
	}
	return g.Cells[row]
}

// RowIsBlank reports whether every cell of a row is empty after trimming.
func (g RawGrid) RowIsBlank(row int) bool {
	for _, cell := range g.Row(row) {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
