package parser

import (
	"strings"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// Normalize turns a raw grid and a header row position into a typed table:
//   - headerRow is clamped into [0, rowCount-1], never an error;
//   - header cell values become column labels, columns whose trimmed label
//     is empty are dropped along with their data;
//   - rows strictly after the header are data rows, a row surviving only as
//     absent cells is dropped;
//   - cell values are coerced (numeric-looking text becomes numeric, blank
//     becomes absent, everything else stays text).
//
// Duplicate non-empty labels are preserved as-is; access disambiguates by
// position, not label uniqueness.
func Normalize(grid models.RawGrid, headerRow int) models.NormalizedTable {
	if grid.RowCount() == 0 {
		return models.NormalizedTable{}
	}

	if headerRow < 0 {
		headerRow = 0
	}
	if headerRow > grid.RowCount()-1 {
		headerRow = grid.RowCount() - 1
	}

	labels, keep := survivingColumns(grid.Row(headerRow))
	return buildTable(grid, headerRow+1, grid.RowCount(), labels, keep)
}

// NormalizeSynthetic treats the whole grid as data under synthetic Col_i
// labels. This is the degraded path for grids where no header row could be
// detected: every column survives, blank rows are still dropped, and values
// are coerced as usual.
func NormalizeSynthetic(grid models.RawGrid) models.NormalizedTable {
	if grid.RowCount() == 0 {
		return models.NormalizedTable{}
	}

	labels := models.SyntheticLabels(grid.ColumnCount())
	keep := make([]int, len(labels))
	for i := range keep {
		keep[i] = i
	}
	return buildTable(grid, 0, grid.RowCount(), labels, keep)
}

// survivingColumns maps a header row to the labels that survive the
// empty-label drop, returning the trimmed labels and the source column index
// of each.
func survivingColumns(header []string) (labels []string, keep []int) {
	for col, cell := range header {
		label := strings.TrimSpace(cell)
		if label == "" {
			continue
		}
		labels = append(labels, label)
		keep = append(keep, col)
	}
	return labels, keep
}

// buildTable coerces the rows in [start, end) down to the kept columns,
// dropping rows that are absent across all of them.
func buildTable(grid models.RawGrid, start, end int, labels []string, keep []int) models.NormalizedTable {
	table := models.NormalizedTable{Columns: labels}

	for r := start; r < end; r++ {
		if row, ok := coerceRow(grid, r, keep); ok {
			table.Rows = append(table.Rows, row)
		}
	}

	return table
}

// coerceRow coerces one grid row down to the kept columns. ok is false when
// every surviving cell is absent, which drops the row.
func coerceRow(grid models.RawGrid, r int, keep []int) (models.Row, bool) {
	row := make(models.Row, len(keep))
	empty := true
	for i, col := range keep {
		row[i] = models.ParseValue(grid.Cell(r, col))
		if !row[i].IsAbsent() {
			empty = false
		}
	}
	return row, !empty
}
