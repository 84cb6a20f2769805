package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// SplitByTitles decomposes a grid holding several title-delimited sub-tables
// stacked vertically into ordered (title, table) pairs.
//
// A row is a sub-table boundary when its trimmed first cell is non-empty and
// longer than MinTitleLen, and the next TitleBlankSpan cells are empty —
// unlike DetectStructure's single-shot title heuristic, every matching row
// fires. Titles partition the grid into contiguous, non-overlapping spans
// running from just below each title to just above the next (or end of
// grid). Within a span, blank rows are dropped, the first surviving row is
// the header, and the remainder is normalized under the usual column- and
// row-drop rules.
//
// A span with no surviving rows yields no sub-table. A grid with no title
// matches yields an empty slice, not an error: the caller shows the raw grid
// instead. Result order mirrors title order in the grid and is load-bearing
// for rendering.
func SplitByTitles(grid models.RawGrid, params DetectionParams) []models.TitledSubTable {
	params = params.normalized()

	var titleRows []int
	for row := 0; row < grid.RowCount(); row++ {
		if isSplitTitle(grid, row, params) {
			titleRows = append(titleRows, row)
		}
	}
	if len(titleRows) == 0 {
		return nil
	}

	var result []models.TitledSubTable
	for i, titleRow := range titleRows {
		spanEnd := grid.RowCount()
		if i+1 < len(titleRows) {
			spanEnd = titleRows[i+1]
		}

		table, ok := normalizeSpan(grid, titleRow+1, spanEnd)
		if !ok {
			continue
		}
		result = append(result, models.TitledSubTable{
			Title: strings.TrimSpace(grid.Cell(titleRow, 0)),
			Table: table,
		})
	}
	return result
}

// isSplitTitle applies the multi-table boundary heuristic: title shape plus
// a minimum title length, so short labels inside data blocks do not split
// the grid.
func isSplitTitle(grid models.RawGrid, row int, params DetectionParams) bool {
	title := strings.TrimSpace(grid.Cell(row, 0))
	if utf8.RuneCountInString(title) <= params.MinTitleLen {
		return false
	}
	return isTitleShaped(grid, row, params.TitleBlankSpan)
}

// normalizeSpan normalizes the rows in [start, end): blank rows dropped,
// first surviving row as header, remainder as data. ok is false when the
// span has no surviving rows at all.
func normalizeSpan(grid models.RawGrid, start, end int) (models.NormalizedTable, bool) {
	var surviving []int
	for r := start; r < end; r++ {
		if !grid.RowIsBlank(r) {
			surviving = append(surviving, r)
		}
	}
	if len(surviving) == 0 {
		return models.NormalizedTable{}, false
	}

	labels, keep := survivingColumns(grid.Row(surviving[0]))

	table := models.NormalizedTable{Columns: labels}
	for _, r := range surviving[1:] {
		if row, ok := coerceRow(grid, r, keep); ok {
			table.Rows = append(table.Rows, row)
		}
	}
	return table, true
}
