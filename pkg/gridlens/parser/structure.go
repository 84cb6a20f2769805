// Package parser infers table structure from raw, header-less grids.
package parser

import (
	"strings"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// DetectionParams holds the thresholds for title and header detection. The
// defaults are tuned to the observed management spreadsheets; they are
// parameters rather than constants so unseen layouts can be accommodated.
type DetectionParams struct {
	// MinHeaderCells is the minimum number of non-empty cells for a row to
	// qualify as a header row.
	MinHeaderCells int
	// TitleBlankSpan is how many cells after the first must be empty for a
	// row to qualify as a title row.
	TitleBlankSpan int
	// MinTitleLen is the minimum trimmed length (exclusive) of the first
	// cell for a row to act as a sub-table boundary in SplitByTitles. The
	// single-table title heuristic does not use it.
	MinTitleLen int
}

// DefaultDetectionParams returns the documented default thresholds.
func DefaultDetectionParams() DetectionParams {
	return DetectionParams{
		MinHeaderCells: 3,
		TitleBlankSpan: 4,
		MinTitleLen:    10,
	}
}

// normalized fills zero fields with defaults so a zero-valued params struct
// behaves like DefaultDetectionParams.
func (p DetectionParams) normalized() DetectionParams {
	def := DefaultDetectionParams()
	if p.MinHeaderCells <= 0 {
		p.MinHeaderCells = def.MinHeaderCells
	}
	if p.TitleBlankSpan <= 0 {
		p.TitleBlankSpan = def.TitleBlankSpan
	}
	if p.MinTitleLen <= 0 {
		p.MinTitleLen = def.MinTitleLen
	}
	return p
}

// DetectStructure locates the candidate title row, header row, and data
// region of a raw grid using positional and density heuristics. It is a pure
// function of the grid: no mutation, no randomness.
//
// A row is a title candidate when its first cell is non-empty and the next
// TitleBlankSpan cells are all empty; the first candidate wins. The header
// row is the first row with at least MinHeaderCells non-empty cells,
// scanning top to bottom independently of the title heuristic. When no row
// qualifies, HeaderRow and DataStartRow stay unset and callers fall back to
// synthetic column labels.
func DetectStructure(grid models.RawGrid, params DetectionParams) models.StructureInfo {
	params = params.normalized()

	info := models.StructureInfo{
		TitleRow:     models.NoRow,
		HeaderRow:    models.NoRow,
		DataStartRow: models.NoRow,
	}

	for row := 0; row < grid.RowCount(); row++ {
		if info.TitleRow == models.NoRow && isTitleShaped(grid, row, params.TitleBlankSpan) {
			info.TitleRow = row
		}
		if info.HeaderRow == models.NoRow && countNonBlank(grid.Row(row)) >= params.MinHeaderCells {
			info.HeaderRow = row
			info.DataStartRow = row + 1
			info.ColumnLabels = append([]string(nil), grid.Row(row)...)
		}
		if info.TitleRow != models.NoRow && info.HeaderRow != models.NoRow {
			break
		}
	}

	return info
}

// isTitleShaped reports whether a row has the title layout: non-empty first
// cell followed by blankSpan empty cells.
func isTitleShaped(grid models.RawGrid, row, blankSpan int) bool {
	if strings.TrimSpace(grid.Cell(row, 0)) == "" {
		return false
	}
	for col := 1; col <= blankSpan; col++ {
		if strings.TrimSpace(grid.Cell(row, col)) != "" {
			return false
		}
	}
	return true
}

// countNonBlank counts the cells of a row that are non-empty after trimming.
func countNonBlank(cells []string) int {
	count := 0
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			count++
		}
	}
	return count
}
