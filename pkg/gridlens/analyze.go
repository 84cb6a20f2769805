package gridlens

import (
	"fmt"

	"github.com/gridlens/gridlens-go/pkg/gridlens/metrics"
	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
	"github.com/gridlens/gridlens-go/pkg/gridlens/parser"
)

// Analyze runs structure inference over every sheet of a loaded workbook.
//
// Per sheet: detect structure, then try the multi-table split; when at least
// one title-delimited sub-table exists the sheet is reported as a sequence
// of titled tables, otherwise it is normalized as a single table under the
// detected (or overridden) header row. A sheet with no detectable header
// degrades to synthetic column labels and records a notice, unless
// opts.Strict is set, in which case Analyze fails with a wrapped
// ErrStructureUnresolved.
//
// Analysis is a pure recomputation: the input workbook is never mutated and
// the report holds no references into it besides the immutable grids.
func Analyze(wb *models.WorkbookData, opts Options) (*models.WorkbookReport, error) {
	report := &models.WorkbookReport{
		BookName:   wb.BookName,
		SheetNames: append([]string(nil), wb.SheetNames...),
		Sheets:     make(map[string]models.SheetReport, len(wb.Grids)),
	}

	for _, name := range wb.SheetNames {
		grid, ok := wb.Grid(name)
		if !ok {
			continue
		}
		sheet, err := AnalyzeSheet(name, grid, opts)
		if err != nil {
			return nil, err
		}
		report.Sheets[name] = sheet
	}

	return report, nil
}

// AnalyzeSheet runs structure inference over a single raw grid.
func AnalyzeSheet(name string, grid models.RawGrid, opts Options) (models.SheetReport, error) {
	sheet := models.SheetReport{
		Name:      name,
		Structure: parser.DetectStructure(grid, opts.Detection),
	}

	if opts.Mode == ModeVerbose {
		g := grid
		sheet.Grid = &g
	}
	if opts.Mode == ModeLight {
		return sheet, nil
	}

	// A pinned header row beats every heuristic, including the splitter.
	if headerRow, pinned := opts.HeaderOverrides[name]; pinned {
		sheet.Tables = append(sheet.Tables, buildTableReport("", parser.Normalize(grid, headerRow), opts))
		return sheet, nil
	}

	if subs := parser.SplitByTitles(grid, opts.Detection); len(subs) > 0 {
		for _, sub := range subs {
			sheet.Tables = append(sheet.Tables, buildTableReport(sub.Title, sub.Table, opts))
		}
		return sheet, nil
	}

	switch {
	case sheet.Structure.HasHeader():
		sheet.Tables = append(sheet.Tables, buildTableReport("", parser.Normalize(grid, sheet.Structure.HeaderRow), opts))
	default:
		if opts.Strict {
			return models.SheetReport{}, NewAnalysisError(name, "detect", ErrStructureUnresolved)
		}
		sheet.Notices = append(sheet.Notices,
			fmt.Sprintf("no header row detected in sheet %q, showing data under synthetic column labels", name))
		sheet.Tables = append(sheet.Tables, buildTableReport("", parser.NormalizeSynthetic(grid), opts))
	}

	return sheet, nil
}

// SheetGrid looks up a sheet's raw grid by trimmed name, failing with
// ErrSheetNotFound so callers can report the missing sheet instead of
// rendering a blank view.
func SheetGrid(wb *models.WorkbookData, name string) (models.RawGrid, error) {
	grid, ok := wb.Grid(name)
	if !ok {
		return models.RawGrid{}, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, name, wb.BookName)
	}
	return grid, nil
}

// buildTableReport attaches the derived aggregates to a normalized table.
func buildTableReport(title string, table models.NormalizedTable, opts Options) models.TableReport {
	return models.TableReport{
		Title:          title,
		Table:          table,
		Stats:          metrics.Aggregate(table),
		DomainMetrics:  metrics.MatchDomainMetrics(table, opts.rules()),
		NumericColumns: metrics.NumericColumns(table),
	}
}
