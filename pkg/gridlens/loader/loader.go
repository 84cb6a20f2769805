// Package loader reads workbook sources into raw, header-less grids.
package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gridlens/gridlens-go/pkg/gridlens"
	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// Load reads a source file into per-sheet raw grids with no header
// interpretation: row 0 of every grid is the first physical row of the
// sheet. Sheet names are trimmed and used as lookup keys; when two names
// collide after trimming the later sheet wins.
//
// xlsx sources are read sheet by sheet; a .csv source becomes a single
// sheet named after the file. A missing file fails with ErrSourceNotFound,
// unparsable content with ErrSourceFormat.
func Load(path string) (*models.WorkbookData, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(path, 0)
	}
	return LoadXLSX(path)
}

// LoadXLSX reads every sheet of an xlsx workbook into a raw grid.
func LoadXLSX(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", gridlens.ErrSourceNotFound, path)
	}

	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gridlens.ErrSourceFormat, path, err)
	}
	defer f.Close()

	wb := &models.WorkbookData{
		BookName: filepath.Base(path),
		Grids:    make(map[string]models.RawGrid),
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			// Keep the sheet with an empty grid rather than failing the
			// whole workbook over one unreadable sheet.
			slog.Warn("failed to read sheet, keeping it empty",
				slog.String("book", wb.BookName), slog.String("sheet", sheetName), slog.Any("error", err))
			rows = nil
		}

		name := strings.TrimSpace(sheetName)
		if _, exists := wb.Grids[name]; !exists {
			wb.SheetNames = append(wb.SheetNames, name)
		}
		wb.Grids[name] = models.NewRawGrid(rows)
	}

	slog.Debug("workbook loaded",
		slog.String("book", wb.BookName),
		slog.Int("sheets", len(wb.SheetNames)),
		slog.Duration("elapsed", time.Since(start)))

	return wb, nil
}
