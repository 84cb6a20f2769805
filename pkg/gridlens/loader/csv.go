package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridlens/gridlens-go/pkg/gridlens"
	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// LoadCSV reads one delimited text file as a single-sheet workbook. The
// sheet is named after the file (extension stripped, trimmed), and the
// first skipRows physical rows are discarded, for sources that ship with a
// fixed preamble. Parsing tries a comma delimiter first and retries exactly
// once with a semicolon before failing with ErrSourceFormat.
func LoadCSV(path string, skipRows int) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", gridlens.ErrSourceNotFound, path)
	}

	rows, err := readDelimited(path, ',')
	if err != nil {
		slog.Debug("comma-delimited parse failed, retrying with semicolon",
			slog.String("path", path), slog.Any("error", err))
		rows, err = readDelimited(path, ';')
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gridlens.ErrSourceFormat, path, err)
	}

	if skipRows > 0 {
		if skipRows > len(rows) {
			skipRows = len(rows)
		}
		rows = rows[skipRows:]
	}

	base := filepath.Base(path)
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))

	return &models.WorkbookData{
		BookName:   base,
		SheetNames: []string{name},
		Grids:      map[string]models.RawGrid{name: models.NewRawGrid(rows)},
	}, nil
}

// readDelimited parses the whole file with the given delimiter. Rows may
// have ragged lengths; the grid constructor pads them.
func readDelimited(path string, delimiter rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
