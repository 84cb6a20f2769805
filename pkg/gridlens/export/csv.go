package export

import (
	"encoding/csv"
	"io"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// TableToCSV writes a normalized table as comma-separated UTF-8 text: one
// header row holding the column labels, then the data rows with numbers in
// minimal decimal notation and absent cells empty. A pure transform with no
// other dependency on the analysis pipeline.
func TableToCSV(w io.Writer, table models.NormalizedTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := make([]string, len(table.Columns))
		for i := range table.Columns {
			if i < len(row) {
				record[i] = row[i].String()
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// GridToCSV writes a raw grid as comma-separated UTF-8 text, cells verbatim.
func GridToCSV(w io.Writer, grid models.RawGrid) error {
	writer := csv.NewWriter(w)
	for row := 0; row < grid.RowCount(); row++ {
		if err := writer.Write(grid.Row(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
