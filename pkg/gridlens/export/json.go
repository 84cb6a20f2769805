// Package export serializes analysis results to JSON and delimited text.
package export

import (
	"encoding/json"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// ToJSON serializes a workbook report to JSON.
func ToJSON(report *models.WorkbookReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// SheetToJSON serializes a single sheet report to JSON.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}
