package models

import "fmt"

// NoRow marks an undetected row index in a StructureInfo.
const NoRow = -1

// StructureInfo is the per-grid detection result: where the title and header
// rows sit, and the labels found on the header row (positionally, including
// empty ones). Recomputed on demand; never cached across grid changes.
type StructureInfo struct {
	// TitleRow is the index of the first detected title row, or NoRow.
	TitleRow int `json:"title_row"`
	// HeaderRow is the index of the detected header row, or NoRow.
	HeaderRow int `json:"header_row"`
	// DataStartRow is HeaderRow+1 when a header was detected, or NoRow.
	DataStartRow int `json:"data_start_row"`
	// ColumnLabels holds the header row's cell values when a header was
	// detected, in column order, empty cells included.
	ColumnLabels []string `json:"column_labels,omitempty"`
}

// HasHeader reports whether a header row was detected.
func (s StructureInfo) HasHeader() bool {
	return s.HeaderRow != NoRow
}

// HasTitle reports whether a title row was detected.
func (s StructureInfo) HasTitle() bool {
	return s.TitleRow != NoRow
}

// SyntheticLabels returns positional column labels (Col_0, Col_1, ...) for
// grids where no header row could be detected.
func SyntheticLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Col_%d", i)
	}
	return labels
}
