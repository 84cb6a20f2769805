package models

// TableReport is one analyzed table on a sheet: the normalized data plus the
// derived aggregates. Sheets delimited by title rows produce several of
// these, in title order; plain sheets produce exactly one with an empty
// title.
type TableReport struct {
	// Title is the section title owning this table, empty for a plain sheet.
	Title string `json:"title,omitempty"`
	// Table is the normalized table.
	Table NormalizedTable `json:"table"`
	// Stats holds per-numeric-column aggregates (standard and verbose modes).
	Stats MetricSet `json:"stats,omitempty"`
	// DomainMetrics holds named business aggregates resolved by column-name
	// pattern matching (standard and verbose modes).
	DomainMetrics map[string]float64 `json:"domain_metrics,omitempty"`
	// NumericColumns lists the chart-worthy columns: those whose coerced
	// type is numeric.
	NumericColumns []string `json:"numeric_columns,omitempty"`
}

// SheetReport is the analysis result for a single sheet.
type SheetReport struct {
	// Name is the trimmed sheet name.
	Name string `json:"name"`
	// Structure is the detection result for the sheet's raw grid.
	Structure StructureInfo `json:"structure"`
	// Tables holds the analyzed tables in source order.
	Tables []TableReport `json:"tables,omitempty"`
	// Notices lists human-readable degradation notes, e.g. that no header
	// row was detected and synthetic labels are in use. Non-blocking.
	Notices []string `json:"notices,omitempty"`
	// Grid is the raw grid for raw browsing (verbose mode only).
	Grid *RawGrid `json:"grid,omitempty"`
}
