package models

// ColumnStats holds the aggregate record for one numeric column, computed
// over non-absent values only.
type ColumnStats struct {
	Sum   float64 `json:"sum"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// MetricSet maps a column label to its aggregate record. Columns with no
// numeric data are never present. Derived fresh from a table on every
// request; never persisted.
type MetricSet map[string]ColumnStats
