// Package metrics derives aggregates and named domain metrics from
// normalized tables.
package metrics

import (
	"github.com/montanaflynn/stats"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// Aggregate computes per-column sum/mean/min/max/count for every column
// whose non-absent values are all numeric and which has at least one
// non-absent value. Absent cells are excluded from all five aggregates, not
// coerced to zero. Columns with no numeric data, or with any textual value,
// are omitted entirely, so the result never carries NaN or undefined
// entries. When a label repeats, the first column with that label wins.
func Aggregate(table models.NormalizedTable) models.MetricSet {
	set := models.MetricSet{}

	for col, label := range table.Columns {
		if _, seen := set[label]; seen {
			continue
		}
		values, ok := numericValues(table, col)
		if !ok || len(values) == 0 {
			continue
		}

		// stats errors only fire on empty input, which is excluded above.
		sum, _ := stats.Sum(values)
		mean, _ := stats.Mean(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)

		set[label] = models.ColumnStats{
			Sum:   sum,
			Mean:  mean,
			Min:   min,
			Max:   max,
			Count: len(values),
		}
	}

	return set
}

// NumericColumns lists the chart-worthy columns of a table: those whose
// non-absent values are all numeric, with at least one value. Order follows
// table column order.
func NumericColumns(table models.NormalizedTable) []string {
	var cols []string
	for col, label := range table.Columns {
		if values, ok := numericValues(table, col); ok && len(values) > 0 {
			cols = append(cols, label)
		}
	}
	return cols
}

// UniqueCount counts the distinct non-absent values of the first column with
// the given label, or the table's row count when no column matches. Mirrors
// the summary-card behaviour of counting plants by name and falling back to
// row count.
func UniqueCount(table models.NormalizedTable, label string) int {
	col := table.ColumnIndex(label)
	if col < 0 {
		return len(table.Rows)
	}

	seen := make(map[models.Value]struct{})
	for _, v := range table.ColumnValues(col) {
		if !v.IsAbsent() {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// numericValues collects the non-absent values of a column as floats.
// ok is false when the column holds any textual value.
func numericValues(table models.NormalizedTable, col int) ([]float64, bool) {
	var values []float64
	for _, v := range table.ColumnValues(col) {
		switch v.Kind {
		case models.KindAbsent:
			continue
		case models.KindNumber:
			values = append(values, v.Number)
		default:
			return nil, false
		}
	}
	return values, true
}
