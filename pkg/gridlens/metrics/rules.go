package metrics

import (
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// Aggregation names for a Rule.
const (
	AggregationSum  = "sum"
	AggregationMean = "mean"
)

// Rule declares one named domain metric: the first column whose label
// contains any of the substrings (case-sensitive) supplies the values, and
// the aggregation decides how they collapse to a single number. Rules keep
// the domain vocabulary (capacity, tariff, revenue keywords) out of the
// aggregation engine.
type Rule struct {
	// Label is the metric's display name.
	Label string `yaml:"label"`
	// Substrings are the column-name fragments to match, in order.
	Substrings []string `yaml:"substrings"`
	// Aggregation is "sum" or "mean". Anything else disables the rule.
	Aggregation string `yaml:"aggregation"`
}

// DefaultRules returns the domain metrics of the plant-management workbook:
// installed capacity and generator tariff from the plant sheet, plus the
// revenue and consumption columns of the summary sheets.
func DefaultRules() []Rule {
	return []Rule{
		{Label: "Potência total (MW CA)", Substrings: []string{"Capacidade (MW CA"}, Aggregation: AggregationSum},
		{Label: "Potência total (MWp)", Substrings: []string{"Capacidade (MWp"}, Aggregation: AggregationSum},
		{Label: "Tarifa média gerador (R$/MWh)", Substrings: []string{"Tarifa Gerador"}, Aggregation: AggregationMean},
		{Label: "Receita total (R$)", Substrings: []string{"Receita"}, Aggregation: AggregationSum},
		{Label: "Consumo total (MWh)", Substrings: []string{"Consumo", "Energia"}, Aggregation: AggregationSum},
	}
}

// MatchDomainMetrics evaluates the rules against a table. For each rule the
// first column (in table order) whose label contains any configured
// substring is selected; the column's non-absent numeric values are then
// aggregated. A rule with no matching column, or a matched column with no
// numeric values, contributes nothing.
func MatchDomainMetrics(table models.NormalizedTable, rules []Rule) map[string]float64 {
	result := make(map[string]float64)

	for _, rule := range rules {
		col := matchColumn(table.Columns, rule.Substrings)
		if col < 0 {
			continue
		}
		values := numericColumnValues(table, col)
		if len(values) == 0 {
			continue
		}

		switch rule.Aggregation {
		case AggregationSum:
			v, _ := stats.Sum(values)
			result[rule.Label] = v
		case AggregationMean:
			v, _ := stats.Mean(values)
			result[rule.Label] = v
		}
	}

	return result
}

// matchColumn returns the index of the first column whose label contains any
// of the substrings, or -1.
func matchColumn(columns []string, substrings []string) int {
	for i, label := range columns {
		for _, sub := range substrings {
			if sub != "" && strings.Contains(label, sub) {
				return i
			}
		}
	}
	return -1
}

// numericColumnValues collects the non-absent numeric values of a column.
// Unlike the strict per-column aggregation, textual values are skipped
// rather than disqualifying the column: a domain rule already pinned the
// column by name.
func numericColumnValues(table models.NormalizedTable, col int) []float64 {
	var values []float64
	for _, v := range table.ColumnValues(col) {
		if v.IsNumber() {
			values = append(values, v.Number)
		}
	}
	return values
}
