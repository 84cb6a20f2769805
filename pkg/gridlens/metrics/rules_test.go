package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

func plantTable() models.NormalizedTable {
	return models.NormalizedTable{
		Columns: []string{"Usina", "Capacidade (MW CA)", "Capacidade (MWp)", "Tarifa Gerador (R$/MWh)"},
		Rows: []models.Row{
			{models.TextValue("UFV Norte"), models.NumberValue(2.5), models.NumberValue(3), models.NumberValue(300)},
			{models.TextValue("UFV Sul"), models.NumberValue(1.5), models.NumberValue(2), models.NumberValue(340)},
		},
	}
}

func TestMatchDomainMetrics(t *testing.T) {
	got := MatchDomainMetrics(plantTable(), DefaultRules())

	require.Contains(t, got, "Potência total (MW CA)")
	assert.Equal(t, 4.0, got["Potência total (MW CA)"])

	require.Contains(t, got, "Potência total (MWp)")
	assert.Equal(t, 5.0, got["Potência total (MWp)"])

	require.Contains(t, got, "Tarifa média gerador (R$/MWh)")
	assert.Equal(t, 320.0, got["Tarifa média gerador (R$/MWh)"])

	// No revenue or consumption column in this sheet: metrics omitted, not zero.
	assert.NotContains(t, got, "Receita total (R$)")
	assert.NotContains(t, got, "Consumo total (MWh)")
}

func TestMatchDomainMetricsFirstColumnWins(t *testing.T) {
	table := models.NormalizedTable{
		Columns: []string{"Receita 2023", "Receita 2024"},
		Rows: []models.Row{
			{models.NumberValue(100), models.NumberValue(900)},
		},
	}

	got := MatchDomainMetrics(table, []Rule{
		{Label: "Receita", Substrings: []string{"Receita"}, Aggregation: AggregationSum},
	})

	assert.Equal(t, 100.0, got["Receita"], "first matching column in table order wins")
}

func TestMatchDomainMetricsCaseSensitive(t *testing.T) {
	table := models.NormalizedTable{
		Columns: []string{"receita"},
		Rows:    []models.Row{{models.NumberValue(1)}},
	}

	got := MatchDomainMetrics(table, []Rule{
		{Label: "Receita", Substrings: []string{"Receita"}, Aggregation: AggregationSum},
	})

	assert.Empty(t, got)
}

func TestMatchDomainMetricsSkipsTextValues(t *testing.T) {
	table := models.NormalizedTable{
		Columns: []string{"Consumo (MWh)"},
		Rows: []models.Row{
			{models.NumberValue(10)},
			{models.TextValue("sem medição")},
			{models.NumberValue(5)},
		},
	}

	got := MatchDomainMetrics(table, []Rule{
		{Label: "Consumo", Substrings: []string{"Consumo"}, Aggregation: AggregationSum},
	})

	assert.Equal(t, 15.0, got["Consumo"])
}

func TestMatchDomainMetricsUnknownAggregation(t *testing.T) {
	got := MatchDomainMetrics(plantTable(), []Rule{
		{Label: "Capacidade", Substrings: []string{"Capacidade"}, Aggregation: "median"},
	})

	assert.Empty(t, got)
}
