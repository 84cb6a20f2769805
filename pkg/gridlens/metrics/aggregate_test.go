package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

func tableFixture() models.NormalizedTable {
	return models.NormalizedTable{
		Columns: []string{"Usina", "Value", "Vazia"},
		Rows: []models.Row{
			{models.TextValue("UFV Norte"), models.NumberValue(10), models.AbsentValue()},
			{models.TextValue("UFV Sul"), models.NumberValue(20), models.AbsentValue()},
			{models.TextValue("UFV Norte"), models.AbsentValue(), models.AbsentValue()},
		},
	}
}

func TestAggregate(t *testing.T) {
	set := Aggregate(tableFixture())

	require.Contains(t, set, "Value")
	got := set["Value"]

	// Absent cells excluded from every aggregate, including count.
	assert.Equal(t, 30.0, got.Sum)
	assert.Equal(t, 15.0, got.Mean)
	assert.Equal(t, 10.0, got.Min)
	assert.Equal(t, 20.0, got.Max)
	assert.Equal(t, 2, got.Count)
}

func TestAggregateOmitsNonNumericColumns(t *testing.T) {
	set := Aggregate(tableFixture())

	assert.NotContains(t, set, "Usina", "textual column must be omitted")
	assert.NotContains(t, set, "Vazia", "all-absent column must be omitted")
}

func TestAggregateMixedColumnOmitted(t *testing.T) {
	table := models.NormalizedTable{
		Columns: []string{"Misto"},
		Rows: []models.Row{
			{models.NumberValue(1)},
			{models.TextValue("n/a")},
		},
	}

	assert.Empty(t, Aggregate(table))
}

func TestAggregateDuplicateLabelFirstWins(t *testing.T) {
	table := models.NormalizedTable{
		Columns: []string{"Valor", "Valor"},
		Rows: []models.Row{
			{models.NumberValue(1), models.NumberValue(100)},
			{models.NumberValue(3), models.NumberValue(300)},
		},
	}

	set := Aggregate(table)
	require.Contains(t, set, "Valor")
	assert.Equal(t, 4.0, set["Valor"].Sum)
}

func TestAggregateEmptyTable(t *testing.T) {
	assert.Empty(t, Aggregate(models.NormalizedTable{}))
}

func TestNumericColumns(t *testing.T) {
	cols := NumericColumns(tableFixture())
	assert.Equal(t, []string{"Value"}, cols)
}

func TestUniqueCount(t *testing.T) {
	table := tableFixture()

	assert.Equal(t, 2, UniqueCount(table, "Usina"))
	// No matching column falls back to row count.
	assert.Equal(t, 3, UniqueCount(table, "Cliente"))
}
