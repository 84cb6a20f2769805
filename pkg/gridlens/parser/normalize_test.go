package parser

import (
	"reflect"
	"testing"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

func TestNormalize(t *testing.T) {
	grid := models.NewRawGrid([][]string{
		{"Usina", "Capacidade (MW CA)", "", "Status"},
		{"UFV Norte", "2.5", "ignorado", "Ativa"},
		{"", "", "", ""},
		{"UFV Sul", "", "", "Em obra"},
	})

	table := Normalize(grid, 0)

	wantColumns := []string{"Usina", "Capacidade (MW CA)", "Status"}
	if !reflect.DeepEqual(table.Columns, wantColumns) {
		t.Errorf("Expected columns %v, got %v", wantColumns, table.Columns)
	}

	// The blank row is gone; the unlabeled column's data went with it.
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	wantFirst := models.Row{
		models.TextValue("UFV Norte"),
		models.NumberValue(2.5),
		models.TextValue("Ativa"),
	}
	if !reflect.DeepEqual(table.Rows[0], wantFirst) {
		t.Errorf("Expected first row %v, got %v", wantFirst, table.Rows[0])
	}

	// Absent stays absent, not zero.
	if !table.Rows[1][1].IsAbsent() {
		t.Errorf("Expected absent capacity in second row, got %v", table.Rows[1][1])
	}
}

func TestNormalizeClampsHeaderRow(t *testing.T) {
	grid := models.NewRawGrid([][]string{
		{"a", "b"},
		{"x", "1"},
	})

	// Beyond the grid: clamps to the last row, never panics.
	table := Normalize(grid, 99)
	wantColumns := []string{"x", "1"}
	if !reflect.DeepEqual(table.Columns, wantColumns) {
		t.Errorf("Expected columns %v, got %v", wantColumns, table.Columns)
	}
	if len(table.Rows) != 0 {
		t.Errorf("Expected no data rows, got %d", len(table.Rows))
	}

	// Below zero: clamps to the first row.
	table = Normalize(grid, -5)
	wantColumns = []string{"a", "b"}
	if !reflect.DeepEqual(table.Columns, wantColumns) {
		t.Errorf("Expected columns %v, got %v", wantColumns, table.Columns)
	}
}

func TestNormalizeEmptyGrid(t *testing.T) {
	table := Normalize(models.RawGrid{}, 0)
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("Expected empty table, got %+v", table)
	}
}

func TestNormalizeKeepsDuplicateLabels(t *testing.T) {
	grid := models.NewRawGrid([][]string{
		{"Valor", "Valor", "Nome"},
		{"1", "2", "x"},
	})

	table := Normalize(grid, 0)

	wantColumns := []string{"Valor", "Valor", "Nome"}
	if !reflect.DeepEqual(table.Columns, wantColumns) {
		t.Errorf("Expected columns %v, got %v", wantColumns, table.Columns)
	}
	// Label access resolves to the first match; positions stay addressable.
	if idx := table.ColumnIndex("Valor"); idx != 0 {
		t.Errorf("Expected first Valor at index 0, got %d", idx)
	}
}

func TestNormalizeCoercion(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.NumberValue(123)},
		{"123.45", models.NumberValue(123.45)},
		{"-100", models.NumberValue(-100)},
		{"1,5", models.NumberValue(1.5)},
		{" 2.5 ", models.NumberValue(2.5)},
		{"hello", models.TextValue("hello")},
		{"", models.AbsentValue()},
		{"   ", models.AbsentValue()},
	}

	for _, tt := range tests {
		result := models.ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	grid := models.NewRawGrid([][]string{
		{"nota", "", "", "", ""},
		{"Usina", "Capacidade (MW CA)", "Receita", ""},
		{"UFV Norte", "2.5", "1200", ""},
		{"UFV Sul", "1,25", "", ""},
	})

	once := Normalize(grid, 1)
	twice := Normalize(once.ToGrid(), 0)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Re-normalizing a normalized table changed it:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeSynthetic(t *testing.T) {
	grid := models.NewRawGrid([][]string{
		{"Distribuidora", "10", ""},
		{"", "", ""},
		{"Outra", "20", "x"},
	})

	table := NormalizeSynthetic(grid)

	wantColumns := []string{"Col_0", "Col_1", "Col_2"}
	if !reflect.DeepEqual(table.Columns, wantColumns) {
		t.Errorf("Expected columns %v, got %v", wantColumns, table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows (blank row dropped), got %d", len(table.Rows))
	}
	if table.Rows[0][1] != models.NumberValue(10) {
		t.Errorf("Expected 10 at (0,1), got %v", table.Rows[0][1])
	}
}
