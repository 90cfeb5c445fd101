package google

import (
	"testing"

	"vypiska/internal/core"
)

func TestParseValues(t *testing.T) {
	values := [][]interface{}{
		{"Дата операции", "Сумма операции", "Категория"},
		{"31.07.2020 08:25:19", "-250.5", "Transport"},
		{"01.08.2020 10:00:00", "n/a", ""},
	}
	got := parseValues(values)
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if got[0].Amount != core.Num(-250.5) || got[0].Category != "Transport" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].Amount.Valid {
		t.Fatalf("non-numeric amount must be invalid: %+v", got[1])
	}
}

func TestParseValuesEmpty(t *testing.T) {
	if got := parseValues(nil); got != nil {
		t.Fatalf("expected nil for empty matrix, got %+v", got)
	}
	if got := parseValues([][]interface{}{{"Сумма операции"}}); len(got) != 0 {
		t.Fatalf("header-only matrix must yield no transactions, got %+v", got)
	}
}
