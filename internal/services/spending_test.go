package services

import (
	"testing"

	"vypiska/internal/core"
)

func opAt(ts, category string) core.Transaction {
	return core.Transaction{OperationDate: ts, Category: category}
}

func TestSpendingByCategoryWindowBounds(t *testing.T) {
	ops := []core.Transaction{
		opAt("01.01.2020 00:00:00", "Groceries"), // exactly at start: excluded
		opAt("01.01.2020 00:00:01", "Groceries"), // just after start: included
		opAt("15.02.2020 10:00:00", "Groceries"),
		opAt("01.04.2020 12:00:00", "Groceries"), // after end
	}
	// Reference date 2020-04-01 parses to midnight, so the window is
	// (2020-01-01 00:00:00, 2020-04-01 00:00:00].
	got, skipped, err := SpendingByCategory(ops, "Groceries", "2020-04-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected 0 skipped, got %d", skipped)
	}
	want := []string{"01.01.2020 00:00:01", "15.02.2020 10:00:00"}
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].OperationDate != w {
			t.Fatalf("position %d: got %q want %q", i, got[i].OperationDate, w)
		}
	}
}

func TestSpendingByCategoryStartExclusiveEndInclusive(t *testing.T) {
	ops := []core.Transaction{
		opAt("30.08.2020 00:00:00", "Transport"), // == start: excluded
		opAt("30.11.2020 00:00:00", "Transport"), // == end: included
	}
	got, _, err := SpendingByCategory(ops, "Transport", "2020-11-30")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(got) != 1 || got[0].OperationDate != "30.11.2020 00:00:00" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSpendingByCategoryExactMatch(t *testing.T) {
	ops := []core.Transaction{
		opAt("15.03.2020 10:00:00", "groceries"),
		opAt("15.03.2020 10:00:00", "Groceries "),
		opAt("15.03.2020 10:00:00", "Groceries"),
	}
	got, _, err := SpendingByCategory(ops, "Groceries", "2020-04-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("case-sensitive exact match expected 1 row, got %d", len(got))
	}
}

func TestSpendingByCategorySkipsUnparseableDates(t *testing.T) {
	ops := []core.Transaction{
		opAt("garbage", "Groceries"),
		opAt("15.03.2020 10:00:00", "Groceries"),
	}
	got, skipped, err := SpendingByCategory(ops, "Groceries", "2020-04-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(got) != 1 || skipped != 1 {
		t.Fatalf("got %d rows, %d skipped; want 1 and 1", len(got), skipped)
	}
}

func TestSpendingByCategoryBadReferenceDate(t *testing.T) {
	if _, _, err := SpendingByCategory(nil, "Groceries", "01.04.2020"); err == nil {
		t.Fatalf("expected error for malformed reference date")
	}
}

func TestSpendingByCategoryNoMatches(t *testing.T) {
	got, _, err := SpendingByCategory([]core.Transaction{opAt("15.03.2020 10:00:00", "Transport")}, "Groceries", "2020-04-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
