package memory

import (
	"context"
	"testing"

	"vypiska/internal/core"
)

func TestListReturnsCopy(t *testing.T) {
	s := New([]core.Transaction{{Description: "one"}})
	got, err := s.ListTransactions(context.Background())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	got[0].Description = "mutated"
	again, _ := s.ListTransactions(context.Background())
	if again[0].Description != "one" {
		t.Fatalf("store leaked its backing slice")
	}
}

func TestNewFromRows(t *testing.T) {
	s := NewFromRows(
		[]string{"Сумма операции", "Категория"},
		[][]string{{"-100", "Groceries"}, {"bad", "Transport"}},
	)
	got, err := s.ListTransactions(context.Background())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if got[0].Amount != core.Num(-100) || got[1].Amount.Valid {
		t.Fatalf("unexpected parse: %+v", got)
	}
}

func TestAppend(t *testing.T) {
	s := New(nil)
	s.Append(core.Transaction{Description: "a"}, core.Transaction{Description: "b"})
	got, _ := s.ListTransactions(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
}
