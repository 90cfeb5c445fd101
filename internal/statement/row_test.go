package statement

import (
	"testing"
	"time"

	"vypiska/internal/core"
)

func TestMapHeadersRussian(t *testing.T) {
	cols := MapHeaders([]string{
		"Дата операции", "Дата платежа", "Номер карты",
		"Сумма операции", "Категория", "Описание", "Бонусы (включая кэшбэк)",
	})
	if cols.OperationDate != 0 || cols.PaymentDate != 1 || cols.CardNumber != 2 ||
		cols.Amount != 3 || cols.Category != 4 || cols.Description != 5 || cols.Cashback != 6 {
		t.Fatalf("unexpected mapping: %+v", cols)
	}
}

func TestMapHeadersEnglishAndUnknown(t *testing.T) {
	cols := MapHeaders([]string{"Amount", "Something Else", "Category"})
	if cols.Amount != 0 || cols.Category != 2 {
		t.Fatalf("unexpected mapping: %+v", cols)
	}
	if cols.CardNumber != -1 || cols.PaymentDate != -1 {
		t.Fatalf("missing columns must stay -1: %+v", cols)
	}
}

func TestRowToTransaction(t *testing.T) {
	cols := MapHeaders([]string{
		"Дата операции", "Дата платежа", "Номер карты",
		"Сумма операции", "Категория", "Описание", "Бонусы (включая кэшбэк)",
	})
	tx := cols.RowToTransaction([]string{
		"31.07.2020 08:25:19", "31.07.2020", "*3456", "-1000.50", "Groceries", "Магазин", "10,5",
	})
	if tx.OperationDate != "31.07.2020 08:25:19" {
		t.Fatalf("operation date: %q", tx.OperationDate)
	}
	want := time.Date(2020, 7, 31, 0, 0, 0, 0, time.UTC)
	if !tx.PaymentDate.Equal(want) {
		t.Fatalf("payment date: got %v want %v", tx.PaymentDate, want)
	}
	if tx.Amount != core.Num(-1000.50) {
		t.Fatalf("amount: %+v", tx.Amount)
	}
	if tx.Cashback != core.Num(10.5) {
		t.Fatalf("decimal comma cashback: %+v", tx.Cashback)
	}
}

func TestRowToTransactionMalformedCells(t *testing.T) {
	cols := MapHeaders([]string{"Дата платежа", "Сумма операции", "Бонусы (включая кэшбэк)"})
	tx := cols.RowToTransaction([]string{"not a date", "abc", ""})
	if tx.HasPaymentDate() {
		t.Fatalf("unparseable payment date must stay zero, got %v", tx.PaymentDate)
	}
	if tx.Amount.Valid || tx.Cashback.Valid {
		t.Fatalf("malformed numerics must be invalid, got %+v", tx)
	}
}

func TestRowToTransactionShortRow(t *testing.T) {
	cols := MapHeaders([]string{"Сумма операции", "Категория", "Описание"})
	tx := cols.RowToTransaction([]string{"-10"})
	if tx.Amount != core.Num(-10) || tx.Category != "" || tx.Description != "" {
		t.Fatalf("short rows must not panic and yield zero values: %+v", tx)
	}
}
