package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"vypiska/internal/core"
	"vypiska/internal/statement/memory"
)

type stubQuotes struct {
	data core.QuoteData
	err  error
}

func (s stubQuotes) FetchFinancialData(context.Context) (core.QuoteData, error) {
	return s.data, s.err
}

func augustStatement() *memory.Store {
	return memory.New([]core.Transaction{
		{
			OperationDate: "15.08.2020 10:00:00",
			PaymentDate:   time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC),
			CardNumber:    "1234567890123456",
			Amount:        core.Num(-1000),
			Category:      "Groceries",
			Description:   "Store",
			Cashback:      core.Num(10),
		},
		{
			OperationDate: "20.08.2020 12:00:00",
			PaymentDate:   time.Date(2020, 8, 20, 0, 0, 0, 0, time.UTC),
			CardNumber:    "9876543210987654",
			Amount:        core.Num(-300),
			Category:      "Transport",
			Description:   "Taxi",
			Cashback:      core.Num(3),
		},
		{
			// September: outside the financial report window.
			OperationDate: "05.09.2020 09:00:00",
			PaymentDate:   time.Date(2020, 9, 5, 0, 0, 0, 0, time.UTC),
			CardNumber:    "1234567890123456",
			Amount:        core.Num(-999),
			Category:      "Groceries",
			Description:   "Later",
			Cashback:      core.Num(5),
		},
	})
}

func newTestService(quotes QuoteFetcher) *Service {
	svc := NewService(augustStatement(), quotes, nil)
	svc.now = func() time.Time {
		return time.Date(2020, 8, 25, 13, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestFinancialReport(t *testing.T) {
	quoteData := core.QuoteData{
		ExchangeRates: []core.ExchangeRate{{Currency: "USD", Rate: 93.51}},
		StockPrices:   []core.StockPrice{{Stock: "AAPL", Price: 123.45}},
	}
	svc := newTestService(stubQuotes{data: quoteData})

	got, err := svc.Financial(context.Background(), "2020-08-25 15:30:00")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if got.Greeting != "Good afternoon" {
		t.Fatalf("greeting from injected clock: got %q", got.Greeting)
	}
	if len(got.Cards) != 2 {
		t.Fatalf("expected 2 card summaries, got %+v", got.Cards)
	}
	if got.Cards[0].LastDigits != "3456" || got.Cards[0].TotalSpent != 1000.0 {
		t.Fatalf("September spending leaked into the window: %+v", got.Cards[0])
	}
	if len(got.TopTransactions) != 2 || got.TopTransactions[0].Amount != -1000 {
		t.Fatalf("unexpected top transactions: %+v", got.TopTransactions)
	}
	if len(got.CurrencyRates) != 1 || got.CurrencyRates[0].Currency != "USD" {
		t.Fatalf("quote data must pass through unchanged: %+v", got.CurrencyRates)
	}
	if len(got.StockPrices) != 1 || got.StockPrices[0].Stock != "AAPL" {
		t.Fatalf("quote data must pass through unchanged: %+v", got.StockPrices)
	}
}

func TestFinancialReportWithoutQuotes(t *testing.T) {
	svc := newTestService(nil)
	got, err := svc.Financial(context.Background(), "2020-08-25 15:30:00")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if got.CurrencyRates == nil || got.StockPrices == nil {
		t.Fatalf("quote sections must be empty lists, not null")
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	for _, key := range []string{`"greeting"`, `"cards"`, `"top_transactions"`, `"currency_rates"`, `"stock_prices"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("report JSON missing %s: %s", key, raw)
		}
	}
}

func TestFinancialReportEmptyStatement(t *testing.T) {
	svc := NewService(memory.New(nil), nil, nil)
	got, err := svc.Financial(context.Background(), "2020-08-25 15:30:00")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if got.Cards == nil || got.TopTransactions == nil {
		t.Fatalf("sections must be empty lists, not nil: %+v", got)
	}
	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	for _, want := range []string{`"cards":[]`, `"top_transactions":[]`, `"currency_rates":[]`, `"stock_prices":[]`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("expected %s in report JSON: %s", want, raw)
		}
	}
}

func TestFinancialReportQuoteConfigErrorIsFatal(t *testing.T) {
	svc := newTestService(stubQuotes{err: errors.New("missing API key")})
	if _, err := svc.Financial(context.Background(), "2020-08-25 15:30:00"); err == nil {
		t.Fatalf("expected quote configuration error to propagate")
	}
}

func TestFinancialReportBadTargetDate(t *testing.T) {
	svc := newTestService(nil)
	if _, err := svc.Financial(context.Background(), "25.08.2020"); err == nil {
		t.Fatalf("expected error for malformed target date")
	}
}

func TestCashbackReport(t *testing.T) {
	svc := newTestService(nil)
	got, err := svc.Cashback(context.Background(), 2020, 8)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	var parsed map[string]float64
	if err := json.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("cashback report must be a JSON string: %v", err)
	}
	if parsed["Groceries"] != 10 || parsed["Transport"] != 3 {
		t.Fatalf("unexpected cashback report: %v", parsed)
	}
}

func TestSpendingReport(t *testing.T) {
	svc := newTestService(nil)
	got, err := svc.Spending(context.Background(), "Groceries", "2020-09-30")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both Groceries operations in the trailing window, got %+v", got)
	}
}
