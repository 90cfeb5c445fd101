package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vypiska/internal/core"
	"vypiska/internal/services"
	"vypiska/internal/statement"
)

// QuoteFetcher is the external quote collaborator. Its output is consumed
// unchanged; it owns its own fallback and timeout policy.
type QuoteFetcher interface {
	FetchFinancialData(ctx context.Context) (core.QuoteData, error)
}

// Service generates reports from a transaction source. Aggregation itself is
// pure; the service adds source access, the wall clock and quote fetching.
type Service struct {
	source statement.TransactionSource
	quotes QuoteFetcher
	logger *slog.Logger
	now    func() time.Time // injectable clock for testing
}

// NewService creates a report service. quotes may be nil, in which case the
// financial report carries empty quote sections.
func NewService(source statement.TransactionSource, quotes QuoteFetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, quotes: quotes, logger: logger, now: time.Now}
}

// Financial builds the dated snapshot: greeting, per-card spend, top
// transactions and quotes, for operations between the start of the target
// month and the end of the target day ("2006-01-02 15:04:05").
//
// A malformed target date or an unreachable source is fatal. Quote fetching
// failures surface as the fetcher's error (only configuration problems;
// upstream outages are absorbed inside the fetcher).
func (s *Service) Financial(ctx context.Context, targetDate string) (core.FinancialReport, error) {
	txs, err := s.source.ListTransactions(ctx)
	if err != nil {
		return core.FinancialReport{}, fmt.Errorf("load transactions: %w", err)
	}

	ops, err := services.FilterByPaymentDate(txs, targetDate)
	if err != nil {
		return core.FinancialReport{}, err
	}

	cards, cardsSkipped := services.AnalyzeCards(ops)
	top, topSkipped := services.TopTransactions(ops)
	if cardsSkipped > 0 || topSkipped > 0 {
		s.logger.Warn("Skipped malformed records during aggregation",
			"cards_skipped", cardsSkipped, "top_skipped", topSkipped)
	}

	// cards and top are built from empty non-nil slices, so the report
	// sections marshal as [] even for an empty statement.
	report := core.FinancialReport{
		Greeting:        services.Greeting(s.now().Hour()),
		Cards:           cards,
		TopTransactions: top,
		CurrencyRates:   []core.ExchangeRate{},
		StockPrices:     []core.StockPrice{},
	}

	if s.quotes != nil {
		data, err := s.quotes.FetchFinancialData(ctx)
		if err != nil {
			return core.FinancialReport{}, fmt.Errorf("fetch quotes: %w", err)
		}
		report.CurrencyRates = data.ExchangeRates
		report.StockPrices = data.StockPrices
	}

	return report, nil
}

// Cashback builds the monthly cashback-by-category report. Its contract is
// a JSON string, kept from the original report format.
func (s *Service) Cashback(ctx context.Context, year, month int) (string, error) {
	txs, err := s.source.ListTransactions(ctx)
	if err != nil {
		return "", fmt.Errorf("load transactions: %w", err)
	}
	out, skipped, err := services.CashbackByCategory(txs, year, month)
	if err != nil {
		return "", err
	}
	if skipped > 0 {
		s.logger.Warn("Skipped malformed records during cashback aggregation", "skipped", skipped)
	}
	return out, nil
}

// Spending returns the transactions in a category over the trailing three
// months ending at date ("2006-01-02", empty for now).
func (s *Service) Spending(ctx context.Context, category, date string) ([]core.Transaction, error) {
	txs, err := s.source.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	out, skipped, err := services.SpendingByCategory(txs, category, date)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.logger.Warn("Skipped malformed records during spending filter", "skipped", skipped)
	}
	return out, nil
}
