package quotes

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"vypiska/internal/core"
)

// Currencies quoted against RUB in every financial report.
var trackedCurrencies = []string{"USD", "EUR"}

// Stock symbols included in every financial report.
var trackedStocks = []string{"SPY", "AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}

// stockFetchLimit bounds concurrent stock requests to stay inside the
// provider's per-second quota.
const stockFetchLimit = 3

// Service assembles the quote section of a financial report. Failures are
// never fatal here: a currency the primary cannot quote goes through the CBR
// fallback, and a stock the provider cannot quote is logged and omitted.
type Service struct {
	primary *Client
	cbr     *CBRClient
	logger  *slog.Logger
}

// NewService wires the primary client with the CBR fallback. cbr may be nil,
// in which case the fallback is skipped.
func NewService(primary *Client, cbr *CBRClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{primary: primary, cbr: cbr, logger: logger}
}

// NewServiceFromKey builds the service with default clients, applying the
// given request timeout to both providers (non-positive means the default).
// Fails fast with ErrMissingAPIKey when no credential is configured.
func NewServiceFromKey(apiKey string, timeout time.Duration, logger *slog.Logger) (*Service, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	primary, err := NewClient(apiKey, WithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	return NewService(primary, NewCBRClient(WithCBRTimeout(timeout)), logger), nil
}

// FetchFinancialData collects currency rates and stock prices. Rates and
// prices are rounded to 2 decimals. The returned slices are never nil.
func (s *Service) FetchFinancialData(ctx context.Context) (core.QuoteData, error) {
	data := core.QuoteData{
		ExchangeRates: make([]core.ExchangeRate, 0, len(trackedCurrencies)),
		StockPrices:   make([]core.StockPrice, 0, len(trackedStocks)),
	}

	data.ExchangeRates = s.fetchRates(ctx)
	data.StockPrices = s.fetchStocks(ctx)
	return data, nil
}

// fetchRates quotes each tracked currency against RUB, falling back to the
// CBR feed per currency when the primary fails. The CBR feed is fetched at
// most once per call.
func (s *Service) fetchRates(ctx context.Context) []core.ExchangeRate {
	out := make([]core.ExchangeRate, 0, len(trackedCurrencies))

	var (
		cbrOnce  sync.Once
		cbrRates map[string]float64
	)
	fallbackRates := func() map[string]float64 {
		cbrOnce.Do(func() {
			if s.cbr == nil {
				return
			}
			rates, err := s.cbr.Rates(ctx)
			if err != nil {
				s.logger.Warn("CBR fallback failed", "error", err)
				return
			}
			cbrRates = rates
		})
		return cbrRates
	}

	for _, currency := range trackedCurrencies {
		rate, err := s.primary.ExchangeRate(ctx, currency, "RUB")
		if err == nil {
			out = append(out, core.ExchangeRate{Currency: currency, Rate: core.Round2(rate)})
			continue
		}
		s.logger.Warn("Primary provider failed for currency, trying CBR", "currency", currency, "error", err)

		if rate, ok := fallbackRates()[currency]; ok {
			out = append(out, core.ExchangeRate{Currency: currency, Rate: core.Round2(rate)})
			s.logger.Info("Currency rate obtained from CBR", "currency", currency, "rate", rate)
			continue
		}
		s.logger.Error("No rate available from any provider", "currency", currency)
	}
	return out
}

// fetchStocks quotes the tracked symbols with bounded concurrency. Output
// order follows the symbol list; failed symbols are omitted.
func (s *Service) fetchStocks(ctx context.Context) []core.StockPrice {
	prices := make([]*core.StockPrice, len(trackedStocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(stockFetchLimit)
	for i, symbol := range trackedStocks {
		g.Go(func() error {
			price, err := s.primary.StockPrice(gctx, symbol)
			if err != nil {
				s.logger.Warn("Stock quote failed, omitting symbol", "stock", symbol, "error", err)
				return nil
			}
			prices[i] = &core.StockPrice{Stock: symbol, Price: core.Round2(price)}
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	out := make([]core.StockPrice, 0, len(trackedStocks))
	for _, p := range prices {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
