package core

type (
	// CardSummary is the per-card expense rollup: expenses grouped by the
	// last four characters of the card number, with a flat 1% cashback.
	CardSummary struct {
		LastDigits string  `json:"last_digits"`
		TotalSpent float64 `json:"total_spent"`
		Cashback   float64 `json:"cashback"`
	}

	// TopTransaction is one entry of the top-by-amount list. Date is
	// day-precision ("31.07.2020") or the "Unknown" sentinel when the
	// source value could not be parsed. Amount keeps its original sign.
	TopTransaction struct {
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
	}

	// ExchangeRate is a currency quote against the base currency.
	ExchangeRate struct {
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate"`
	}

	// StockPrice is a single equity quote.
	StockPrice struct {
		Stock string  `json:"stock"`
		Price float64 `json:"price"`
	}

	// QuoteData is what the external quote fetcher produces. The report
	// consumes it unchanged.
	QuoteData struct {
		ExchangeRates []ExchangeRate `json:"exchange_rates"`
		StockPrices   []StockPrice   `json:"stock_prices"`
	}

	// FinancialReport is the dated snapshot assembled once per invocation.
	FinancialReport struct {
		Greeting        string           `json:"greeting"`
		Cards           []CardSummary    `json:"cards"`
		TopTransactions []TopTransaction `json:"top_transactions"`
		CurrencyRates   []ExchangeRate   `json:"currency_rates"`
		StockPrices     []StockPrice     `json:"stock_prices"`
	}
)
