// Package quotes fetches currency and stock quotes for the financial report.
// The primary provider is an Alpha Vantage style API; a CBR daily-JSON
// endpoint serves as fallback for currency rates only.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co/query"
	DefaultTimeout = 10 * time.Second
)

// ErrMissingAPIKey means no provider credential was configured. It is
// returned before any network call is made.
var ErrMissingAPIKey = errors.New("quotes: missing API key (set API_ALPHAVANTAGE)")

// errNoData means the provider answered but without the expected payload,
// which happens on throttling notices and unknown symbols.
var errNoData = errors.New("quotes: no data in provider response")

// Client talks to an Alpha Vantage compatible quote API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a quote API client. The key is checked here so a missing
// credential fails fast, before any request goes out.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ExchangeRate fetches the from/to currency rate.
func (c *Client) ExchangeRate(ctx context.Context, from, to string) (float64, error) {
	params := url.Values{}
	params.Set("function", "CURRENCY_EXCHANGE_RATE")
	params.Set("from_currency", from)
	params.Set("to_currency", to)

	var payload struct {
		Rate struct {
			ExchangeRate string `json:"5. Exchange Rate"`
		} `json:"Realtime Currency Exchange Rate"`
	}
	if err := c.get(ctx, params, &payload); err != nil {
		return 0, err
	}
	if payload.Rate.ExchangeRate == "" {
		return 0, fmt.Errorf("%w: %s/%s", errNoData, from, to)
	}
	rate, err := strconv.ParseFloat(payload.Rate.ExchangeRate, 64)
	if err != nil {
		return 0, fmt.Errorf("parse exchange rate %q: %w", payload.Rate.ExchangeRate, err)
	}
	return rate, nil
}

// StockPrice fetches the latest price for a stock symbol.
func (c *Client) StockPrice(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)

	var payload struct {
		Quote struct {
			Price string `json:"05. price"`
		} `json:"Global Quote"`
	}
	if err := c.get(ctx, params, &payload); err != nil {
		return 0, err
	}
	if payload.Quote.Price == "" {
		return 0, fmt.Errorf("%w: %s", errNoData, symbol)
	}
	price, err := strconv.ParseFloat(payload.Quote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse stock price %q: %w", payload.Quote.Price, err)
	}
	return price, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("quote API status %d: %s", resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode quote response: %w", err)
	}
	return nil
}
