package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultCBRBaseURL serves the central bank's daily rates as JSON.
const DefaultCBRBaseURL = "https://www.cbr-xml-daily.ru/daily_json.js"

// CBRClient fetches USD and EUR rates against RUB from the CBR daily feed.
// It needs no credentials, which is why it works as the fallback provider.
type CBRClient struct {
	baseURL    string
	httpClient *http.Client
}

// CBROption configures the CBR client.
type CBROption func(*CBRClient)

// WithCBRBaseURL sets the feed URL.
func WithCBRBaseURL(baseURL string) CBROption {
	return func(c *CBRClient) {
		c.baseURL = baseURL
	}
}

// WithCBRHTTPClient sets the HTTP client.
func WithCBRHTTPClient(hc *http.Client) CBROption {
	return func(c *CBRClient) {
		c.httpClient = hc
	}
}

// WithCBRTimeout sets the HTTP timeout.
func WithCBRTimeout(timeout time.Duration) CBROption {
	return func(c *CBRClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewCBRClient creates a CBR daily-feed client.
func NewCBRClient(opts ...CBROption) *CBRClient {
	c := &CBRClient{
		baseURL:    DefaultCBRBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rates returns currency code -> RUB rate for the currencies present in the
// daily feed.
func (c *CBRClient) Rates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cbr request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cbr status %d", resp.StatusCode)
	}

	var payload struct {
		Date   time.Time `json:"Date"`
		Valute map[string]struct {
			Value float64 `json:"Value"`
		} `json:"Valute"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode cbr response: %w", err)
	}

	out := make(map[string]float64, len(payload.Valute))
	for code, v := range payload.Valute {
		out[code] = v.Value
	}
	return out, nil
}
