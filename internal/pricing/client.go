// Package pricing resolves the electricity price from the REN Data Hub
// monthly market-price endpoint. A resolved price is a plain EUR/kWh float
// handed to the engine before a run starts; any failure here falls back to
// the documented default and never reaches the simulation loop.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// BaseURL is the REN Data Hub API root.
const BaseURL = "https://servicebus.ren.pt/datahubapi"

// DefaultPricePerKWh is the fallback price (EUR/kWh) used when the price
// source is unavailable.
const DefaultPricePerKWh = 0.15

// Client queries the REN Data Hub for monthly electricity market prices.
type Client struct {
	baseURL string
	lang    string
	httpc   *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLanguage sets the culture parameter sent to the API.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

func NewClient(log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: BaseURL,
		lang:    "pt-PT",
		httpc:   &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// marketPrice is one record of the monthly price response. The API reports
// prices in EUR/MWh.
type marketPrice struct {
	Price float64 `json:"price"`
}

// MonthlyPrice fetches the average market price for the given month and
// converts it from EUR/MWh to EUR/kWh.
func (c *Client) MonthlyPrice(ctx context.Context, year int, month time.Month) (float64, error) {
	u := fmt.Sprintf("%s/electricity/ElectricityMarketPricesMonthly?%s", c.baseURL, url.Values{
		"year":    {fmt.Sprintf("%d", year)},
		"month":   {fmt.Sprintf("%02d", month)},
		"culture": {c.lang},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("querying price API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	var records []marketPrice
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return 0, fmt.Errorf("decoding price response: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("price API returned no records for %d-%02d", year, month)
	}

	var sum float64
	for _, r := range records {
		sum += r.Price
	}
	avgMWh := sum / float64(len(records))
	return avgMWh / 1000, nil
}

// Resolve returns the monthly price, or DefaultPricePerKWh when the source
// fails for any reason. The failure is logged and fully recovered here.
func (c *Client) Resolve(ctx context.Context, year int, month time.Month) float64 {
	price, err := c.MonthlyPrice(ctx, year, month)
	if err != nil {
		c.log.Warn("price source unavailable, using default",
			"year", year, "month", int(month), "default", DefaultPricePerKWh, "err", err)
		return DefaultPricePerKWh
	}
	return price
}
