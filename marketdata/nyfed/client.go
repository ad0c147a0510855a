// Package nyfed fetches SOFR and EFFR fixings from the New York Fed
// markets API.
package nyfed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/EmilienVaast/STIR-Futures/marketdata"
)

const (
	// SOFRURL is the secured SOFR search endpoint.
	SOFRURL = "https://markets.newyorkfed.org/api/rates/secured/sofr/search.json"
	// EFFRURL is the unsecured EFFR search endpoint.
	EFFRURL = "https://markets.newyorkfed.org/api/rates/unsecured/effr/search.json"

	defaultTimeout = 30 * time.Second
)

// Client calls the NY Fed reference-rate endpoints.
type Client struct {
	httpClient *http.Client
	sofrURL    string
	effrURL    string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithEndpoints overrides the SOFR/EFFR endpoint URLs (tests).
func WithEndpoints(sofrURL, effrURL string) Option {
	return func(c *Client) {
		c.sofrURL = sofrURL
		c.effrURL = effrURL
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient builds a Client with a 30s timeout and no logging by default.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		sofrURL:    SOFRURL,
		effrURL:    EFFRURL,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SOFR fetches the SOFR fixing series. Zero start/end leave the bound open.
func (c *Client) SOFR(ctx context.Context, start, end time.Time) (marketdata.Series, error) {
	return c.fetch(ctx, c.sofrURL, start, end)
}

// EFFR fetches the EFFR fixing series. Zero start/end leave the bound open.
func (c *Client) EFFR(ctx context.Context, start, end time.Time) (marketdata.Series, error) {
	return c.fetch(ctx, c.effrURL, start, end)
}

type refRatesPayload struct {
	RefRates []struct {
		EffectiveDate string      `json:"effectiveDate"`
		PercentRate   json.Number `json:"percentRate"`
	} `json:"refRates"`
}

func (c *Client) fetch(ctx context.Context, endpoint string, start, end time.Time) (marketdata.Series, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("nyfed: parse endpoint: %w", err)
	}
	q := u.Query()
	if !start.IsZero() {
		q.Set("startDate", start.Format("2006-01-02"))
	}
	if !end.IsZero() {
		q.Set("endDate", end.Format("2006-01-02"))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("nyfed: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nyfed: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nyfed: unexpected status %d from %s", resp.StatusCode, u.Host)
	}

	var payload refRatesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nyfed: decode response: %w", err)
	}

	series := make(marketdata.Series, 0, len(payload.RefRates))
	skipped := 0
	for _, row := range payload.RefRates {
		date, err := time.Parse("2006-01-02", row.EffectiveDate)
		if err != nil {
			skipped++
			continue
		}
		rate, err := row.PercentRate.Float64()
		if err != nil {
			skipped++
			continue
		}
		series = append(series, marketdata.Fixing{Date: date, Rate: rate})
	}
	series = series.Normalize()

	c.log.Debug().
		Str("endpoint", u.Path).
		Int("rows", len(series)).
		Int("skipped", skipped).
		Msg("fetched reference rates")
	return series, nil
}
