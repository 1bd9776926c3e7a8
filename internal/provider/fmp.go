package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/stocklens/stocklens/internal/domain/models"
)

const fmpBaseURL = "https://financialmodelingprep.com"

// FMPClient fetches daily price history from Financial Modeling Prep
// (/api/v3/historical-price-full).
type FMPClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewFMPClient creates an FMP adapter. timeout bounds every outbound call.
func NewFMPClient(apiKey string, timeout time.Duration) *FMPClient {
	return &FMPClient{
		apiKey:     apiKey,
		baseURL:    fmpBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *FMPClient) Name() string { return "fmp" }

// fmpHistory is the raw FMP response shape. Historical is the mandatory
// field: its absence means FMP did not understand the request (unknown
// symbol, exhausted quota, error payload).
//
// Numeric fields are decoded as `any` so a single malformed value skips
// one bar instead of failing the whole decode.
type fmpHistory struct {
	Symbol     string   `json:"symbol"`
	Historical []fmpBar `json:"historical"`
}

type fmpBar struct {
	Date   string `json:"date"`
	Open   any    `json:"open"`
	High   any    `json:"high"`
	Low    any    `json:"low"`
	Close  any    `json:"close"`
	Volume any    `json:"volume"`
}

// FetchDaily implements Provider.
func (c *FMPClient) FetchDaily(ctx context.Context, ticker string, start, end models.Date) (models.PriceSeries, error) {
	u := fmt.Sprintf("%s/api/v3/historical-price-full/%s?from=%s&to=%s&apikey=%s",
		c.baseURL, url.PathEscape(ticker), start, end, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("fmp request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fmp fetch: %w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fmp read body: %w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fmp fetch: %w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var raw fmpHistory
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("fmp decode: %w: %v", ErrRejected, err)
	}
	if raw.Historical == nil {
		return nil, fmt.Errorf("fmp: %w: response has no historical data for %s", ErrRejected, ticker)
	}

	bars := make(models.PriceSeries, 0, len(raw.Historical))
	for _, rb := range raw.Historical {
		date, err := models.ParseDate(rb.Date)
		if err != nil {
			continue
		}
		closePrice, ok := toFinite(rb.Close)
		if !ok {
			// One unparseable close drops one bar, not the series.
			continue
		}
		bar := models.PriceBar{Date: date, Close: closePrice}
		if v, ok := toFinite(rb.Open); ok {
			bar.Open = v
		}
		if v, ok := toFinite(rb.High); ok {
			bar.High = v
		}
		if v, ok := toFinite(rb.Low); ok {
			bar.Low = v
		}
		if v, ok := toFinite(rb.Volume); ok {
			bar.Volume = int64(v)
		}
		bars = append(bars, bar)
	}

	series := normalizeSeries(bars, start, end)
	if len(series) == 0 {
		return nil, fmt.Errorf("fmp: %w for %s between %s and %s", ErrNoData, ticker, start, end)
	}
	return series, nil
}

// Ping implements Provider.
func (c *FMPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fmp ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// toFinite coerces a decoded JSON value into a finite float64. Numbers
// and numeric strings are accepted; null, NaN, infinities and anything
// else are not.
func toFinite(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
