package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/stocklens/stocklens/internal/domain/models"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooClient fetches daily price history from the Yahoo Finance v8
// chart API. No credential is required.
type YahooClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewYahooClient creates a Yahoo Finance adapter. timeout bounds every
// outbound call.
func NewYahooClient(timeout time.Duration) *YahooClient {
	return &YahooClient{
		baseURL:    yahooBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *YahooClient) Name() string { return "yahoo" }

// yahooChart is the chart API response: parallel timestamp/quote arrays
// with nullable entries for non-trading days.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []any `json:"open"`
					High   []any `json:"high"`
					Low    []any `json:"low"`
					Close  []any `json:"close"`
					Volume []any `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDaily implements Provider.
func (c *YahooClient) FetchDaily(ctx context.Context, ticker string, start, end models.Date) (models.PriceSeries, error) {
	// period2 is exclusive upstream; push it one day past end so the end
	// date itself is covered. Range filtering happens after normalization.
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL, url.PathEscape(ticker), start.Unix(), end.AddDate(0, 0, 1).Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return nil, fmt.Errorf("yahoo fetch: %w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w: %v", ErrRejected, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %w: %s", ErrRejected, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: %w: response has no quote data for %s", ErrRejected, ticker)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make(models.PriceSeries, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		closePrice, ok := toFinite(at(quote.Close, i))
		if !ok {
			// Null bars show up on holidays; skip them.
			continue
		}
		day := time.Unix(ts, 0).UTC()
		bar := models.PriceBar{
			Date:  models.NewDate(day.Year(), day.Month(), day.Day()),
			Close: closePrice,
		}
		if v, ok := toFinite(at(quote.Open, i)); ok {
			bar.Open = v
		}
		if v, ok := toFinite(at(quote.High, i)); ok {
			bar.High = v
		}
		if v, ok := toFinite(at(quote.Low, i)); ok {
			bar.Low = v
		}
		if v, ok := toFinite(at(quote.Volume, i)); ok {
			bar.Volume = int64(v)
		}
		bars = append(bars, bar)
	}

	series := normalizeSeries(bars, start, end)
	if len(series) == 0 {
		return nil, fmt.Errorf("yahoo: %w for %s between %s and %s", ErrNoData, ticker, start, end)
	}
	return series, nil
}

// Ping implements Provider.
func (c *YahooClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// at indexes a quote array that may be shorter than the timestamp array.
func at(vals []any, i int) any {
	if i >= len(vals) {
		return nil
	}
	return vals[i]
}
