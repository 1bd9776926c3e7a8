package provider

import (
	"context"
	"errors"
	"sort"

	"github.com/stocklens/stocklens/internal/domain/models"
)

// Sentinel errors classifying every way a price fetch can fail.
// Adapters wrap these with fmt.Errorf("...: %w", ...) so callers can
// branch with errors.Is while keeping vendor detail in the message.
var (
	// ErrUnavailable: network failure, timeout, or a non-success
	// transport-level response. The request as a whole fails.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrRejected: transport succeeded but the payload signals an
	// application-level problem (unknown symbol, rate limit, schema
	// missing its mandatory field).
	ErrRejected = errors.New("provider rejected request")

	// ErrNoData: well-formed response, but no usable bars remain for
	// the requested ticker and date range.
	ErrNoData = errors.New("no price data")
)

// Provider fetches daily price history from one external market-data
// vendor. Each vendor gets its own adapter; the rest of the pipeline only
// sees the canonical PriceSeries.
type Provider interface {
	// Name identifies the vendor in logs and error messages.
	Name() string

	// FetchDaily returns the normalized daily bars for ticker within
	// [start, end] inclusive, sorted ascending by date with no duplicate
	// dates, or an error wrapping one of the sentinel errors above.
	FetchDaily(ctx context.Context, ticker string, start, end models.Date) (models.PriceSeries, error)

	// Ping checks vendor reachability; used by the readiness probe.
	Ping(ctx context.Context) error
}

// normalizeSeries applies the canonical post-processing every adapter
// shares: drop bars outside [start, end], sort ascending by date, and
// drop duplicate dates (first occurrence wins).
func normalizeSeries(bars models.PriceSeries, start, end models.Date) models.PriceSeries {
	filtered := make(models.PriceSeries, 0, len(bars))
	for _, b := range bars {
		if b.Date.Before(start.Time) || b.Date.After(end.Time) {
			continue
		}
		filtered = append(filtered, b)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date.Time)
	})

	out := filtered[:0]
	for _, b := range filtered {
		if len(out) > 0 && out[len(out)-1].Date.Equal(b.Date.Time) {
			continue
		}
		out = append(out, b)
	}
	return out
}
