// Package stats derives deterministic closing-price aggregates from a
// normalized price series.
package stats

import (
	"fmt"

	"github.com/stocklens/stocklens/internal/domain/models"
)

// Compute derives the closing-price summary for a non-empty series.
// First/last are picked by date, not slice position, so the result stays
// correct even if an adapter ever returns bars out of order. The caller
// guarantees non-emptiness (the fetcher fails with ErrNoData otherwise).
func Compute(series models.PriceSeries) models.Summary {
	first, last := series[0], series[0]
	s := models.Summary{
		FirstClose: series[0].Close,
		LastClose:  series[0].Close,
		MaxClose:   series[0].Close,
		MinClose:   series[0].Close,
	}
	for _, b := range series[1:] {
		if b.Date.Before(first.Date.Time) {
			first = b
			s.FirstClose = b.Close
		}
		if b.Date.After(last.Date.Time) {
			last = b
			s.LastClose = b.Close
		}
		if b.Close > s.MaxClose {
			s.MaxClose = b.Close
		}
		if b.Close < s.MinClose {
			s.MinClose = b.Close
		}
	}
	return s
}

// Sentence renders the fixed-format human-readable summary line. It is
// returned to the caller verbatim and also seeds the narrative prompt.
func Sentence(ticker string, start, end models.Date, s models.Summary) string {
	return fmt.Sprintf("%s stock from %s to %s: first close=%g, high=%g, low=%g",
		ticker, start, end, s.FirstClose, s.MaxClose, s.MinClose)
}
