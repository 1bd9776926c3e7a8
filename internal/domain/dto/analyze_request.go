package dto

import (
	"strings"

	"github.com/stocklens/stocklens/internal/domain/models"
)

// AnalyzeRequest is the JSON body accepted by POST /api/analyze.
//
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	Ticker    string `json:"ticker" example:"AAPL"`
	StartDate string `json:"start_date" example:"2024-01-01"`
	EndDate   string `json:"end_date" example:"2024-10-01"`
}

// AnalyzeQuery is the validated, normalized form of an AnalyzeRequest:
// ticker trimmed and upper-cased, dates parsed, range ordered.
type AnalyzeQuery struct {
	Ticker string
	Start  models.Date
	End    models.Date
}

// ValidationError marks a request the caller can fix. Handlers map it to
// HTTP 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Validate checks the raw request and returns its normalized query form.
//
// Rules:
//   - ticker must be non-empty after trimming; it is upper-cased.
//   - both dates are required and must parse as ISO calendar dates.
//   - start_date must not be after end_date (inverted ranges are rejected,
//     not swapped).
func (r AnalyzeRequest) Validate() (AnalyzeQuery, error) {
	ticker := strings.ToUpper(strings.TrimSpace(r.Ticker))
	if ticker == "" {
		return AnalyzeQuery{}, ValidationError("missing ticker")
	}

	if strings.TrimSpace(r.StartDate) == "" || strings.TrimSpace(r.EndDate) == "" {
		return AnalyzeQuery{}, ValidationError("missing date")
	}

	start, err := models.ParseDate(strings.TrimSpace(r.StartDate))
	if err != nil {
		return AnalyzeQuery{}, ValidationError("bad date format")
	}
	end, err := models.ParseDate(strings.TrimSpace(r.EndDate))
	if err != nil {
		return AnalyzeQuery{}, ValidationError("bad date format")
	}

	if start.After(end.Time) {
		return AnalyzeQuery{}, ValidationError("inverted range")
	}

	return AnalyzeQuery{Ticker: ticker, Start: start, End: end}, nil
}
