package dto

import "github.com/stocklens/stocklens/internal/domain/models"

// AnalyzeResponse is the JSON structure returned by POST /api/analyze
// on success.
//
// Prices is omitted when the service runs in stats-only mode; Stats and
// Summary are always present. AISummary is null when no language-model
// credential is configured, and carries a failure marker string when the
// narrative call failed (the request itself still succeeds).
//
// swagger:model AnalyzeResponse
type AnalyzeResponse struct {
	Ticker    string             `json:"ticker" example:"AAPL"`
	StartDate string             `json:"start_date" example:"2024-01-01"`
	EndDate   string             `json:"end_date" example:"2024-10-01"`
	Prices    models.PriceSeries `json:"prices,omitempty"`
	Stats     models.Summary     `json:"stats"`
	Summary   string             `json:"summary" example:"AAPL stock from 2024-01-01 to 2024-10-01: first close=182.15, high=236.48, low=164.08"`
	AISummary *string            `json:"ai_summary"`
}
