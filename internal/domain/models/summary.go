package models

// Summary holds the aggregate closing-price figures derived from a
// PriceSeries for a requested ticker and date range.
//
// Fields:
//   - FirstClose: close of the earliest bar in the series.
//   - LastClose: close of the latest bar in the series.
//   - MaxClose / MinClose: maximum and minimum close across all bars.
//
// This model is embedded in the API response for POST /api/analyze.
//
// swagger:model Summary
type Summary struct {
	FirstClose float64 `json:"first_close" example:"10.00"`
	LastClose  float64 `json:"last_close" example:"11.00"`
	MaxClose   float64 `json:"max_close" example:"12.00"`
	MinClose   float64 `json:"min_close" example:"9.00"`
}
