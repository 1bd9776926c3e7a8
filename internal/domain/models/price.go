package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all calendar dates handled by the API
// and by the provider adapters (ISO 8601, date only).
const DateLayout = "2006-01-02"

// Date is a calendar date (no time-of-day component, UTC).
// It marshals as "YYYY-MM-DD" rather than RFC 3339.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date ("YYYY-MM-DD").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.Parse(DateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// PriceBar represents one trading day for a single ticker.
//
// Close is always present; the remaining figures depend on what the
// provider reports. Volume is 0 when the provider omits it.
//
// swagger:model PriceBar
type PriceBar struct {
	Date   Date    `json:"date" example:"2024-01-02"`
	Open   float64 `json:"open,omitempty" example:"182.15"`
	High   float64 `json:"high,omitempty" example:"184.30"`
	Low    float64 `json:"low,omitempty" example:"180.92"`
	Close  float64 `json:"close" example:"183.44"`
	Volume int64   `json:"volume,omitempty" example:"52430000"`
}

// PriceSeries is an ordered sequence of bars for one ticker:
// ascending by date, no duplicate dates, non-empty on the success path.
type PriceSeries []PriceBar
