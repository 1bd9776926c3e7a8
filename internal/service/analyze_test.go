package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stocklens/stocklens/internal/domain/dto"
	"github.com/stocklens/stocklens/internal/domain/models"
	"github.com/stocklens/stocklens/internal/provider"
)

func day(d int) models.Date { return models.NewDate(2024, time.January, d) }

func query() dto.AnalyzeQuery {
	return dto.AnalyzeQuery{Ticker: "ACME", Start: day(1), End: day(5)}
}

func acmeSeries() models.PriceSeries {
	return models.PriceSeries{
		{Date: day(1), Close: 10},
		{Date: day(2), Close: 12},
		{Date: day(3), Close: 9},
		{Date: day(4), Close: 11},
	}
}

type stubProvider struct {
	series models.PriceSeries
	err    error
}

func (s *stubProvider) Name() string                 { return "stub" }
func (s *stubProvider) Ping(_ context.Context) error { return nil }
func (s *stubProvider) FetchDaily(_ context.Context, _ string, _, _ models.Date) (models.PriceSeries, error) {
	return s.series, s.err
}

var _ provider.Provider = (*stubProvider)(nil)

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *stubGenerator) Summarize(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func TestAnalyze_Success_NarrativeDisabled(t *testing.T) {
	svc := NewAnalyzeService(&stubProvider{series: acmeSeries()}, nil, false)

	resp, err := svc.Analyze(context.Background(), query())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Ticker != "ACME" || resp.StartDate != "2024-01-01" || resp.EndDate != "2024-01-05" {
		t.Fatalf("request not echoed: %+v", resp)
	}
	if len(resp.Prices) != 4 {
		t.Fatalf("want 4 bars, got %d", len(resp.Prices))
	}
	if resp.Stats.FirstClose != 10 || resp.Stats.LastClose != 11 || resp.Stats.MaxClose != 12 || resp.Stats.MinClose != 9 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
	for _, figure := range []string{"first close=10", "high=12", "low=9"} {
		if !strings.Contains(resp.Summary, figure) {
			t.Fatalf("summary %q missing %q", resp.Summary, figure)
		}
	}
	if resp.AISummary != nil {
		t.Fatalf("narrative disabled, ai_summary must be nil, got %q", *resp.AISummary)
	}
}

func TestAnalyze_NarrativeSuccess(t *testing.T) {
	gen := &stubGenerator{text: " The stock had a volatile week. "}
	svc := NewAnalyzeService(&stubProvider{series: acmeSeries()}, gen, false)

	resp, err := svc.Analyze(context.Background(), query())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AISummary == nil || *resp.AISummary != "The stock had a volatile week." {
		t.Fatalf("unexpected ai_summary: %v", resp.AISummary)
	}
	if !strings.Contains(gen.prompt, "Summarize the stock performance:") {
		t.Fatalf("prompt missing seed: %q", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "2024-01-01=10") {
		t.Fatalf("prompt missing close sample: %q", gen.prompt)
	}
}

func TestAnalyze_NarrativeFailure_DoesNotFailRequest(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model timeout")}
	svc := NewAnalyzeService(&stubProvider{series: acmeSeries()}, gen, false)

	resp, err := svc.Analyze(context.Background(), query())
	if err != nil {
		t.Fatalf("narrative failure must not fail the request: %v", err)
	}
	if resp.AISummary == nil || *resp.AISummary != "AI summary failed: model timeout" {
		t.Fatalf("unexpected ai_summary: %v", resp.AISummary)
	}
	if len(resp.Prices) != 4 || resp.Stats.MaxClose != 12 {
		t.Fatalf("price data must survive narrative failure: %+v", resp)
	}
}

func TestAnalyze_ProviderErrorsPassThrough(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"unavailable", fmt.Errorf("fetch: %w: timeout", provider.ErrUnavailable)},
		{"rejected", fmt.Errorf("decode: %w", provider.ErrRejected)},
		{"no data", fmt.Errorf("%w for ACME", provider.ErrNoData)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAnalyzeService(&stubProvider{err: tc.err}, nil, false)
			resp, err := svc.Analyze(context.Background(), query())
			if resp != nil {
				t.Fatalf("no partial success on provider failure: %+v", resp)
			}
			if !errors.Is(err, tc.err) && err.Error() != tc.err.Error() {
				t.Fatalf("sentinel lost: got %v", err)
			}
		})
	}
}

func TestAnalyze_StatsOnly_DropsPrices(t *testing.T) {
	svc := NewAnalyzeService(&stubProvider{series: acmeSeries()}, nil, true)

	resp, err := svc.Analyze(context.Background(), query())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Prices != nil {
		t.Fatalf("stats-only mode must omit prices, got %d bars", len(resp.Prices))
	}
	if resp.Stats.MinClose != 9 || resp.Summary == "" {
		t.Fatalf("stats must still be present: %+v", resp)
	}
}

func TestBuildPrompt_BoundsSample(t *testing.T) {
	series := make(models.PriceSeries, 0, 90)
	base := models.NewDate(2024, time.January, 1)
	for i := 0; i < 90; i++ {
		series = append(series, models.PriceBar{
			Date:  models.Date{Time: base.AddDate(0, 0, i)},
			Close: float64(i),
		})
	}

	prompt := buildPrompt("sentence", series)

	if strings.Contains(prompt, "close=0,") || strings.Contains(prompt, "2024-01-01=0") {
		t.Fatalf("prompt should only sample the most recent bars: %q", prompt)
	}
	if !strings.Contains(prompt, "=89") {
		t.Fatalf("prompt missing latest close: %q", prompt)
	}
	if got := strings.Count(prompt, "="); got != promptSampleBars {
		t.Fatalf("prompt sample has %d closes, want %d", got, promptSampleBars)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	svc := NewAnalyzeService(&stubProvider{series: acmeSeries()}, nil, false)

	first, err := svc.Analyze(context.Background(), query())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Analyze(context.Background(), query())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Summary != second.Summary || first.Stats != second.Stats || len(first.Prices) != len(second.Prices) {
		t.Fatalf("identical input produced different outputs: %+v vs %+v", first, second)
	}
}
