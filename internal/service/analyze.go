package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stocklens/stocklens/internal/domain/dto"
	"github.com/stocklens/stocklens/internal/domain/models"
	"github.com/stocklens/stocklens/internal/logger"
	"github.com/stocklens/stocklens/internal/narrative"
	"github.com/stocklens/stocklens/internal/provider"
	"github.com/stocklens/stocklens/internal/stats"
)

// promptSampleBars caps how many recent closes are quoted in the
// narrative prompt so its size stays bounded for long ranges.
const promptSampleBars = 30

// AnalyzeService runs the analysis pipeline for one validated query:
// fetch price history, compute statistics, attach the best-effort
// narrative, assemble the response.
type AnalyzeService interface {
	Analyze(ctx context.Context, q dto.AnalyzeQuery) (*dto.AnalyzeResponse, error)
}

type analyzeService struct {
	provider  provider.Provider
	generator narrative.Generator // nil disables the narrative stage
	statsOnly bool
}

// NewAnalyzeService wires the pipeline. Pass a nil generator when no
// language-model credential is configured; statsOnly drops the prices
// array from responses.
func NewAnalyzeService(p provider.Provider, g narrative.Generator, statsOnly bool) AnalyzeService {
	return &analyzeService{provider: p, generator: g, statsOnly: statsOnly}
}

// Analyze executes the pipeline. Provider failures pass through with
// their sentinel untouched so the HTTP layer can map status codes; the
// narrative stage never fails the request.
func (s *analyzeService) Analyze(ctx context.Context, q dto.AnalyzeQuery) (*dto.AnalyzeResponse, error) {
	series, err := s.provider.FetchDaily(ctx, q.Ticker, q.Start, q.End)
	if err != nil {
		return nil, err
	}

	summary := stats.Compute(series)
	sentence := stats.Sentence(q.Ticker, q.Start, q.End, summary)

	result := narrative.Disabled()
	if s.generator != nil {
		text, err := s.generator.Summarize(ctx, buildPrompt(sentence, series))
		if err != nil {
			log := logger.With("narrative")
			log.Warn().
				Err(err).
				Str("ticker", q.Ticker).
				Msg("narrative generation failed")
		}
		result = narrative.Wrap(text, err)
	}

	resp := &dto.AnalyzeResponse{
		Ticker:    q.Ticker,
		StartDate: q.Start.String(),
		EndDate:   q.End.String(),
		Stats:     summary,
		Summary:   sentence,
		AISummary: result.Text,
	}
	if !s.statsOnly {
		resp.Prices = series
	}
	return resp, nil
}

// buildPrompt seeds the model with the summary sentence plus at most the
// last promptSampleBars closes.
func buildPrompt(sentence string, series models.PriceSeries) string {
	sample := series
	if len(sample) > promptSampleBars {
		sample = sample[len(sample)-promptSampleBars:]
	}

	var sb strings.Builder
	sb.WriteString("Summarize the stock performance: ")
	sb.WriteString(sentence)
	sb.WriteString(". Recent closes: ")
	for i, b := range sample {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%g", b.Date, b.Close)
	}
	return sb.String()
}
