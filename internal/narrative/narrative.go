// Package narrative produces the optional AI commentary attached to an
// analysis. The whole package is best-effort: nothing in here may fail a
// request.
package narrative

import (
	"context"
	"strings"
)

// Generator produces free-text commentary from a prompt. Implementations
// call an external language model and may fail; callers must route every
// failure through Wrap so it becomes response data instead of an error.
type Generator interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Result collapses the three narrative outcomes into the value rendered
// as the response's ai_summary field:
//   - generated text  -> the trimmed text
//   - stage disabled  -> nil (JSON null)
//   - call failed     -> "AI summary failed: {reason}"
type Result struct {
	Text *string
}

// Disabled is the Result used when no language-model credential is
// configured.
func Disabled() Result { return Result{} }

// Wrap converts a Generator outcome into a Result, absorbing the error.
func Wrap(text string, err error) Result {
	if err != nil {
		s := "AI summary failed: " + err.Error()
		return Result{Text: &s}
	}
	s := strings.TrimSpace(text)
	return Result{Text: &s}
}
