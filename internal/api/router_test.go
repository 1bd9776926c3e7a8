package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stocklens/stocklens/internal/domain/dto"
	"github.com/stocklens/stocklens/internal/service"
)

// mockAnalyzeServiceRouter backs router wiring tests.
type mockAnalyzeServiceRouter struct {
	resp *dto.AnalyzeResponse
	err  error
}

func (m *mockAnalyzeServiceRouter) Analyze(_ context.Context, _ dto.AnalyzeQuery) (*dto.AnalyzeResponse, error) {
	return m.resp, m.err
}

var _ service.AnalyzeService = (*mockAnalyzeServiceRouter)(nil)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockAnalyzeServiceRouter{resp: successResponse()}
	h := NewHandler(svc)
	r := NewRouter(h)

	body := `{"ticker": "ACME", "start_date": "2024-01-01", "end_date": "2024-01-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	// RequestID middleware must inject the header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Ticker != "ACME" || out.Stats.MaxClose != 12 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockAnalyzeServiceRouter{}))

	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("GET on the analyze route should 404, got %d", w.Code)
	}
}
