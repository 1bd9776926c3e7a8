package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stocklens/stocklens/config"
	"github.com/stocklens/stocklens/internal/provider"
)

func TestBuildProvider(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.ProviderConfig
		wantErr bool
		check   func(p provider.Provider) bool
	}{
		{
			name: "fmp",
			cfg:  config.ProviderConfig{Name: "fmp", FMPAPIKey: "k", Timeout: 10 * time.Second},
			check: func(p provider.Provider) bool {
				_, ok := p.(*provider.FMPClient)
				return ok && p.Name() == "fmp"
			},
		},
		{
			name: "yahoo",
			cfg:  config.ProviderConfig{Name: "yahoo", Timeout: 10 * time.Second},
			check: func(p provider.Provider) bool {
				_, ok := p.(*provider.YahooClient)
				return ok && p.Name() == "yahoo"
			},
		},
		{
			name:    "unknown",
			cfg:     config.ProviderConfig{Name: "bloomberg"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := buildProvider(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.cfg.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.check(p) {
				t.Fatalf("wrong adapter for %q: %T", tc.cfg.Name, p)
			}
		})
	}
}

func TestInitializeApp_WiresRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Provider: config.ProviderConfig{Name: "yahoo", Timeout: 10 * time.Second},
	}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("init error: %v", err)
	}
	defer cleanup()

	// liveness probe registered
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: want 200 got %d", w.Code)
	}

	// analysis route registered; empty body must hit validation, not 404
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("analyze with empty body: want 400 got %d", w.Code)
	}
}

func TestInitializeApp_UnknownProvider(t *testing.T) {
	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Provider: config.ProviderConfig{Name: "nope"},
	}

	_, _, err := InitializeApp()
	if err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
