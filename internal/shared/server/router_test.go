package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"titleparser-backend/internal/parses"
	"titleparser-backend/internal/services/health"
	"titleparser-backend/internal/shared/config"
	"titleparser-backend/internal/submissions"
)

func newTestRouter(cfg config.Config) http.Handler {
	repo := submissions.NewMemoryRepo()
	return NewRouter(cfg, Deps{
		Parses: parses.NewHandler(parses.NewService(nil, nil)),
		Recent: submissions.NewHandler(repo),
		Health: health.NewService(nil, nil, false),
	})
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(config.Config{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body["ok"] {
		t.Errorf("body = %v", body)
	}
}

func TestRouterReadyz(t *testing.T) {
	router := newTestRouter(config.Config{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with everything disabled", rec.Code)
	}
}

func TestRouterParseFlow(t *testing.T) {
	router := newTestRouter(config.Config{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse",
		strings.NewReader(`{"title":"Oppenheimer.2023.1080p.BluRay.x264-YTS"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header missing")
	}
}

func TestRouterAuthAppliesToAPIButNotHealth(t *testing.T) {
	router := newTestRouter(config.Config{APIKey: "k"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", strings.NewReader(`{"title":"x"}`))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("parse without key status = %d, want 401", rec.Code)
	}

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if healthRec.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", healthRec.Code)
	}
}

func TestRouterMetrics(t *testing.T) {
	router := newTestRouter(config.Config{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "parse_requests_total") {
		t.Error("metrics output missing parse_requests_total")
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8000",
		"8000":  ":8000",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
