package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(apiKey))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/healthz", ok)
	r.POST("/v1/parse", ok)
	return r
}

func TestAPIKeyAuthRejectsMissingKey(t *testing.T) {
	r := newAuthRouter("secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAPIKeyAuthRejectsWrongKey(t *testing.T) {
	r := newAuthRouter("secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", nil)
	req.Header.Set("X-Api-Key", "not-the-secret")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAPIKeyAuthAcceptsCorrectKey(t *testing.T) {
	r := newAuthRouter("secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", nil)
	req.Header.Set("X-Api-Key", "secret")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAPIKeyAuthExemptsHealth(t *testing.T) {
	r := newAuthRouter("secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 without key", rec.Code)
	}
}

func TestAPIKeyAuthDisabledWhenUnset(t *testing.T) {
	r := newAuthRouter("")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/parse", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with auth disabled", rec.Code)
	}
}
