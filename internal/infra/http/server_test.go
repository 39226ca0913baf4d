package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"telegram-canteen-bot/internal/infra/metrics"
)

func TestServer_Healthz(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	s := NewServer(0, &logger)

	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestServer_MetricsExposed(t *testing.T) {
	t.Parallel()

	metrics.MustRegister()
	metrics.SetBuildInfo("test", "none")

	logger := zerolog.Nop()
	s := NewServer(0, &logger)

	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("expected metrics payload")
	}
}
