package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// Metrics Auth Middleware Tests
// =============================================================================

func metricsAuthRequest(t *testing.T, mw *MetricsAuthMiddleware, user, pass string, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("metrics data"))
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	if withAuth {
		req.SetBasicAuth(user, pass)
	}
	rec := httptest.NewRecorder()

	mw.Handler(handler).ServeHTTP(rec, req)
	return rec
}

func TestMetricsAuthMiddleware_AllowsValidCredentials(t *testing.T) {
	mw := NewMetricsAuthMiddleware("admin", "secret123")

	rec := metricsAuthRequest(t, mw, "admin", "secret123", true)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "metrics data" {
		t.Errorf("expected body 'metrics data', got %q", rec.Body.String())
	}
}

func TestMetricsAuthMiddleware_RejectsNoCredentials(t *testing.T) {
	mw := NewMetricsAuthMiddleware("admin", "secret123")

	rec := metricsAuthRequest(t, mw, "", "", false)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	wwwAuth := rec.Header().Get("WWW-Authenticate")
	if wwwAuth != `Basic realm="metrics"` {
		t.Errorf("unexpected WWW-Authenticate header: %q", wwwAuth)
	}
}

func TestMetricsAuthMiddleware_RejectsBadCredentials(t *testing.T) {
	mw := NewMetricsAuthMiddleware("admin", "secret123")

	testCases := []struct {
		name string
		user string
		pass string
	}{
		{"wrong username", "wronguser", "secret123"},
		{"wrong password", "admin", "wrongpassword"},
		{"both wrong", "wrong", "wrong"},
		{"empty credentials", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := metricsAuthRequest(t, mw, tc.user, tc.pass, true)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rec.Code)
			}
		})
	}
}

func TestMetricsAuthMiddleware_RejectsMalformedAuth(t *testing.T) {
	mw := NewMetricsAuthMiddleware("admin", "secret123")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "Basic notvalidbase64!!!")
	rec := httptest.NewRecorder()

	mw.Handler(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestMetricsAuthMiddleware_DisabledWhenNoCredentials(t *testing.T) {
	// When both user and pass are empty, auth should be disabled
	mw := NewMetricsAuthMiddleware("", "")

	rec := metricsAuthRequest(t, mw, "", "", false)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 when auth is disabled, got %d", rec.Code)
	}
}
