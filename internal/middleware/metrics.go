package middleware

import (
	"crypto/subtle"
	"net/http"
)

// MetricsAuthMiddleware protects the metrics endpoint with basic auth
// so scrape data is not public. When no credentials are configured the
// endpoint is open; that is the expected setup in development.
type MetricsAuthMiddleware struct {
	username string
	password string
}

// NewMetricsAuthMiddleware creates a new metrics auth middleware.
// If both username and password are empty, authentication is disabled.
func NewMetricsAuthMiddleware(username, password string) *MetricsAuthMiddleware {
	return &MetricsAuthMiddleware{
		username: username,
		password: password,
	}
}

// Handler returns middleware that requires basic authentication. With
// no credentials configured it hands back the wrapped handler as-is.
func (m *MetricsAuthMiddleware) Handler(next http.Handler) http.Handler {
	if m.username == "" && m.password == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !m.credentialsMatch(user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// credentialsMatch compares in constant time to prevent timing attacks.
// Both halves are always compared so the username check leaks nothing
// about the password check.
func (m *MetricsAuthMiddleware) credentialsMatch(user, pass string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(m.username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(m.password)) == 1
	return userMatch && passMatch
}
