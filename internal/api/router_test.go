package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testOptions() Options {
	return Options{JWTSecret: "secret", Log: zerolog.Nop(), Registerer: prometheus.NewRegistry()}
}

func TestNewRouter_Routes(t *testing.T) {
	e := NewRouter(Services{}, testOptions())

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"POST /auth/login",
		"POST /auth/logout",
		"GET /auth/me",
		"GET /dashboard",
		"GET /analytics",
		"GET /notifications",
		"DELETE /notifications/:id",
		"GET /visitors/search/:phone",
		"PUT /leads/:id",
		"POST /exports",
		"GET /exports/:id/download",
		"PUT /settings",
		"PUT /companies/:id/deactivate",
		"POST /company-admins",
		"PUT /employees/:id/deactivate",
		"DELETE /badge-mappings/:id",
		"GET /audit-logs",
		"GET /health/ready",
		"GET /metrics",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestNewRouter_ProtectedRouteNeedsToken(t *testing.T) {
	e := NewRouter(Services{}, testOptions())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/leads?page=2", nil)
	req.Header.Set("Accept", "text/html")
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fleads%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestNewRouter_Liveness(t *testing.T) {
	e := NewRouter(Services{}, testOptions())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
