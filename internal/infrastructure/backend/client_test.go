package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zerolog.Nop())
}

func sessionCtx(token string) context.Context {
	return domain.WithSession(context.Background(), &domain.Session{
		ID:    "sess-1",
		Token: token,
		User:  domain.User{ID: "u1", Role: domain.RolePlatformAdmin},
	})
}

func TestClient_AttachesBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "/admin/companies", r.URL.Path)
		assert.Equal(t, "acme", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Empty(t, r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"c1","name":"Acme","status":"active"}],"pagination":{"total":11,"page":2,"limit":10,"total_pages":2}}`))
	})

	page, err := client.ListCompanies(sessionCtx("tok-123"), ports.ListQuery{Search: "acme", Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Acme", page.Items[0].Name)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestClient_LoginSendsNoToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"token":"jwt","user":{"id":"u1","full_name":"Pat","email":"p@x.io","role":"platform_admin"}}`))
	})

	res, err := client.Login(context.Background(), "p@x.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
	assert.True(t, res.User.IsPlatformAdmin())
}

func TestClient_UnauthorizedInvokesGlobalHook(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})

	var invalidated string
	client.OnUnauthorized(func(_ context.Context, s *domain.Session) {
		invalidated = s.ID
	})

	_, err := client.ListLeads(sessionCtx("stale"), ports.ListQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.Equal(t, "sess-1", invalidated)
}

func TestClient_StatusTaxonomy(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrBadRequest},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusBadGateway, domain.ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})
			_, err := client.GetCompany(sessionCtx("t"), "c1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			var apiErr *domain.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
		})
	}
}

func TestClient_DuplicateCompanyCodeJoinsDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Validation failed","details":[{"field":"company_code","message":"company_code already exists"},{"field":"name","message":"name is too short"}]}`))
	})

	_, err := client.CreateCompany(sessionCtx("t"), ports.CompanyInput{Name: "A", CompanyCode: "DUP"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))

	msg := domain.UserMessage(err)
	assert.Equal(t, "company_code already exists; name is too short", msg)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(Config{BaseURL: srv.URL, Timeout: time.Second}, zerolog.Nop())

	_, err := client.ListVisitors(sessionCtx("t"), ports.ListQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNetwork))
}

func TestClient_CancelledContext(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithCancel(sessionCtx("t"))
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.ListLeads(ctx, ports.ListQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_DecodeErrorOnSchemaMismatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"leads":[{"id":"l1"}]}`))
	})

	_, err := client.ListLeads(sessionCtx("t"), ports.ListQuery{})
	require.Error(t, err)

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "leads.list", decErr.Endpoint)
	assert.True(t, errors.Is(err, domain.ErrBadResponse))
}

func TestClient_LeadBodyCarriesVisitorFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, decodeJSON(r, &body))
		assert.Equal(t, "Jane", body["visitor_name"])
		assert.Equal(t, "Hot", body["interests"])
		_, ok := body["Visitor"]
		assert.False(t, ok)
		_, _ = w.Write([]byte(`{"data":{"id":"l9","visitor_name":"Jane","interests":"Hot"}}`))
	})

	lead, err := client.CreateLead(sessionCtx("t"), ports.LeadInput{
		Interests: "Hot",
		Visitor:   ports.VisitorInput{FullName: "Jane"},
	})
	require.NoError(t, err)
	assert.Equal(t, "l9", lead.ID)
}

func TestClient_Ping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNotFound)
	})
	assert.NoError(t, client.Ping(context.Background()))

	down := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, zerolog.Nop())
	assert.Error(t, down.Ping(context.Background()))
}
