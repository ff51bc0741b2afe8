// Package backend is the console's only way to reach the upstream REST API.
//
// Every request carries the bearer token of the session found in the request
// context. Any 401, whichever operation triggered it, invokes the registered
// UnauthorizedFunc so the session is cleared globally.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/pkg/metrics"
)

const defaultTimeout = 15 * time.Second

// Config captures the settings for reaching the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// UnauthorizedFunc is called when the backend rejects a session's token.
type UnauthorizedFunc func(ctx context.Context, s *domain.Session)

// Client implements ports.Backend over HTTP.
type Client struct {
	http *resty.Client
	log  zerolog.Logger

	mu             sync.RWMutex
	onUnauthorized UnauthorizedFunc
}

var _ ports.Backend = (*Client)(nil)

// New builds a Client. Retries are disabled: every retry in the console is a
// manual user action.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{log: log}
	c.http = resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c.http.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if s, ok := domain.SessionFromContext(r.Context()); ok && s.Token != "" {
			r.SetAuthToken(s.Token)
		}
		return nil
	})
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == 401 {
			c.unauthorized(resp.Request.Context())
		}
		return nil
	})

	return c
}

// OnUnauthorized registers the global 401 handler.
func (c *Client) OnUnauthorized(fn UnauthorizedFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) unauthorized(ctx context.Context) {
	s, ok := domain.SessionFromContext(ctx)
	if !ok {
		return
	}

	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()

	metrics.ForcedLogoutsTotal.Inc()
	c.log.Warn().Str("session_id", s.ID).Str("user_id", s.User.ID).Msg("backend rejected session token, forcing logout")
	if fn != nil {
		fn(ctx, s)
	}
}

// Ping reports whether the backend answers at all. Any HTTP status counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.http.R().SetContext(ctx).Head("/"); err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	return nil
}

// call sends one request and decodes a successful body into out (may be nil).
func (c *Client) call(ctx context.Context, endpoint, method, path string, query url.Values, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	metrics.BackendRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(endpoint, "network").Inc()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
		}
		c.log.Error().Err(err).Str("endpoint", endpoint).Str("method", method).Str("path", path).Msg("backend request failed")
		return &domain.APIError{Category: domain.ErrNetwork, Method: method, Path: path}
	}

	metrics.BackendRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode())).Inc()

	if resp.IsError() {
		apiErr := newAPIError(method, path, resp.StatusCode(), resp.Body())
		c.log.Debug().
			Int("status", apiErr.Status).
			Str("endpoint", endpoint).
			Str("message", apiErr.Message).
			Msg("backend returned error")
		return apiErr
	}

	if out == nil {
		return nil
	}
	return decodeInto(endpoint, resp.Body(), out)
}

// listQuery renders q as upstream query parameters, omitting zero values.
func listQuery(q ports.ListQuery) url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("search", q.Search)
	set("status", q.Status)
	set("company_id", q.CompanyID)
	set("interests", q.Interests)
	set("action", q.Action)
	set("date_from", q.DateFrom)
	set("date_to", q.DateTo)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}
