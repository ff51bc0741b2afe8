package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/api/middleware"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// statusClientClosedRequest is the non-standard code logged when the caller
// went away before the answer was ready.
const statusClientClosedRequest = 499

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain and upstream errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// A session cleared mid-request (backend 401) ends like any other
		// unauthenticated request: browsers go back to the login screen.
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrSessionNotFound) {
			if c.Request().Method == http.MethodHead {
				_ = c.NoContent(http.StatusUnauthorized)
				return
			}
			_ = middleware.Unauthenticated(c, domain.UserMessage(err))
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	msg := domain.UserMessage(err)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: msg}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: msg}
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, errorResponse{Error: msg}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, errorResponse{Error: msg}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, errorResponse{Error: msg}
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusServiceUnavailable, errorResponse{Error: msg}
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrBadResponse):
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend failure")
		return http.StatusBadGateway, errorResponse{Error: "Server error. Please try again later."}
	case errors.Is(err, domain.ErrSuperseded):
		return http.StatusConflict, errorResponse{Error: "superseded by a newer request"}
	case errors.Is(err, domain.ErrExportNotFound):
		return http.StatusNotFound, errorResponse{Error: "export not found"}
	case errors.Is(err, domain.ErrExportNotReady), errors.Is(err, domain.ErrExportInProgress):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrUnsupportedExport):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, errorResponse{Error: "request cancelled"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
