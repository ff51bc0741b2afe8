package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// ctxSession returns the session injected by the Auth middleware. A missing
// session means the route was mounted without Auth; reject with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get("session").(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}

// listQuery reads the shared search/filter/pagination parameters.
func listQuery(c echo.Context) ports.ListQuery {
	return ports.ListQuery{
		Search:    c.QueryParam("search"),
		Status:    c.QueryParam("status"),
		CompanyID: c.QueryParam("company_id"),
		Interests: c.QueryParam("interests"),
		Action:    c.QueryParam("action"),
		DateFrom:  c.QueryParam("date_from"),
		DateTo:    c.QueryParam("date_to"),
		Page:      intParam(c, "page"),
		Limit:     intParam(c, "limit"),
	}
}

func intParam(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// mutationResponse is returned by every create/update/deactivate: the
// changed record plus the freshly re-fetched list.
type mutationResponse[T any] struct {
	Record *T             `json:"record,omitempty"`
	List   *ports.Page[T] `json:"list,omitempty"`
}

// refetch re-reads the list after a mutation; the server stays the source of
// truth. A failed re-fetch leaves List empty, the failure is already queued
// as a notification.
func refetch[T any](c echo.Context, list func(context.Context, ports.ListQuery) (*ports.Page[T], error), rec *T) mutationResponse[T] {
	page, _ := list(c.Request().Context(), listQuery(c))
	return mutationResponse[T]{Record: rec, List: page}
}
