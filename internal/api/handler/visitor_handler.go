package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/service"
)

type visitorService interface {
	List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Visitor], error)
	SearchByPhone(ctx context.Context, phone string) ([]service.VisitorDetail, error)
	Get(ctx context.Context, id string) (*service.VisitorDetail, error)
	Create(ctx context.Context, in ports.VisitorInput) (*domain.Visitor, error)
	Update(ctx context.Context, id string, in ports.VisitorInput) (*domain.Visitor, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*ports.VisitorStats, error)
}

// VisitorHandler serves the Visitors page.
type VisitorHandler struct {
	service visitorService
}

func NewVisitorHandler(service visitorService) *VisitorHandler {
	return &VisitorHandler{service: service}
}

// List handles GET /visitors.
//
// @Summary      List visitors
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Name, email or organization search"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  ports.Page[domain.Visitor]
// @Router       /visitors [get]
func (h *VisitorHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Search handles GET /visitors/search/:phone.
//
// @Summary      Find visitors by phone
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        phone  path      string  true  "Phone number"
// @Success      200    {array}   service.VisitorDetail
// @Router       /visitors/search/{phone} [get]
func (h *VisitorHandler) Search(c echo.Context) error {
	found, err := h.service.SearchByPhone(c.Request().Context(), c.Param("phone"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

// Get handles GET /visitors/:id.
//
// @Summary      Get a visitor with profile completeness
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Visitor ID"
// @Success      200  {object}  service.VisitorDetail
// @Failure      404  {object}  errorResponse
// @Router       /visitors/{id} [get]
func (h *VisitorHandler) Get(c echo.Context) error {
	v, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// Stats handles GET /visitors/stats.
//
// @Summary      Visitor counters
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.VisitorStats
// @Router       /visitors/stats [get]
func (h *VisitorHandler) Stats(c echo.Context) error {
	st, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// Create handles POST /visitors.
//
// @Summary      Create a visitor
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      visitorRequest  true  "Visitor"
// @Success      201   {object}  mutationResponse[domain.Visitor]
// @Failure      400   {object}  errorResponse
// @Router       /visitors [post]
func (h *VisitorHandler) Create(c echo.Context) error {
	var req visitorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	v, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, refetch(c, h.service.List, v))
}

// Update handles PUT /visitors/:id.
//
// @Summary      Update a visitor
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Visitor ID"
// @Param        body  body      visitorRequest  true  "Visitor"
// @Success      200   {object}  mutationResponse[domain.Visitor]
// @Router       /visitors/{id} [put]
func (h *VisitorHandler) Update(c echo.Context) error {
	var req visitorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	v, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch(c, h.service.List, v))
}

// Delete handles DELETE /visitors/:id.
//
// @Summary      Delete a visitor
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Visitor ID"
// @Success      200  {object}  mutationResponse[domain.Visitor]
// @Router       /visitors/{id} [delete]
func (h *VisitorHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch[domain.Visitor](c, h.service.List, nil))
}
