package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

type leadService interface {
	List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Lead], error)
	Get(ctx context.Context, id string) (*domain.Lead, error)
	Create(ctx context.Context, in ports.LeadInput) (*domain.Lead, error)
	Update(ctx context.Context, id string, in ports.LeadInput) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*ports.LeadStats, error)
}

// LeadHandler serves the Leads page.
type LeadHandler struct {
	service leadService
}

func NewLeadHandler(service leadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// List handles GET /leads.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        search     query     string  false  "Visitor search"
// @Param        interests  query     string  false  "Hot | Warm | Cold"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  ports.Page[domain.Lead]
// @Router       /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /leads/:id.
//
// @Summary      Get a lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  domain.Lead
// @Failure      404  {object}  errorResponse
// @Router       /leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	l, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}

// Stats handles GET /leads/stats.
//
// @Summary      Lead counters
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.LeadStats
// @Router       /leads/stats [get]
func (h *LeadHandler) Stats(c echo.Context) error {
	st, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// Create handles POST /leads.
//
// @Summary      Create a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      leadRequest  true  "Lead"
// @Success      201   {object}  mutationResponse[domain.Lead]
// @Failure      400   {object}  errorResponse
// @Router       /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req leadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	l, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, refetch(c, h.service.List, l))
}

// Update handles PUT /leads/:id. Changed visitor fields are written to the
// visitor record as well.
//
// @Summary      Update a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Lead ID"
// @Param        body  body      leadRequest  true  "Lead"
// @Success      200   {object}  mutationResponse[domain.Lead]
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	var req leadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	l, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch(c, h.service.List, l))
}

// Delete handles DELETE /leads/:id.
//
// @Summary      Delete a lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  mutationResponse[domain.Lead]
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch[domain.Lead](c, h.service.List, nil))
}
