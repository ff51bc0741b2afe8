package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

type companyService interface {
	List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Company], error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	Create(ctx context.Context, in ports.CompanyInput) (*domain.Company, error)
	Update(ctx context.Context, id string, in ports.CompanyInput) (*domain.Company, error)
	Deactivate(ctx context.Context, id string) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
}

// CompanyHandler serves the platform admin's Companies page.
type CompanyHandler struct {
	service companyService
}

func NewCompanyHandler(service companyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Name or code search"
// @Param        status  query     string  false  "active | inactive"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  ports.Page[domain.Company]
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /companies/:id.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  errorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Create handles POST /companies.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company"
// @Success      201   {object}  mutationResponse[domain.Company]
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req companyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	company, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, refetch(c, h.service.List, company))
}

// Update handles PUT /companies/:id.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Company ID"
// @Param        body  body      companyRequest  true  "Company"
// @Success      200   {object}  mutationResponse[domain.Company]
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req companyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	company, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch(c, h.service.List, company))
}

// Deactivate handles PUT /companies/:id/deactivate.
//
// @Summary      Deactivate a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  mutationResponse[domain.Company]
// @Router       /companies/{id}/deactivate [put]
func (h *CompanyHandler) Deactivate(c echo.Context) error {
	company, err := h.service.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch(c, h.service.List, company))
}

// Delete handles DELETE /companies/:id.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  mutationResponse[domain.Company]
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch[domain.Company](c, h.service.List, nil))
}
