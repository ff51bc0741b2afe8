package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/service"
)

type badgeService interface {
	List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.BadgeMapping], error)
	Create(ctx context.Context, in ports.BadgeMappingInput) (*domain.BadgeMapping, error)
	Delete(ctx context.Context, id string) error
}

type auditService interface {
	List(ctx context.Context, q ports.ListQuery) (*ports.Page[service.AuditEntry], error)
}

// BadgeHandler serves the Badge Mapping page.
type BadgeHandler struct {
	service badgeService
}

func NewBadgeHandler(service badgeService) *BadgeHandler {
	return &BadgeHandler{service: service}
}

// List handles GET /badge-mappings.
//
// @Summary      List badge mappings
// @Tags         badge-mappings
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  ports.Page[domain.BadgeMapping]
// @Router       /badge-mappings [get]
func (h *BadgeHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Create handles POST /badge-mappings.
//
// @Summary      Map a badge to an employee
// @Tags         badge-mappings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      badgeMappingRequest  true  "Mapping"
// @Success      201   {object}  mutationResponse[domain.BadgeMapping]
// @Router       /badge-mappings [post]
func (h *BadgeHandler) Create(c echo.Context) error {
	var req badgeMappingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, refetch(c, h.service.List, m))
}

// Delete handles DELETE /badge-mappings/:id.
//
// @Summary      Remove a badge mapping
// @Tags         badge-mappings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Mapping ID"
// @Success      200  {object}  mutationResponse[domain.BadgeMapping]
// @Router       /badge-mappings/{id} [delete]
func (h *BadgeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refetch[domain.BadgeMapping](c, h.service.List, nil))
}

// AuditHandler serves the Audit Logs page.
type AuditHandler struct {
	service auditService
}

func NewAuditHandler(service auditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// List handles GET /audit-logs.
//
// @Summary      List audit logs
// @Tags         audit-logs
// @Produce      json
// @Security     BearerAuth
// @Param        action     query     string  false  "Action filter"
// @Param        date_from  query     string  false  "YYYY-MM-DD"
// @Param        date_to    query     string  false  "YYYY-MM-DD"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  ports.Page[service.AuditEntry]
// @Router       /audit-logs [get]
func (h *AuditHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
