package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/service"
)

type dashboardService interface {
	Platform(ctx context.Context) (*service.PlatformDashboard, error)
	Company(ctx context.Context) (*service.CompanyAdminDashboard, error)
	Employee(ctx context.Context) (*service.EmployeeDashboard, error)
	Analytics(ctx context.Context) (*service.AnalyticsReport, error)
}

// DashboardHandler serves the role dashboards and the Analytics page.
type DashboardHandler struct {
	service dashboardService
}

func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Platform handles GET /dashboard for platform admins.
//
// @Summary      Platform dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.PlatformDashboard
// @Router       /dashboard [get]
func (h *DashboardHandler) Platform(c echo.Context) error {
	d, err := h.service.Platform(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Company handles GET /dashboard for company admins.
func (h *DashboardHandler) Company(c echo.Context) error {
	d, err := h.service.Company(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Employee handles GET /dashboard for employees.
func (h *DashboardHandler) Employee(c echo.Context) error {
	d, err := h.service.Employee(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Analytics handles GET /analytics.
//
// @Summary      Lead analytics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.AnalyticsReport
// @Router       /analytics [get]
func (h *DashboardHandler) Analytics(c echo.Context) error {
	r, err := h.service.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}
