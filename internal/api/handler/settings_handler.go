package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/service"
)

type settingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, in service.SettingsInput) (*domain.Settings, error)
}

type SettingsHandler struct {
	service settingsService
}

func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /settings.
//
// @Summary      Console preferences of the current user
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Settings
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Update handles PUT /settings.
//
// @Summary      Save console preferences
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      service.SettingsInput  true  "Preferences"
// @Success      200   {object}  domain.Settings
// @Failure      400   {object}  errorResponse
// @Router       /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req service.SettingsInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	s, err := h.service.Update(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}
