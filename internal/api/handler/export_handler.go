package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportService interface {
	Request(ctx context.Context, resource domain.ExportResource, q ports.ListQuery) (*domain.ExportJob, error)
	Job(ctx context.Context, id string) (*domain.ExportJob, error)
	Download(ctx context.Context, id string) (*domain.ExportJob, []byte, error)
}

// ExportHandler serves the Exports page.
type ExportHandler struct {
	service exportService
}

func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Create handles POST /exports.
//
// @Summary      Queue a spreadsheet export
// @Tags         exports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      exportRequest  true  "Export"
// @Success      202   {object}  domain.ExportJob
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /exports [post]
func (h *ExportHandler) Create(c echo.Context) error {
	var req exportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	job, err := h.service.Request(c.Request().Context(), domain.ExportResource(req.Resource), req.query())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/exports/"+job.ID)
	return c.JSON(http.StatusAccepted, job)
}

// Get handles GET /exports/:id.
//
// @Summary      Export status
// @Tags         exports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Export ID"
// @Success      200  {object}  domain.ExportJob
// @Failure      404  {object}  errorResponse
// @Router       /exports/{id} [get]
func (h *ExportHandler) Get(c echo.Context) error {
	job, err := h.service.Job(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Download handles GET /exports/:id/download.
//
// @Summary      Download a finished export
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id   path  string  true  "Export ID"
// @Success      200
// @Failure      409  {object}  errorResponse
// @Router       /exports/{id}/download [get]
func (h *ExportHandler) Download(c echo.Context) error {
	job, data, err := h.service.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+job.FileName+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
