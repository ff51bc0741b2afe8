package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

type notificationService interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context, sessionID string) error
}

// NotificationHandler exposes the session's notification queue.
type NotificationHandler struct {
	service notificationService
}

func NewNotificationHandler(service notificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /notifications.
//
// @Summary      Pending notifications, oldest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Dismiss handles DELETE /notifications/:id.
//
// @Summary      Dismiss a notification
// @Tags         notifications
// @Security     BearerAuth
// @Param        id   path  string  true  "Notification ID"
// @Success      204
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /notifications.
//
// @Summary      Dismiss every notification
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Router       /notifications [delete]
func (h *NotificationHandler) Clear(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.Clear(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
