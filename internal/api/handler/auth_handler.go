package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/api/middleware"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/service"
)

type authService interface {
	Login(ctx context.Context, email, password string) (*service.LoginOutcome, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	authService  authService
	secureCookie bool
}

func NewAuthHandler(authService authService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

type meResponse struct {
	User            domain.User `json:"user"`
	IsPlatformAdmin bool        `json:"is_platform_admin"`
	IsCompanyAdmin  bool        `json:"is_company_admin"`
	IsEmployee      bool        `json:"is_employee"`
	ExpiresAt       time.Time   `json:"expires_at"`
}

// Login authenticates against the backend and opens a console session.
// Credential problems are answered with success=false and a message.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest          true  "Login credentials"
// @Success      200   {object}  service.LoginOutcome
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  service.LoginOutcome
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	out, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if !out.Success {
		return c.JSON(http.StatusUnauthorized, out)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.Session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, out)
}

// Logout clears the console session. The backend is not called.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]bool
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Me returns the current identity and its role predicates.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		User:            sess.User,
		IsPlatformAdmin: sess.User.IsPlatformAdmin(),
		IsCompanyAdmin:  sess.User.IsCompanyAdmin(),
		IsEmployee:      sess.User.IsEmployee(),
		ExpiresAt:       sess.ExpiresAt,
	})
}
