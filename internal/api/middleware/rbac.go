package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// RBAC enforces role-based access control. A signed-in user without one of
// the allowed roles gets the Access Denied view in place, never a redirect.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return AccessDenied(c)
			}
			return next(c)
		}
	}
}

// AccessDenied renders the Access Denied view for the current path.
func AccessDenied(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"error": "access denied",
		"view":  "access_denied",
		"path":  c.Request().URL.Path,
	})
}

// RoleSwitch dispatches one route to a per-role handler. Roles without a
// handler see Access Denied.
type RoleSwitch struct {
	PlatformAdmin echo.HandlerFunc
	CompanyAdmin  echo.HandlerFunc
	Employee      echo.HandlerFunc
}

func (s RoleSwitch) Handle(c echo.Context) error {
	role, _ := c.Get("role").(string)

	var h echo.HandlerFunc
	switch domain.Role(role) {
	case domain.RolePlatformAdmin:
		h = s.PlatformAdmin
	case domain.RoleCompanyAdmin:
		h = s.CompanyAdmin
	case domain.RoleEmployee:
		h = s.Employee
	}
	if h == nil {
		return AccessDenied(c)
	}
	return h(c)
}
