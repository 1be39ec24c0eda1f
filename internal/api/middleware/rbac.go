package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// RoleGate enforces the role a route group requires. Evaluated on every
// request, never cached. Outcomes:
//   - no claims present: 401, redirect to the login view
//   - authenticated but lacking the role: 403, redirect to the caller's own
//     home view (admin home for admins, user dashboard otherwise)
//   - otherwise the handler runs
func RoleGate(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return loginRedirect(c, "authentication required")
			}
			if role != required {
				return c.JSON(http.StatusForbidden, gateResponse{
					Error:    "forbidden",
					Redirect: homeView(role),
				})
			}
			return next(c)
		}
	}
}

// homeView maps a role to its landing view.
func homeView(role string) string {
	if role == domain.RoleAdmin {
		return "/admin"
	}
	return "/dashboard"
}
