package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// RequireRole enforces the access policy: the operation admits roles up to
// max (numerically — Admin=1 is the strongest level, so a principal passes
// when its role value is at most max). A missing principal is a distinct
// failure from an insufficient one: 401 versus 403.
func RequireRole(max domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !principal.Role.Allows(max) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
