package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kosaboard/board-api/internal/core/domain"
)

// RequireRole enforces the route's declared role requirement against the
// role bound by Auth. The role set is closed, so a route either accepts any
// authenticated caller (no RequireRole) or names the roles it allows.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
