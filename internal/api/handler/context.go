package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kosaboard/board-api/internal/core/domain"
)

// ctxIdentity extracts the identity bound by the Auth middleware and performs
// a fast-fail check before any service call: a non-empty username and role
// prove the middleware ran on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	if username == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	memberID, _ := c.Get("member_id").(string)
	return domain.Identity{
		MemberID: memberID,
		Username: username,
		Role:     domain.Role(role),
	}, nil
}
