package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the administrator-only info endpoint.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type adminInfoResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Message  string   `json:"message"`
}

// Info echoes the caller's identity and roles. The RequireRole middleware
// has already guaranteed the administrator role by the time this runs.
//
// @Summary      Administrator info
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse{data=adminInfoResponse}
// @Failure      401  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Router       /admin [get]
func (h *AdminHandler) Info(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, adminInfoResponse{
		Username: identity.Username,
		Roles:    []string{string(identity.Role)},
		Message:  "welcome, administrator",
	}, "admin info")
}
