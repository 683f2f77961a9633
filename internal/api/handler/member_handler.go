package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kosaboard/board-api/internal/api/metrics"
	"github.com/kosaboard/board-api/internal/core/ports"
)

// MemberHandler handles HTTP requests for member accounts.
type MemberHandler struct {
	members ports.MemberService
}

func NewMemberHandler(members ports.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// Register creates a new member account.
//
// @Summary      Register a new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body      registerMemberRequest  true  "Registration details"
// @Success      201   {object}  apiResponse{data=memberResponse}
// @Failure      400   {object}  errorEnvelope
// @Router       /api/members [post]
func (h *MemberHandler) Register(c echo.Context) error {
	var req registerMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.members.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	metrics.MembersRegisteredTotal.Inc()
	return respond(c, http.StatusCreated, toMemberResponse(member), "member registered")
}

// Me returns the authenticated caller's own member record.
//
// @Summary      Get my member info
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse{data=memberResponse}
// @Failure      401  {object}  errorEnvelope
// @Router       /api/members/me [get]
func (h *MemberHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	member, err := h.members.FindByUsername(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toMemberResponse(member), "member info")
}

// UpdateMe applies a partial profile update for the authenticated caller.
// Blank fields are left untouched.
//
// @Summary      Update my profile
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update (blank = keep)"
// @Success      200   {object}  apiResponse{data=memberResponse}
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/members/me [put]
func (h *MemberHandler) UpdateMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.members.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		Username:    identity.Username,
		NewName:     req.Name,
		NewPassword: req.Password,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toMemberResponse(member), "profile updated")
}

// GetByID returns a member by id. Administrator-only.
//
// @Summary      Get a member by id
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member id"
// @Success      200  {object}  apiResponse{data=memberResponse}
// @Failure      401  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/members/{id} [get]
func (h *MemberHandler) GetByID(c echo.Context) error {
	member, err := h.members.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toMemberResponse(member), "member info")
}
