package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kosaboard/board-api/internal/core/domain"
)

// Error kinds exposed in the error envelope. Clients branch on these rather
// than parsing messages.
const (
	KindValidation     = "validation"
	KindAuthentication = "authentication"
	KindAuthorization  = "authorization"
	KindNotFound       = "not_found"
	KindInternal       = "internal"
)

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// errorResponse is the canonical envelope for all API failures.
type errorResponse struct {
	Error errorBody `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP statuses and kinds.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent envelope {"error":{"kind":..., "message":...}}.
//
// No handler formats its own error response; everything funnels through here.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, kind, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: errorBody{Kind: kind, Message: msg}})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Known domain errors → deterministic codes. Duplicate usernames count
	// as validation failures (400), not conflicts.
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, KindValidation, "username already in use"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, KindAuthentication, "invalid credentials"
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound, KindNotFound, "member not found"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, KindNotFound, "post not found"
	}

	// Echo's own errors (bind failures, 404 from router, middleware denials).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, kindForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, KindInternal, "internal server error"
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusForbidden:
		return KindAuthorization
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindInternal
	}
}
