package handler

import (
	"github.com/labstack/echo/v4"
)

// apiResponse is the uniform success envelope: every 2xx body is
// {"data": ..., "message": ...}. Failures never use this shape; they are
// rendered centrally by the API error handler.
type apiResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// errorEnvelope mirrors the central error handler's output. Declared here
// only so swag can reference it in failure annotations.
type errorEnvelope struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func respond(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, apiResponse{Data: data, Message: message})
}
