package handler

import (
	"errors"
	"net/http"

	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// StatusFromError picks the HTTP status for a service error. AppErrors
// carry their own status; everything else is a 500.
func StatusFromError(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
