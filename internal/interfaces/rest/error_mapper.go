package rest

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// BuildErrorResponse maps an error to its status code and response body
func BuildErrorResponse(err error) (int, ErrorResponse) {
	return application.ToHTTPStatus(err), ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: err.Error(),
		},
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	category := application.CategorizeError(err)
	if category == application.CategoryInfrastructure {
		logger.Error("request failed", "status", statusCode, "category", category, "error", err)
	} else {
		logger.Warn("request rejected", "status", statusCode, "category", category, "error", err)
	}

	WriteJSON(w, statusCode, response)
}
