package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError represents an error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Standard error codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeConflict   = "CONFLICT"
	ErrCodeTooLarge   = "PAYLOAD_TOO_LARGE"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data})
}

func sendError(c *gin.Context, statusCode int, code, message, details string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func sendValidationError(c *gin.Context, message, details string) {
	sendError(c, http.StatusBadRequest, ErrCodeValidation, message, details)
}

func sendInternalError(c *gin.Context, details string) {
	sendError(c, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", details)
}
