package types

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Issue describes a single validation failure
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SuccessResponse is the envelope for successful responses
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope for failed responses. Issues is only
// present on validation failures.
type ErrorResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Issues  []Issue `json:"issues,omitempty"`
}

// ListData is the payload for paginated entity lists
type ListData struct {
	Items  any   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// RespondSuccess writes a success envelope
func RespondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// RespondError writes an error envelope
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// RespondValidationError writes a 400 envelope carrying the per-field
// issues
func RespondValidationError(c *gin.Context, message string, issues []Issue) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: message, Issues: issues})
}
