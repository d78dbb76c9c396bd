package response

import (
	"errors"
	"net/http"

	"cubo-pix-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Envelope carries the "ok" flag. Success bodies embed it so their own
// fields stay at the top level of the JSON object.
type Envelope struct {
	OK bool `json:"ok"`
}

// Success is the envelope value for successful responses.
var Success = Envelope{OK: true}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	RequestID string `json:"request_id"`
}

// OK sends a 200 response with body.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with body.
func Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Error:     appErr.Message,
			ErrorCode: appErr.Code,
			RequestID: getRequestID(c),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "Internal server error",
		ErrorCode: "SYS_000",
		RequestID: getRequestID(c),
	})
}

// AbortWithError sends an error response and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
