package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"statusCode" example:"200"`
	Message    string      `json:"message,omitempty" example:"ok"`
	Code       string      `json:"code,omitempty" example:"NOT_FOUND"`
	Data       interface{} `json:"data,omitempty"`
}

// Success sends a 200 OK response with data and an optional message
func Success(c *gin.Context, data interface{}, message ...string) {
	send(c, http.StatusOK, data, message...)
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}, message ...string) {
	send(c, http.StatusCreated, data, message...)
}

func send(c *gin.Context, status int, data interface{}, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}

	c.JSON(status, APIResponse{
		Success:    true,
		StatusCode: status,
		Message:    msg,
		Data:       data,
	})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, APIResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	})
}

// ErrorWithData is Error with an extra payload, used by the rate limiter
func ErrorWithData(c *gin.Context, statusCode int, message, errorCode string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Code:       errorCode,
		Data:       data,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// ServiceUnavailable sends a 503 Service Unavailable error
func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request body
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// FromError translates a service error into the matching status and code.
// Conflicts answer 400 like validation failures; the code tells them apart.
func FromError(c *gin.Context, err error) {
	message := apperrors.Message(err)

	switch apperrors.KindOf(err) {
	case apperrors.ErrValidation:
		BadRequest(c, message, "VALIDATION_FAILED")
	case apperrors.ErrConflict:
		BadRequest(c, message, "CONFLICT")
	case apperrors.ErrUnauthenticated:
		Unauthorized(c, message, "AUTH_FAILED")
	case apperrors.ErrForbidden:
		Forbidden(c, message, "FORBIDDEN")
	case apperrors.ErrNotFound:
		NotFound(c, message, "NOT_FOUND")
	default:
		BadRequest(c, message, "INVALID_REQUEST")
	}
}
