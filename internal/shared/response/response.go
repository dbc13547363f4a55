package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/shared/apierr"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
	Total int `json:"total"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// FromError maps a structured failure onto the HTTP envelope. Validation
// failures carry their field errors in Details so forms can render
// per-field helper text.
func FromError(c *gin.Context, err error) {
	apiErr, ok := apierr.From(err)
	if !ok {
		InternalServerError(c, err.Error())
		return
	}

	switch apiErr.Kind {
	case apierr.KindNotFound:
		NotFound(c, apiErr.Message)
	case apierr.KindValidation:
		ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", apiErr.Message, apiErr.FieldErrors)
	case apierr.KindBadRequest:
		BadRequest(c, apiErr.Message)
	case apierr.KindUnauthorized:
		Unauthorized(c, apiErr.Message)
	case apierr.KindNotImplemented:
		ErrorResponse(c, http.StatusNotImplemented, "NOT_IMPLEMENTED", apiErr.Message)
	default:
		InternalServerError(c, apiErr.Message)
	}
}
