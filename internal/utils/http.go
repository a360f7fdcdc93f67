package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every REST body. Success responses carry Message and Data,
// failures carry Error and the HTTP status in Code.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    int         `json:"code,omitempty"`
}

var fallbackErrors = map[int]string{
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Resource not found",
	http.StatusConflict:            "Resource already exists",
	http.StatusInternalServerError: "Internal server error",
	http.StatusServiceUnavailable:  "Service unavailable",
}

// SuccessResponse writes data in a success envelope
func SuccessResponse(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// ErrorResponse writes a failure envelope. An empty message is replaced by the
// stock text for the status, or by http.StatusText when there is none.
func ErrorResponse(c echo.Context, status int, message string) error {
	if message == "" {
		message = fallbackErrors[status]
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return c.JSON(status, Envelope{Error: message, Code: status})
}
