package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match wrapped copies against their sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap attaches a cause to a sentinel without mutating it.
func Wrap(base *Error, err error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Err:     err,
	}
}

// Authentication and cart error types. Login failures share one generic
// message so responses never reveal whether the email exists.
var (
	ErrInvalidCredentials = New(http.StatusBadRequest, "Invalid email or password", nil)
	ErrMissingToken       = New(http.StatusUnauthorized, "Missing token", nil)
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid token", nil)
	ErrCartNotFound       = New(http.StatusNotFound, "Cart not found", nil)
	ErrStoreUnavailable   = New(http.StatusServiceUnavailable, "Store unavailable", nil)
)

// Respond writes err as a JSON response on the gin context. Errors that are
// not an *Error are reported as an internal server error.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = New(http.StatusInternalServerError, "Internal server error", err)
	}
	c.JSON(appErr.Code, gin.H{"message": appErr.Message})
}
