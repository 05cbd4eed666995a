// Package response renders the JSON envelopes shared by every API endpoint.
package response

import (
	"net/http"

	"billing/internal/delivery/api/validator"
	deliverycontext "billing/internal/delivery/context"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_ERROR"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Only rendered for client errors other than 401/403
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error returns an error response. Details never leave the service on server errors or on
// authentication and authorization failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	switch {
	case statusCode >= http.StatusInternalServerError,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError reports a body that could not be decoded into the request struct.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// ValidationError reports failed `validate` tags, one detail entry per field.
func ValidationError(c echo.Context, err error) error {
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		return Error(c, http.StatusBadRequest, "VALIDATION_ERROR", fieldErrs.Error(), []string(fieldErrs))
	}

	return BadRequest(c, "VALIDATION_ERROR", err.Error())
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}

// HandleAppError renders client-side domain errors directly. Server errors and errors
// outside the domain taxonomy are returned to the central handler, which logs them.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
