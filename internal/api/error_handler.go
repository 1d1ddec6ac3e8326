package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

// errorBody is the canonical error envelope for all API errors.
type errorBody struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders field-level validation failures in the "errors" object.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, label, msg, fields := resolveError(err, log, c)
		_ = c.JSON(status, errorBody{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Status:    status,
			Error:     label,
			Message:   msg,
			Path:      c.Request().URL.Path,
			Errors:    fields,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string, map[string]string) {
	// Field-level validation failures carry a field→message map.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation Error", "field validation failed", ve.Fields
	}

	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), fmt.Sprintf("%v", he.Message), nil
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTaxTypeNotFound):
		return http.StatusNotFound, "Not Found", err.Error(), nil
	case errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateTaxType):
		return http.StatusConflict, "Conflict", err.Error(), nil
	case errors.Is(err, domain.ErrInvalidBaseValue),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidRegistration):
		return http.StatusBadRequest, "Bad Request", err.Error(), nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Unauthorized", "invalid credentials", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred", nil
}
