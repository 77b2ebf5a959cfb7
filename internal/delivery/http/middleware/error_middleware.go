package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/i18n"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error through the unified response envelope.
// Message text comes from the locale catalog, keyed by the error's message key.
type ErrorMiddleware struct {
	logger  *slog.Logger
	catalog *i18n.Catalog
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, catalog *i18n.Catalog) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		catalog: catalog,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := m.catalog.Resolve(appErr.MessageKey(), appErr.Params())
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("errorCode", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), message)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		_ = response.Error(c, httpErr.Code, message)

		return
	}

	// Anything unanticipated stays request-local and renders as a generic 500.
	m.logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	message := m.catalog.Resolve(domainerrors.ErrInternalError.MessageKey(), nil)
	_ = response.Error(c, http.StatusInternalServerError, message)
}
