package http

import (
	"errors"
	"net/http"

	"nexa/internal/core/application/usecases/commands"
	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/generated/servers"
	"nexa/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// statusOf maps application errors to HTTP status codes. ErrOrderNotSaved is checked
// first because it wraps the store error, which may carry any sentinel.
func statusOf(err error) int {
	switch {
	case errors.Is(err, commands.ErrOrderNotSaved):
		return http.StatusInternalServerError
	case errors.Is(err, order.ErrDraftIncomplete),
		errors.Is(err, checkout.ErrDeliveryDateDisabled),
		errors.Is(err, commands.ErrDeleteNotConfirmed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, admin.ErrInvalidPassphrase),
		errors.Is(err, admin.ErrSessionExpired),
		errors.Is(err, errUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageOf hides the cause of internal failures. A failed order save shows only the
// customer facing text.
func messageOf(err error, status int) string {
	switch {
	case errors.Is(err, commands.ErrOrderNotSaved):
		return commands.ErrOrderNotSaved.Error()
	case errors.Is(err, errUnauthorized):
		return errUnauthorized.Error()
	case status == http.StatusInternalServerError:
		return internalErrorMessage
	default:
		return err.Error()
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: messageOf(err, status),
	})
}

// ErrorHandler renders errors returned outside the handlers (routing, parameter
// binding, middleware) in the same body shape as handler errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := internalErrorMessage

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, servers.Error{Code: status, Message: message})
}
