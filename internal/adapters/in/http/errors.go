package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"deliverysystem/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error to its HTTP status. Unknown errors are 500.
func statusFor(err error) int {
	var (
		httpErr       *echo.HTTPError
		validationErr validator.ValidationErrors
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &validationErr), errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrPolicyViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusFor(err)
	message := messageFor(err, status)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, ErrorResponse{Code: status, Message: message})
	}
	if writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
	}
}

func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		fields := make([]string, 0, len(validationErr))
		for _, fe := range validationErr {
			fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return "invalid request: " + strings.Join(fields, "; ")
	}

	return err.Error()
}

func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
