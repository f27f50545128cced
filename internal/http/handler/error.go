package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"contentsapi/internal/apperr"
	"contentsapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal errors. Detail is only populated for validation failures, where
// the offending document helps the caller debug their submission.
func writeError(c *fiber.Ctx, status int, code, message, detail string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Detail:  detail,
		},
	}
	return c.Status(status).JSON(res)
}

// writeAppError maps the pipeline error taxonomy onto HTTP statuses.
func writeAppError(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		detail := ""
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			detail = appErr.Detail
		}
		return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT", safeMessage(err), detail)
	case apperr.KindNotFound:
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contents record not found", "")
	case apperr.KindConflict:
		return writeError(c, fiber.StatusConflict, "CONFLICT", safeMessage(err), "")
	case apperr.KindCommunication:
		return writeError(c, fiber.StatusBadGateway, "STORE_UNAVAILABLE", safeMessage(err), "")
	case apperr.KindSerialization:
		return writeError(c, fiber.StatusInternalServerError, "RECORD_UNREADABLE", safeMessage(err), "")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
	}
}

// safeMessage surfaces the taxonomy message without the wrapped cause, so
// store-internal identifiers never leak to clients.
func safeMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Msg != "" {
		return appErr.Msg
	}
	return "request failed"
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors escaping the route handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request", "")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found", "")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed", "")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error", "")
		}
	}
}
