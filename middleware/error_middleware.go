package middleware

import (
	"errors"

	"auth-rest-api/dto/res"
	"auth-rest-api/exception"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// ErrorHandler is the single sink for every failure in the pipeline. It is
// wired into fiber.Config, so any error returned from a handler or
// middleware ends up here exactly once.
func (middleware *Middleware) ErrorHandler(c *fiber.Ctx, err error) error {
	statusCode := fiber.StatusInternalServerError
	message := "Internal Server Error"
	var fieldErrors []res.FieldError

	var httpErr exception.HTTPError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &httpErr):
		statusCode = httpErr.StatusCode()
		message = httpErr.Error()
		var validationErr *exception.ValidationError
		if errors.As(err, &validationErr) {
			fieldErrors = validationErr.Errors
		}
	case errors.Is(err, fasthttp.ErrBodyTooLarge) || errors.Is(err, fiber.ErrRequestEntityTooLarge):
		// Over-limit bodies that fail outside the upload middleware still
		// answer like an oversized upload, not a bare 413.
		statusCode = fiber.StatusBadRequest
		message = "File too large (max 5MB)"
	case errors.As(err, &fiberErr):
		statusCode = fiberErr.Code
		message = fiberErr.Message
	}

	middleware.Log.WithError(err).Errorf("%s %s failed with status %d", c.Method(), c.Path(), statusCode)

	response := res.ErrorResponse{
		Success: false,
		Message: message,
		Errors:  fieldErrors,
	}
	// Never expose internals in production; a short debug string is fine
	// everywhere else.
	if !middleware.Config.IsProduction() {
		response.Debug = err.Error()
	}
	return c.Status(statusCode).JSON(response)
}
