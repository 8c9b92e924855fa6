package exception

import (
	"auth-rest-api/dto/res"
	"github.com/gofiber/fiber/v2"
)

// HTTPError is implemented by every error kind the API can answer with.
// Anything else falls through to a generic 500 in the error handler.
type HTTPError interface {
	error
	StatusCode() int
}

// ValidationError carries the full violation list, one entry per broken rule.
type ValidationError struct {
	Errors []res.FieldError
}

func NewValidationError(errors []res.FieldError) *ValidationError {
	return &ValidationError{Errors: errors}
}

func (e *ValidationError) Error() string {
	return "Validation failed!"
}

func (e *ValidationError) StatusCode() int {
	return fiber.StatusBadRequest
}

// DuplicateUserError covers both the advisory pre-check hit and the
// authoritative unique-index conflict raised by the database on insert.
type DuplicateUserError struct{}

func NewDuplicateUserError() *DuplicateUserError {
	return &DuplicateUserError{}
}

func (e *DuplicateUserError) Error() string {
	return "User already exists!"
}

func (e *DuplicateUserError) StatusCode() int {
	return fiber.StatusBadRequest
}

// UploadError rejects the profile image: wrong type, oversized, missing, or
// an I/O failure while storing it.
type UploadError struct {
	Reason string
}

func NewUploadError(reason string) *UploadError {
	return &UploadError{Reason: reason}
}

func (e *UploadError) Error() string {
	return e.Reason
}

func (e *UploadError) StatusCode() int {
	return fiber.StatusBadRequest
}
