package res

// FieldError is a single entry of the violation list returned when the
// registration payload fails validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Debug   string       `json:"debug,omitempty"`
}
