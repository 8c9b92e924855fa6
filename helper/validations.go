package helper

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"auth-rest-api/dto/req"
	"auth-rest-api/dto/res"
	"github.com/go-playground/validator/v10"
)

var (
	// Loose E.164-style check, enough to reject obvious junk without
	// refusing real mobile numbers.
	phoneRegex = regexp.MustCompile(`^\+?[1-9][0-9]{7,14}$`)

	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	numberRegex  = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*]`)
)

// An empty field breaks its length or format rule too, but the validator
// never reaches that tag once required fails. These are the messages to
// report alongside each field's required violation.
var requiredImplies = map[string]string{
	"name":    "Name must be between 2 and 50 characters",
	"email":   "Invalid email format",
	"phone":   "Invalid phone number",
	"address": "Address must be between 5 and 200 characters",
}

var validationMessages = map[string]string{
	"name.required":    "Name is required",
	"name.min":         "Name must be between 2 and 50 characters",
	"name.max":         "Name must be between 2 and 50 characters",
	"email.required":   "Email is required",
	"email.email":      "Invalid email format",
	"phone.required":   "Phone number is required",
	"phone.phone":      "Invalid phone number",
	"address.required": "Address is required",
	"address.min":      "Address must be between 5 and 200 characters",
	"address.max":      "Address must be between 5 and 200 characters",
}

// NewValidator builds the validator used against the registration payload.
// Field names in violations come from the json tag, and the custom "phone"
// rule backs the phone field tag.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return validate
}

// ValidateRegister normalizes the payload in place and returns the ordered
// violation list, one entry per broken rule. An empty result means the
// payload passed every field rule; uniqueness is checked separately against
// the store.
func ValidateRegister(validate *validator.Validate, request *req.RegisterRequest) []res.FieldError {
	normalize(request)

	var violations []res.FieldError
	if err := validate.Struct(request); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldError := range validationErrors {
				violations = append(violations, res.FieldError{
					Field:   fieldError.Field(),
					Message: messageFor(fieldError),
				})
				if fieldError.Tag() == "required" {
					if message, ok := requiredImplies[fieldError.Field()]; ok {
						violations = append(violations, res.FieldError{
							Field:   fieldError.Field(),
							Message: message,
						})
					}
				}
			}
		}
	}

	return append(violations, passwordViolations(request.Password)...)
}

func normalize(request *req.RegisterRequest) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Address = strings.TrimSpace(request.Address)
}

func messageFor(fieldError validator.FieldError) string {
	if message, ok := validationMessages[fieldError.Field()+"."+fieldError.Tag()]; ok {
		return message
	}
	return fieldError.Error()
}

// The password rules are checked one by one so that every missing character
// class shows up as its own violation.
func passwordViolations(password string) []res.FieldError {
	var violations []res.FieldError
	add := func(message string) {
		violations = append(violations, res.FieldError{Field: "password", Message: message})
	}

	if password == "" {
		add("Password is required")
	}
	if utf8.RuneCountInString(password) < 8 {
		add("Password must be at least 8 characters long")
	}
	if !upperRegex.MatchString(password) {
		add("Password must contain at least one uppercase letter")
	}
	if !lowerRegex.MatchString(password) {
		add("Password must contain at least one lowercase letter")
	}
	if !numberRegex.MatchString(password) {
		add("Password must contain at least one number")
	}
	if !specialRegex.MatchString(password) {
		add("Password must contain at least one special character")
	}
	return violations
}
