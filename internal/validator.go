package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
)

const maxUserAgentLength = 256

// Validator checks configuration values and mutation request structs against
// their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("headervalue", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	return &Validator{validate: v}
}

// ValidateRequest checks a mutation request before it is encoded.
// Failures are reported as encoding errors for the named operation.
func (v *Validator) ValidateRequest(operation string, req any) error {
	if req == nil {
		return pkgerrs.New(pkgerrs.KindEncoding, operation, "request cannot be nil", nil)
	}
	if err := v.validate.Struct(req); err != nil {
		return pkgerrs.New(pkgerrs.KindEncoding, operation, describe(err), err)
	}
	return nil
}

// ValidateConfig checks a configuration struct. The first failing field is
// reported as a ConfigError.
func (v *Validator) ValidateConfig(cfg any) error {
	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) && len(valErrs) > 0 {
		ve := valErrs[0]
		return &pkgerrs.ConfigError{Field: ve.Field(), Message: formatValidationError(ve)}
	}
	return &pkgerrs.ConfigError{Message: err.Error()}
}

// ValidateUserAgent validates the User-Agent string to prevent header injection attacks.
func (v *Validator) ValidateUserAgent(ua string) error {
	if len(ua) == 0 {
		return fmt.Errorf("user agent cannot be empty")
	}
	if strings.ContainsAny(ua, "\r\n") {
		return fmt.Errorf("user agent cannot contain newline characters")
	}
	if len(ua) > maxUserAgentLength {
		return fmt.Errorf("user agent too long (max %d characters)", maxUserAgentLength)
	}
	return nil
}

func describe(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err.Error()
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Field()+": "+formatValidationError(ve))
	}
	return strings.Join(messages, "; ")
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "required_without":
		return fmt.Sprintf("required when %s is empty", ve.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "gt", "gtfield":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "url", "http_url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "headervalue":
		return "cannot contain newline characters"
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
