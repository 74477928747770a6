package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the only accepted date format for request parameters.
const DateLayout = "2006-01-02"

// ValidationError represents a field-level validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface
func (ve *ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	if len(ve.Errors) == 1 {
		return ve.Errors[0].Message
	}
	return fmt.Sprintf("validation failed with %d errors", len(ve.Errors))
}

// HasErrors returns true if there are validation errors
func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Add adds a validation error
func (ve *ValidationErrors) Add(field, message string) {
	ve.Errors = append(ve.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Validator provides common validation methods
type Validator struct {
	errors ValidationErrors
}

// New creates a new Validator instance
func New() *Validator {
	return &Validator{
		errors: ValidationErrors{Errors: []ValidationError{}},
	}
}

// Required validates that a field is not empty
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.errors.Add(field, fmt.Sprintf("%s is required", field))
	}
	return v
}

// MaxLength validates maximum string length
func (v *Validator) MaxLength(field, value string, max int) *Validator {
	if len(value) > max {
		v.errors.Add(field, fmt.Sprintf("%s must not exceed %d characters", field, max))
	}
	return v
}

// Date validates that a string is a YYYY-MM-DD calendar date. Empty values
// pass; pair with Required when the field is mandatory.
func (v *Validator) Date(field, value string) *Validator {
	if value == "" {
		return v
	}

	if _, err := time.Parse(DateLayout, value); err != nil {
		v.errors.Add(field, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return v
}

// GitURL validates that a string is a valid Git repository URL
func (v *Validator) GitURL(field, value string) *Validator {
	if value == "" {
		return v
	}

	// Support HTTP(S) and SSH Git URLs
	httpPattern := regexp.MustCompile(`^https?://[^/]+/.+\.git$|^https?://[^/]+/.+$`)
	sshPattern := regexp.MustCompile(`^git@[^:]+:.+\.git$|^ssh://git@[^/]+/.+$`)

	if !httpPattern.MatchString(value) && !sshPattern.MatchString(value) {
		v.errors.Add(field, fmt.Sprintf("%s must be a valid Git repository URL (HTTP(S) or SSH)", field))
	}
	return v
}

// GreaterThan validates that an integer exceeds a minimum
func (v *Validator) GreaterThan(field string, value, min int) *Validator {
	if value <= min {
		v.errors.Add(field, fmt.Sprintf("%s must be greater than %d", field, min))
	}
	return v
}

// InRange validates that an integer is within a range
func (v *Validator) InRange(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.errors.Add(field, fmt.Sprintf("%s must be between %d and %d", field, min, max))
	}
	return v
}

// ParseDate parses an already-validated date parameter. Returns nil for an
// empty value so optional filters stay optional.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	return &t, nil
}

// Validate returns the validation errors if any exist
func (v *Validator) Validate() error {
	if v.errors.HasErrors() {
		return &v.errors
	}
	return nil
}

// Errors returns the validation errors
func (v *Validator) Errors() *ValidationErrors {
	return &v.errors
}
