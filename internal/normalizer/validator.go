package normalizer

import (
	"errors"
	"fmt"

	"mbtatimes/internal/models"
)

// ErrMissingField is returned when a departure row lacks a required column.
var ErrMissingField = errors.New("missing required field")

// Validator checks that a trimmed row carries every required column.
type Validator struct {
	required []string
}

// NewValidator creates a validator for models.RequiredFields.
func NewValidator() *Validator {
	return &Validator{required: models.RequiredFields}
}

// Validate checks if the trimmed row meets requirements.
func (v *Validator) Validate(fields map[string]string) error {
	for _, name := range v.required {
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	return nil
}
