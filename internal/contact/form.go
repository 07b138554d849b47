// Package contact validates the storefront's contact form.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingAt    = errors.New("email must contain @")
	ErrMissingField = errors.New("required field is empty")
)

// Form is what the visitor typed into the contact section.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the email first so a malformed address is always reported
// as ErrMissingAt, then the presence of every field.
func Validate(f Form) error {
	if !strings.Contains(f.Email, "@") {
		return ErrMissingAt
	}
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrMissingField, strings.ToLower(verrs[0].Field()))
		}
		return fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	return nil
}

// IsZero reports whether the form is blank, i.e. cleared after a successful
// submission.
func (f Form) IsZero() bool {
	return f == Form{}
}
