// Package validator adapts go-playground/validator to Echo's Validator
// interface and registers the project's custom rules.
package validator

import (
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New constructs the validator with the custom rules registered.
func New() *CustomValidator {
	v := validator.New()

	// Mobile phone numbers are exactly 11 digits.
	_ = v.RegisterValidation("mobilephone", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != 11 {
			return false
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}

		return true
	})

	// Postal codes follow the NNNNN-NNN pattern.
	_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != 9 || value[5] != '-' {
			return false
		}
		for i, r := range value {
			if i == 5 {
				continue
			}
			if r < '0' || r > '9' {
				return false
			}
		}

		return true
	})

	// Birth dates must lie in the past.
	_ = v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		date, ok := fl.Field().Interface().(time.Time)

		return ok && date.Before(time.Now())
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Rule violations surface as the generic
// validation-failed error carrying the offending field.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			return domainerrors.ErrValidationFailed.With("field", fieldErrors[0].Field())
		}

		return domainerrors.ErrValidationFailed
	}

	return nil
}
