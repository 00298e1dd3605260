// Package validator provides eager, allocation-light validation rules with
// stable translation keys for localized error messages.
//
// Rules are plain values constructed from the data they check:
//
//	err := validator.Apply(
//		validator.RequiredString("email", form.Email),
//		validator.MinLenString("about", form.About, 10),
//	)
//
// Apply collects every failing rule into ValidationErrors, so callers always
// see the full set of problems, not just the first one.
package validator

import "errors"

// Rule is a single validation check that has already been evaluated.
// Error carries the field, message, and translation data regardless of
// outcome; Failed determines whether it is reported.
type Rule struct {
	Error  ValidationError
	Failed bool
}

// Apply collects all failed rules into a ValidationErrors error.
// Returns nil when every rule passed.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Failed {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IsValidationError reports whether err is (or wraps) ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err,
// or nil if err is not a validation error.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
