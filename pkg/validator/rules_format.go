package validator

import (
	"regexp"

	"github.com/oneshotleague/formrelay/pkg/sanitizer"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Optional leading +, first character a digit, then at least seven more
	// characters drawn from digits, spaces, parentheses, and hyphens.
	phonePattern = regexp.MustCompile(`^\+?\d[\d\s()-]{7,}$`)

	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// EmailString fails when the value is not a syntactically valid email address.
// Empty values pass; combine with RequiredString for mandatory fields.
func EmailString(field, value string) Rule {
	return Rule{
		Failed: value != "" && !emailPattern.MatchString(value),
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    KeyInvalidFormat,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// PhoneString fails when the value is not a plausible phone number.
func PhoneString(field, value string) Rule {
	return Rule{
		Failed: value != "" && !phonePattern.MatchString(value),
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid phone number",
			TranslationKey:    KeyInvalidFormat,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// DigitsString fails when the value contains anything but decimal digits.
func DigitsString(field, value string) Rule {
	return Rule{
		Failed: value != "" && !digitsPattern.MatchString(value),
		Error: ValidationError{
			Field:             field,
			Message:           "must contain digits only",
			TranslationKey:    KeyInvalidFormat,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// SafeString fails when the value trips the injection-indicator screen.
// See sanitizer.IsSafe for the exact pattern set.
func SafeString(field, value string) Rule {
	return Rule{
		Failed: !sanitizer.IsSafe(value),
		Error: ValidationError{
			Field:             field,
			Message:           "contains disallowed content",
			TranslationKey:    KeyDangerousContent,
			TranslationValues: map[string]any{"field": field},
		},
	}
}
