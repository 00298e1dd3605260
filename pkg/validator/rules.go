package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString fails when the trimmed value is empty.
func RequiredString(field, value string) Rule {
	return Rule{
		Failed: strings.TrimSpace(value) == "",
		Error: ValidationError{
			Field:             field,
			Message:           "is required",
			TranslationKey:    KeyRequired,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString fails when the value is shorter than min runes.
// Empty values pass; combine with RequiredString for mandatory fields.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Failed: value != "" && utf8.RuneCountInString(value) < min,
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    KeyMinLength,
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}

// MaxLenString fails when the value is longer than max runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Failed: utf8.RuneCountInString(value) > max,
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must not exceed %d characters", max),
			TranslationKey:    KeyMaxLength,
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}
