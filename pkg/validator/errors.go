package validator

import "strings"

// Translation keys reported by the built-in rules. Catalogs are expected to
// provide a message per key; values referenced as {{placeholders}}.
const (
	KeyRequired         = "validation.required"
	KeyMinLength        = "validation.min_length"
	KeyMaxLength        = "validation.max_length"
	KeyInvalidFormat    = "validation.invalid_format"
	KeyDangerousContent = "validation.dangerous_content"
	KeyFileRequired     = "validation.file_required"
	KeyFileTooLarge     = "validation.file_too_large"
	KeyInvalidFileType  = "validation.invalid_file_type"
)

// ValidationError describes a single field failure with enough data to
// produce a localized message.
type ValidationError struct {
	TranslationValues map[string]any
	Field             string
	Message           string
	TranslationKey    string
}

// ValidationErrors is a collection of field failures. It implements error so
// it can travel through normal error returns.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Field+": "+ve.Message)
	}
	return strings.Join(msgs, "; ")
}

// IsEmpty reports whether the collection contains no errors.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Get returns the messages recorded for a field.
func (e ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, ve := range e {
		if ve.Field == field {
			msgs = append(msgs, ve.Message)
		}
	}
	return msgs
}

// GetErrors returns the full errors recorded for a field.
func (e ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, ve := range e {
		if ve.Field == field {
			out = append(out, ve)
		}
	}
	return out
}

// Fields returns a field→first-message map, the shape API responses use.
func (e ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, ve := range e {
		if _, ok := out[ve.Field]; !ok {
			out[ve.Field] = ve.Message
		}
	}
	return out
}

// TranslateFunc produces a localized message for a translation key and its
// interpolation values. i18n.Translator.TranslateMessage satisfies this.
type TranslateFunc func(key string, values map[string]any) string

// Translate rewrites Message in-place for every error that carries a
// TranslationKey. Errors without a key keep their original message.
// A nil fn is a no-op.
func (e ValidationErrors) Translate(fn TranslateFunc) {
	if fn == nil {
		return
	}
	for i := range e {
		if e[i].TranslationKey == "" {
			continue
		}
		e[i].Message = fn(e[i].TranslationKey, e[i].TranslationValues)
	}
}
