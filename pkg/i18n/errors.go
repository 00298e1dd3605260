package i18n

import "errors"

var (
	// ErrEmptyLanguage indicates a language code was required but empty.
	ErrEmptyLanguage = errors.New("language cannot be empty")

	// ErrInvalidFile indicates a catalog file could not be parsed.
	ErrInvalidFile = errors.New("invalid translation file")
)
