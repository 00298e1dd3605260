package form

import "errors"

var (
	// ErrUnsupportedFormType indicates an unrecognized discriminator value.
	ErrUnsupportedFormType = errors.New("unsupported form type")

	// ErrMalformedPayload indicates a multipart body that does not match the
	// expected field layout.
	ErrMalformedPayload = errors.New("malformed form payload")
)
