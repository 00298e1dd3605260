package formclient

import "errors"

var (
	// ErrInvalidState is returned by BuildPayload when the form has not been
	// successfully validated since its last mutation.
	ErrInvalidState = errors.New("formclient: form not validated")

	// ErrUnknownField is returned when setting a field the active variant
	// does not have.
	ErrUnknownField = errors.New("formclient: unknown field")

	// ErrSubmitInProgress is returned when a submit is attempted while a
	// previous one is still running.
	ErrSubmitInProgress = errors.New("formclient: submit already in progress")

	// ErrSubmitFailed is returned when the relay endpoint rejects the
	// submission or cannot be reached.
	ErrSubmitFailed = errors.New("formclient: submit failed")
)
