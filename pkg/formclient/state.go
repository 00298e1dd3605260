// Package formclient is the client SDK for the form relay endpoint. It
// tracks per-variant form state, runs the same validation schema the server
// enforces, and submits the multipart payload over HTTP.
package formclient

import (
	"fmt"
	"io"

	"github.com/oneshotleague/formrelay/pkg/form"
	"github.com/oneshotleague/formrelay/pkg/validator"
)

// FormState holds the in-progress values of one form variant together with
// the result of its last validation.
type FormState struct {
	variant   form.Type
	sub       form.Submission
	errors    validator.ValidationErrors
	validated bool
	translate validator.TranslateFunc
}

// StateOption configures a FormState.
type StateOption func(*FormState)

// WithTranslateFunc sets the function used to localize field errors.
// Without it, errors keep their built-in English messages.
func WithTranslateFunc(fn validator.TranslateFunc) StateOption {
	return func(s *FormState) {
		s.translate = fn
	}
}

// NewFormState creates an empty state for the given variant.
func NewFormState(variant form.Type, opts ...StateOption) (*FormState, error) {
	if _, err := form.ParseType(string(variant)); err != nil {
		return nil, err
	}
	s := &FormState{variant: variant}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s, nil
}

// Variant returns the form variant this state tracks.
func (s *FormState) Variant() form.Type {
	return s.variant
}

// Reset clears all field values, attachments, and recorded errors.
func (s *FormState) Reset() {
	switch s.variant {
	case form.TypeParticipants:
		s.sub = &form.Participant{}
	case form.TypeSponsors:
		s.sub = &form.Sponsor{}
	}
	s.errors = nil
	s.validated = false
}

// SetField sets a text field by its wire name. Any mutation invalidates the
// previous validation result.
func (s *FormState) SetField(name, value string) error {
	defer s.invalidate()

	switch v := s.sub.(type) {
	case *form.Participant:
		switch name {
		case "name":
			v.Name = value
		case "location":
			v.Location = value
		case "phone":
			v.Phone = value
		case "email":
			v.Email = value
		case "social":
			v.Social = value
		case "height":
			v.Height = value
		case "weight":
			v.Weight = value
		case "skills":
			v.Skills = value
		case "about":
			v.About = value
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	case *form.Sponsor:
		switch name {
		case "company":
			v.Company = value
		case "phone":
			v.Phone = value
		case "email":
			v.Email = value
		case "description":
			v.Description = value
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	return nil
}

// SetAttachment sets a file field by its wire name. Only the participant
// variant carries attachments.
func (s *FormState) SetAttachment(name string, att *form.Attachment) error {
	defer s.invalidate()

	p, ok := s.sub.(*form.Participant)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	switch name {
	case "resume":
		p.Resume = att
	case "medical":
		p.Medical = att
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

func (s *FormState) invalidate() {
	s.validated = false
	s.errors = nil
}

// Validate runs the full schema and records field errors. It is idempotent:
// repeated calls on unchanged values return the same result.
func (s *FormState) Validate() validator.ValidationErrors {
	if s.validated {
		return s.errors
	}

	err := s.sub.Validate()
	s.errors = validator.ExtractValidationErrors(err)
	if s.translate != nil {
		s.errors.Translate(s.translate)
	}
	s.validated = true
	return s.errors
}

// FieldErrors returns the field→message map from the last validation.
// An empty map means either a clean validation or none has run yet.
func (s *FormState) FieldErrors() map[string]string {
	return s.errors.Fields()
}

// Valid reports whether the last validation passed and is still current.
func (s *FormState) Valid() bool {
	return s.validated && s.errors.IsEmpty()
}

// BuildPayload writes the multipart payload to w and returns its content
// type. It refuses with ErrInvalidState unless the current values have been
// validated successfully.
func (s *FormState) BuildPayload(w io.Writer) (string, error) {
	if !s.Valid() {
		return "", ErrInvalidState
	}
	return form.Encode(s.sub, w)
}

// Submission returns the underlying submission for inspection.
func (s *FormState) Submission() form.Submission {
	return s.sub
}
