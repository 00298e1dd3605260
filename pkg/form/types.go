// Package form defines the contact-form submission variants, their
// validation schemas, and the multipart wire format shared by the client SDK
// and the relay endpoint.
package form

import (
	"github.com/oneshotleague/formrelay/pkg/validator"
)

// Type discriminates submission variants on the wire.
type Type string

const (
	// TypeParticipants is a league-participant application.
	TypeParticipants Type = "participants"

	// TypeSponsors is a sponsorship inquiry.
	TypeSponsors Type = "sponsors"
)

// TypeField is the multipart field carrying the discriminator.
const TypeField = "formType"

// ParseType validates a wire discriminator. Unrecognized values are rejected
// at the boundary rather than falling through.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeParticipants:
		return TypeParticipants, nil
	case TypeSponsors:
		return TypeSponsors, nil
	default:
		return "", ErrUnsupportedFormType
	}
}

// Attachment is an uploaded file held in memory. Files are capped at
// MaxFileSize, so buffering whole files is fine.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Meta returns the metadata view used by file validation rules.
// Nil-safe: a nil attachment yields a nil FileMeta.
func (a *Attachment) Meta() *validator.FileMeta {
	if a == nil {
		return nil
	}
	return &validator.FileMeta{
		Filename:    a.Filename,
		ContentType: a.ContentType,
		Size:        int64(len(a.Content)),
	}
}

// Submission is the sealed union of form variants. The relay endpoint and
// delivery formatting switch exhaustively over the two implementations.
type Submission interface {
	// Type returns the wire discriminator for this variant.
	Type() Type

	// Validate checks every field and reports all failures, not just the
	// first. Returns nil or validator.ValidationErrors.
	Validate() error

	isSubmission()
}

// Participant is an application to compete in the league.
type Participant struct {
	Name     string
	Location string
	Phone    string
	Email    string
	Social   string // optional
	Height   string // centimeters, digits only
	Weight   string // kilograms, digits only
	Skills   string
	About    string
	Resume   *Attachment
	Medical  *Attachment
}

func (*Participant) Type() Type    { return TypeParticipants }
func (*Participant) isSubmission() {}

// Sponsor is a sponsorship inquiry.
type Sponsor struct {
	Company     string
	Phone       string
	Email       string
	Description string
}

func (*Sponsor) Type() Type    { return TypeSponsors }
func (*Sponsor) isSubmission() {}
