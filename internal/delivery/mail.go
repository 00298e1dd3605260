package delivery

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/oneshotleague/formrelay/pkg/form"
	"github.com/oneshotleague/formrelay/pkg/mailer"
	"github.com/oneshotleague/formrelay/pkg/sanitizer"
)

//go:embed templates
var templatesFS embed.FS

// TemplatesFS returns the embedded notification templates, rooted so that
// template names resolve without the "templates/" prefix.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return sub
}

// Mail delivers submissions as notification emails to a fixed recipient.
// Message bodies come from the embedded markdown templates; formatting
// branches exhaustively on the submission variant.
type Mail struct {
	mailer    *mailer.Mailer
	recipient string
}

// NewMail creates a direct-mail deliverer.
// Fails with ErrConfiguration when the recipient is unset.
func NewMail(m *mailer.Mailer, recipient string) (*Mail, error) {
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient email is not set", ErrConfiguration)
	}
	return &Mail{mailer: m, recipient: recipient}, nil
}

// Deliver implements Deliverer.
func (d *Mail) Deliver(ctx context.Context, sub form.Submission) error {
	var params mailer.SendParams

	switch s := sub.(type) {
	case *form.Participant:
		params = d.participantEmail(s)
	case *form.Sponsor:
		params = d.sponsorEmail(s)
	default:
		return form.ErrUnsupportedFormType
	}

	if err := d.mailer.Send(ctx, params); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

func (d *Mail) participantEmail(p *form.Participant) mailer.SendParams {
	social := p.Social
	if social == "" {
		social = "Не указано"
	}

	var attachments []mailer.Attachment
	for _, att := range []struct {
		file     *form.Attachment
		fallback string
	}{
		{p.Resume, "resume.pdf"},
		{p.Medical, "medical.pdf"},
	} {
		// Attach only files that are present and non-empty.
		if att.file == nil || len(att.file.Content) == 0 {
			continue
		}
		filename := att.file.Filename
		if filename == "" {
			filename = att.fallback
		}
		contentType := att.file.ContentType
		if contentType == "" {
			contentType = "application/pdf"
		}
		attachments = append(attachments, mailer.Attachment{
			Filename:    filename,
			ContentType: contentType,
			Content:     att.file.Content,
		})
	}

	return mailer.SendParams{
		To:       d.recipient,
		Template: "participant.md",
		Data: map[string]string{
			"Name":     sanitizer.StripHTML(p.Name),
			"Location": sanitizer.StripHTML(p.Location),
			"Phone":    sanitizer.StripHTML(p.Phone),
			"Email":    sanitizer.StripHTML(p.Email),
			"Social":   sanitizer.StripHTML(social),
			"Height":   sanitizer.StripHTML(p.Height),
			"Weight":   sanitizer.StripHTML(p.Weight),
			"Skills":   sanitizer.StripHTML(p.Skills),
			"About":    sanitizer.StripHTML(p.About),
		},
		Attachments: attachments,
	}
}

func (d *Mail) sponsorEmail(s *form.Sponsor) mailer.SendParams {
	return mailer.SendParams{
		To:       d.recipient,
		Template: "sponsor.md",
		Data: map[string]string{
			"Company":     sanitizer.StripHTML(s.Company),
			"Phone":       sanitizer.StripHTML(s.Phone),
			"Email":       sanitizer.StripHTML(s.Email),
			"Description": sanitizer.StripHTML(s.Description),
		},
	}
}
