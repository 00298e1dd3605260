// Package smtp implements mailer.Sender over an SMTP transport using
// go-mail. Supports implicit TLS (port 465) and mandatory STARTTLS upgrades.
package smtp

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/oneshotleague/formrelay/pkg/mailer"
)

// Sender implements mailer.Sender over SMTP.
type Sender struct {
	config Config
}

// New creates a new SMTP sender. The config must be validated beforehand;
// see Config.Validate.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender.
// The context bounds the whole dial-and-send exchange.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := buildMessage(s.config, email)
	if err != nil {
		return fmt.Errorf("smtp: failed to build message: %w", err)
	}

	client, err := s.client()
	if err != nil {
		return fmt.Errorf("smtp: failed to configure client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: delivery failed: %w", err)
	}
	return nil
}

// client builds a go-mail client for the configured transport. Secure mode
// means implicit TLS from the first byte; otherwise STARTTLS is mandatory.
func (s *Sender) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.config.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.config.Username),
		gomail.WithPassword(s.config.Password),
	}
	if s.config.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	return gomail.NewClient(s.config.Host, opts...)
}

// buildMessage maps a mailer.Email onto a go-mail message. Address fields
// accept both bare addresses and "Name <addr>" forms.
func buildMessage(cfg Config, email *mailer.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	from := email.From
	if from == "" {
		from = mailer.Recipient(cfg.SenderName, cfg.Username)
	}
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if len(email.CC) > 0 {
		if err := msg.Cc(email.CC...); err != nil {
			return nil, fmt.Errorf("invalid cc recipient: %w", err)
		}
	}
	if len(email.BCC) > 0 {
		if err := msg.Bcc(email.BCC...); err != nil {
			return nil, fmt.Errorf("invalid bcc recipient: %w", err)
		}
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to %q: %w", email.ReplyTo, err)
		}
	}

	msg.Subject(email.Subject)

	// A plain-text part, when present, becomes the base with HTML as the
	// preferred alternative.
	if email.Text != "" {
		msg.SetBodyString(gomail.TypeTextPlain, email.Text)
		if email.HTML != "" {
			msg.AddAlternativeString(gomail.TypeTextHTML, email.HTML)
		}
	} else {
		msg.SetBodyString(gomail.TypeTextHTML, email.HTML)
	}

	for k, v := range email.Headers {
		msg.SetGenHeader(gomail.Header(k), v)
	}

	for _, att := range email.Attachments {
		if err := msg.AttachReader(att.Filename, bytes.NewReader(att.Content),
			gomail.WithFileContentType(gomail.ContentType(att.ContentType))); err != nil {
			return nil, fmt.Errorf("failed to attach %q: %w", att.Filename, err)
		}
	}

	return msg, nil
}
