package delivery

import (
	"context"
	"log/slog"

	"github.com/oneshotleague/formrelay/pkg/form"
)

// Log records submissions instead of sending them anywhere.
// Development driver; keeps local setups credential-free.
type Log struct {
	log *slog.Logger
}

// NewLog creates a logging deliverer.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log}
}

// Deliver implements Deliverer.
func (d *Log) Deliver(ctx context.Context, sub form.Submission) error {
	switch s := sub.(type) {
	case *form.Participant:
		d.log.InfoContext(ctx, "participant submission received",
			slog.String("form_type", string(sub.Type())),
			slog.String("name", s.Name),
			slog.String("email", s.Email),
			slog.Bool("has_resume", s.Resume != nil),
			slog.Bool("has_medical", s.Medical != nil),
		)
	case *form.Sponsor:
		d.log.InfoContext(ctx, "sponsor submission received",
			slog.String("form_type", string(sub.Type())),
			slog.String("company", s.Company),
			slog.String("email", s.Email),
		)
	default:
		return form.ErrUnsupportedFormType
	}
	return nil
}
