package smtp

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneshotleague/formrelay/pkg/mailer"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := Config{Host: "smtp.example.com", Username: "relay@example.com", Password: "secret"}
	assert.NoError(t, valid.Validate())

	for _, cfg := range []Config{
		{Username: "relay@example.com", Password: "secret"},
		{Host: "smtp.example.com", Password: "secret"},
		{Host: "smtp.example.com", Username: "relay@example.com"},
	} {
		assert.ErrorIs(t, cfg.Validate(), ErrMissingConfig)
	}
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Host:       "smtp.example.com",
		Username:   "relay@example.com",
		Password:   "secret",
		SenderName: "Form Relay",
	}

	render := func(t *testing.T, email *mailer.Email) string {
		t.Helper()
		msg, err := buildMessage(cfg, email)
		require.NoError(t, err)
		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)
		return buf.String()
	}

	t.Run("uses configured sender when From is empty", func(t *testing.T) {
		t.Parallel()
		raw := render(t, &mailer.Email{
			To:      []string{"team@example.com"},
			Subject: "New participant application",
			HTML:    "<p>hello</p>",
		})

		assert.Contains(t, raw, "From: \"Form Relay\" <relay@example.com>")
		assert.Contains(t, raw, "To: <team@example.com>")
		assert.Contains(t, raw, "Subject: New participant application")
		assert.Contains(t, raw, "text/html")
	})

	t.Run("explicit From overrides the configured sender", func(t *testing.T) {
		t.Parallel()
		raw := render(t, &mailer.Email{
			From:    "Alerts <alerts@example.com>",
			To:      []string{"team@example.com"},
			Subject: "s",
			HTML:    "<p>x</p>",
		})

		assert.Contains(t, raw, "alerts@example.com")
		assert.NotContains(t, raw, "From: \"Form Relay\"")
	})

	t.Run("plain text becomes the alternative base", func(t *testing.T) {
		t.Parallel()
		raw := render(t, &mailer.Email{
			To:      []string{"team@example.com"},
			Subject: "s",
			Text:    "plain fallback",
			HTML:    "<p>rich</p>",
		})

		assert.Contains(t, raw, "multipart/alternative")
		assert.Contains(t, raw, "text/plain")
		assert.Contains(t, raw, "text/html")
		assert.Contains(t, raw, "plain fallback")
	})

	t.Run("reply-to and cc recipients", func(t *testing.T) {
		t.Parallel()
		raw := render(t, &mailer.Email{
			To:      []string{"team@example.com"},
			CC:      []string{"coach@example.com"},
			ReplyTo: "applicant@example.com",
			Subject: "s",
			HTML:    "<p>x</p>",
		})

		assert.Contains(t, raw, "Cc: <coach@example.com>")
		assert.Contains(t, raw, "Reply-To: <applicant@example.com>")
	})

	t.Run("attachments are base64 encoded with their media type", func(t *testing.T) {
		t.Parallel()
		content := []byte("%PDF-1.4 fake resume")
		raw := render(t, &mailer.Email{
			To:      []string{"team@example.com"},
			Subject: "s",
			HTML:    "<p>x</p>",
			Attachments: []mailer.Attachment{
				{Filename: "resume.pdf", ContentType: "application/pdf", Content: content},
			},
		})

		assert.Contains(t, raw, "resume.pdf")
		assert.Contains(t, raw, "application/pdf")
		assert.Contains(t, raw, base64.StdEncoding.EncodeToString(content))
	})

	t.Run("rejects a malformed recipient", func(t *testing.T) {
		t.Parallel()
		_, err := buildMessage(cfg, &mailer.Email{
			To:      []string{"not-an-address"},
			Subject: "s",
			HTML:    "<p>x</p>",
		})
		require.Error(t, err)
	})
}
