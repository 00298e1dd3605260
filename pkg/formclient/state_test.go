package formclient_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneshotleague/formrelay/pkg/form"
	"github.com/oneshotleague/formrelay/pkg/formclient"
	"github.com/oneshotleague/formrelay/pkg/validator"
)

func pdf(name string) *form.Attachment {
	return &form.Attachment{
		Filename:    name,
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 " + name),
	}
}

func fillParticipant(t *testing.T, s *formclient.FormState) {
	t.Helper()

	for name, value := range map[string]string{
		"name":     "Jane Fighter",
		"location": "Kyiv",
		"phone":    "+380501234567",
		"email":    "jane@example.com",
		"height":   "170",
		"weight":   "60",
		"skills":   "boxing",
		"about":    "Ten years of competitive combat sports experience.",
	} {
		require.NoError(t, s.SetField(name, value))
	}
	require.NoError(t, s.SetAttachment("resume", pdf("resume.pdf")))
	require.NoError(t, s.SetAttachment("medical", pdf("medical.pdf")))
}

func TestFormState(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown variant", func(t *testing.T) {
		t.Parallel()

		_, err := formclient.NewFormState(form.Type("volunteers"))
		assert.ErrorIs(t, err, form.ErrUnsupportedFormType)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		s, err := formclient.NewFormState(form.TypeSponsors)
		require.NoError(t, err)

		assert.ErrorIs(t, s.SetField("about", "x"), formclient.ErrUnknownField)
		assert.ErrorIs(t, s.SetAttachment("resume", pdf("r.pdf")), formclient.ErrUnknownField)
	})

	t.Run("build without validate fails", func(t *testing.T) {
		t.Parallel()

		s, err := formclient.NewFormState(form.TypeParticipants)
		require.NoError(t, err)
		fillParticipant(t, s)

		_, err = s.BuildPayload(&bytes.Buffer{})
		assert.ErrorIs(t, err, formclient.ErrInvalidState)
	})

	t.Run("build after clean validate succeeds", func(t *testing.T) {
		t.Parallel()

		s, err := formclient.NewFormState(form.TypeParticipants)
		require.NoError(t, err)
		fillParticipant(t, s)

		require.True(t, s.Validate().IsEmpty())

		var buf bytes.Buffer
		contentType, err := s.BuildPayload(&buf)
		require.NoError(t, err)
		assert.Contains(t, contentType, "multipart/form-data")

		// The payload must round-trip through the wire decoder.
		assert.Positive(t, buf.Len())
	})

	t.Run("mutation invalidates prior validation", func(t *testing.T) {
		t.Parallel()

		s, err := formclient.NewFormState(form.TypeParticipants)
		require.NoError(t, err)
		fillParticipant(t, s)
		require.True(t, s.Validate().IsEmpty())

		require.NoError(t, s.SetField("about", "short"))

		_, err = s.BuildPayload(&bytes.Buffer{})
		assert.ErrorIs(t, err, formclient.ErrInvalidState)

		ve := s.Validate()
		assert.NotEmpty(t, ve.Get("about"))
	})

	t.Run("reset clears fields and revalidation reports required", func(t *testing.T) {
		t.Parallel()

		s, err := formclient.NewFormState(form.TypeParticipants)
		require.NoError(t, err)
		fillParticipant(t, s)
		require.True(t, s.Validate().IsEmpty())

		s.Reset()

		ve := s.Validate()
		fields := ve.Fields()
		for _, field := range []string{"name", "location", "phone", "email", "height", "weight", "skills", "about", "resume", "medical"} {
			assert.Contains(t, fields, field)
		}
		assert.NotContains(t, fields, "social", "optional field must not be required after reset")
	})

	t.Run("validate is idempotent", func(t *testing.T) {
		t.Parallel()

		s, err := formclient.NewFormState(form.TypeSponsors)
		require.NoError(t, err)

		first := s.Validate()
		second := s.Validate()
		assert.Equal(t, first, second)
	})

	t.Run("translate func localizes errors", func(t *testing.T) {
		t.Parallel()

		s, err := formclient.NewFormState(form.TypeSponsors, formclient.WithTranslateFunc(
			func(key string, _ map[string]any) string { return "tr:" + key },
		))
		require.NoError(t, err)

		ve := s.Validate()
		require.NotEmpty(t, ve)
		assert.Equal(t, "tr:"+validator.KeyRequired, ve.Fields()["company"])
	})
}
