package form

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Encode writes a submission as a multipart/form-data body: one text part
// per field, files as binary parts with filename and declared media type,
// plus the formType discriminator part. Returns the Content-Type header
// value for the body.
func Encode(s Submission, w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)

	if err := mw.WriteField(TypeField, string(s.Type())); err != nil {
		return "", fmt.Errorf("encoding %s: %w", TypeField, err)
	}

	var err error
	switch sub := s.(type) {
	case *Participant:
		err = encodeParticipant(mw, sub)
	case *Sponsor:
		err = encodeSponsor(mw, sub)
	}
	if err != nil {
		return "", err
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finishing payload: %w", err)
	}

	return mw.FormDataContentType(), nil
}

func encodeParticipant(mw *multipart.Writer, p *Participant) error {
	fields := map[string]string{
		"name":     p.Name,
		"location": p.Location,
		"phone":    p.Phone,
		"email":    p.Email,
		"social":   p.Social,
		"height":   p.Height,
		"weight":   p.Weight,
		"skills":   p.Skills,
		"about":    p.About,
	}
	for _, name := range []string{"name", "location", "phone", "email", "social", "height", "weight", "skills", "about"} {
		if err := mw.WriteField(name, fields[name]); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
	}

	if err := writeFilePart(mw, "resume", p.Resume); err != nil {
		return err
	}
	return writeFilePart(mw, "medical", p.Medical)
}

func encodeSponsor(mw *multipart.Writer, s *Sponsor) error {
	fields := map[string]string{
		"company":     s.Company,
		"phone":       s.Phone,
		"email":       s.Email,
		"description": s.Description,
	}
	for _, name := range []string{"company", "phone", "email", "description"} {
		if err := mw.WriteField(name, fields[name]); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(mw *multipart.Writer, field string, a *Attachment) error {
	if a == nil {
		return nil
	}

	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(a.Filename)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", field, err)
	}
	if _, err := part.Write(a.Content); err != nil {
		return fmt.Errorf("encoding %s: %w", field, err)
	}
	return nil
}

// Decode reads a parsed multipart form back into a typed submission.
// The discriminator is checked first; unrecognized values fail with
// ErrUnsupportedFormType before any field is touched.
func Decode(mf *multipart.Form) (Submission, error) {
	typ, err := ParseType(formValue(mf, TypeField))
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeParticipants:
		return decodeParticipant(mf)
	case TypeSponsors:
		return &Sponsor{
			Company:     formValue(mf, "company"),
			Phone:       formValue(mf, "phone"),
			Email:       formValue(mf, "email"),
			Description: formValue(mf, "description"),
		}, nil
	}
	return nil, ErrUnsupportedFormType
}

func decodeParticipant(mf *multipart.Form) (*Participant, error) {
	resume, err := formFile(mf, "resume")
	if err != nil {
		return nil, err
	}
	medical, err := formFile(mf, "medical")
	if err != nil {
		return nil, err
	}

	return &Participant{
		Name:     formValue(mf, "name"),
		Location: formValue(mf, "location"),
		Phone:    formValue(mf, "phone"),
		Email:    formValue(mf, "email"),
		Social:   formValue(mf, "social"),
		Height:   formValue(mf, "height"),
		Weight:   formValue(mf, "weight"),
		Skills:   formValue(mf, "skills"),
		About:    formValue(mf, "about"),
		Resume:   resume,
		Medical:  medical,
	}, nil
}

func formValue(mf *multipart.Form, name string) string {
	if vs := mf.Value[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// formFile buffers an uploaded file. Reads are bounded: anything past
// MaxFileSize is cut off and later rejected by validation on size.
func formFile(mf *multipart.Form, name string) (*Attachment, error) {
	fhs := mf.File[name]
	if len(fhs) == 0 {
		return nil, nil
	}
	fh := fhs[0]

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrMalformedPayload, name, err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrMalformedPayload, name, err)
	}

	return &Attachment{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
