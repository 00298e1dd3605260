package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultSubmitTimeout bounds a submit when the caller's client has none.
const defaultSubmitTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is read for diagnostics.
const maxErrorBody = 64 << 10

// SubmitError carries the relay endpoint's rejection details.
type SubmitError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *SubmitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("submit rejected (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("submit rejected (%d)", e.StatusCode)
}

func (e *SubmitError) Unwrap() error {
	return ErrSubmitFailed
}

// HTTPSubmitter posts payloads to the relay endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter creates a submitter for the given endpoint URL.
// A nil client gets a default with a 30s timeout.
func NewHTTPSubmitter(endpoint string, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = &http.Client{Timeout: defaultSubmitTimeout}
	}
	return &HTTPSubmitter{endpoint: endpoint, client: client}
}

// Submit posts the payload. Any 2xx response is success; anything else
// yields a SubmitError wrapping ErrSubmitFailed, with the server's field
// errors attached when present.
func (s *HTTPSubmitter) Submit(ctx context.Context, contentType string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	subErr := &SubmitError{StatusCode: resp.StatusCode}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
		if json.Unmarshal(data, &body) == nil {
			subErr.Message = body.Error
			subErr.Fields = body.Fields
		}
	}
	return subErr
}
