package delivery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oneshotleague/formrelay/pkg/form"
)

// defaultWebhookTimeout bounds the outbound call when no client is supplied.
const defaultWebhookTimeout = 30 * time.Second

// maxWebhookResponse caps how much of the webhook's response body is read
// before the connection is released.
const maxWebhookResponse = 64 * 1024

// Webhook forwards submissions as multipart POST requests to a configured
// URL, mirroring the payload the relay endpoint itself accepts.
type Webhook struct {
	client *http.Client
	url    string
}

// NewWebhook creates a webhook deliverer.
// Fails with ErrConfiguration when the URL is unset.
// A nil client gets a default with a 30s timeout.
func NewWebhook(url string, client *http.Client) (*Webhook, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: webhook URL is not set", ErrConfiguration)
	}
	if client == nil {
		client = &http.Client{Timeout: defaultWebhookTimeout}
	}
	return &Webhook{url: url, client: client}, nil
}

// Deliver implements Deliverer. The submission is re-encoded into the same
// multipart layout it arrived in and POSTed to the webhook; the webhook's
// verdict maps to a generic success or ErrUpstream.
func (w *Webhook) Deliver(ctx context.Context, sub form.Submission) error {
	var body bytes.Buffer
	contentType, err := form.Encode(sub, &body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, &body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	// Drain a bounded amount so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxWebhookResponse))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return nil
}
