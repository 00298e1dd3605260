// Package delivery forwards validated submissions to the configured sink.
// Exactly one driver is active per deployment; the choice is made at startup
// from configuration, never per request.
package delivery

import (
	"context"
	"errors"

	"github.com/oneshotleague/formrelay/pkg/form"
)

// Deliverer hands a validated submission to an external sink.
// Implementations make a single synchronous attempt; retries are the
// submitting user's call, not ours.
type Deliverer interface {
	Deliver(ctx context.Context, sub form.Submission) error
}

var (
	// ErrConfiguration indicates required delivery settings are absent.
	// Raised at startup, never at request time.
	ErrConfiguration = errors.New("delivery: missing required configuration")

	// ErrUpstream indicates the outbound webhook answered with a non-2xx status.
	ErrUpstream = errors.New("delivery: upstream webhook rejected the request")

	// ErrDelivery indicates the mail transport failed to send.
	ErrDelivery = errors.New("delivery: failed to send submission")
)
