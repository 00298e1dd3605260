package formclient_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneshotleague/formrelay/pkg/form"
	"github.com/oneshotleague/formrelay/pkg/formclient"
	"github.com/oneshotleague/formrelay/pkg/validator"
)

// fakeSubmitter records submitted payloads and can block or fail on demand.
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{} // when set, Submit blocks until closed
}

func (f *fakeSubmitter) Submit(_ context.Context, contentType string, payload []byte) error {
	f.mu.Lock()
	f.calls++
	release := f.release
	err := f.err
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	return err
}

func (f *fakeSubmitter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestOrchestrator(t *testing.T) {
	t.Parallel()

	t.Run("invalid form never reaches the network", func(t *testing.T) {
		t.Parallel()

		sub := &fakeSubmitter{}
		o, err := formclient.NewOrchestrator(sub)
		require.NoError(t, err)

		require.NoError(t, o.State().SetField("about", "short"))

		err = o.Submit(context.Background())
		require.Error(t, err)

		var ve validator.ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.NotEmpty(t, ve.Get("about"))
		assert.Zero(t, sub.Calls())

		// Validation failure returns to Idle; errors travel in the return value.
		assert.Equal(t, formclient.PhaseIdle, o.Phase())
	})

	t.Run("successful submit resets active state", func(t *testing.T) {
		t.Parallel()

		sub := &fakeSubmitter{}
		o, err := formclient.NewOrchestrator(sub)
		require.NoError(t, err)

		fillParticipant(t, o.State())

		require.NoError(t, o.Submit(context.Background()))
		assert.Equal(t, formclient.PhaseSuccess, o.Phase())
		assert.Equal(t, 1, sub.Calls())

		// Post-success the form is empty again.
		p, ok := o.State().Submission().(*form.Participant)
		require.True(t, ok)
		assert.Empty(t, p.Name)
		assert.Nil(t, p.Resume)
	})

	t.Run("failed submit preserves entered values", func(t *testing.T) {
		t.Parallel()

		sub := &fakeSubmitter{err: errors.New("relay unreachable")}
		o, err := formclient.NewOrchestrator(sub)
		require.NoError(t, err)

		fillParticipant(t, o.State())

		require.Error(t, o.Submit(context.Background()))
		assert.Equal(t, formclient.PhaseFailed, o.Phase())

		p := o.State().Submission().(*form.Participant)
		assert.Equal(t, "Jane Fighter", p.Name)

		// Failed settles back to Idle; switching variants is allowed again.
		require.NoError(t, o.SetVariant(form.TypeParticipants))
		assert.Equal(t, formclient.PhaseIdle, o.Phase())

		// Manual resubmit works once the backend recovers; no automatic retry
		// happened in between.
		assert.Equal(t, 1, sub.Calls())
		sub.mu.Lock()
		sub.err = nil
		sub.mu.Unlock()

		require.NoError(t, o.Submit(context.Background()))
		assert.Equal(t, formclient.PhaseSuccess, o.Phase())
		assert.Equal(t, 2, sub.Calls())
	})

	t.Run("duplicate submit attempts are ignored", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		sub := &fakeSubmitter{release: release}
		o, err := formclient.NewOrchestrator(sub)
		require.NoError(t, err)

		fillParticipant(t, o.State())

		done := make(chan error, 1)
		go func() { done <- o.Submit(context.Background()) }()

		// Wait until the first submit is in flight.
		require.Eventually(t, func() bool {
			return o.Phase() == formclient.PhaseSubmitting
		}, 2*time.Second, time.Millisecond)

		assert.ErrorIs(t, o.Submit(context.Background()), formclient.ErrSubmitInProgress)
		assert.ErrorIs(t, o.SetVariant(form.TypeSponsors), formclient.ErrSubmitInProgress)

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, 1, sub.Calls())
	})

	t.Run("variant switch preserves both states", func(t *testing.T) {
		t.Parallel()

		o, err := formclient.NewOrchestrator(&fakeSubmitter{})
		require.NoError(t, err)

		require.NoError(t, o.State().SetField("name", "Jane"))

		require.NoError(t, o.SetVariant(form.TypeSponsors))
		require.NoError(t, o.State().SetField("company", "Acme"))

		require.NoError(t, o.SetVariant(form.TypeParticipants))
		p := o.State().Submission().(*form.Participant)
		assert.Equal(t, "Jane", p.Name)

		require.NoError(t, o.SetVariant(form.TypeSponsors))
		sp := o.State().Submission().(*form.Sponsor)
		assert.Equal(t, "Acme", sp.Company)
	})

	t.Run("rejects unknown initial variant", func(t *testing.T) {
		t.Parallel()

		_, err := formclient.NewOrchestrator(&fakeSubmitter{},
			formclient.WithInitialVariant(form.Type("volunteers")))
		assert.ErrorIs(t, err, form.ErrUnsupportedFormType)
	})
}
