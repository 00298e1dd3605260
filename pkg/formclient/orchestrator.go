package formclient

import (
	"bytes"
	"context"
	"sync"

	"github.com/oneshotleague/formrelay/pkg/form"
	"github.com/oneshotleague/formrelay/pkg/validator"
)

// Phase is the orchestrator's lifecycle state.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseFailed     Phase = "failed"
)

// Submitter delivers an encoded payload to the relay endpoint.
type Submitter interface {
	Submit(ctx context.Context, contentType string, payload []byte) error
}

// Orchestrator drives the submission lifecycle across form variants. Each
// variant keeps an independent FormState, so switching variants never loses
// entered values. Submitting acts as a mutex: a submit attempted while one
// is in flight returns ErrSubmitInProgress and is otherwise a no-op.
type Orchestrator struct {
	mu        sync.Mutex
	states    map[form.Type]*FormState
	active    form.Type
	phase     Phase
	submitter Submitter
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*orchestratorConfig)

type orchestratorConfig struct {
	translate validator.TranslateFunc
	initial   form.Type
}

// WithTranslator localizes field errors on every variant's state.
func WithTranslator(fn validator.TranslateFunc) OrchestratorOption {
	return func(cfg *orchestratorConfig) {
		cfg.translate = fn
	}
}

// WithInitialVariant sets the variant active at construction.
// Defaults to the participant form.
func WithInitialVariant(t form.Type) OrchestratorOption {
	return func(cfg *orchestratorConfig) {
		cfg.initial = t
	}
}

// NewOrchestrator creates an orchestrator with a fresh state per variant.
func NewOrchestrator(submitter Submitter, opts ...OrchestratorOption) (*Orchestrator, error) {
	cfg := &orchestratorConfig{initial: form.TypeParticipants}
	for _, opt := range opts {
		opt(cfg)
	}
	if _, err := form.ParseType(string(cfg.initial)); err != nil {
		return nil, err
	}

	var stateOpts []StateOption
	if cfg.translate != nil {
		stateOpts = append(stateOpts, WithTranslateFunc(cfg.translate))
	}

	states := make(map[form.Type]*FormState, 2)
	for _, t := range []form.Type{form.TypeParticipants, form.TypeSponsors} {
		s, err := NewFormState(t, stateOpts...)
		if err != nil {
			return nil, err
		}
		states[t] = s
	}

	return &Orchestrator{
		states:    states,
		active:    cfg.initial,
		phase:     PhaseIdle,
		submitter: submitter,
	}, nil
}

// Phase returns the current lifecycle phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// SetVariant switches the active form. States are independent per variant,
// so values entered on the other form survive the switch. Switching resets
// a terminal phase back to idle but is refused mid-submit.
func (o *Orchestrator) SetVariant(t form.Type) error {
	if _, err := form.ParseType(string(t)); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.phase == PhaseSubmitting || o.phase == PhaseValidating {
		return ErrSubmitInProgress
	}
	o.active = t
	o.phase = PhaseIdle
	return nil
}

// State returns the active variant's form state.
func (o *Orchestrator) State() *FormState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.states[o.active]
}

// Submit validates the active form and, when clean, posts the payload.
// Validation failure returns the orchestrator to Idle with the field errors
// surfaced and makes no network call. Success resets the active state;
// delivery failure moves through Failed back to Idle with entered values
// preserved, so the user can correct and resubmit. There is no automatic
// retry.
func (o *Orchestrator) Submit(ctx context.Context) error {
	o.mu.Lock()
	if o.phaseForEntry() != PhaseIdle {
		o.mu.Unlock()
		return ErrSubmitInProgress
	}
	o.phase = PhaseValidating
	state := o.states[o.active]

	if ve := state.Validate(); !ve.IsEmpty() {
		o.phase = PhaseIdle
		o.mu.Unlock()
		return ve
	}

	var buf bytes.Buffer
	contentType, err := state.BuildPayload(&buf)
	if err != nil {
		o.phase = PhaseIdle
		o.mu.Unlock()
		return err
	}
	o.phase = PhaseSubmitting
	o.mu.Unlock()

	// Network call happens outside the lock; concurrent submits are already
	// fenced off by the Submitting phase.
	submitErr := o.submitter.Submit(ctx, contentType, buf.Bytes())

	o.mu.Lock()
	defer o.mu.Unlock()
	if submitErr != nil {
		o.phase = PhaseFailed
		return submitErr
	}
	state.Reset()
	o.phase = PhaseSuccess
	return nil
}

// phaseForEntry settles transient terminal phases before a new interaction:
// Failed and Success both resolve to Idle, restarting the cycle.
func (o *Orchestrator) phaseForEntry() Phase {
	if o.phase == PhaseFailed || o.phase == PhaseSuccess {
		o.phase = PhaseIdle
	}
	return o.phase
}
