package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/validation"
)

var (
	ErrResendCooldown  = errors.New("resend not allowed yet")
	ErrTooManyAttempts = errors.New("too many invalid OTP attempts")
	ErrFlowState       = errors.New("operation not allowed in the current login step")
	ErrFlowNotFound    = errors.New("login flow not found or expired")
)

// State is a step of the login flow.
type State string

const (
	StateEnteringIdentity State = "entering-identity"
	StateOTPSent          State = "otp-sent"
	StateValidated        State = "validated"

	// StateLocked is entered after too many wrong codes; a new login must be started.
	StateLocked State = "locked"
)

// FlowConfig holds the timing and attempt limits of a login flow.
type FlowConfig struct {
	ResendCooldown time.Duration
	Tick           time.Duration
	MaxAttempts    int
}

// DefaultFlowConfig is a 30 second resend cooldown with one-second ticks and five attempts.
var DefaultFlowConfig = FlowConfig{
	ResendCooldown: 30 * time.Second,
	Tick:           time.Second,
	MaxAttempts:    5,
}

// Flow is one login attempt: identity entry, code delivery, code validation.
type Flow struct {
	id      string
	gateway Gateway
	cfg     FlowConfig

	touched atomic.Int64

	mu        sync.Mutex
	state     State
	identity  models.Identity
	attempts  int
	countdown *Countdown
}

// NewFlow starts a flow in StateEnteringIdentity.
func NewFlow(id string, gateway Gateway, cfg FlowConfig) *Flow {
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}
	f := &Flow{
		id:      id,
		gateway: gateway,
		cfg:     cfg,
		state:   StateEnteringIdentity,
	}
	f.touch()
	return f
}

// ID returns the flow id.
func (f *Flow) ID() string { return f.id }

// State returns the current step.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Identity returns the identity the code was sent for.
func (f *Flow) Identity() models.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.identity
}

// Attempts returns the number of wrong codes entered so far.
func (f *Flow) Attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

// ResendIn returns how long until a resend is allowed.
func (f *Flow) ResendIn() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countdown == nil {
		return 0
	}
	return f.countdown.Remaining()
}

// Send validates the identity and asks the gateway for a code.
// On failure the flow stays where it was.
func (f *Flow) Send(ctx context.Context, id models.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()

	if f.state != StateEnteringIdentity {
		return fmt.Errorf("%w: %s", ErrFlowState, f.state)
	}
	if err := validation.Identity(id); err != nil {
		return err
	}
	if err := f.gateway.Issue(ctx, id); err != nil {
		return err
	}

	f.identity = id
	f.state = StateOTPSent
	f.restartCountdown()
	return nil
}

// Resend issues a fresh code for the same identity once the cooldown has run out.
func (f *Flow) Resend(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()

	if f.state != StateOTPSent {
		return fmt.Errorf("%w: %s", ErrFlowState, f.state)
	}
	if f.countdown != nil && !f.countdown.Expired() {
		return fmt.Errorf("%w: wait %s", ErrResendCooldown, f.countdown.Remaining())
	}
	if err := f.gateway.Issue(ctx, f.identity); err != nil {
		return err
	}

	f.restartCountdown()
	return nil
}

// Verify checks code. A wrong code counts against the attempt limit;
// malformed input and gateway outages do not. A flow that is already
// validated returns its identity again without checking code.
func (f *Flow) Verify(ctx context.Context, code string) (models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()

	switch f.state {
	case StateOTPSent:
	case StateValidated:
		return f.identity, nil
	case StateLocked:
		return models.Identity{}, ErrTooManyAttempts
	default:
		return models.Identity{}, fmt.Errorf("%w: %s", ErrFlowState, f.state)
	}

	if msg := validation.OTP(code); msg != "" {
		return models.Identity{}, validation.Errors{"otp": msg}
	}

	err := f.gateway.Validate(ctx, f.identity.MemberID, code)
	if errors.Is(err, ErrInvalidOTP) {
		f.attempts++
		if f.cfg.MaxAttempts > 0 && f.attempts >= f.cfg.MaxAttempts {
			f.state = StateLocked
			f.stopCountdown()
			return models.Identity{}, ErrTooManyAttempts
		}
		return models.Identity{}, err
	}
	if err != nil {
		return models.Identity{}, err
	}

	f.state = StateValidated
	f.stopCountdown()
	return f.identity, nil
}

// Close stops the resend countdown.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopCountdown()
}

func (f *Flow) touch() {
	f.touched.Store(time.Now().UnixNano())
}

func (f *Flow) lastTouched() time.Time {
	return time.Unix(0, f.touched.Load())
}

func (f *Flow) restartCountdown() {
	f.stopCountdown()
	f.countdown = StartCountdown(f.cfg.ResendCooldown, f.cfg.Tick)
}

func (f *Flow) stopCountdown() {
	if f.countdown != nil {
		f.countdown.Stop()
	}
}

// Flows tracks login flows by id and drops idle ones after ttl.
type Flows struct {
	gateway Gateway
	cfg     FlowConfig
	ttl     time.Duration

	mu    sync.Mutex
	flows map[string]*Flow
	now   func() time.Time
}

// NewFlows creates a flow registry.
func NewFlows(gateway Gateway, cfg FlowConfig, ttl time.Duration) *Flows {
	return &Flows{
		gateway: gateway,
		cfg:     cfg,
		ttl:     ttl,
		flows:   make(map[string]*Flow),
		now:     time.Now,
	}
}

// Start creates a new flow.
func (m *Flows) Start() *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()
	f := NewFlow(uuid.NewString(), m.gateway, m.cfg)
	m.flows[f.id] = f
	return f
}

// Get returns the flow with the given id.
func (m *Flows) Get(id string) (*Flow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.flows[id]
	if !ok {
		return nil, ErrFlowNotFound
	}
	if m.expired(f) {
		delete(m.flows, id)
		f.Close()
		return nil, ErrFlowNotFound
	}
	return f, nil
}

// Remove drops the flow and stops its countdown.
func (m *Flows) Remove(id string) {
	m.mu.Lock()
	f, ok := m.flows[id]
	delete(m.flows, id)
	m.mu.Unlock()

	if ok {
		f.Close()
	}
}

// Len returns the number of tracked flows.
func (m *Flows) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.flows)
}

func (m *Flows) sweepLocked() {
	for id, f := range m.flows {
		if m.expired(f) {
			delete(m.flows, id)
			f.Close()
		}
	}
}

func (m *Flows) expired(f *Flow) bool {
	return m.ttl > 0 && m.now().Sub(f.lastTouched()) > m.ttl
}
