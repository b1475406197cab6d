package contactform

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-site/internal/domain"
	"github.com/spec-kit/portfolio-site/internal/validation"
)

// State is the controller's position in the submit workflow.
type State string

const (
	StateIdle        State = "idle"
	StateSubmitting  State = "submitting"
	StateResultShown State = "result_shown"
)

const (
	SubmitLabel  = "Send Message"
	SendingLabel = "Sending..."
)

// ErrSubmissionInFlight is returned when submit is triggered while a request
// is still pending.
var ErrSubmissionInFlight = errors.New("contact submission already in flight")

// Fields holds the raw form values.
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Snapshot is a consistent view of the controller for rendering.
type Snapshot struct {
	State          State
	Fields         Fields
	FieldErrors    validation.FieldErrors
	Result         *SubmissionResult
	SubmitLabel    string
	SubmitDisabled bool
}

// ControllerConfig wires a Controller's collaborators.
type ControllerConfig struct {
	Submitter            Submitter
	Clock                Clock
	NotificationDuration time.Duration
	Logger               *zap.Logger
	// OnChange is invoked after every state change, never under the controller lock.
	OnChange func(Snapshot)
}

// Controller owns the Idle -> Submitting -> ResultShown -> Idle workflow for
// one contact form.
type Controller struct {
	mu        sync.Mutex
	state     State
	fields    Fields
	errs      validation.FieldErrors
	shownID   uint64
	inflight  chan struct{}
	submitter Submitter
	notifier  *Notifier
	logger    *zap.Logger
	onChange  func(Snapshot)
}

// NewController builds a controller in the Idle state.
func NewController(cfg ControllerConfig) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		state:     StateIdle,
		submitter: cfg.Submitter,
		logger:    logger,
		onChange:  cfg.OnChange,
	}
	c.notifier = NewNotifier(cfg.Clock, cfg.NotificationDuration, c.handleDismissed)
	return c
}

// SetField updates a single form value.
func (c *Controller) SetField(field domain.ContactField, value string) {
	c.mu.Lock()
	switch field {
	case domain.ContactFieldName:
		c.fields.Name = value
	case domain.ContactFieldEmail:
		c.fields.Email = value
	case domain.ContactFieldSubject:
		c.fields.Subject = value
	case domain.ContactFieldMessage:
		c.fields.Message = value
	}
	c.mu.Unlock()
	c.emit()
}

// SetFields replaces all form values.
func (c *Controller) SetFields(fields Fields) {
	c.mu.Lock()
	c.fields = fields
	c.mu.Unlock()
	c.emit()
}

// Submit validates the current fields and, if they pass, starts the request
// on its own goroutine. It returns validation.FieldErrors when validation
// fails and ErrSubmissionInFlight while a request is pending; in both cases
// no request is made.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		c.logger.Debug("submit ignored; request in flight")
		return ErrSubmissionInFlight
	}

	msg, errs := validation.ValidateContact(validation.ContactInput{
		Name:    c.fields.Name,
		Email:   c.fields.Email,
		Subject: c.fields.Subject,
		Message: c.fields.Message,
	})
	if len(errs) > 0 {
		c.errs = errs
		c.mu.Unlock()
		c.emit()
		return errs
	}

	c.errs = nil
	c.state = StateSubmitting
	done := make(chan struct{})
	c.inflight = done
	c.mu.Unlock()
	c.emit()

	go c.deliver(ctx, msg, done)
	return nil
}

func (c *Controller) deliver(ctx context.Context, msg domain.ContactMessage, done chan struct{}) {
	defer close(done)

	err := c.submitter.Submit(ctx, msg)

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
		c.logger.Warn("contact submission failed", zap.Error(err))
	} else {
		c.logger.Info("contact submission sent", zap.String("email", msg.Email))
	}

	c.mu.Lock()
	if outcome == OutcomeSuccess {
		c.fields = Fields{}
	}
	c.state = StateResultShown
	shown := c.notifier.Show(newResult(outcome))
	c.shownID = shown.ID
	c.inflight = nil
	c.mu.Unlock()

	c.emit()
}

// Dismiss hides the visible result immediately.
func (c *Controller) Dismiss() {
	c.notifier.Dismiss()
}

func (c *Controller) handleDismissed(result SubmissionResult) {
	c.mu.Lock()
	if c.state != StateResultShown || c.shownID != result.ID {
		c.mu.Unlock()
		c.emit()
		return
	}
	c.state = StateIdle
	c.mu.Unlock()
	c.emit()
}

// Wait blocks until the in-flight request, if any, has resolved or ctx ends.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.inflight
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current workflow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the controller's render state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:       c.state,
		Fields:      c.fields,
		SubmitLabel: SubmitLabel,
	}
	if len(c.errs) > 0 {
		snap.FieldErrors = make(validation.FieldErrors, len(c.errs))
		for k, v := range c.errs {
			snap.FieldErrors[k] = v
		}
	}
	if c.state == StateSubmitting {
		snap.SubmitLabel = SendingLabel
		snap.SubmitDisabled = true
	}
	if result, ok := c.notifier.Current(); ok {
		snap.Result = &result
	}
	return snap
}

func (c *Controller) emit() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.Snapshot())
}
