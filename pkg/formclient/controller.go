// Package formclient drives the contact form submission lifecycle against the
// portfolio API: it owns the draft fields, the submission status machine and
// the timed auto-clear of success feedback.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/portfolio-go-api/internal/dto"
	"github.com/noah-isme/portfolio-go-api/internal/utils"
)

// State identifies the current phase of the submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Status pairs a lifecycle state with the message shown to the user.
// Exactly one status is active at a time.
type Status struct {
	State   State
	Message string
}

// Field names one of the draft inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// DefaultClearDelay is how long a success message stays visible before the
// controller returns to idle.
const DefaultClearDelay = 10 * time.Second

const genericErrorMessage = "Something went wrong while sending your message. Please try again."

// Options customises a Controller. The zero value is usable.
type Options struct {
	HTTPClient *http.Client
	ClearDelay time.Duration
	Logger     *zerolog.Logger
	// OnChange is invoked after every draft or status mutation, in place of a
	// UI re-render. It runs with the controller lock released.
	OnChange func(Status)
}

// Controller is the client-side owner of the contact form state. At most one
// submission is in flight at a time; all failure paths are terminal for that
// attempt and require an explicit resubmit.
type Controller struct {
	endpoint   string
	client     *http.Client
	clearDelay time.Duration
	logger     zerolog.Logger
	onChange   func(Status)

	mu     sync.Mutex
	draft  dto.ContactRequest
	status Status
	timer  *time.Timer
	gen    uint64
	closed bool
}

// NewController constructs a controller posting to the given endpoint URL.
func NewController(endpoint string, opts Options) *Controller {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	delay := opts.ClearDelay
	if delay <= 0 {
		delay = DefaultClearDelay
	}

	logger := zerolog.New(io.Discard)
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Controller{
		endpoint:   endpoint,
		client:     client,
		clearDelay: delay,
		logger:     logger.With().Str("component", "form_controller").Logger(),
		onChange:   opts.OnChange,
		status:     Status{State: StateIdle},
	}
}

// SetField writes one field into the current draft.
func (c *Controller) SetField(field Field, value string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	switch field {
	case FieldName:
		c.draft.Name = value
	case FieldEmail:
		c.draft.Email = value
	case FieldPhone:
		c.draft.Phone = value
	case FieldMessage:
		c.draft.Message = value
	}
	status := c.status
	c.mu.Unlock()

	c.notify(status)
}

// Draft returns a copy of the current draft fields.
func (c *Controller) Draft() dto.ContactRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Status returns the currently active status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submit serializes the draft and posts it to the contact endpoint. Calling
// Submit while a submission is already in flight is a no-op, so no second
// request is ever issued. The status is never left in StateSubmitting.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.status.State == StateSubmitting {
		c.mu.Unlock()
		return
	}
	c.cancelTimerLocked()
	c.gen++
	gen := c.gen
	c.status = Status{State: StateSubmitting}
	payload := c.draft
	c.mu.Unlock()

	c.notify(Status{State: StateSubmitting})

	body, err := json.Marshal(payload)
	if err != nil {
		c.resolve(gen, Status{State: StateError, Message: genericErrorMessage}, false)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.resolve(gen, Status{State: StateError, Message: genericErrorMessage}, false)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("contact request failed")
		c.resolve(gen, Status{State: StateError, Message: genericErrorMessage}, false)
		return
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var success utils.MessageResponse
		message := "Message sent."
		if err := json.Unmarshal(raw, &success); err == nil && success.Message != "" {
			message = success.Message
		}
		c.resolve(gen, Status{State: StateSuccess, Message: message}, true)
		return
	}

	var failure utils.ErrorResponse
	message := genericErrorMessage
	if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
		message = failure.Error
	}
	c.resolve(gen, Status{State: StateError, Message: message}, false)
}

// Close tears the controller down: the auto-clear timer is cancelled and no
// in-flight response or timer callback will mutate state afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.gen++
	c.cancelTimerLocked()
	c.mu.Unlock()
}

// resolve applies the outcome of a submission attempt, unless the controller
// was closed or the attempt was superseded in the meantime.
func (c *Controller) resolve(gen uint64, status Status, success bool) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}

	c.status = status
	if success {
		c.draft = dto.ContactRequest{}
		c.timer = time.AfterFunc(c.clearDelay, func() {
			c.clearSuccess(gen)
		})
	}
	c.mu.Unlock()

	c.notify(status)
}

// clearSuccess returns the controller to idle once the success message has
// been shown long enough, provided no newer submission superseded it.
func (c *Controller) clearSuccess(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.status.State != StateSuccess {
		c.mu.Unlock()
		return
	}
	c.status = Status{State: StateIdle}
	c.timer = nil
	c.mu.Unlock()

	c.notify(Status{State: StateIdle})
}

func (c *Controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) notify(status Status) {
	if c.onChange != nil {
		c.onChange(status)
	}
}
