// internal/dialog/broker.go
package dialog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Kind distinguishes the two request shapes.
type Kind string

const (
	KindAlert   Kind = "alert"
	KindConfirm Kind = "confirm"
)

// Variant styles a request.
type Variant string

const (
	VariantInfo    Variant = "info"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
)

var (
	// ErrBusy is returned when a request arrives while another is open.
	// Rejecting the newcomer is the deliberate policy: the alternative of
	// overwriting would abandon a pending confirm without settling it.
	ErrBusy = errors.New("another dialog is already open")

	// ErrNoActiveRequest is returned when resolving with nothing open.
	ErrNoActiveRequest = errors.New("no active dialog request")

	// ErrRequestMismatch is returned when the resolved id is stale.
	ErrRequestMismatch = errors.New("dialog request id does not match the active request")
)

// ConfirmOptions carries the optional confirm customizations.
type ConfirmOptions struct {
	ConfirmText string  `json:"confirm_text,omitempty"`
	CancelText  string  `json:"cancel_text,omitempty"`
	Variant     Variant `json:"variant,omitempty"`
}

// Request is the active dialog for a session.
type Request struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"kind"`
	Message     string  `json:"message"`
	Variant     Variant `json:"variant"`
	ConfirmText string  `json:"confirm_text,omitempty"`
	CancelText  string  `json:"cancel_text,omitempty"`

	result  chan bool
	settled bool
}

// Broker serializes alert/confirm interactions: one open request per
// session, and every confirm settles exactly once. The result channel is
// buffered so resolution never blocks on the waiter.
type Broker struct {
	mu     sync.Mutex
	active map[string]*Request
}

// NewBroker creates a dialog broker.
func NewBroker() *Broker {
	return &Broker{
		active: make(map[string]*Request),
	}
}

// ShowAlert installs a fire-and-forget alert. The request stays open until
// acknowledged via Resolve or dismissed via Close.
func (b *Broker) ShowAlert(sessionID, message string, variant Variant) (*Request, error) {
	if variant == "" {
		variant = VariantInfo
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, open := b.active[sessionID]; open {
		return nil, ErrBusy
	}

	req := &Request{
		ID:      uuid.NewString(),
		Kind:    KindAlert,
		Message: message,
		Variant: variant,
	}
	b.active[sessionID] = req
	return req, nil
}

// ShowConfirm installs a confirm request and returns the completion handle.
// The channel receives exactly one value: true on affirm, false on cancel
// or any other dismissal.
func (b *Broker) ShowConfirm(sessionID, message string, opts ConfirmOptions) (*Request, <-chan bool, error) {
	variant := opts.Variant
	if variant == "" {
		variant = VariantInfo
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, open := b.active[sessionID]; open {
		return nil, nil, ErrBusy
	}

	req := &Request{
		ID:          uuid.NewString(),
		Kind:        KindConfirm,
		Message:     message,
		Variant:     variant,
		ConfirmText: opts.ConfirmText,
		CancelText:  opts.CancelText,
		result:      make(chan bool, 1),
	}
	b.active[sessionID] = req
	return req, req.result, nil
}

// Active returns the session's open request, or nil.
func (b *Broker) Active(sessionID string) *Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active[sessionID]
}

// Resolve settles the open request. For a confirm, decision is delivered
// to the waiting handle; for an alert it is ignored (acknowledgement).
func (b *Broker) Resolve(sessionID, requestID string, decision bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	req, open := b.active[sessionID]
	if !open {
		return ErrNoActiveRequest
	}
	if req.ID != requestID {
		return ErrRequestMismatch
	}

	b.settleLocked(sessionID, req, decision)
	return nil
}

// Close forcibly dismisses whatever is open. A pending confirm resolves to
// false before the slot is cleared; a caller is never left waiting.
func (b *Broker) Close(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	req, open := b.active[sessionID]
	if !open {
		return
	}
	b.settleLocked(sessionID, req, false)
}

func (b *Broker) settleLocked(sessionID string, req *Request, decision bool) {
	if req.Kind == KindConfirm && !req.settled {
		req.settled = true
		req.result <- decision
	}
	delete(b.active, sessionID)
}
