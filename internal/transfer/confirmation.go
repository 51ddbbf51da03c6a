package transfer

import (
	"github.com/sajidmehmood/demo-bank-ledger/internal/events"
	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
)

// Confirmation is the short-lived subscription backing one confirm
// dialog. Opening attaches a handler for every way the dialog can end;
// Close detaches all of them and runs on every exit path, so repeated
// open/cancel cycles never leak handlers.
type Confirmation struct {
	flow    *Flow
	request models.TransferRequest
	subs    []*events.Subscription
	state   State
	outcome func(State, *Receipt)
	closed  bool
}

// OpenConfirmation presents req for confirmation. The outcome callback
// fires exactly once: StateCommitted with a receipt, or StateCancelled
// with nil for cancel, outside-dismiss, and escape alike.
func (f *Flow) OpenConfirmation(req models.TransferRequest, outcome func(State, *Receipt)) *Confirmation {
	c := &Confirmation{
		flow:    f,
		request: req,
		state:   StateConfirming,
		outcome: outcome,
	}
	c.subs = append(c.subs,
		f.bus.Subscribe(events.TopicConfirm, func(events.Event) { c.confirm() }),
		f.bus.Subscribe(events.TopicCancel, func(events.Event) { c.cancel() }),
		f.bus.Subscribe(events.TopicDismiss, func(events.Event) { c.cancel() }),
		f.bus.Subscribe(events.TopicEscape, func(events.Event) { c.cancel() }),
	)
	return c
}

// Request returns the transfer being confirmed, for display.
func (c *Confirmation) Request() models.TransferRequest {
	return c.request
}

// State reports where this attempt ended up.
func (c *Confirmation) State() State {
	return c.state
}

func (c *Confirmation) confirm() {
	if c.closed {
		return
	}
	c.Close()
	c.state = StateCommitted

	receipt := c.flow.Commit(c.request)
	if c.outcome != nil {
		c.outcome(StateCommitted, &receipt)
	}
}

func (c *Confirmation) cancel() {
	if c.closed {
		return
	}
	c.Close()
	c.state = StateCancelled

	if c.outcome != nil {
		c.outcome(StateCancelled, nil)
	}
}

// Close releases every handler this confirmation attached. Idempotent;
// callers may defer it in addition to the exit paths above.
func (c *Confirmation) Close() {
	if c.closed {
		return
	}
	c.closed = true

	for _, s := range c.subs {
		s.Close()
	}
	c.subs = nil
}
