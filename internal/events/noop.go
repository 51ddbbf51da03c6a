package events

import "github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"

// NopPublisher discards events. It is the default publisher when no
// broker is configured; the demo then makes no network calls.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, event any) error {
	return nil
}

var _ interfaces.EventPublisher = NopPublisher{}
