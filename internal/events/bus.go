package events

import "sort"

// Input topics produced by the confirmation surface. Dismiss covers
// click-outside gestures; Escape covers keyboard/back dismissal.
const (
	TopicConfirm = "input.confirm"
	TopicCancel  = "input.cancel"
	TopicDismiss = "input.dismiss"
	TopicEscape  = "input.escape"
)

// Event is a single dispatched input event.
type Event struct {
	Topic   string
	Payload any
}

// Handler reacts to one event. Handlers run synchronously on the
// publishing goroutine.
type Handler func(Event)

// Bus is a single-threaded in-process topic bus. All use is
// event-loop sequential, so there is no internal locking; one event
// handler runs to completion before the next event is dispatched.
type Bus struct {
	nextID int
	subs   map[string]map[int]Handler
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[int]Handler),
	}
}

// Subscribe attaches h to topic and returns the subscription that
// detaches it. Every Subscribe must be paired with exactly one Close.
func (b *Bus) Subscribe(topic string, h Handler) *Subscription {
	b.nextID++
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	b.subs[topic][b.nextID] = h

	return &Subscription{bus: b, topic: topic, id: b.nextID}
}

// Publish dispatches the event to every live subscriber of topic, in
// subscription order. A handler may close its own (or any other)
// subscription mid-dispatch; closed subscriptions are skipped.
func (b *Bus) Publish(topic string, payload any) {
	handlers := b.subs[topic]
	if len(handlers) == 0 {
		return
	}

	ids := make([]int, 0, len(handlers))
	for id := range handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if h, ok := b.subs[topic][id]; ok {
			h(Event{Topic: topic, Payload: payload})
		}
	}
}

// Subscription ties one handler to one topic for its lifetime.
type Subscription struct {
	bus    *Bus
	topic  string
	id     int
	closed bool
}

// Close detaches the handler. Safe to call more than once.
func (s *Subscription) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if handlers := s.bus.subs[s.topic]; handlers != nil {
		delete(handlers, s.id)
		if len(handlers) == 0 {
			delete(s.bus.subs, s.topic)
		}
	}
}
