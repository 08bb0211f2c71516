package eventbus

import "sync"

// Recorder is a synchronous EventBus that keeps every published event.
// Subscribers are called inline on Publish.
type Recorder struct {
	mu       sync.Mutex
	events   []DomainEvent
	handlers map[EventType][]EventHandler
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{handlers: make(map[EventType][]EventHandler)}
}

// Publish records the event and calls subscribers inline
func (r *Recorder) Publish(event DomainEvent) {
	r.mu.Lock()
	r.events = append(r.events, event)
	handlers := append([]EventHandler(nil), r.handlers[event.Type()]...)
	r.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Subscribe registers a handler; the returned function is a no-op
func (r *Recorder) Subscribe(eventType EventType, handler EventHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
	return func() {}
}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DomainEvent(nil), r.events...)
}

// OfType returns the recorded events with the given type
func (r *Recorder) OfType(eventType EventType) []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []DomainEvent
	for _, e := range r.events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}
