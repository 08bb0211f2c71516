package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"docsearch/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchIssued         = domain.EventSearchIssued
	EventSearchCompleted      = domain.EventSearchCompleted
	EventRequestFailed        = domain.EventRequestFailed
	EventStaleResponseDropped = domain.EventStaleResponseDropped
	EventDocumentOpened       = domain.EventDocumentOpened
	EventDocumentLoaded       = domain.EventDocumentLoaded
	EventTeamOpened           = domain.EventTeamOpened
	EventTeamLoaded           = domain.EventTeamLoaded
	EventNavigatedBack        = domain.EventNavigatedBack
	EventDropdownDismissed    = domain.EventDropdownDismissed
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
)

// Re-export domain event types
type SearchIssuedEvent = domain.SearchIssuedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type RequestFailedEvent = domain.RequestFailedEvent
type StaleResponseDroppedEvent = domain.StaleResponseDroppedEvent
type DocumentOpenedEvent = domain.DocumentOpenedEvent
type DocumentLoadedEvent = domain.DocumentLoadedEvent
type TeamOpenedEvent = domain.TeamOpenedEvent
type TeamLoadedEvent = domain.TeamLoadedEvent
type NavigatedBackEvent = domain.NavigatedBackEvent
type DropdownDismissedEvent = domain.DropdownDismissedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the asynchronous EventBus implementation. Handlers run on their
// own goroutines and never block the publisher.
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

// New creates a new event bus
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		logger:    logger,
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *Bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.logger.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops accepting events, delivers those already queued and waits
// for every running handler to return.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			// Flush what was published before Close
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

// deliver starts one handler goroutine per subscriber. The dispatcher
// holds its own wg slot while adding, so Close cannot miss a handler.
func (b *Bus) deliver(event DomainEvent) {
	// Copy to avoid holding the lock during handler execution
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.wg.Add(1)
		go func(h EventHandler, eventType EventType) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panic",
						"type", eventType,
						"panic", r,
						"stack", string(debug.Stack()),
					)
				}
			}()
			h(event)
		}(s.handler, event.Type())
	}
}

// NullBus is a no-op EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
