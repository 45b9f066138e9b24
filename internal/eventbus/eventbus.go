package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"eduadmin/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSessionStarted      = domain.EventSessionStarted
	EventDirectoryLoaded     = domain.EventDirectoryLoaded
	EventSelectionSaved      = domain.EventSelectionSaved
	EventSelectionCancelled  = domain.EventSelectionCancelled
	EventAssignmentCompleted = domain.EventAssignmentCompleted
	EventProgressLoaded      = domain.EventProgressLoaded
	EventConfigChanged       = domain.EventConfigChanged
	EventError               = domain.EventError
)

// Re-export domain event types
type SessionStartedEvent = domain.SessionStartedEvent
type DirectoryLoadedEvent = domain.DirectoryLoadedEvent
type SelectionSavedEvent = domain.SelectionSavedEvent
type SelectionCancelledEvent = domain.SelectionCancelledEvent
type AssignmentCompletedEvent = domain.AssignmentCompletedEvent
type ProgressLoadedEvent = domain.ProgressLoadedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers; it never blocks
func (b *bus) Publish(event DomainEvent) {
	log.Printf("EventBus: Publishing event %s", event.Type())

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
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

// Close stops the dispatcher and waits for it to exit. Events queued before
// Close are still delivered.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch delivers events in publish order; a panicking handler is logged and skipped
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliverAll(event)

		case <-b.quit:
			b.drain()
			return
		}
	}
}

func (b *bus) drain() {
	for {
		select {
		case event := <-b.eventChan:
			b.deliverAll(event)
		default:
			return
		}
	}
}

func (b *bus) deliverAll(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		deliver(s.handler, event)
	}
}

func deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
