// Package mediator implements the component registry and event table that
// the UI components use to talk to each other. Components never hold
// references to one another; they look each other up by name or exchange
// events.
package mediator

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"driveshare/internal/domain"
)

// Component is any registered UI component
type Component interface{}

// EventHandler is a function that handles UI events
type EventHandler func(domain.Event)

// PanicHandler is told about every handler panic recovered during Notify
type PanicHandler func(eventType domain.EventType, recovered any)

// Option configures a Mediator
type Option func(*Mediator)

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mediator) {
		m.logger = logger
	}
}

// WithPanicHandler installs a callback for recovered handler panics
func WithPanicHandler(fn PanicHandler) Option {
	return func(m *Mediator) {
		m.onPanic = fn
	}
}

// Mediator holds the components of one session and dispatches events between them
type Mediator struct {
	mu         sync.RWMutex
	components map[string]Component
	handlers   map[domain.EventType][]EventHandler
	logger     *slog.Logger
	onPanic    PanicHandler
}

// New creates a mediator. One is created per session and handed to every component.
func New(opts ...Option) *Mediator {
	m := &Mediator{
		components: make(map[string]Component),
		handlers:   make(map[domain.EventType][]EventHandler),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterComponent stores a component under name. A later registration
// under the same name replaces the earlier one.
func (m *Mediator) RegisterComponent(name string, component Component) {
	m.mu.Lock()
	m.components[name] = component
	m.mu.Unlock()

	m.logger.Debug("component registered", "component", name)
}

// RemoveComponent forgets the component stored under name, if any.
// Subscriptions made by the component stay in place.
func (m *Mediator) RemoveComponent(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.components, name)
}

// GetComponent returns the component stored under name
func (m *Mediator) GetComponent(name string) (Component, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.components[name]
	return c, ok
}

// On subscribes handler to eventType. Subscribing the same handler twice
// makes it run twice.
func (m *Mediator) On(eventType domain.EventType, handler EventHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Notify synchronously runs every handler subscribed to the event's type,
// in subscription order, passing the event through unchanged. Events with
// no subscribers are dropped silently.
//
// A panicking handler is recovered and logged and the remaining handlers
// still run. Handlers may call Notify and On themselves; handlers added
// during a dispatch only see later events.
func (m *Mediator) Notify(event domain.Event) {
	eventType := event.Type()

	m.mu.RLock()
	handlers := m.handlers[eventType]
	// Make a copy so handlers can subscribe while we iterate
	handlersCopy := make([]EventHandler, len(handlers))
	copy(handlersCopy, handlers)
	m.mu.RUnlock()

	m.logger.Debug("event triggered", "event", string(eventType), "subscribers", len(handlersCopy), "data", fmt.Sprintf("%+v", event))

	for _, handler := range handlersCopy {
		m.invoke(eventType, handler, event)
	}
}

func (m *Mediator) invoke(eventType domain.EventType, handler EventHandler, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("event handler panic", "event", string(eventType), "panic", r, "stack", string(debug.Stack()))
			if m.onPanic != nil {
				m.onPanic(eventType, r)
			}
		}
	}()
	handler(event)
}

// Handle subscribes a handler for the event type E, doing the type
// assertion on the caller's behalf.
func Handle[E domain.Event](m *Mediator, handler func(E)) {
	var zero E
	m.On(zero.Type(), func(e domain.Event) {
		if typed, ok := e.(E); ok {
			handler(typed)
		}
	})
}
