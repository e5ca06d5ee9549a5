package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/itemkit/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Common event types
const (
	InventoryClick     Type = domain.EventTypeInventoryClick
	ActionRegistered   Type = domain.EventTypeActionRegistered
	ActionUnregistered Type = domain.EventTypeActionUnregistered
)

// ActionPayloadV1 is the typed payload for action registration events
type ActionPayloadV1 struct {
	ActionID  string `json:"action_id"`
	Scoped    bool   `json:"scoped"`
	Timestamp int64  `json:"timestamp"`
}

// NewActionRegisteredEvent creates an event announcing a stored click action
func NewActionRegisteredEvent(actionID string, scoped bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionRegistered,
		Payload: ActionPayloadV1{
			ActionID:  actionID,
			Scoped:    scoped,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewActionUnregisteredEvent creates an event announcing a removed click action
func NewActionUnregisteredEvent(actionID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionUnregistered,
		Payload: ActionPayloadV1{
			ActionID:  actionID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscriberCount returns how many handlers listen for eventType
func (b *MemoryBus) SubscriberCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[eventType])
}
