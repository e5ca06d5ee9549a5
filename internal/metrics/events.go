package metrics

import (
	"context"

	"github.com/osse101/itemkit/internal/event"
	"github.com/osse101/itemkit/internal/logger"
)

// EventMetricsCollector subscribes to the plugin bus and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.InventoryClick,
		event.ActionRegistered,
		event.ActionUnregistered,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if evt.Type == event.ActionRegistered {
		if _, ok := evt.Payload.(event.ActionPayloadV1); !ok {
			logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type)
			return nil
		}
		ActionsRegistered.Inc()
	}

	return nil
}
