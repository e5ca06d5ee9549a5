package action

import (
	"context"
	"fmt"

	"github.com/osse101/itemkit/internal/domain"
	"github.com/osse101/itemkit/internal/event"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/logger"
)

// ClickListener forwards inventory click events from the plugin bus to a registry
type ClickListener struct {
	registry *Registry
}

// NewClickListener creates a listener for registry
func NewClickListener(registry *Registry) *ClickListener {
	return &ClickListener{registry: registry}
}

// Handle is an event.Handler for event.InventoryClick
func (l *ClickListener) Handle(ctx context.Context, evt event.Event) error {
	click, ok := host.ClickFromEvent(evt)
	if !ok {
		return fmt.Errorf(ErrFmtPayloadNotClick, domain.ErrUnexpectedPayload, evt.Payload)
	}

	if _, ok := logger.RequestIDFromContext(ctx); !ok {
		ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	}

	l.registry.HandleClick(ctx, click)
	return nil
}
