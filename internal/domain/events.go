package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "inventory.click")
const (
	// EventTypeInventoryClick is published by the host once per inventory click
	EventTypeInventoryClick = "inventory.click"

	// EventTypeActionRegistered is published when a click action is stored
	EventTypeActionRegistered = "action.registered"

	// EventTypeActionUnregistered is published when a click action is removed
	EventTypeActionUnregistered = "action.unregistered"
)
