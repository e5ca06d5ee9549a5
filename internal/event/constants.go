package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat is used when one or more handlers fail for an event
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
