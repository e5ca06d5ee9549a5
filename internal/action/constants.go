package action

// DefaultKeyName is the persistent data key holding the click identifier
const DefaultKeyName = "click_id"

// Log messages
const (
	LogMsgRegistryInitialized = "Click action registry initialized"
	LogMsgActionRegistered    = "Click action registered"
	LogMsgActionUnregistered  = "Click action unregistered"
	LogMsgActionEvicted       = "Click action evicted from store"
	LogMsgClickIgnored        = "Click ignored"
	LogMsgClickInvoked        = "Click action invoked"
	LogMsgCallbackPanicked    = "Click callback panicked"
	LogMsgPublishFailed       = "Failed to publish action event"
)

// Error format strings
const (
	ErrFmtNilCallback     = "%w: callback is nil"
	ErrFmtNilDescriptor   = "%w: descriptor is nil"
	ErrFmtPayloadNotClick = "%w: expected click event, got %T"
)
