package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "itemkit_http_requests_total"
	MetricNameHTTPRequestDuration  = "itemkit_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "itemkit_http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "itemkit_events_published_total"
)

// Action metric names
const (
	MetricNameActionsRegistered = "itemkit_actions_registered_total"
	MetricNameActionsStored     = "itemkit_actions_stored"
	MetricNameClicksHandled     = "itemkit_clicks_handled_total"
	MetricNameCallbackPanics    = "itemkit_callback_panics_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of admin HTTP requests"
	HelpTextHTTPRequestDuration  = "Admin HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of admin HTTP requests being served"
	HelpTextEventsPublished      = "Total number of events seen on the plugin bus"
	HelpTextActionsRegistered    = "Total number of click actions registered"
	HelpTextActionsStored        = "Number of click actions currently stored"
	HelpTextClicksHandled        = "Inventory clicks handled by the action registry, by outcome"
	HelpTextCallbackPanics       = "Click callbacks that panicked"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
)

// Click outcomes
const (
	OutcomeInvoked        = "invoked"
	OutcomeInvokedScoped  = "invoked_scoped"
	OutcomeEmptySlot      = "empty_slot"
	OutcomeNoIdentifier   = "no_identifier"
	OutcomeUnknownAction  = "unknown_action"
	OutcomeNoInventory    = "no_inventory"
	OutcomeHolderMismatch = "holder_mismatch"
)

// HTTPLatencyBuckets are the histogram buckets for admin request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

// Log messages
const (
	LogMsgEventPayloadUnexpected = "Unexpected event payload type"
)
