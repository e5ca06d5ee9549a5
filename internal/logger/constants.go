package logger

// Context Keys
const (
	ContextKeyRequestID = "request_id"
)

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// DefaultServiceName identifies records written through this library
const DefaultServiceName = "itemkit"

// Environments that enable source locations
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyPlugin      = "plugin"
	AttrKeyNamespace   = "namespace"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
