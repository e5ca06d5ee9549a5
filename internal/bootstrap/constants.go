package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting itemkit"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgStoreSelected       = "Action store selected"
	LogMsgTemplatesSkipped    = "Item templates file not found, continuing without templates"
	LogMsgTemplatesReloaded   = "Item templates reloaded"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down admin server..."
	LogMsgServerForcedShutdown = "Admin server forced to shutdown"
	LogMsgServerStopped        = "Shutdown complete"
)

// Error message prefixes
const (
	ErrMsgInitRegistryFailed      = "failed to initialize action registry"
	ErrMsgRegisterMetricsFailed   = "failed to register event metrics"
	ErrMsgLoadTemplatesFailed     = "failed to load item templates"
	ErrMsgValidateTemplatesFailed = "failed to validate item templates"
)
