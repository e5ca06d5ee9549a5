package item

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the default name of the item templates file
	ConfigFileName = "items.json"

	// ItemsSchemaName identifies the embedded templates schema
	ItemsSchemaName = "itemkit/items.schema.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgRegisterActionFailed = "failed to register click action: %w"
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for error construction
const (
	ErrFmtItemAtIndexEmpty = "%w: item at index %d has empty key"
	ErrFmtItemInvalid      = "%w: item '%s': %w"
	ErrFmtTemplateNotFound = "%w: '%s'"
)
