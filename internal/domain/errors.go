package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Registry errors
	ErrMsgRegistryNotInitialized = "action registry is not initialized -> call Registry.Init(plugin) when the plugin is enabled"
	ErrMsgAlreadyInitialized     = "action registry is already initialized"
	ErrMsgNilPlugin              = "plugin cannot be nil"

	// Builder errors
	ErrMsgLoreNotInitialized = "item has no lore to append to"
	ErrMsgNoItemMeta         = "item has no metadata"

	// Lookup errors
	ErrMsgUnknownMaterial    = "unknown material"
	ErrMsgUnknownEnchantment = "unknown enchantment"
	ErrMsgUnknownItemFlag    = "unknown item flag"
	ErrMsgInvalidColor       = "invalid color"

	// Event errors
	ErrMsgUnexpectedPayload = "unexpected event payload"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Configuration errors
	ErrRegistryNotInitialized = errors.New(ErrMsgRegistryNotInitialized)
	ErrAlreadyInitialized     = errors.New(ErrMsgAlreadyInitialized)
	ErrNilPlugin              = errors.New(ErrMsgNilPlugin)

	// Precondition errors
	ErrLoreNotInitialized = errors.New(ErrMsgLoreNotInitialized)
	ErrNoItemMeta         = errors.New(ErrMsgNoItemMeta)

	// Lookup errors
	ErrUnknownMaterial    = errors.New(ErrMsgUnknownMaterial)
	ErrUnknownEnchantment = errors.New(ErrMsgUnknownEnchantment)
	ErrUnknownItemFlag    = errors.New(ErrMsgUnknownItemFlag)
	ErrInvalidColor       = errors.New(ErrMsgInvalidColor)

	// Event errors
	ErrUnexpectedPayload = errors.New(ErrMsgUnexpectedPayload)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
