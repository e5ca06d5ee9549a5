package config

import (
	"fmt"

	"github.com/osse101/itemkit/internal/validation"
)

var structValidator = validation.NewStructValidator()

// Validate checks the loaded configuration against its field rules
func Validate(cfg *Config) error {
	if err := structValidator.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Warnings returns non-critical notes about the configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Store == StoreMap && c.Environment == "production" {
		warnings = append(warnings, "ITEMKIT_STORE=map keeps every registered action for the plugin lifetime - use lru for long-running servers that build many items")
	}
	if c.Store == StoreLRU && c.StoreTTL > 0 {
		warnings = append(warnings, "ITEMKIT_STORE_TTL is set: clicks on items older than the TTL will be ignored")
	}

	if c.AdminEnabled() && c.AdminAPIKey == "" && c.Environment == "production" {
		warnings = append(warnings, "ADMIN_API_KEY is not set - the admin API accepts unauthenticated requests")
	}

	return warnings
}
