package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	PluginName string `validate:"required"`
	Namespace  string

	Store     string        `validate:"oneof=map lru"`
	StoreSize int           `validate:"min=1"`
	StoreTTL  time.Duration `validate:"min=0"`

	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`

	AdminPort     int `validate:"min=0,max=65535"`
	AdminAPIKey   string
	TemplatesPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		PluginName:    getEnv("ITEMKIT_PLUGIN_NAME", DefaultPluginName),
		Namespace:     strings.ToLower(getEnv("ITEMKIT_NAMESPACE", "")),
		Store:         strings.ToLower(getEnv("ITEMKIT_STORE", StoreMap)),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Environment:   getEnv("ENVIRONMENT", "dev"),
		AdminAPIKey:   getEnv("ADMIN_API_KEY", ""),
		TemplatesPath: getEnv("TEMPLATES_PATH", ConfigPathItems),
	}

	var err error
	if cfg.StoreSize, err = getEnvAsInt("ITEMKIT_STORE_SIZE", DefaultStoreSize); err != nil {
		return nil, err
	}
	if cfg.StoreTTL, err = getEnvAsDuration("ITEMKIT_STORE_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.AdminPort, err = getEnvAsInt("ADMIN_PORT", DefaultAdminPort); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PluginNamespace returns the namespace for identifier keys, derived from the
// plugin name when not set explicitly
func (c *Config) PluginNamespace() string {
	if c.Namespace != "" {
		return c.Namespace
	}
	return strings.ToLower(c.PluginName)
}

// AdminEnabled reports whether the admin HTTP surface should be started
func (c *Config) AdminEnabled() bool {
	return c.AdminPort > 0
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable. Unset or empty yields
// the default; anything else must parse.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidEnv, key, err)
	}
	return value, nil
}

// getEnvAsDuration retrieves a duration ("30m", "1h") environment variable
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidEnv, key, err)
	}
	return value, nil
}
