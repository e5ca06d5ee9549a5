package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPluginName, cfg.PluginName)
		assert.Equal(t, "itemkit", cfg.PluginNamespace())
		assert.Equal(t, StoreMap, cfg.Store)
		assert.Equal(t, DefaultStoreSize, cfg.StoreSize)
		assert.Zero(t, cfg.StoreTTL)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultAdminPort, cfg.AdminPort)
		assert.True(t, cfg.AdminEnabled())
		assert.Equal(t, ConfigPathItems, cfg.TemplatesPath)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("ITEMKIT_PLUGIN_NAME", "ShopPlugin")
		t.Setenv("ITEMKIT_NAMESPACE", "Shop")
		t.Setenv("ITEMKIT_STORE", "LRU")
		t.Setenv("ITEMKIT_STORE_SIZE", "128")
		t.Setenv("ITEMKIT_STORE_TTL", "30m")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("ADMIN_PORT", "0")
		t.Setenv("TEMPLATES_PATH", "/etc/itemkit/items.json")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "ShopPlugin", cfg.PluginName)
		assert.Equal(t, "shop", cfg.PluginNamespace())
		assert.Equal(t, StoreLRU, cfg.Store)
		assert.Equal(t, 128, cfg.StoreSize)
		assert.Equal(t, 30*time.Minute, cfg.StoreTTL)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.False(t, cfg.AdminEnabled())
		assert.Equal(t, "/etc/itemkit/items.json", cfg.TemplatesPath)
	})

	invalid := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "ADMIN_PORT", "abc"},
		{"port out of range", "ADMIN_PORT", "70000"},
		{"negative port", "ADMIN_PORT", "-1"},
		{"unknown store", "ITEMKIT_STORE", "redis"},
		{"zero store size", "ITEMKIT_STORE_SIZE", "0"},
		{"non-numeric store size", "ITEMKIT_STORE_SIZE", "lots"},
		{"store ttl without unit", "ITEMKIT_STORE_TTL", "30"},
		{"malformed store ttl", "ITEMKIT_STORE_TTL", "soon"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"empty plugin name", "ITEMKIT_PLUGIN_NAME", ""},
	}
	for _, tc := range invalid {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}

	malformed := map[string]string{
		"ITEMKIT_STORE_SIZE": "12x",
		"ITEMKIT_STORE_TTL":  "5 minutes",
		"ADMIN_PORT":         "eighty",
	}
	for key, value := range malformed {
		t.Run("names malformed "+key, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(key, value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		v, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		v, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.NoError(t, err)
		assert.Equal(t, 100, v)
	})

	t.Run("returns error for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		_, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid TEST_INT_VAR value")
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "")
		v, err := getEnvAsDuration("TEST_DURATION_VAR", time.Second)
		require.NoError(t, err)
		assert.Equal(t, time.Second, v)
	})

	t.Run("parses valid duration from env var", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m")
		v, err := getEnvAsDuration("TEST_DURATION_VAR", time.Second)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, v)
	})

	t.Run("returns error for plain numbers without unit", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "30")
		_, err := getEnvAsDuration("TEST_DURATION_VAR", time.Second)
		assert.Error(t, err)
	})
}

func TestConfig_Warnings(t *testing.T) {
	t.Run("unbounded store in production", func(t *testing.T) {
		cfg := &Config{Store: StoreMap, Environment: "production", AdminAPIKey: "k"}
		assert.Len(t, cfg.Warnings(), 1)
	})

	t.Run("expiring store", func(t *testing.T) {
		cfg := &Config{Store: StoreLRU, StoreTTL: time.Hour, Environment: "dev"}
		assert.Len(t, cfg.Warnings(), 1)
	})

	t.Run("unauthenticated admin in production", func(t *testing.T) {
		cfg := &Config{Store: StoreLRU, Environment: "production", AdminPort: 8081}
		assert.Len(t, cfg.Warnings(), 1)
	})

	t.Run("development defaults", func(t *testing.T) {
		cfg := &Config{Store: StoreMap, Environment: "dev"}
		assert.Empty(t, cfg.Warnings())
	})
}

// clearEnvVars resets every variable Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ITEMKIT_PLUGIN_NAME", "ITEMKIT_NAMESPACE", "ITEMKIT_STORE", "ITEMKIT_STORE_SIZE",
		"ITEMKIT_STORE_TTL", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "ADMIN_PORT", "ADMIN_API_KEY", "TEMPLATES_PATH",
	} {
		t.Setenv(key, "")
		unsetEnv(t, key)
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}
