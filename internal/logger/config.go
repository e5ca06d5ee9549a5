package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the plugin logs. Every record carries the plugin name
// and identifier namespace so several plugins sharing one host log stay
// distinguishable.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	Plugin      string
	Namespace   string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config for plugin. Source locations are included only
// in development environments.
func NewConfig(level, format, plugin, namespace, version, environment string) Config {
	return Config{
		Level:       level,
		Format:      format,
		Plugin:      plugin,
		Namespace:   namespace,
		Version:     version,
		Environment: environment,
		AddSource:   isDevelopment(environment),
	}
}

func isDevelopment(environment string) bool {
	switch strings.ToLower(environment) {
	case EnvironmentDev, EnvironmentDevelopment:
		return true
	}
	return false
}

// LogLevel parses Level, accepting "warning" as an alias and falling back to info
func (c Config) LogLevel() slog.Level {
	if strings.EqualFold(c.Level, LogLevelWarning) {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes returns the attributes stamped on every record. The namespace
// is omitted when it matches the lower-cased plugin name.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, DefaultServiceName),
		slog.String(AttrKeyPlugin, c.Plugin),
	}
	if c.Namespace != "" && c.Namespace != strings.ToLower(c.Plugin) {
		attrs = append(attrs, slog.String(AttrKeyNamespace, c.Namespace))
	}
	return append(attrs,
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	)
}
