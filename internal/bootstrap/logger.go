package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/itemkit/internal/config"
	"github.com/osse101/itemkit/internal/handler"
	"github.com/osse101/itemkit/internal/logger"
)

// SetupLogger installs the default slog logger described by cfg and logs the
// effective configuration
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	log := logger.InitWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.PluginName,
		cfg.PluginNamespace(),
		handler.GetVersion(),
		cfg.Environment,
	), w)

	log.Info(LogMsgStarting, "log_level", cfg.LogLevel)
	log.Debug(LogMsgConfigurationLoaded,
		"store", cfg.Store,
		"store_size", cfg.StoreSize,
		"store_ttl", cfg.StoreTTL,
		"admin_port", cfg.AdminPort,
		"templates_path", cfg.TemplatesPath)

	for _, warning := range cfg.Warnings() {
		log.Warn(LogMsgConfigWarning, "detail", warning)
	}
	return log
}
