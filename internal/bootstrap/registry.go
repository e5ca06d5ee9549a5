package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/itemkit/internal/action"
	"github.com/osse101/itemkit/internal/config"
	"github.com/osse101/itemkit/internal/host"
	"github.com/osse101/itemkit/internal/metrics"
)

// NewActionStore returns the store selected by ITEMKIT_STORE
func NewActionStore(cfg *config.Config) action.Store {
	if cfg.Store == config.StoreLRU {
		slog.Info(LogMsgStoreSelected, "store", cfg.Store, "size", cfg.StoreSize, "ttl", cfg.StoreTTL)
		return action.NewLRUStore(cfg.StoreSize, cfg.StoreTTL)
	}
	slog.Info(LogMsgStoreSelected, "store", config.StoreMap)
	return action.NewMapStore()
}

// InitializeRegistry creates the click action registry, attaches it to the
// plugin's event stream and registers the event metrics collector there
func InitializeRegistry(cfg *config.Config, plugin host.Plugin) (*action.Registry, error) {
	registry := action.NewRegistry(action.WithStore(NewActionStore(cfg)))
	if err := registry.Init(plugin); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInitRegistryFailed, err)
	}

	if err := metrics.NewEventMetricsCollector().Register(plugin.Events()); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterMetricsFailed, err)
	}
	return registry, nil
}
