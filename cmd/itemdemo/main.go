// Command itemdemo runs the item builder and click action registry against
// the in-memory host: it builds a small shop menu, replays a few clicks, and
// optionally serves the admin API until interrupted.
//
// @title ItemKit admin API
// @version 1.0
// @description Inspects and prunes click actions and item templates.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/itemkit/internal/bootstrap"
	"github.com/osse101/itemkit/internal/config"
	"github.com/osse101/itemkit/internal/host/memhost"
	"github.com/osse101/itemkit/internal/item"
	"github.com/osse101/itemkit/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg, os.Stdout)

	plugin := memhost.NewPluginWithNamespace(cfg.PluginName, cfg.PluginNamespace())
	registry, err := bootstrap.InitializeRegistry(cfg, plugin)
	if err != nil {
		slog.Error("Registry setup failed", "error", err)
		os.Exit(1)
	}

	templates, err := bootstrap.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		slog.Error("Template setup failed", "error", err)
		os.Exit(1)
	}

	factory := item.NewFactory(memhost.NewFactory(), registry)
	shop, err := newShop(factory, templates.Templates())
	if err != nil {
		slog.Error("Failed to build shop menu", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := shop.replay(ctx, plugin); err != nil {
		slog.Error("Click replay failed", "error", err)
		os.Exit(1)
	}

	if !cfg.AdminEnabled() {
		return
	}

	srv := server.NewServer(cfg.AdminPort, cfg.AdminAPIKey, registry, templates)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Admin server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sc {
		if sig == syscall.SIGHUP {
			if err := templates.Reload(); err != nil {
				slog.Error("Template reload failed", "error", err)
			}
			continue
		}
		break
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv})
}
