package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/itemkit/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server *server.Server
}

// GracefulShutdown stops the admin server. Registered actions live in memory
// and need no flushing.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	slog.Info(LogMsgServerStopped)
}
