package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/gallery-feed/internal/shared/config"
	httpServer "github.com/reshetovitsme/gallery-feed/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

const shutdownTimeout = 10 * time.Second

// Run serves HTTP until ctx is done or the server fails, then shuts the
// container down. A non-empty port overrides the configured one.
func Run(ctx context.Context, injector do.Injector, port string) error {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return oops.With("context", "failed to load config").Wrap(err)
	}
	if port != "" {
		cfg.HTTPPort = port
	}

	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		return oops.With("context", "failed to build http server").Wrap(err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()
	slog.Info("Application started", "port", cfg.HTTPPort, "source", cfg.Source, "env", cfg.AppEnv)

	select {
	case err := <-errCh:
		if err != nil {
			return oops.With("context", "http server failed").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := Shutdown(shutdownCtx, injector); err != nil {
		return err
	}
	return <-errCh
}
