package di

import (
	"context"
	"log/slog"

	accessService "github.com/reshetovitsme/gallery-feed/internal/modules/access/service"
	feedRepo "github.com/reshetovitsme/gallery-feed/internal/modules/feed/repository"
	feedService "github.com/reshetovitsme/gallery-feed/internal/modules/feed/service"
	galleryRepo "github.com/reshetovitsme/gallery-feed/internal/modules/gallery/repository"
	"github.com/reshetovitsme/gallery-feed/internal/shared/config"
	httpServer "github.com/reshetovitsme/gallery-feed/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container. configPath may be
// empty to use the default config file lookup.
func Setup(configPath string) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Feed Repository
	do.Provide(injector, func(i do.Injector) (feedRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		switch cfg.Source {
		case config.SourceKindFile:
			repo, err := feedRepo.NewFileStorage(cfg.StoragePath)
			if err != nil {
				return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize file repository").Wrap(err)
			}
			return repo, nil
		default:
			return feedRepo.NewNotion(cfg.NotionAPIURL, cfg.NotionToken, cfg.NotionVersion), nil
		}
	})

	// Register Access Guard
	do.Provide(injector, func(i do.Injector) (*accessService.Guard, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return accessService.New(cfg.AllowedDatabaseIDs), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := do.Invoke[feedRepo.Repository](i)
		if err != nil {
			return nil, err
		}
		guard := do.MustInvoke[*accessService.Guard](i)

		svc := feedService.New(repo, guard, cfg.Schema, cfg.DefaultLimit)
		svc.SetLogger(slog.Default())
		return svc, nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		feeds, err := do.Invoke[*feedService.Service](i)
		if err != nil {
			return nil, err
		}
		guard := do.MustInvoke[*accessService.Guard](i)

		server := httpServer.New(cfg, feeds, guard)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Gallery Client
	do.Provide(injector, func(i do.Injector) (*galleryRepo.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return galleryRepo.NewClient(cfg.FeedURL), nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(ctx context.Context, injector do.Injector) error {
	// Stop the HTTP server when one resolves
	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to stop http server").Wrap(err)
		}
	}
	return nil
}
