package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/repository"
	"github.com/reshetovitsme/gallery-feed/internal/shared/config"
	"github.com/reshetovitsme/gallery-feed/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Guard authorizes database identifiers
type Guard interface {
	IsAllowed(requestedID string) bool
}

// Request describes one feed read. Limit 0 means the default page size.
type Request struct {
	DatabaseID string
	Status     string
	Limit      int
}

// Service builds the canonical gallery feed from an external database
type Service struct {
	guard        Guard
	resolver     *SchemaResolver
	mapper       *ItemMapper
	schema       domain.Schema
	defaultLimit int
	logger       *slog.Logger
}

// New creates a new feed service
func New(repo repository.Repository, guard Guard, schema domain.Schema, defaultLimit int) *Service {
	return &Service{
		guard:        guard,
		resolver:     NewSchemaResolver(repo),
		mapper:       NewItemMapper(schema),
		schema:       schema,
		defaultLimit: defaultLimit,
		logger:       slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
	s.resolver.SetLogger(logger)
}

// GetFeed returns the items of a database, newest first. Every returned item
// has at least one media URL. Nothing is cached: signed media URLs expire, so
// callers re-read the feed periodically.
func (s *Service) GetFeed(ctx context.Context, req Request) ([]domain.Item, error) {
	if strings.TrimSpace(req.DatabaseID) == "" {
		return nil, oops.In("feed").Wrap(errors.Validation("Missing database_id"))
	}

	if !s.guard.IsAllowed(req.DatabaseID) {
		return nil, oops.In("feed").With("database_id", req.DatabaseID).Wrap(errors.ErrAccessDenied)
	}

	q := domain.Query{
		DatabaseID: req.DatabaseID,
		PageSize:   ClampLimit(req.Limit, s.defaultLimit),
		SortBy:     s.schema.SortProperty(),
	}

	records, err := s.resolver.Query(ctx, q, s.schema.StatusProperty(), strings.TrimSpace(req.Status))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []domain.Item{}, nil
	}

	// One media field per page: every record is mapped with the same decision.
	mediaField := ResolveMediaField(s.schema.Media, records[0])

	items := lo.FilterMap(records, func(r domain.Record, _ int) (domain.Item, bool) {
		item := s.mapper.Map(r, mediaField)
		return item, len(item.Media) > 0
	})

	s.logger.Debug("Feed built",
		"database_id", req.DatabaseID,
		"records", len(records),
		"items", len(items),
		"media_field", mediaField)

	return items, nil
}

// ClampLimit bounds a requested page size to [1, MaxLimit]; 0 selects def.
func ClampLimit(limit, def int) int {
	if limit == 0 {
		limit = def
	}
	return lo.Clamp(limit, 1, config.MaxLimit)
}
