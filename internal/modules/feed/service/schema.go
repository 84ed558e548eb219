package service

import (
	"context"
	"log/slog"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/repository"
	"github.com/reshetovitsme/gallery-feed/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// statusOperators is the order status filters are attempted in: the typed
// status operator first, then the legacy select operator.
var statusOperators = []domain.FilterOperator{
	domain.FilterOperatorStatus,
	domain.FilterOperatorSelect,
}

// ResolveMediaField picks the media property for a whole result page: the
// first candidate present on the sample record, or the first candidate when
// none matches.
func ResolveMediaField(candidates []string, sample domain.Record) string {
	if len(candidates) == 0 {
		return ""
	}
	field, found := lo.Find(candidates, sample.Has)
	if !found {
		return candidates[0]
	}
	return field
}

// SchemaResolver runs queries against a record source, adapting status
// filters to the operator the target schema supports.
type SchemaResolver struct {
	repo   repository.Repository
	logger *slog.Logger
}

// NewSchemaResolver creates a resolver over the given repository
func NewSchemaResolver(repo repository.Repository) *SchemaResolver {
	return &SchemaResolver{repo: repo, logger: slog.Default()}
}

// SetLogger sets the logger
func (r *SchemaResolver) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Query executes q. With a status label it tries each status operator in
// turn, so at most two attempts are made; the last failure is returned as an
// upstream error.
func (r *SchemaResolver) Query(ctx context.Context, q domain.Query, statusProperty, status string) ([]domain.Record, error) {
	if status == "" {
		records, err := r.repo.Query(ctx, q)
		if err != nil {
			return nil, oops.In("schema").With("database_id", q.DatabaseID).Wrap(errors.Upstream(err))
		}
		return records, nil
	}

	var lastErr error
	for i, op := range statusOperators {
		q.Filter = &domain.Filter{Property: statusProperty, Operator: op, Equals: status}

		records, err := r.repo.Query(ctx, q)
		if err == nil {
			return records, nil
		}
		lastErr = err

		if i < len(statusOperators)-1 {
			r.logger.Warn("Status filter rejected, retrying with legacy operator",
				"database_id", q.DatabaseID, "operator", op, "error", err)
		}
	}

	return nil, oops.
		In("schema").
		With("database_id", q.DatabaseID, "status", status).
		Wrap(errors.Upstream(lastErr))
}
