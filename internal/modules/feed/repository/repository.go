package repository

import (
	"context"

	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
)

// Repository reads records from an external database.
// Implementations: Notion (live API) and FileStorage (local fixtures).
type Repository interface {
	Query(ctx context.Context, q domain.Query) ([]domain.Record, error)
}
