package repository

import (
	"context"

	"github.com/traveloki-service/internal/domain"
)

// AttractionRepository is the catalog store for verified attractions.
type AttractionRepository interface {
	// List returns attractions newest first, optionally filtered by category
	// name. verifiedOnly=false exists for a future admin view; every current
	// caller passes true.
	List(ctx context.Context, category *string, verifiedOnly bool) ([]*domain.Attraction, error)

	GetByID(ctx context.Context, id int64) (*domain.Attraction, error)

	// SearchByName matches the query case-insensitively against name and
	// description of verified attractions, ordered by name, capped at 20.
	SearchByName(ctx context.Context, query string) ([]*domain.Attraction, error)

	// Nearby returns verified attractions within radiusKm kilometers of the
	// point, closest first. The boundary is inclusive: a record at exactly
	// radiusKm is returned.
	Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*domain.Attraction, error)

	// Create inserts an administrator-authored attraction. The category id
	// must already be resolved; is_verified is always stored as true.
	Create(ctx context.Context, attraction *domain.Attraction) (*domain.Attraction, error)

	Update(ctx context.Context, id int64, patch domain.AttractionPatch) (*domain.Attraction, error)

	Delete(ctx context.Context, id int64) error
}
