package repository

import (
	"context"

	"github.com/traveloki-service/internal/domain"
)

// CategoryRepository reads the category reference set. Categories are seeded
// outside the service and never written here.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	// GetByName resolves a free-text category label, case-insensitively.
	GetByName(ctx context.Context, name string) (*domain.Category, error)
}
