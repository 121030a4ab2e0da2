package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
)

type categoryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, emoji, color, created_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Emoji, &c.Color, &c.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, &c)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, emoji, color, created_at
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Emoji, &c.Color, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category by ID", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &c, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, emoji, color, created_at
		FROM categories
		WHERE LOWER(name) = LOWER($1)
	`, name).Scan(&c.ID, &c.Name, &c.Emoji, &c.Color, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category by name", zap.String("name", name), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &c, nil
}
