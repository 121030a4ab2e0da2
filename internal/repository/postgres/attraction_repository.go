package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
)

const (
	// SearchByName result cap.
	searchLimit = 20

	// Nearby default result cap when the caller passes limit <= 0.
	nearbyDefaultLimit = 50
)

// greatCircleExpr is the spherical law of cosines evaluated per row. Earth
// radius 6371 km; the acos argument is clamped so a coincident point scans
// as exactly 0 instead of raising a domain error. Placeholders $1=lat $2=lng.
// utils.GreatCircleDistance implements the same expression in Go.
const greatCircleExpr = `(6371 * acos(LEAST(1.0, GREATEST(-1.0,
		cos(radians($1)) * cos(radians(a.lat)) *
		cos(radians(a.lng) - radians($2)) +
		sin(radians($1)) * sin(radians(a.lat))
	))))`

const attractionColumns = `
		a.id, a.name, a.description, a.lat, a.lng, a.address, a.rating,
		a.is_verified, a.image_url, a.submitted_by, a.category_id, a.created_at,
		c.name AS category_name, c.emoji AS category_emoji, c.color AS category_color,
		u.username AS submitted_by_username`

type attractionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAttractionRepository(db *DB) repository.AttractionRepository {
	return &attractionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func scanAttraction(row interface{ Scan(...interface{}) error }, a *domain.Attraction) error {
	return row.Scan(
		&a.ID, &a.Name, &a.Description, &a.Lat, &a.Lng, &a.Address, &a.Rating,
		&a.IsVerified, &a.ImageURL, &a.SubmittedBy, &a.CategoryID, &a.CreatedAt,
		&a.CategoryName, &a.CategoryEmoji, &a.CategoryColor,
		&a.SubmittedByUsername,
	)
}

func (r *attractionRepository) List(
	ctx context.Context,
	category *string,
	verifiedOnly bool,
) ([]*domain.Attraction, error) {
	query := `
		SELECT` + attractionColumns + `
		FROM attractions a
		JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.submitted_by = u.id
		WHERE 1=1
	`

	args := []interface{}{}
	argIdx := 1

	if verifiedOnly {
		query += " AND a.is_verified = TRUE"
	}

	if category != nil && *category != "" {
		query += fmt.Sprintf(" AND LOWER(c.name) = LOWER($%d)", argIdx)
		args = append(args, *category)
		argIdx++
	}

	query += " ORDER BY a.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list attractions", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var attractions []*domain.Attraction
	for rows.Next() {
		var a domain.Attraction
		if err := scanAttraction(rows, &a); err != nil {
			r.logger.Error("Failed to scan attraction", zap.Error(err))
			continue
		}
		attractions = append(attractions, &a)
	}

	return attractions, nil
}

func (r *attractionRepository) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	query := `
		SELECT` + attractionColumns + `
		FROM attractions a
		JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.submitted_by = u.id
		WHERE a.id = $1
	`

	var a domain.Attraction
	err := scanAttraction(r.db.QueryRowContext(ctx, query, id), &a)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get attraction by ID", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &a, nil
}

func (r *attractionRepository) SearchByName(ctx context.Context, query string) ([]*domain.Attraction, error) {
	sqlQuery := `
		SELECT` + attractionColumns + `
		FROM attractions a
		JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.submitted_by = u.id
		WHERE a.is_verified = TRUE
		  AND (a.name ILIKE $1 OR a.description ILIKE $1)
		ORDER BY a.name
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%", searchLimit)
	if err != nil {
		r.logger.Error("Failed to search attractions", zap.String("query", query), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var attractions []*domain.Attraction
	for rows.Next() {
		var a domain.Attraction
		if err := scanAttraction(rows, &a); err != nil {
			continue
		}
		attractions = append(attractions, &a)
	}

	return attractions, nil
}

func (r *attractionRepository) Nearby(
	ctx context.Context,
	lat, lng, radiusKm float64,
	limit int,
) ([]*domain.Attraction, error) {
	if limit <= 0 {
		limit = nearbyDefaultLimit
	}

	// No spatial index: the distance expression runs per row, which is fine
	// at catalog scale. The boundary is inclusive (<=).
	query := `
		SELECT` + attractionColumns + `,
			` + greatCircleExpr + ` AS distance_km
		FROM attractions a
		JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.submitted_by = u.id
		WHERE a.is_verified = TRUE
		  AND ` + greatCircleExpr + ` <= $3
		ORDER BY distance_km
		LIMIT $4
	`

	rows, err := r.db.QueryContext(ctx, query, lat, lng, radiusKm, limit)
	if err != nil {
		r.logger.Error("Failed to get nearby attractions",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Float64("radius_km", radiusKm),
			zap.Error(err),
		)
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var attractions []*domain.Attraction
	for rows.Next() {
		var a domain.Attraction
		var distance float64
		err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.Lat, &a.Lng, &a.Address, &a.Rating,
			&a.IsVerified, &a.ImageURL, &a.SubmittedBy, &a.CategoryID, &a.CreatedAt,
			&a.CategoryName, &a.CategoryEmoji, &a.CategoryColor,
			&a.SubmittedByUsername,
			&distance,
		)
		if err != nil {
			r.logger.Error("Failed to scan attraction", zap.Error(err))
			continue
		}
		a.DistanceKm = &distance
		attractions = append(attractions, &a)
	}

	return attractions, nil
}

func (r *attractionRepository) Create(ctx context.Context, attraction *domain.Attraction) (*domain.Attraction, error) {
	// Direct inserts are always verified; only the approval transaction and
	// this path write to attractions.
	query := `
		INSERT INTO attractions (name, description, lat, lng, address, rating, is_verified, image_url, submitted_by, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		attraction.Name,
		attraction.Description,
		attraction.Lat,
		attraction.Lng,
		attraction.Address,
		attraction.Rating,
		attraction.ImageURL,
		attraction.SubmittedBy,
		attraction.CategoryID,
	).Scan(&attraction.ID, &attraction.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create attraction", zap.String("name", attraction.Name), zap.Error(err))
		return nil, mapStorageError(err)
	}

	attraction.IsVerified = true
	return attraction, nil
}

func (r *attractionRepository) Update(
	ctx context.Context,
	id int64,
	patch domain.AttractionPatch,
) (*domain.Attraction, error) {
	// The SET list is assembled from the fixed patch fields only; column
	// names never come from the caller.
	sets := []string{}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Lat != nil {
		addSet("lat", *patch.Lat)
	}
	if patch.Lng != nil {
		addSet("lng", *patch.Lng)
	}
	if patch.Address != nil {
		addSet("address", *patch.Address)
	}
	if patch.Rating != nil {
		addSet("rating", *patch.Rating)
	}
	if patch.ImageURL != nil {
		addSet("image_url", *patch.ImageURL)
	}
	if patch.CategoryID != nil {
		addSet("category_id", *patch.CategoryID)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidRequest
	}

	query := "UPDATE attractions SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)
	args = append(args, id)

	var updatedID int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update attraction", zap.Int64("id", id), zap.Error(err))
		return nil, mapStorageError(err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *attractionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM attractions WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete attraction", zap.Int64("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read rows affected", zap.Int64("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if affected == 0 {
		return apperrors.ErrAttractionNotFound
	}

	return nil
}
