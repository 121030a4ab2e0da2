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

const recommendationColumns = `
		ur.id, ur.name, ur.description, ur.lat, ur.lng, ur.address, ur.category,
		ur.submitted_by, ur.status, ur.reviewed_by, ur.review_notes,
		ur.created_at, ur.updated_at`

type recommendationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRecommendationRepository(db *DB) repository.RecommendationRepository {
	return &recommendationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func scanRecommendation(row interface{ Scan(...interface{}) error }, rec *domain.Recommendation) error {
	return row.Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.Lat, &rec.Lng, &rec.Address,
		&rec.Category, &rec.SubmittedBy, &rec.Status, &rec.ReviewedBy,
		&rec.ReviewNotes, &rec.CreatedAt, &rec.UpdatedAt,
	)
}

func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	query := `
		INSERT INTO user_recommendations (name, description, lat, lng, address, category, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		rec.Name,
		rec.Description,
		rec.Lat,
		rec.Lng,
		rec.Address,
		rec.Category,
		rec.SubmittedBy,
	).Scan(&rec.ID, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create recommendation", zap.String("name", rec.Name), zap.Error(err))
		return nil, mapStorageError(err)
	}

	return rec, nil
}

func (r *recommendationRepository) ListPending(ctx context.Context) ([]*domain.Recommendation, error) {
	query := `
		SELECT` + recommendationColumns + `,
			u.username AS submitted_by_username,
			u.email AS submitted_by_email
		FROM user_recommendations ur
		LEFT JOIN users u ON ur.submitted_by = u.id
		WHERE ur.status = 'pending'
		ORDER BY ur.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list pending recommendations", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var recs []*domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Description, &rec.Lat, &rec.Lng, &rec.Address,
			&rec.Category, &rec.SubmittedBy, &rec.Status, &rec.ReviewedBy,
			&rec.ReviewNotes, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.SubmittedByUsername, &rec.SubmittedByEmail,
		)
		if err != nil {
			r.logger.Error("Failed to scan recommendation", zap.Error(err))
			continue
		}
		recs = append(recs, &rec)
	}

	return recs, nil
}

func (r *recommendationRepository) ListBySubmitter(ctx context.Context, userID int64) ([]*domain.Recommendation, error) {
	// The category column is a free-text label; the join resolves display
	// metadata only when the label matches a seeded category.
	query := `
		SELECT` + recommendationColumns + `,
			c.emoji AS category_emoji,
			c.color AS category_color
		FROM user_recommendations ur
		LEFT JOIN categories c ON LOWER(ur.category) = LOWER(c.name)
		WHERE ur.submitted_by = $1
		ORDER BY ur.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list recommendations by submitter",
			zap.Int64("user_id", userID), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var recs []*domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Description, &rec.Lat, &rec.Lng, &rec.Address,
			&rec.Category, &rec.SubmittedBy, &rec.Status, &rec.ReviewedBy,
			&rec.ReviewNotes, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.CategoryEmoji, &rec.CategoryColor,
		)
		if err != nil {
			r.logger.Error("Failed to scan recommendation", zap.Error(err))
			continue
		}
		recs = append(recs, &rec)
	}

	return recs, nil
}

// Approve runs the promotion protocol in one transaction:
//
//  1. lock the candidate row (SELECT ... FOR UPDATE) and re-check it is
//     still pending, so concurrent reviewers serialize on the row lock;
//  2. insert the verified attraction copied from the candidate;
//  3. flip the candidate to approved with reviewer and notes;
//  4. commit. Any failure rolls the whole thing back, leaving the candidate
//     pending and no partial attraction behind.
func (r *recommendationRepository) Approve(
	ctx context.Context,
	id, categoryID, reviewerID int64,
	notes *string,
) (*domain.ApprovalResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin approval transaction", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var rec domain.Recommendation
	err = scanRecommendation(tx.QueryRowContext(ctx, `
		SELECT`+recommendationColumns+`
		FROM user_recommendations ur
		WHERE ur.id = $1
		FOR UPDATE
	`, id), &rec)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrRecommendationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to lock recommendation", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	// The loser of a concurrent approval observes the committed terminal
	// status here and backs off.
	if rec.Status != domain.StatusPending {
		return nil, apperrors.ErrAlreadyProcessed
	}

	var attraction domain.Attraction
	err = tx.QueryRowContext(ctx, `
		INSERT INTO attractions (name, description, lat, lng, address, rating, is_verified, submitted_by, category_id)
		VALUES ($1, $2, $3, $4, $5, 0.0, TRUE, $6, $7)
		RETURNING id, name, description, lat, lng, address, rating, is_verified, image_url, submitted_by, category_id, created_at
	`,
		rec.Name, rec.Description, rec.Lat, rec.Lng, rec.Address,
		rec.SubmittedBy, categoryID,
	).Scan(
		&attraction.ID, &attraction.Name, &attraction.Description,
		&attraction.Lat, &attraction.Lng, &attraction.Address,
		&attraction.Rating, &attraction.IsVerified, &attraction.ImageURL,
		&attraction.SubmittedBy, &attraction.CategoryID, &attraction.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert attraction from recommendation",
			zap.Int64("id", id), zap.Int64("category_id", categoryID), zap.Error(err))
		return nil, mapStorageError(err)
	}

	err = scanRecommendation(tx.QueryRowContext(ctx, `
		UPDATE user_recommendations ur
		SET status = 'approved', reviewed_by = $1, review_notes = $2, updated_at = CURRENT_TIMESTAMP
		WHERE ur.id = $3
		RETURNING`+recommendationColumns+`
	`, reviewerID, notes, id), &rec)
	if err != nil {
		r.logger.Error("Failed to mark recommendation approved", zap.Int64("id", id), zap.Error(err))
		return nil, mapStorageError(err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit approval", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	r.logger.Info("Recommendation approved",
		zap.Int64("recommendation_id", rec.ID),
		zap.Int64("attraction_id", attraction.ID),
		zap.Int64("reviewer_id", reviewerID),
	)

	return &domain.ApprovalResult{
		Attraction:     &attraction,
		Recommendation: &rec,
	}, nil
}

func (r *recommendationRepository) Reject(
	ctx context.Context,
	id, reviewerID int64,
	notes *string,
) (*domain.Recommendation, error) {
	// Single conditional update: the status guard in WHERE makes rejection
	// atomic without an explicit transaction.
	var rec domain.Recommendation
	err := scanRecommendation(r.db.QueryRowContext(ctx, `
		UPDATE user_recommendations ur
		SET status = 'rejected', reviewed_by = $1, review_notes = $2, updated_at = CURRENT_TIMESTAMP
		WHERE ur.id = $3 AND ur.status = 'pending'
		RETURNING`+recommendationColumns+`
	`, reviewerID, notes, id), &rec)
	if err == sql.ErrNoRows {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		r.logger.Error("Failed to reject recommendation", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	r.logger.Info("Recommendation rejected",
		zap.Int64("recommendation_id", rec.ID),
		zap.Int64("reviewer_id", reviewerID),
	)

	return &rec, nil
}

// classifyMiss distinguishes "no such candidate" from "candidate already
// resolved" after a guarded update matched nothing.
func (r *recommendationRepository) classifyMiss(ctx context.Context, id int64) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM user_recommendations WHERE id = $1)", id,
	).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check recommendation existence", zap.Int64("id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if !exists {
		return apperrors.ErrRecommendationNotFound
	}
	return apperrors.ErrAlreadyProcessed
}
