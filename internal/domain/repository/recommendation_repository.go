package repository

import (
	"context"

	"github.com/traveloki-service/internal/domain"
)

// RecommendationRepository is the moderation pipeline store.
type RecommendationRepository interface {
	// Create stores a new candidate with status pending. SubmittedBy may be
	// nil for anonymous submissions.
	Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)

	// ListPending returns pending candidates newest first, annotated with
	// the contributor's username and email.
	ListPending(ctx context.Context) ([]*domain.Recommendation, error)

	// ListBySubmitter returns a contributor's own submissions, any status,
	// newest first, with category display metadata where the label resolves.
	ListBySubmitter(ctx context.Context, userID int64) ([]*domain.Recommendation, error)

	// Approve promotes a pending candidate into the attractions table and
	// marks it approved, as one transaction holding a row lock on the
	// candidate. Concurrent calls on the same candidate serialize: the loser
	// gets ErrAlreadyProcessed and nothing is written twice.
	Approve(ctx context.Context, id, categoryID, reviewerID int64, notes *string) (*domain.ApprovalResult, error)

	// Reject marks a pending candidate rejected. Resolving an already
	// resolved candidate returns ErrAlreadyProcessed.
	Reject(ctx context.Context, id, reviewerID int64, notes *string) (*domain.Recommendation, error)
}
