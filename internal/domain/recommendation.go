package domain

import "time"

// RecommendationStatus is the moderation state of a user submission.
type RecommendationStatus string

const (
	StatusPending  RecommendationStatus = "pending"
	StatusApproved RecommendationStatus = "approved"
	StatusRejected RecommendationStatus = "rejected"
)

// Terminal reports whether the status can never change again. Approved and
// rejected are final; only pending rows may be resolved.
func (s RecommendationStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo enforces the moderation state machine:
// pending -> approved, pending -> rejected, nothing else.
func (s RecommendationStatus) CanTransitionTo(next RecommendationStatus) bool {
	return s == StatusPending && next.Terminal()
}

// Recommendation is a user-submitted attraction candidate awaiting review.
// Category holds a free-text label; it is resolved to a Category id only at
// approval time. Rows are kept after resolution as a review trail.
type Recommendation struct {
	ID          int64                `json:"id" db:"id"`
	Name        string               `json:"name" db:"name"`
	Description *string              `json:"description,omitempty" db:"description"`
	Lat         float64              `json:"lat" db:"lat"`
	Lng         float64              `json:"lng" db:"lng"`
	Address     *string              `json:"address,omitempty" db:"address"`
	Category    string               `json:"category" db:"category"`
	SubmittedBy *int64               `json:"submitted_by,omitempty" db:"submitted_by"`
	Status      RecommendationStatus `json:"status" db:"status"`
	ReviewedBy  *int64               `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewNotes *string              `json:"review_notes,omitempty" db:"review_notes"`
	CreatedAt   time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" db:"updated_at"`

	// Joined display fields.
	SubmittedByUsername *string `json:"submitted_by_username,omitempty" db:"submitted_by_username"`
	SubmittedByEmail    *string `json:"submitted_by_email,omitempty" db:"submitted_by_email"`
	CategoryEmoji       *string `json:"category_emoji,omitempty" db:"category_emoji"`
	CategoryColor       *string `json:"category_color,omitempty" db:"category_color"`
}

// ApprovalResult is returned by the approval transaction: the attraction the
// candidate was promoted into plus the resolved candidate itself.
type ApprovalResult struct {
	Attraction     *Attraction     `json:"attraction"`
	Recommendation *Recommendation `json:"recommendation"`
}
