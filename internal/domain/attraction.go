package domain

import "time"

// Attraction is a verified catalog record. Rows in the attractions table are
// created either directly by an administrator or by approving a user
// recommendation; unverified data never lives here.
type Attraction struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Lat         float64   `json:"lat" db:"lat"`
	Lng         float64   `json:"lng" db:"lng"`
	Address     *string   `json:"address,omitempty" db:"address"`
	Rating      float64   `json:"rating" db:"rating"`
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	SubmittedBy *int64    `json:"submitted_by,omitempty" db:"submitted_by"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Joined display fields, populated by list/lookup queries.
	CategoryName        string  `json:"category_name,omitempty" db:"category_name"`
	CategoryEmoji       *string `json:"category_emoji,omitempty" db:"category_emoji"`
	CategoryColor       *string `json:"category_color,omitempty" db:"category_color"`
	SubmittedByUsername *string `json:"submitted_by_username,omitempty" db:"submitted_by_username"`

	// DistanceKm is set only by radius queries.
	DistanceKm *float64 `json:"distance_km,omitempty" db:"distance_km"`
}

// AttractionPatch enumerates the mutable attraction fields. A nil field is
// left untouched. Partial updates are built from this fixed set, never from
// caller-supplied column names.
type AttractionPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	CategoryID  *int64   `json:"category_id,omitempty"`
}

// Empty reports whether the patch carries no changes.
func (p AttractionPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Lat == nil &&
		p.Lng == nil && p.Address == nil && p.Rating == nil &&
		p.ImageURL == nil && p.CategoryID == nil
}
