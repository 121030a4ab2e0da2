package dto

// RegisterRequest - new account registration
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3,max=30"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name,omitempty"`
}

// LoginRequest - credential check and token issuance
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NearbyRequest - radius search around a point. Coordinates are pointers so
// lat/lng of 0 survive the required check.
type NearbyRequest struct {
	Lat      *float64 `json:"lat" validate:"required"`
	Lng      *float64 `json:"lng" validate:"required"`
	RadiusKm float64  `json:"radius_km" validate:"omitempty,min=0.1,max=100"`
	Limit    int      `json:"limit" validate:"omitempty,min=1,max=200"`
}

// CreateAttractionRequest - administrator-authored catalog insert
type CreateAttractionRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description *string  `json:"description,omitempty"`
	Lat         *float64 `json:"lat" validate:"required"`
	Lng         *float64 `json:"lng" validate:"required"`
	Address     *string  `json:"address,omitempty"`
	Rating      float64  `json:"rating" validate:"omitempty,min=0,max=5"`
	ImageURL    *string  `json:"image_url,omitempty"`
	CategoryID  int64    `json:"category_id" validate:"required"`
}

// UpdateAttractionRequest - partial update; every field optional
type UpdateAttractionRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ImageURL    *string  `json:"image_url,omitempty"`
	CategoryID  *int64   `json:"category_id,omitempty"`
}

// SubmitRecommendationRequest - user submission of a candidate attraction.
// Category is a free-text label resolved only at approval time.
type SubmitRecommendationRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description *string  `json:"description,omitempty"`
	Lat         *float64 `json:"lat" validate:"required"`
	Lng         *float64 `json:"lng" validate:"required"`
	Address     *string  `json:"address,omitempty"`
	Category    string   `json:"category" validate:"required"`
}

// ApproveRecommendationRequest - admin decision. Either a category id or a
// category name must be supplied; there is no silent default.
type ApproveRecommendationRequest struct {
	CategoryID *int64  `json:"category_id,omitempty"`
	Category   *string `json:"category,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// RejectRecommendationRequest - admin rejection with optional notes
type RejectRecommendationRequest struct {
	Notes *string `json:"notes,omitempty"`
}
