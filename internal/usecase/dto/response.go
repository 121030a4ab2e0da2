package dto

import "github.com/traveloki-service/internal/domain"

// AuthResponse - registration/login result
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// UserResponse - public view of an account, no credential material
type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	FullName  *string `json:"full_name,omitempty"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func NewUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

// GroupedAttraction - compact entry for the grouped city view
type GroupedAttraction struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Image       *string `json:"image,omitempty"`
	Rating      float64 `json:"rating"`
}

// GroupedAttractionsResponse - verified attractions keyed by category name
type GroupedAttractionsResponse map[string][]GroupedAttraction
