package errors

import "net/http"

// Not found
var (
	ErrAttractionNotFound = New(
		"ATTRACTION_NOT_FOUND",
		"Attraction not found",
		http.StatusNotFound,
	)

	ErrRecommendationNotFound = New(
		"RECOMMENDATION_NOT_FOUND",
		"Recommendation not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)
)

// Invalid input
var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrEmptySearchQuery = New(
		"EMPTY_SEARCH_QUERY",
		"Search query must not be empty",
		http.StatusBadRequest,
	)

	ErrMissingCategory = New(
		"MISSING_CATEGORY",
		"A category id or category name is required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)
)

// Moderation state
var ErrAlreadyProcessed = New(
	"ALREADY_PROCESSED",
	"Recommendation has already been processed",
	http.StatusConflict,
)

// Storage integrity
var (
	ErrConstraintViolation = New(
		"CONSTRAINT_VIOLATION",
		"Referenced record does not exist or violates a constraint",
		http.StatusBadRequest,
	)

	ErrDuplicateEntry = New(
		"DUPLICATE_ENTRY",
		"A record with these unique fields already exists",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)
)

// Auth
var (
	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Admin access required",
		http.StatusForbidden,
	)
)

var ErrInternalServer = New(
	"INTERNAL_SERVER_ERROR",
	"Internal server error",
	http.StatusInternalServerError,
)
