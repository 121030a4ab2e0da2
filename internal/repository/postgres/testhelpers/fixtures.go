package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateTestUser inserts a user row and returns its id
func CreateTestUser(db *sql.DB, email, username, role string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO users (email, username, password_hash, role)
		VALUES ($1, $2, 'x', $3)
		RETURNING id
	`, email, username, role).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create test user %s: %w", username, err)
	}
	return id, nil
}

// CreateTestAttraction inserts an attraction row and returns its id
func CreateTestAttraction(db *sql.DB, name string, lat, lng float64, categoryID int64, verified bool) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO attractions (name, lat, lng, category_id, is_verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, name, lat, lng, categoryID, verified).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create test attraction %s: %w", name, err)
	}
	return id, nil
}

// CreateTestRecommendation inserts a recommendation row in the given status and returns its id
func CreateTestRecommendation(db *sql.DB, name, category, status string, submittedBy *int64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO user_recommendations (name, lat, lng, category, status, submitted_by)
		VALUES ($1, 3.5952, 98.6722, $2, $3, $4)
		RETURNING id
	`, name, category, status, submittedBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create test recommendation %s: %w", name, err)
	}
	return id, nil
}

// GetCategoryIDByName returns the id of a seeded category
func GetCategoryIDByName(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM categories WHERE name = $1", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get category ID by name %s: %w", name, err)
	}
	return id, nil
}
