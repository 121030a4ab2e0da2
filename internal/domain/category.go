package domain

import "time"

// Category is an immutable reference entity owned by the seed process.
// The service only reads it; every attraction's category_id must resolve
// to one of these rows.
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Emoji     *string   `json:"emoji,omitempty" db:"emoji"`
	Color     *string   `json:"color,omitempty" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
