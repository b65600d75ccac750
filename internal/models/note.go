package models

import "time"

// Note is a personal note belonging to exactly one user.
// Owner carries the owning user's username for display; the numeric
// owner id never leaves the persistence layer.
type Note struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Owner      string    `json:"owner"`
	OwnerID    int       `json:"-"`
	IsArchived bool      `json:"is_archived"`
}
