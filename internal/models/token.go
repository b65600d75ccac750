package models

import "time"

// AuthToken is an opaque bearer credential. At most one row exists per user;
// deleting the row revokes the session.
type AuthToken struct {
	Token     string    `json:"-"`
	UserID    int       `json:"-"`
	CreatedAt time.Time `json:"-"`
}
