package models

// User owns zero or more notes. Users are created at registration and
// never deleted by this system.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}
