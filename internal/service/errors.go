package service

import "errors"

// Domain errors. Handlers map these to HTTP status codes; everything else
// surfaces as an internal error.
var (
	// validation (400)
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title must be at most 200 characters")

	// conflict (400)
	ErrUsernameTaken = errors.New("username already exists")

	// auth (401)
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// not found (404). Also returned when the note belongs to another user,
	// so callers cannot probe for the existence of foreign notes.
	ErrNoteNotFound = errors.New("note not found")
)
