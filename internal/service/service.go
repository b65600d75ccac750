package service

import (
	"context"

	"notes_backend/internal/models"
	"notes_backend/internal/repository"
)

// Authorization covers the full token lifecycle: registration and login both
// issue the user's single live token, logout revokes it, Authenticate
// resolves a presented token to its user on every protected request.
type Authorization interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, userID int) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// CreateParams is the writable field set for a new note. There is no owner
// field on purpose: the owner is always the authenticated caller.
type CreateParams struct {
	Title      string
	Content    string
	IsArchived bool
}

// UpdateParams is a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Title      *string
	Content    *string
	IsArchived *bool
}

// ListParams carries the raw query filters plus the page to fetch.
// Archived is the raw query token; unrecognized values mean "no filter".
type ListParams struct {
	Archived string
	Search   string
	Page     int
	PageSize int
}

// NotePage is one page of a listing. Count is the total across all pages
// for the same filter.
type NotePage struct {
	Count   int
	Results []models.Note
}

// Notes exposes the note lifecycle, always scoped to the owning user.
type Notes interface {
	Create(ctx context.Context, ownerID int, p CreateParams) (*models.Note, error)
	Get(ctx context.Context, ownerID int, id int64) (*models.Note, error)
	List(ctx context.Context, ownerID int, p ListParams) (*NotePage, error)
	Update(ctx context.Context, ownerID int, id int64, p UpdateParams) (*models.Note, error)
	Delete(ctx context.Context, ownerID int, id int64) error
	Archive(ctx context.Context, ownerID int, id int64) (*models.Note, error)
	Unarchive(ctx context.Context, ownerID int, id int64) (*models.Note, error)
}

type Service struct {
	Authorization
	Notes
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Tokens),
		Notes:         NewNoteService(repos.Notes),
	}
}
