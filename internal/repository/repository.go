package repository

import (
	"context"
	"database/sql"

	"notes_backend/internal/models"
	"notes_backend/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Tokens is the store for opaque bearer tokens. Lookup happens on every
// protected request; deleting the row revokes the session immediately.
type Tokens interface {
	Create(ctx context.Context, token string, userID int) error
	GetByUserID(ctx context.Context, userID int) (*models.AuthToken, error)
	GetUserByToken(ctx context.Context, token string) (*models.User, error)
	DeleteByUserID(ctx context.Context, userID int) error
}

// NoteFilter narrows a note listing. Every query is additionally scoped to
// the owner; Archived and Search are conjoined only when set.
type NoteFilter struct {
	Archived *bool
	Search   string
	Limit    int
	Offset   int
}

// NoteUpdate carries a partial update; nil fields are left unchanged.
type NoteUpdate struct {
	Title      *string
	Content    *string
	IsArchived *bool
}

type Notes interface {
	Insert(ctx context.Context, n *models.Note) (int64, error)
	GetByID(ctx context.Context, ownerID int, id int64) (*models.Note, error)
	List(ctx context.Context, ownerID int, f NoteFilter) ([]models.Note, error)
	Count(ctx context.Context, ownerID int, f NoteFilter) (int, error)
	Update(ctx context.Context, ownerID int, id int64, u NoteUpdate) (bool, error)
	Delete(ctx context.Context, ownerID int, id int64) (bool, error)
	SetArchived(ctx context.Context, ownerID int, id int64, archived bool) (bool, error)
}

type Repository struct {
	Users  Users
	Tokens Tokens
	Notes  Notes
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Users:  NewUserRepository(database),
		Tokens: NewTokenRepository(database),
		Notes:  NewNoteRepository(database),
	}
}

// InitDB opens the SQLite database and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
