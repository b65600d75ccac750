package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notes_backend/internal/models"
)

type TokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

var _ Tokens = (*TokenRepository)(nil)

const (
	insertTokenSQL       = `INSERT INTO auth_tokens (token, user_id, created_at) VALUES (?, ?, ?)`
	selectTokenByUserSQL = `SELECT token, user_id, created_at FROM auth_tokens WHERE user_id = ?`
	selectUserByTokenSQL = `
		SELECT u.id, u.username, u.password_hash
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token = ?`
	deleteTokenByUserSQL = `DELETE FROM auth_tokens WHERE user_id = ?`
)

// Create inserts a token row for the user.
func (r *TokenRepository) Create(ctx context.Context, token string, userID int) error {
	_, err := r.db.ExecContext(ctx, insertTokenSQL, token, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert token for user %d: %w", userID, err)
	}
	return nil
}

// GetByUserID returns the user's live token. Returns (nil, nil) if the user
// has no token (never logged in, or logged out).
func (r *TokenRepository) GetByUserID(ctx context.Context, userID int) (*models.AuthToken, error) {
	var t models.AuthToken
	err := r.db.QueryRowContext(ctx, selectTokenByUserSQL, userID).
		Scan(&t.Token, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select token for user %d: %w", userID, err)
	}
	return &t, nil
}

// GetUserByToken resolves a presented token to its user. Returns (nil, nil)
// for unknown tokens; a deleted token is unknown from here on.
func (r *TokenRepository) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByTokenSQL, token).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by token: %w", err)
	}
	return &u, nil
}

// DeleteByUserID removes the user's token if present. Deleting an absent
// token is not an error (logout is idempotent).
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx, deleteTokenByUserSQL, userID); err != nil {
		return fmt.Errorf("delete token for user %d: %w", userID, err)
	}
	return nil
}
