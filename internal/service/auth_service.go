package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"notes_backend/internal/models"
	"notes_backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// tokenBytes is the entropy of an issued token; hex-encoded it yields a
// 40-character opaque key.
const tokenBytes = 20

// AuthService handles registration, credential checks and the token store.
type AuthService struct {
	users  repository.Users
	tokens repository.Tokens
}

func NewAuthService(users repository.Users, tokens repository.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

var _ Authorization = (*AuthService)(nil)

// Register creates a user with a bcrypt-hashed password and issues a fresh
// token. A taken username fails with ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrCredentialsRequired
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	id, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return "", err
	}

	return s.issueToken(ctx, id)
}

// Login validates credentials and returns the user's live token, creating
// one if none exists. Unknown user and wrong password are deliberately the
// same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	existing, err := s.tokens.GetByUserID(ctx, u.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Token, nil
	}
	return s.issueToken(ctx, u.ID)
}

// Logout deletes the user's token. Logging out with no live token is a
// silent success.
func (s *AuthService) Logout(ctx context.Context, userID int) error {
	return s.tokens.DeleteByUserID(ctx, userID)
}

// Authenticate resolves a presented token to its user. The lookup hits the
// store on every call; revocation takes effect immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.tokens.GetUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// issueToken generates an opaque key and stores it for the user.
func (s *AuthService) issueToken(ctx context.Context, userID int) (string, error) {
	key, err := newTokenKey()
	if err != nil {
		return "", err
	}
	if err := s.tokens.Create(ctx, key, userID); err != nil {
		return "", err
	}
	return key, nil
}

// newTokenKey returns a random 40-char hex key.
func newTokenKey() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
