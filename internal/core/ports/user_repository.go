package ports

import (
	"context"

	"github.com/contactbook/contact-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns the stored record with its
	// generated ID. Returns domain.ErrUsernameTaken when the username is
	// already in use.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByUsername returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByToken resolves a bearer token to the user currently holding it.
	// Returns domain.ErrUserNotFound when no user holds the token.
	FindByToken(ctx context.Context, token string) (*domain.User, error)

	// UpdateToken overwrites the stored token. A nil token logs the user out.
	UpdateToken(ctx context.Context, id string, token *string) error

	// UpdateProfile persists a new display name and password hash.
	UpdateProfile(ctx context.Context, id, name, passwordHash string) error
}
