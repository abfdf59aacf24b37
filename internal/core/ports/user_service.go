package ports

import (
	"context"

	"github.com/contactbook/contact-api/internal/core/domain"
)

// RegisterUserInput carries the data needed to create a new account.
type RegisterUserInput struct {
	Username string
	Password string
	Name     string
}

// LoginUserInput carries login credentials.
type LoginUserInput struct {
	Username string
	Password string
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched; when both are nil the update is a no-op that still succeeds.
type UpdateUserInput struct {
	Name     *string
	Password *string
}

// UserProfile is the client-safe projection of a User. It never carries the
// password hash; Token is populated only on login.
type UserProfile struct {
	ID       string
	Username string
	Name     string
	Token    string
}

// UserService orchestrates the account lifecycle: registration, login and
// token issuance, profile reads and updates, and logout.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*UserProfile, error)
	Login(ctx context.Context, input LoginUserInput) (*UserProfile, error)
	Current(user *domain.User) *UserProfile
	Update(ctx context.Context, user *domain.User, input UpdateUserInput) (*UserProfile, error)
	Logout(ctx context.Context, user *domain.User) error
}
