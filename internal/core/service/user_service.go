package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactbook/contact-api/internal/core/domain"
	"github.com/contactbook/contact-api/internal/core/ports"
)

// UserService implements the account lifecycle: register, login, current,
// update, logout.
type UserService struct {
	repo       ports.UserRepository
	logger     zerolog.Logger
	bcryptCost int

	// newToken issues an opaque bearer token. Overridable in tests.
	newToken func() string
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcryptCost,
		newToken:   uuid.NewString,
	}
}

// Register creates a new account with a hashed password and no active token.
// Username uniqueness is enforced by the store's unique index; a collision
// surfaces as domain.ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.UserProfile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return profileOf(created), nil
}

// Login verifies credentials and issues a fresh bearer token, overwriting any
// previous one so at most one token is valid per user. An unknown username
// and a wrong password return the same generic error; callers cannot probe
// which usernames exist.
func (s *UserService) Login(ctx context.Context, input ports.LoginUserInput) (*ports.UserProfile, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.newToken()
	if err := s.repo.UpdateToken(ctx, user.ID, &token); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	profile := profileOf(user)
	profile.Token = token
	return profile, nil
}

// Current projects the already-authenticated user to its public profile.
// No store access and no failure path; auth resolution guaranteed the user.
func (s *UserService) Current(user *domain.User) *ports.UserProfile {
	return profileOf(user)
}

// Update applies a partial profile change. Absent fields keep their stored
// value; a new password is re-hashed before persisting. When neither field is
// present no store write happens and the unchanged profile is returned.
func (s *UserService) Update(ctx context.Context, user *domain.User, input ports.UpdateUserInput) (*ports.UserProfile, error) {
	if input.Name == nil && input.Password == nil {
		return profileOf(user), nil
	}

	name := user.Name
	if input.Name != nil {
		name = *input.Name
	}

	passwordHash := user.PasswordHash
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	if err := s.repo.UpdateProfile(ctx, user.ID, name, passwordHash); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("profile updated")

	return &ports.UserProfile{ID: user.ID, Username: user.Username, Name: name}, nil
}

// Logout clears the stored token unconditionally, revoking the session.
func (s *UserService) Logout(ctx context.Context, user *domain.User) error {
	if err := s.repo.UpdateToken(ctx, user.ID, nil); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged out")
	return nil
}

func profileOf(user *domain.User) *ports.UserProfile {
	return &ports.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}
