package domain

import (
	"errors"
	"time"
)

var ErrUsernameTaken = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("username or password is invalid")
var ErrUserNotFound = errors.New("user not found")
var ErrMissingToken = errors.New("authorization header is required")
var ErrInvalidToken = errors.New("invalid token")

// User models an account holder. The password is stored only as a bcrypt
// hash. Token is non-nil iff the user is currently logged in; it is written
// by login, cleared by logout, and read only during auth resolution.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Token        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
