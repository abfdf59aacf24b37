package ports

import (
	"context"

	"github.com/contactbook/contact-api/internal/core/domain"
)

// CreateContactInput carries the fields of a new contact.
type CreateContactInput struct {
	Name  string
	Email string
	Phone string
}

// ContactRecord is the service result for a created contact.
type ContactRecord struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	UserID string
}

// ContactService creates contact records owned by an authenticated user.
type ContactService interface {
	Create(ctx context.Context, owner *domain.User, input CreateContactInput) (*ContactRecord, error)
}
