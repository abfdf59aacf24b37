package ports

import (
	"context"

	"github.com/contactbook/contact-api/internal/core/domain"
)

// ContactRepository defines the persistence interface for contacts.
type ContactRepository interface {
	// Create inserts a new contact and returns the stored record with its
	// generated ID.
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
}
