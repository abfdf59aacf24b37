package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contactbook/contact-api/internal/core/domain"
	"github.com/contactbook/contact-api/internal/core/ports"
)

// ContactService creates contact records on behalf of authenticated users.
type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Create persists a contact owned by the given user. Any number of contacts
// per owner is permitted; there is no duplicate detection.
func (s *ContactService) Create(ctx context.Context, owner *domain.User, input ports.CreateContactInput) (*ports.ContactRecord, error) {
	contact := &domain.Contact{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		UserID: owner.ID,
	}

	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", owner.ID).Msg("failed to create contact")
		return nil, err
	}

	s.logger.Info().Str("contact_id", created.ID).Str("user_id", owner.ID).Msg("contact created")

	return &ports.ContactRecord{
		ID:     created.ID,
		Name:   created.Name,
		Email:  created.Email,
		Phone:  created.Phone,
		UserID: created.UserID,
	}, nil
}
