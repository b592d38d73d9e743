package community

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
)

// SOSService assembles the emergency sheet a resident sees: the society's
// security desk, the admin's phone, and the resident's personal contact.
type SOSService struct {
	contactRepo community.EmergencyContactRepository
	societyRepo identity.SocietyRepository
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewSOSService creates a new SOS service
func NewSOSService(
	contactRepo community.EmergencyContactRepository,
	societyRepo identity.SocietyRepository,
	accountRepo identity.AccountRepository,
	logger *zap.Logger,
) *SOSService {
	return &SOSService{
		contactRepo: contactRepo,
		societyRepo: societyRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetNumbers assembles the caller's emergency sheet at read time; none of
// the three sources is denormalized into the others.
func (s *SOSService) GetNumbers(ctx context.Context, societyID, accountID uuid.UUID) (*community.SOSNumbers, error) {
	society, err := s.societyRepo.FindByID(ctx, societyID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	numbers := &community.SOSNumbers{
		SecurityDeskPhone: society.SecurityDeskPhone,
	}

	if admin, err := s.accountRepo.FindAdmin(ctx, societyID); err == nil {
		numbers.AdminPhone = admin.ContactPhone
	}

	if contact, err := s.contactRepo.FindByAccount(ctx, societyID, accountID); err == nil {
		numbers.CustomName = contact.CustomName
		numbers.CustomNumber = contact.CustomNumber
	}

	return numbers, nil
}

// SetPersonalContact creates or replaces the caller's personal SOS record
func (s *SOSService) SetPersonalContact(ctx context.Context, input SetEmergencyContactInput) error {
	contact, err := s.contactRepo.FindByAccount(ctx, input.SocietyID, input.AccountID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		contact, err = community.NewEmergencyContact(input.SocietyID, input.AccountID, input.Name, input.Number)
		if err != nil {
			return err
		}
	} else {
		contact.Set(input.Name, input.Number)
	}

	if err := s.contactRepo.Upsert(ctx, contact); err != nil {
		s.logger.Error("Failed to save emergency contact", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save emergency contact")
	}
	return nil
}

// ClearPersonalContact removes the caller's personal SOS record
func (s *SOSService) ClearPersonalContact(ctx context.Context, societyID, accountID uuid.UUID) error {
	if err := s.contactRepo.DeleteByAccount(ctx, societyID, accountID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}
