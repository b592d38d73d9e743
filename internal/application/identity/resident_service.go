package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
)

// ResidentService handles the admin-facing resident directory
type ResidentService struct {
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewResidentService creates a new resident directory service
func NewResidentService(accountRepo identity.AccountRepository, logger *zap.Logger) *ResidentService {
	return &ResidentService{accountRepo: accountRepo, logger: logger}
}

// AddResident creates a resident account. The unit label must be free within
// the society and the email free globally.
func (s *ResidentService) AddResident(ctx context.Context, input AddResidentInput) (*AccountInfo, error) {
	if _, err := s.accountRepo.FindResidentByUnit(ctx, input.SocietyID, input.UnitLabel); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_UNIT", "A resident already holds this unit")
	}
	if exists, err := s.accountRepo.ExistsByEmail(ctx, input.Email); err == nil && exists {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "Email is already registered")
	}

	resident, err := identity.NewResident(
		input.SocietyID,
		input.DisplayName,
		input.Email,
		input.Password,
		input.UnitLabel,
		input.Phone,
	)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, resident); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// either unique index may have tripped under a concurrent add;
			// a re-check of the email tells the two apart
			if exists, checkErr := s.accountRepo.ExistsByEmail(ctx, resident.Email); checkErr == nil && exists {
				return nil, shared.NewDomainError("DUPLICATE_EMAIL", "Email is already registered")
			}
			return nil, shared.NewDomainError("DUPLICATE_UNIT", "A resident already holds this unit")
		}
		s.logger.Error("Failed to create resident", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create resident")
	}

	s.logger.Info("Resident added",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("account_id", resident.ID.String()),
		zap.String("unit", resident.UnitLabel),
	)

	info := NewAccountInfo(resident)
	return &info, nil
}

// ListResidents returns every resident of the society, ordered by unit
func (s *ResidentService) ListResidents(ctx context.Context, societyID uuid.UUID) ([]AccountInfo, error) {
	residents, err := s.accountRepo.FindResidents(ctx, societyID)
	if err != nil {
		return nil, err
	}
	infos := make([]AccountInfo, len(residents))
	for i, resident := range residents {
		infos[i] = NewAccountInfo(resident)
	}
	return infos, nil
}

// GetResident returns one resident of the society
func (s *ResidentService) GetResident(ctx context.Context, societyID, id uuid.UUID) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByIDInSociety(ctx, societyID, id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	info := NewAccountInfo(account)
	return &info, nil
}

// DeleteResident removes a resident together with its bills, vehicles,
// complaints, notice read receipts and emergency-contact record.
func (s *ResidentService) DeleteResident(ctx context.Context, societyID, id uuid.UUID) error {
	if err := s.accountRepo.DeleteResident(ctx, societyID, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		s.logger.Error("Failed to delete resident",
			zap.String("account_id", id.String()),
			zap.Error(err),
		)
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete resident")
	}
	s.logger.Info("Resident deleted",
		zap.String("society_id", societyID.String()),
		zap.String("account_id", id.String()),
	)
	return nil
}
