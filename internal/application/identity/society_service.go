package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
	"github.com/nivas/backend/internal/infrastructure/auth"
)

// SocietyService handles tenant provisioning. All operations are
// developer-scope; the HTTP layer guards them with an exact-match role check.
type SocietyService struct {
	societyRepo identity.SocietyRepository
	accountRepo identity.AccountRepository
	blacklist   auth.TokenBlacklist
	jwtService  *auth.JWTService
	logger      *zap.Logger
}

// NewSocietyService creates a new society provisioning service
func NewSocietyService(
	societyRepo identity.SocietyRepository,
	accountRepo identity.AccountRepository,
	blacklist auth.TokenBlacklist,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *SocietyService {
	return &SocietyService{
		societyRepo: societyRepo,
		accountRepo: accountRepo,
		blacklist:   blacklist,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// CreateSociety provisions a new tenant and its admin account in one
// transaction. The admin can log in with the given credentials immediately
// afterwards.
func (s *SocietyService) CreateSociety(ctx context.Context, input CreateSocietyInput) (*CreateSocietyResult, error) {
	if _, err := s.societyRepo.FindByName(ctx, input.Name); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_NAME", "A society with this name already exists")
	}
	if exists, err := s.accountRepo.ExistsByEmail(ctx, input.AdminEmail); err == nil && exists {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "Admin email is already registered")
	}

	society, err := identity.NewSociety(input.Name, input.Address, input.AdminEmail, uuid.NewString())
	if err != nil {
		return nil, err
	}
	if input.SecurityPhone != "" {
		if err := society.SetSecurityDeskPhone(input.SecurityPhone); err != nil {
			return nil, err
		}
	}

	adminName := input.AdminName
	if adminName == "" {
		adminName = "Society Admin"
	}
	admin, err := identity.NewAdmin(society.ID, adminName, input.AdminEmail, input.AdminPassword, input.AdminPhone)
	if err != nil {
		return nil, err
	}

	if err := s.societyRepo.CreateWithAdmin(ctx, society, admin); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// pre-checks raced with a concurrent provisioning; the unique
			// indexes are the source of truth
			return nil, shared.NewDomainError("DUPLICATE_NAME", "A society with this name or admin email already exists")
		}
		s.logger.Error("Failed to provision society", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to provision society")
	}

	s.logger.Info("Society provisioned",
		zap.String("society_id", society.ID.String()),
		zap.String("name", society.Name),
		zap.String("admin_id", admin.ID.String()),
	)

	return &CreateSocietyResult{
		Society: NewSocietyInfo(society),
		Admin:   NewAccountInfo(admin),
	}, nil
}

// ListSocieties returns every provisioned tenant
func (s *SocietyService) ListSocieties(ctx context.Context) ([]SocietyInfo, error) {
	societies, err := s.societyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]SocietyInfo, len(societies))
	for i, society := range societies {
		infos[i] = NewSocietyInfo(society)
	}
	return infos, nil
}

// GetSociety returns one tenant
func (s *SocietyService) GetSociety(ctx context.Context, id uuid.UUID) (*SocietyInfo, error) {
	society, err := s.societyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	info := NewSocietyInfo(society)
	return &info, nil
}

// DeleteSociety tears a tenant down. Every record scoped to the society is
// removed in one transaction; a partial teardown cannot be observed.
func (s *SocietyService) DeleteSociety(ctx context.Context, id uuid.UUID) error {
	if err := s.societyRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		s.logger.Error("Society teardown failed",
			zap.String("society_id", id.String()),
			zap.Error(err),
		)
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete society")
	}
	s.logger.Info("Society deleted", zap.String("society_id", id.String()))
	return nil
}

// ResetAdminPassword replaces the society admin's credential and revokes
// every session token the admin currently holds.
func (s *SocietyService) ResetAdminPassword(ctx context.Context, input ResetAdminPasswordInput) error {
	admin, err := s.accountRepo.FindAdmin(ctx, input.SocietyID)
	if err != nil {
		return shared.NewDomainError("ADMIN_NOT_FOUND", "Society has no admin account")
	}

	if err := admin.SetPassword(input.NewPassword); err != nil {
		return err
	}
	if err := s.accountRepo.Update(ctx, admin); err != nil {
		s.logger.Error("Failed to reset admin password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to reset password")
	}

	if err := s.blacklist.InvalidateAccountTokens(ctx, admin.ID.String(), s.jwtService.TokenExpiration()); err != nil {
		s.logger.Warn("Failed to revoke admin sessions after password reset",
			zap.String("admin_id", admin.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Admin password reset",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("admin_id", admin.ID.String()),
	)
	return nil
}
