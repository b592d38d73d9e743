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

// AuthService handles login, logout and self-service profile updates
type AuthService struct {
	accountRepo identity.AccountRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	accountRepo identity.AccountRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		logger:      logger,
	}
}

// Login authenticates an account and issues a session token. The token
// carries the society ID so every downstream handler resolves its tenant
// from the claims, never from the request body.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Login for unknown email", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !account.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("account_id", account.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		AccountID: account.ID,
		SocietyID: account.SocietyID,
		Role:      string(account.Role),
		Email:     account.Email,
	})
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate session token")
	}

	s.logger.Info("Account logged in",
		zap.String("account_id", account.ID.String()),
		zap.String("role", string(account.Role)),
	)

	return &LoginResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		TokenType: token.TokenType,
		Account:   NewAccountInfo(account),
	}, nil
}

// Logout revokes the presented token for the remainder of its lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" || input.TokenTTL <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke session")
	}
	s.logger.Info("Account logged out", zap.String("account_id", input.AccountID.String()))
	return nil
}

// GetAccount returns the account behind a session
func (s *AuthService) GetAccount(ctx context.Context, accountID uuid.UUID) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	info := NewAccountInfo(account)
	return &info, nil
}

// UpdateProfile applies self-service changes to the caller's own account
func (s *AuthService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if input.DisplayName != nil {
		if err := account.SetDisplayName(*input.DisplayName); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := account.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		if err := account.SetContactPhone(*input.Phone); err != nil {
			return nil, err
		}
	}
	if input.NewPassword != nil {
		if err := account.SetPassword(*input.NewPassword); err != nil {
			return nil, err
		}
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("DUPLICATE_EMAIL", "Email is already registered")
		}
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	s.logger.Info("Profile updated", zap.String("account_id", account.ID.String()))
	info := NewAccountInfo(account)
	return &info, nil
}
