package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormAccountRepository implements identity.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Create inserts a new account; a duplicate email maps to ErrAlreadyExists
func (r *GormAccountRepository) Create(ctx context.Context, account *identity.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update saves an existing account
func (r *GormAccountRepository) Update(ctx context.Context, account *identity.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	var account identity.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by email, case-insensitively
func (r *GormAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	var account identity.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// ExistsByEmail checks if an account with the given email exists
func (r *GormAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Account{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindResidentByUnit finds the resident occupying a unit within a society
func (r *GormAccountRepository) FindResidentByUnit(ctx context.Context, societyID uuid.UUID, unitLabel string) (*identity.Account, error) {
	var account identity.Account
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND role = ? AND unit_label = ?", societyID, identity.RoleResident, strings.TrimSpace(unitLabel)).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindResidents lists every resident of a society
func (r *GormAccountRepository) FindResidents(ctx context.Context, societyID uuid.UUID) ([]*identity.Account, error) {
	var accounts []*identity.Account
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND role = ?", societyID, identity.RoleResident).
		Order("unit_label ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// FindAdmin finds the administrator account of a society
func (r *GormAccountRepository) FindAdmin(ctx context.Context, societyID uuid.UUID) (*identity.Account, error) {
	var account identity.Account
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND role = ?", societyID, identity.RoleAdmin).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByIDInSociety finds an account by ID within a society
func (r *GormAccountRepository) FindByIDInSociety(ctx context.Context, societyID, id uuid.UUID) (*identity.Account, error) {
	var account identity.Account
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// DeleteResident removes a resident and its dependent records in one
// transaction: bills, vehicles, complaints, notice read receipts and the
// emergency contact go first so no row keeps referencing the account.
func (r *GormAccountRepository) DeleteResident(ctx context.Context, societyID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account identity.Account
		if err := tx.
			Where("society_id = ? AND id = ? AND role = ?", societyID, id, identity.RoleResident).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Where("society_id = ? AND account_id = ?", societyID, id).
			Delete(&billing.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("society_id = ? AND owner_account_id = ?", societyID, id).
			Delete(&community.Vehicle{}).Error; err != nil {
			return err
		}
		if err := tx.Where("society_id = ? AND account_id = ?", societyID, id).
			Delete(&community.Complaint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).
			Delete(&community.NoticeRead{}).Error; err != nil {
			return err
		}
		if err := tx.Where("society_id = ? AND account_id = ?", societyID, id).
			Delete(&community.EmergencyContact{}).Error; err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
}

var _ identity.AccountRepository = (*GormAccountRepository)(nil)
