package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormEmergencyContactRepository implements community.EmergencyContactRepository using GORM
type GormEmergencyContactRepository struct {
	db *gorm.DB
}

// NewGormEmergencyContactRepository creates a new GormEmergencyContactRepository
func NewGormEmergencyContactRepository(db *gorm.DB) *GormEmergencyContactRepository {
	return &GormEmergencyContactRepository{db: db}
}

// Upsert creates or replaces the account's personal contact. The unique
// index on account_id makes the upsert target unambiguous.
func (r *GormEmergencyContactRepository) Upsert(ctx context.Context, contact *community.EmergencyContact) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"custom_name", "custom_number", "updated_at", "version",
			}),
		}).
		Create(contact).Error
}

// FindByAccount finds the personal contact record for an account
func (r *GormEmergencyContactRepository) FindByAccount(ctx context.Context, societyID, accountID uuid.UUID) (*community.EmergencyContact, error) {
	var contact community.EmergencyContact
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND account_id = ?", societyID, accountID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// DeleteByAccount removes the personal contact record for an account
func (r *GormEmergencyContactRepository) DeleteByAccount(ctx context.Context, societyID, accountID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND account_id = ?", societyID, accountID).
		Delete(&community.EmergencyContact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ community.EmergencyContactRepository = (*GormEmergencyContactRepository)(nil)
