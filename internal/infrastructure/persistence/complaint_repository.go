package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormComplaintRepository implements community.ComplaintRepository using GORM
type GormComplaintRepository struct {
	db *gorm.DB
}

// NewGormComplaintRepository creates a new GormComplaintRepository
func NewGormComplaintRepository(db *gorm.DB) *GormComplaintRepository {
	return &GormComplaintRepository{db: db}
}

// Create inserts a complaint
func (r *GormComplaintRepository) Create(ctx context.Context, complaint *community.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// Update saves an existing complaint
func (r *GormComplaintRepository) Update(ctx context.Context, complaint *community.Complaint) error {
	return r.db.WithContext(ctx).Save(complaint).Error
}

// FindByID finds a complaint by ID within a society
func (r *GormComplaintRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Complaint, error) {
	var complaint community.Complaint
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// FindAll lists a society's complaints, newest first
func (r *GormComplaintRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Complaint, error) {
	var complaints []*community.Complaint
	if err := r.db.WithContext(ctx).
		Where("society_id = ?", societyID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// FindByAccount lists one resident's complaints, newest first
func (r *GormComplaintRepository) FindByAccount(ctx context.Context, societyID, accountID uuid.UUID) ([]*community.Complaint, error) {
	var complaints []*community.Complaint
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND account_id = ?", societyID, accountID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// Delete removes a complaint
func (r *GormComplaintRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		Delete(&community.Complaint{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ community.ComplaintRepository = (*GormComplaintRepository)(nil)
