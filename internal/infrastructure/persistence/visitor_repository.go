package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

// GormVisitorRepository implements community.VisitorRepository using GORM
type GormVisitorRepository struct {
	db *gorm.DB
}

// NewGormVisitorRepository creates a new GormVisitorRepository
func NewGormVisitorRepository(db *gorm.DB) *GormVisitorRepository {
	return &GormVisitorRepository{db: db}
}

// Create inserts a gate-log entry
func (r *GormVisitorRepository) Create(ctx context.Context, visitor *community.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

// Update saves an existing gate-log entry
func (r *GormVisitorRepository) Update(ctx context.Context, visitor *community.Visitor) error {
	return r.db.WithContext(ctx).Save(visitor).Error
}

// FindByID finds a gate-log entry by ID within a society
func (r *GormVisitorRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Visitor, error) {
	var visitor community.Visitor
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		First(&visitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &visitor, nil
}

// FindAll lists a society's gate log, newest entry first
func (r *GormVisitorRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Visitor, error) {
	var visitors []*community.Visitor
	if err := r.db.WithContext(ctx).
		Where("society_id = ?", societyID).
		Order("entry_time DESC").
		Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}

// FindByStatus lists gate-log entries in a given status
func (r *GormVisitorRepository) FindByStatus(ctx context.Context, societyID uuid.UUID, status community.VisitorStatus) ([]*community.Visitor, error) {
	var visitors []*community.Visitor
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND status = ?", societyID, status).
		Order("entry_time DESC").
		Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}

// FindByUnit lists gate-log entries destined for a unit
func (r *GormVisitorRepository) FindByUnit(ctx context.Context, societyID uuid.UUID, unitLabel string) ([]*community.Visitor, error) {
	var visitors []*community.Visitor
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND unit_label = ?", societyID, strings.TrimSpace(unitLabel)).
		Order("entry_time DESC").
		Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}

// Delete removes a gate-log entry
func (r *GormVisitorRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		Delete(&community.Visitor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ community.VisitorRepository = (*GormVisitorRepository)(nil)
