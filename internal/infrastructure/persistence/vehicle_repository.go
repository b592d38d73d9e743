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

// GormVehicleRepository implements community.VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Create inserts a vehicle; a duplicate plate within the society maps to
// ErrAlreadyExists
func (r *GormVehicleRepository) Create(ctx context.Context, vehicle *community.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a vehicle by ID within a society
func (r *GormVehicleRepository) FindByID(ctx context.Context, societyID, id uuid.UUID) (*community.Vehicle, error) {
	var vehicle community.Vehicle
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindAll lists every registered vehicle of a society
func (r *GormVehicleRepository) FindAll(ctx context.Context, societyID uuid.UUID) ([]*community.Vehicle, error) {
	var vehicles []*community.Vehicle
	if err := r.db.WithContext(ctx).
		Where("society_id = ?", societyID).
		Order("vehicle_number ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByOwner lists one resident's vehicles
func (r *GormVehicleRepository) FindByOwner(ctx context.Context, societyID, ownerID uuid.UUID) ([]*community.Vehicle, error) {
	var vehicles []*community.Vehicle
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND owner_account_id = ?", societyID, ownerID).
		Order("vehicle_number ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByNumber looks a vehicle up by its normalized plate number
func (r *GormVehicleRepository) FindByNumber(ctx context.Context, societyID uuid.UUID, number string) (*community.Vehicle, error) {
	var vehicle community.Vehicle
	if err := r.db.WithContext(ctx).
		Where("society_id = ? AND vehicle_number = ?", societyID, strings.ToUpper(strings.TrimSpace(number))).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// Delete removes a vehicle
func (r *GormVehicleRepository) Delete(ctx context.Context, societyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("society_id = ? AND id = ?", societyID, id).
		Delete(&community.Vehicle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ community.VehicleRepository = (*GormVehicleRepository)(nil)
