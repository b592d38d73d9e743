package community

import (
	"strings"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
)

// Vehicle is a resident-registered vehicle; the plate number is unique
// within a society.
type Vehicle struct {
	shared.SocietyAggregateRoot
	OwnerAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Unique per society via idx_vehicles_society_number, created in migrations.
	VehicleNumber  string    `gorm:"type:varchar(50);not null;index"`
	VehicleType    string    `gorm:"type:varchar(100);not null"`
	ModelName      string    `gorm:"type:varchar(100)"`
	ParkingSlot    string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// NewVehicle registers a vehicle for a resident
func NewVehicle(societyID, ownerID uuid.UUID, number, vehicleType, modelName string) (*Vehicle, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Vehicle must belong to a society")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Vehicle must have an owner")
	}
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Vehicle number cannot be empty")
	}
	if len(number) > 50 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Vehicle number cannot exceed 50 characters")
	}
	if vehicleType = strings.TrimSpace(vehicleType); vehicleType == "" {
		vehicleType = "4 Wheeler"
	}
	if modelName = strings.TrimSpace(modelName); modelName == "" {
		modelName = "Unknown Model"
	}

	return &Vehicle{
		SocietyAggregateRoot: shared.NewSocietyAggregateRoot(societyID),
		OwnerAccountID:       ownerID,
		VehicleNumber:        number,
		VehicleType:          vehicleType,
		ModelName:            modelName,
	}, nil
}

// OwnedBy reports whether the given account registered this vehicle
func (v *Vehicle) OwnedBy(accountID uuid.UUID) bool {
	return v.OwnerAccountID == accountID
}
