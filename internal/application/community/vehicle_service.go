package community

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

// VehicleService handles the resident vehicle registry
type VehicleService struct {
	vehicleRepo community.VehicleRepository
	logger      *zap.Logger
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo community.VehicleRepository, logger *zap.Logger) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, logger: logger}
}

// Register adds a vehicle; the plate must be free within the society
func (s *VehicleService) Register(ctx context.Context, input AddVehicleInput) (*VehicleInfo, error) {
	vehicle, err := community.NewVehicle(
		input.SocietyID,
		input.OwnerAccountID,
		input.VehicleNumber,
		input.VehicleType,
		input.ModelName,
	)
	if err != nil {
		return nil, err
	}
	vehicle.ParkingSlot = input.ParkingSlot

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("DUPLICATE_VEHICLE", "This plate is already registered in the society")
		}
		s.logger.Error("Failed to register vehicle", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register vehicle")
	}

	s.logger.Info("Vehicle registered",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("vehicle_number", vehicle.VehicleNumber),
	)
	info := NewVehicleInfo(vehicle)
	return &info, nil
}

// ListAll returns every registered vehicle of the society
func (s *VehicleService) ListAll(ctx context.Context, societyID uuid.UUID) ([]VehicleInfo, error) {
	vehicles, err := s.vehicleRepo.FindAll(ctx, societyID)
	if err != nil {
		return nil, err
	}
	return toVehicleInfos(vehicles), nil
}

// ListMine returns the caller's own vehicles
func (s *VehicleService) ListMine(ctx context.Context, societyID, ownerID uuid.UUID) ([]VehicleInfo, error) {
	vehicles, err := s.vehicleRepo.FindByOwner(ctx, societyID, ownerID)
	if err != nil {
		return nil, err
	}
	return toVehicleInfos(vehicles), nil
}

// FindByPlate looks a vehicle up by its plate number (gate-side search)
func (s *VehicleService) FindByPlate(ctx context.Context, societyID uuid.UUID, plate string) (*VehicleInfo, error) {
	vehicle, err := s.vehicleRepo.FindByNumber(ctx, societyID, plate)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	info := NewVehicleInfo(vehicle)
	return &info, nil
}

// Delete removes a vehicle. Residents may only remove their own; the admin
// may remove any.
func (s *VehicleService) Delete(ctx context.Context, societyID, vehicleID, callerID uuid.UUID, callerIsAdmin bool) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, societyID, vehicleID)
	if err != nil {
		return shared.ErrNotFound
	}
	if !callerIsAdmin && !vehicle.OwnedBy(callerID) {
		return shared.ErrForbidden
	}
	return s.vehicleRepo.Delete(ctx, societyID, vehicleID)
}

func toVehicleInfos(vehicles []*community.Vehicle) []VehicleInfo {
	infos := make([]VehicleInfo, len(vehicles))
	for i, vehicle := range vehicles {
		infos[i] = NewVehicleInfo(vehicle)
	}
	return infos
}
