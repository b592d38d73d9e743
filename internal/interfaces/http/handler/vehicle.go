package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nivas/backend/internal/application/community"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/interfaces/http/middleware"
)

// VehicleHandler handles vehicle registry requests
type VehicleHandler struct {
	BaseHandler
	vehicleService *community.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *community.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// AddVehicleRequest is the registration payload
type AddVehicleRequest struct {
	VehicleNumber string `json:"vehicle_number" binding:"required"`
	VehicleType   string `json:"vehicle_type"`
	ModelName     string `json:"model_name"`
	ParkingSlot   string `json:"parking_slot"`
}

// Create registers a vehicle for the authenticated resident
func (h *VehicleHandler) Create(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.Register(c.Request.Context(), community.AddVehicleInput{
		SocietyID:      societyID,
		OwnerAccountID: accountID,
		VehicleNumber:  req.VehicleNumber,
		VehicleType:    req.VehicleType,
		ModelName:      req.ModelName,
		ParkingSlot:    req.ParkingSlot,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, vehicle)
}

// List returns the society's vehicles, optionally looked up by ?plate=
func (h *VehicleHandler) List(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	if plate := c.Query("plate"); plate != "" {
		vehicle, err := h.vehicleService.FindByPlate(c.Request.Context(), societyID, plate)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, vehicle)
		return
	}

	vehicles, err := h.vehicleService.ListAll(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vehicles)
}

// ListMine returns the authenticated resident's own vehicles
func (h *VehicleHandler) ListMine(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	vehicles, err := h.vehicleService.ListMine(c.Request.Context(), societyID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vehicles)
}

// Delete removes a vehicle. Residents may only remove their own; admins may
// remove any.
func (h *VehicleHandler) Delete(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	isAdmin := middleware.GetJWTRole(c) == string(identity.RoleAdmin)
	if err := h.vehicleService.Delete(c.Request.Context(), societyID, id, accountID, isAdmin); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
