package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nivas/backend/internal/application/identity"
)

// ResidentHandler handles admin-scoped resident management requests
type ResidentHandler struct {
	BaseHandler
	residentService *identity.ResidentService
}

// NewResidentHandler creates a new resident handler
func NewResidentHandler(residentService *identity.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: residentService}
}

// AddResidentRequest is the resident creation payload
type AddResidentRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	UnitLabel   string `json:"unit_label" binding:"required"`
	Phone       string `json:"phone"`
}

// Create adds a resident account to the admin's society
func (h *ResidentHandler) Create(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	var req AddResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resident, err := h.residentService.AddResident(c.Request.Context(), identity.AddResidentInput{
		SocietyID:   societyID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
		UnitLabel:   req.UnitLabel,
		Phone:       req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resident)
}

// List returns every resident of the admin's society
func (h *ResidentHandler) List(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	residents, err := h.residentService.ListResidents(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, residents)
}

// Get returns one resident of the admin's society
func (h *ResidentHandler) Get(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid resident ID")
		return
	}

	resident, err := h.residentService.GetResident(c.Request.Context(), societyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resident)
}

// Delete removes a resident and the records scoped to them
func (h *ResidentHandler) Delete(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid resident ID")
		return
	}

	if err := h.residentService.DeleteResident(c.Request.Context(), societyID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
