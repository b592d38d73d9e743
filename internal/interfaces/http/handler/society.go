package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nivas/backend/internal/application/identity"
)

// SocietyHandler handles developer-scoped society provisioning requests
type SocietyHandler struct {
	BaseHandler
	societyService *identity.SocietyService
}

// NewSocietyHandler creates a new society handler
func NewSocietyHandler(societyService *identity.SocietyService) *SocietyHandler {
	return &SocietyHandler{societyService: societyService}
}

// CreateSocietyRequest is the provisioning payload
type CreateSocietyRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	AdminName     string `json:"admin_name"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
	AdminPhone    string `json:"admin_phone"`
	SecurityPhone string `json:"security_phone"`
}

// Create provisions a society with its first admin account
func (h *SocietyHandler) Create(c *gin.Context) {
	var req CreateSocietyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.societyService.CreateSociety(c.Request.Context(), identity.CreateSocietyInput{
		Name:          req.Name,
		Address:       req.Address,
		AdminName:     req.AdminName,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
		AdminPhone:    req.AdminPhone,
		SecurityPhone: req.SecurityPhone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns every provisioned society
func (h *SocietyHandler) List(c *gin.Context) {
	societies, err := h.societyService.ListSocieties(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, societies)
}

// Get returns one society by ID
func (h *SocietyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid society ID")
		return
	}

	society, err := h.societyService.GetSociety(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, society)
}

// Delete removes a society and everything scoped to it
func (h *SocietyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid society ID")
		return
	}

	if err := h.societyService.DeleteSociety(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ResetAdminPasswordRequest is the developer-initiated reset payload
type ResetAdminPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ResetAdminPassword replaces the society admin's password and invalidates
// the admin's existing sessions
func (h *SocietyHandler) ResetAdminPassword(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid society ID")
		return
	}

	var req ResetAdminPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err = h.societyService.ResetAdminPassword(c.Request.Context(), identity.ResetAdminPasswordInput{
		SocietyID:   id,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Admin password reset"})
}
