package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nivas/backend/internal/application/community"
)

// SOSHandler handles emergency number requests
type SOSHandler struct {
	BaseHandler
	sosService *community.SOSService
}

// NewSOSHandler creates a new SOS handler
func NewSOSHandler(sosService *community.SOSService) *SOSHandler {
	return &SOSHandler{sosService: sosService}
}

// GetNumbers assembles the caller's emergency numbers: security desk, admin
// and the personal contact if one is set
func (h *SOSHandler) GetNumbers(c *gin.Context) {
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

	numbers, err := h.sosService.GetNumbers(c.Request.Context(), societyID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, numbers)
}

// SetContactRequest is the personal emergency contact payload
type SetContactRequest struct {
	Name   string `json:"name" binding:"required"`
	Number string `json:"number" binding:"required"`
}

// SetContact stores or replaces the caller's personal emergency contact
func (h *SOSHandler) SetContact(c *gin.Context) {
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

	var req SetContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err = h.sosService.SetPersonalContact(c.Request.Context(), community.SetEmergencyContactInput{
		SocietyID: societyID,
		AccountID: accountID,
		Name:      req.Name,
		Number:    req.Number,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Emergency contact saved"})
}

// ClearContact removes the caller's personal emergency contact
func (h *SOSHandler) ClearContact(c *gin.Context) {
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

	if err := h.sosService.ClearPersonalContact(c.Request.Context(), societyID, accountID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
