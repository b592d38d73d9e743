package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nivas/backend/internal/application/community"
)

// ComplaintHandler handles maintenance ticket requests
type ComplaintHandler struct {
	BaseHandler
	complaintService *community.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *community.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// RaiseComplaintRequest is the new ticket payload
type RaiseComplaintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	PhotoURL    string `json:"photo_url"`
}

// Raise opens a maintenance ticket for the authenticated resident
func (h *ComplaintHandler) Raise(c *gin.Context) {
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

	var req RaiseComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	complaint, err := h.complaintService.Raise(c.Request.Context(), community.RaiseComplaintInput{
		SocietyID:   societyID,
		AccountID:   accountID,
		Title:       req.Title,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, complaint)
}

// List returns the society's tickets (admin view)
func (h *ComplaintHandler) List(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	complaints, err := h.complaintService.ListAll(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, complaints)
}

// ListMine returns the authenticated resident's own tickets
func (h *ComplaintHandler) ListMine(c *gin.Context) {
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

	complaints, err := h.complaintService.ListMine(c.Request.Context(), societyID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, complaints)
}

// UpdateStatusRequest names the ticket's next status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a ticket through its lifecycle
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid complaint ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), societyID, id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, complaint)
}

// Delete removes a ticket
func (h *ComplaintHandler) Delete(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid complaint ID")
		return
	}

	if err := h.complaintService.Delete(c.Request.Context(), societyID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
