package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nivas/backend/internal/application/community"
)

// VisitorHandler handles gate-log requests. Entry recording also serves the
// unauthenticated security kiosk, which names the society explicitly.
type VisitorHandler struct {
	BaseHandler
	visitorService *community.VisitorService
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(visitorService *community.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService}
}

// VisitorEntryRequest is the gate entry payload
type VisitorEntryRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	UnitLabel       string `json:"unit_label"`
	Purpose         string `json:"purpose"`
	VehicleNumber   string `json:"vehicle_number"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (r *VisitorEntryRequest) duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}

// KioskEntryRequest is the public kiosk payload; the kiosk has no session so
// the society arrives in the body
type KioskEntryRequest struct {
	SocietyID string `json:"society_id" binding:"required,uuid"`
	VisitorEntryRequest
}

// KioskEntry records a walk-in from the unauthenticated gate kiosk
func (h *VisitorHandler) KioskEntry(c *gin.Context) {
	var req KioskEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	societyID, err := uuid.Parse(req.SocietyID)
	if err != nil {
		h.BadRequest(c, "Invalid society ID")
		return
	}

	visitor, err := h.visitorService.RecordEntry(c.Request.Context(), community.VisitorEntryInput{
		SocietyID:     societyID,
		Name:          req.Name,
		Phone:         req.Phone,
		UnitLabel:     req.UnitLabel,
		Purpose:       req.Purpose,
		VehicleNumber: req.VehicleNumber,
		Duration:      req.duration(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, visitor)
}

// PreApprove records an expected visitor ahead of arrival
func (h *VisitorHandler) PreApprove(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	var req VisitorEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	visitor, err := h.visitorService.PreApprove(c.Request.Context(), community.VisitorEntryInput{
		SocietyID:     societyID,
		Name:          req.Name,
		Phone:         req.Phone,
		UnitLabel:     req.UnitLabel,
		Purpose:       req.Purpose,
		VehicleNumber: req.VehicleNumber,
		Duration:      req.duration(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, visitor)
}

// MarkExit closes an open gate entry
func (h *VisitorHandler) MarkExit(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid visitor ID")
		return
	}

	visitor, err := h.visitorService.MarkExit(c.Request.Context(), societyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, visitor)
}

// List returns the society's gate log, optionally filtered to one unit via
// the ?unit= query parameter
func (h *VisitorHandler) List(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	if unit := c.Query("unit"); unit != "" {
		visitors, err := h.visitorService.ListForUnit(c.Request.Context(), societyID, unit)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, visitors)
		return
	}

	visitors, err := h.visitorService.ListAll(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, visitors)
}

// Delete removes a gate-log entry
func (h *VisitorHandler) Delete(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid visitor ID")
		return
	}

	if err := h.visitorService.Delete(c.Request.Context(), societyID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
