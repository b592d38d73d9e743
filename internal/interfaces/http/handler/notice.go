package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nivas/backend/internal/application/community"
)

// NoticeHandler handles announcement board requests
type NoticeHandler struct {
	BaseHandler
	noticeService *community.NoticeService
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeService *community.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// AddNoticeRequest is the announcement payload
type AddNoticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority"`
}

// Create publishes an announcement and notifies residents
func (h *NoticeHandler) Create(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	var req AddNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	notice, err := h.noticeService.Publish(c.Request.Context(), community.AddNoticeInput{
		SocietyID: societyID,
		Title:     req.Title,
		Message:   req.Message,
		Priority:  req.Priority,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, notice)
}

// List returns the society's announcements
func (h *NoticeHandler) List(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	notices, err := h.noticeService.ListAll(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notices)
}

// MarkRead records that the caller has seen an announcement
func (h *NoticeHandler) MarkRead(c *gin.Context) {
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
		h.BadRequest(c, "Invalid notice ID")
		return
	}

	if err := h.noticeService.MarkRead(c.Request.Context(), societyID, id, accountID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Marked as read"})
}

// Delete removes an announcement
func (h *NoticeHandler) Delete(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid notice ID")
		return
	}

	if err := h.noticeService.Delete(c.Request.Context(), societyID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
