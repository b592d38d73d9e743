package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nivas/backend/internal/application/community"
)

// ExpenseHandler handles society expense ledger requests
type ExpenseHandler struct {
	BaseHandler
	expenseService *community.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *community.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// AddExpenseRequest is the expense recording payload
type AddExpenseRequest struct {
	Category    string     `json:"category" binding:"required"`
	Amount      string     `json:"amount" binding:"required"`
	Description string     `json:"description"`
	IncurredAt  *time.Time `json:"incurred_at"`
}

// Create records an outgoing and notifies residents
func (h *ExpenseHandler) Create(c *gin.Context) {
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

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.BadRequest(c, "Invalid amount")
		return
	}

	input := community.AddExpenseInput{
		SocietyID:   societyID,
		CreatedBy:   accountID,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
	}
	if req.IncurredAt != nil {
		input.IncurredAt = *req.IncurredAt
	}

	expense, err := h.expenseService.Add(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, expense)
}

// List returns the society's expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	expenses, err := h.expenseService.ListAll(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expenses)
}

// Summary returns per-category totals
func (h *ExpenseHandler) Summary(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	summary, err := h.expenseService.Summary(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Delete removes one expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), societyID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteByMonthRequest names the calendar month to clear, e.g. "March 2026"
type DeleteByMonthRequest struct {
	Month string `json:"month" binding:"required,month_label"`
}

// DeleteByMonth removes every expense incurred in one calendar month
func (h *ExpenseHandler) DeleteByMonth(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	var req DeleteByMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	deleted, err := h.expenseService.DeleteByMonth(c.Request.Context(), societyID, req.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"month": req.Month, "deleted": deleted})
}
