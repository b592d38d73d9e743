package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nivas/backend/internal/application/billing"
)

// BillHandler handles maintenance ledger requests
type BillHandler struct {
	BaseHandler
	billingService *billing.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *billing.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// GenerateBillsRequest is the monthly batch payload. Amount arrives as a
// string so fractional rupee values survive JSON untouched.
type GenerateBillsRequest struct {
	Period string `json:"period" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// Generate creates one unpaid bill per resident for a period
func (h *BillHandler) Generate(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	var req GenerateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.BadRequest(c, "Invalid amount")
		return
	}

	result, err := h.billingService.GenerateBills(c.Request.Context(), billing.GenerateBillsInput{
		SocietyID: societyID,
		Period:    req.Period,
		Amount:    amount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns the society's bills grouped by period, newest first
func (h *BillHandler) List(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	groups, err := h.billingService.ListBills(c.Request.Context(), societyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, groups)
}

// ListMine returns the authenticated resident's own bills
func (h *BillHandler) ListMine(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	bills, err := h.billingService.ListMyBills(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bills)
}

// Delete removes a single bill
func (h *BillHandler) Delete(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billingService.DeleteBill(c.Request.Context(), societyID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteByPeriodRequest names the period whose bills should be removed
type DeleteByPeriodRequest struct {
	Period string `json:"period" binding:"required"`
}

// DeleteByPeriod removes every bill of one period
func (h *BillHandler) DeleteByPeriod(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	var req DeleteByPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	deleted, err := h.billingService.DeleteBillsByPeriod(c.Request.Context(), societyID, req.Period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"period": req.Period, "deleted": deleted})
}
