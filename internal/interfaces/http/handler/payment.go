package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nivas/backend/internal/application/billing"
)

// PaymentHandler handles checkout order creation and callback verification
type PaymentHandler struct {
	BaseHandler
	paymentService *billing.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *billing.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrderRequest names the bill the resident is paying
type CreateOrderRequest struct {
	BillID string `json:"bill_id" binding:"required,uuid"`
}

// CreateOrder opens a gateway checkout order for one of the caller's bills
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
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

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	billID, err := uuid.Parse(req.BillID)
	if err != nil {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), billing.CreateOrderInput{
		SocietyID: societyID,
		AccountID: accountID,
		BillID:    billID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// VerifyPaymentRequest is the gateway callback payload
type VerifyPaymentRequest struct {
	BillID    string `json:"bill_id" binding:"required,uuid"`
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// Verify checks the gateway signature and settles the bill. A bill settles
// exactly once; a second verification gets ALREADY_PAID.
func (h *PaymentHandler) Verify(c *gin.Context) {
	societyID, err := getSocietyID(c)
	if err != nil {
		h.Forbidden(c, "Session is not bound to a society")
		return
	}

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	billID, err := uuid.Parse(req.BillID)
	if err != nil {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.paymentService.VerifyPayment(c.Request.Context(), billing.VerifyPaymentInput{
		SocietyID: societyID,
		BillID:    billID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bill)
}
