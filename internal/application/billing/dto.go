package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nivas/backend/internal/domain/billing"
)

// GenerateBillsInput contains the input for a monthly batch generation
type GenerateBillsInput struct {
	SocietyID uuid.UUID
	Period    string
	Amount    decimal.Decimal
}

// GenerateBillsResult reports how many bills the batch created
type GenerateBillsResult struct {
	Period  string `json:"period"`
	Created int    `json:"created"`
}

// BillInfo is the bill view returned to the client
type BillInfo struct {
	ID                uuid.UUID       `json:"id"`
	AccountID         uuid.UUID       `json:"account_id"`
	Period            string          `json:"period"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	ExternalPaymentID string          `json:"external_payment_id,omitempty"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	Current           bool            `json:"current"`
}

// NewBillInfo projects a domain bill into the client view
func NewBillInfo(bill *billing.Bill, now time.Time) BillInfo {
	return BillInfo{
		ID:                bill.ID,
		AccountID:         bill.AccountID,
		Period:            bill.Period,
		Amount:            bill.Amount,
		Status:            string(bill.Status),
		PaidAt:            bill.PaidAt,
		ExternalPaymentID: bill.ExternalPaymentID,
		PaymentMethod:     bill.PaymentMethod,
		Current:           billing.IsCurrentPeriod(bill.Period, now),
	}
}

// PeriodGroup is one period bucket of the admin billing overview
type PeriodGroup struct {
	Period string     `json:"period"`
	Bills  []BillInfo `json:"bills"`
}

// CreateOrderInput contains the input for a checkout order
type CreateOrderInput struct {
	SocietyID uuid.UUID
	AccountID uuid.UUID
	BillID    uuid.UUID
}

// VerifyPaymentInput contains the gateway callback to verify
type VerifyPaymentInput struct {
	SocietyID uuid.UUID
	BillID    uuid.UUID
	OrderID   string
	PaymentID string
	Signature string
}
