package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BillStatus represents the payment state of a bill
type BillStatus string

const (
	BillStatusUnpaid BillStatus = "Unpaid"
	BillStatusPaid   BillStatus = "Paid"
)

// Bill represents one resident's maintenance charge for one billing period.
// A bill transitions Unpaid -> Paid exactly once; a paid bill is immutable
// except for administrative deletion.
type Bill struct {
	shared.SocietyAggregateRoot
	// (society_id, period, account_id) is unique via idx_bills_society_period_account,
	// created in migrations; it backs duplicate-period rejection under races.
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Period            string          `gorm:"type:varchar(100);not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status            BillStatus      `gorm:"type:varchar(20);not null;default:'Unpaid'"`
	PaidAt            *time.Time
	ExternalPaymentID string `gorm:"type:varchar(100)"`
	PaymentMethod     string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Bill) TableName() string {
	return "bills"
}

// NewBill creates an unpaid bill for one resident and one period
func NewBill(societyID, accountID uuid.UUID, period string, amount decimal.Decimal) (*Bill, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Bill must belong to a society")
	}
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Bill must be assigned to a resident")
	}
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Bill amount must be positive")
	}

	return &Bill{
		SocietyAggregateRoot: shared.NewSocietyAggregateRoot(societyID),
		AccountID:            accountID,
		Period:               strings.TrimSpace(period),
		Amount:               amount,
		Status:               BillStatusUnpaid,
	}, nil
}

// ValidatePeriod checks a free-text period label. The label is opaque to the
// system; grouping and "current period" logic use literal string matching.
func ValidatePeriod(period string) error {
	period = strings.TrimSpace(period)
	if period == "" {
		return shared.NewDomainError("INVALID_PERIOD", "Billing period cannot be empty")
	}
	if len(period) > 100 {
		return shared.NewDomainError("INVALID_PERIOD", "Billing period cannot exceed 100 characters")
	}
	return nil
}

// IsPaid reports whether the bill has been settled
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// MarkPaid records a verified payment. The persistence layer must apply this
// as a conditional update on status = Unpaid; this method only checks the
// in-memory state so the loser of a verification race is caught before any
// write is attempted.
func (b *Bill) MarkPaid(paymentID, method string, at time.Time) error {
	if b.Status == BillStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Bill has already been paid")
	}
	b.Status = BillStatusPaid
	b.PaidAt = &at
	b.ExternalPaymentID = paymentID
	b.PaymentMethod = method
	b.Touch()
	b.IncrementVersion()
	return nil
}
