package community

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense is one society outgoing recorded by the admin, visible to residents
type Expense struct {
	shared.SocietyAggregateRoot
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"type:text"`
	IncurredAt  time.Time       `gorm:"not null;index"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense records a society expense
func NewExpense(societyID, createdBy uuid.UUID, category string, amount decimal.Decimal, description string, incurredAt time.Time) (*Expense, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Expense must belong to a society")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Expense must have a recorder")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if incurredAt.IsZero() {
		incurredAt = time.Now()
	}

	return &Expense{
		SocietyAggregateRoot: shared.NewSocietyAggregateRoot(societyID),
		Category:             category,
		Amount:               amount,
		Description:          strings.TrimSpace(description),
		IncurredAt:           incurredAt,
		CreatedBy:            createdBy,
	}, nil
}

// CategorySummary is the per-category aggregate residents see on the
// transparency dashboard.
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// MonthRange resolves a "January 2006" style label to the [start, end)
// calendar-month range used by bulk expense deletion. Unlike bill periods,
// expenses carry a structured date, so the label must parse.
func MonthRange(label string) (time.Time, time.Time, error) {
	start, err := time.Parse("January 2006", strings.TrimSpace(label))
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_PERIOD", "Month must look like \"January 2006\"")
	}
	return start, start.AddDate(0, 1, 0), nil
}
