package community

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VisitorRepository persists gate-log entries. Every read is scoped to a
// society; the kiosk supplies the society explicitly since it has no session.
type VisitorRepository interface {
	Create(ctx context.Context, visitor *Visitor) error
	Update(ctx context.Context, visitor *Visitor) error
	FindByID(ctx context.Context, societyID, id uuid.UUID) (*Visitor, error)
	FindAll(ctx context.Context, societyID uuid.UUID) ([]*Visitor, error)
	FindByStatus(ctx context.Context, societyID uuid.UUID, status VisitorStatus) ([]*Visitor, error)
	FindByUnit(ctx context.Context, societyID uuid.UUID, unitLabel string) ([]*Visitor, error)
	Delete(ctx context.Context, societyID, id uuid.UUID) error
}

// ComplaintRepository persists maintenance tickets
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error
	Update(ctx context.Context, complaint *Complaint) error
	FindByID(ctx context.Context, societyID, id uuid.UUID) (*Complaint, error)
	FindAll(ctx context.Context, societyID uuid.UUID) ([]*Complaint, error)
	FindByAccount(ctx context.Context, societyID, accountID uuid.UUID) ([]*Complaint, error)
	Delete(ctx context.Context, societyID, id uuid.UUID) error
}

// ExpenseRepository persists society outgoings and serves the per-category
// transparency aggregate.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	FindByID(ctx context.Context, societyID, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, societyID uuid.UUID) ([]*Expense, error)
	SummarizeByCategory(ctx context.Context, societyID uuid.UUID) ([]CategorySummary, error)
	Delete(ctx context.Context, societyID, id uuid.UUID) error
	// DeleteByMonth removes every expense incurred in [start, end) and
	// returns the number removed.
	DeleteByMonth(ctx context.Context, societyID uuid.UUID, start, end time.Time) (int64, error)
}

// NoticeRepository persists announcements and their read receipts
type NoticeRepository interface {
	Create(ctx context.Context, notice *Notice) error
	FindByID(ctx context.Context, societyID, id uuid.UUID) (*Notice, error)
	FindAll(ctx context.Context, societyID uuid.UUID) ([]*Notice, error)
	// MarkRead records a read receipt; marking twice is a no-op.
	MarkRead(ctx context.Context, societyID, noticeID, accountID uuid.UUID) error
	Delete(ctx context.Context, societyID, id uuid.UUID) error
}

// VehicleRepository persists registered vehicles; the plate number is
// unique within a society and Create maps the violation to
// shared.ErrAlreadyExists.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *Vehicle) error
	FindByID(ctx context.Context, societyID, id uuid.UUID) (*Vehicle, error)
	FindAll(ctx context.Context, societyID uuid.UUID) ([]*Vehicle, error)
	FindByOwner(ctx context.Context, societyID, ownerID uuid.UUID) ([]*Vehicle, error)
	FindByNumber(ctx context.Context, societyID uuid.UUID, number string) (*Vehicle, error)
	Delete(ctx context.Context, societyID, id uuid.UUID) error
}

// EmergencyContactRepository persists one personal SOS record per account
type EmergencyContactRepository interface {
	// Upsert creates or replaces the account's personal contact.
	Upsert(ctx context.Context, contact *EmergencyContact) error
	FindByAccount(ctx context.Context, societyID, accountID uuid.UUID) (*EmergencyContact, error)
	DeleteByAccount(ctx context.Context, societyID, accountID uuid.UUID) error
}
