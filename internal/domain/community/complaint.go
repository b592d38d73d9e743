package community

import (
	"strings"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
)

// ComplaintStatus represents the resolution state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "Pending"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
)

// Complaint is a resident-raised maintenance ticket
type Complaint struct {
	shared.SocietyAggregateRoot
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text;not null"`
	PhotoURL    string          `gorm:"type:varchar(500)"`
	Status      ComplaintStatus `gorm:"type:varchar(20);not null;default:'Pending'"`
}

// TableName returns the table name for GORM
func (Complaint) TableName() string {
	return "complaints"
}

// NewComplaint creates a pending complaint
func NewComplaint(societyID, accountID uuid.UUID, title, description, photoURL string) (*Complaint, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Complaint must belong to a society")
	}
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Complaint must have a reporter")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Complaint title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Complaint title cannot exceed 200 characters")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Complaint description cannot be empty")
	}

	return &Complaint{
		SocietyAggregateRoot: shared.NewSocietyAggregateRoot(societyID),
		AccountID:            accountID,
		Title:                title,
		Description:          strings.TrimSpace(description),
		PhotoURL:             strings.TrimSpace(photoURL),
		Status:               ComplaintStatusPending,
	}, nil
}

// SetStatus moves the ticket to a new resolution state
func (c *Complaint) SetStatus(status ComplaintStatus) error {
	switch status {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown complaint status")
	}
	c.Status = status
	c.Touch()
	c.IncrementVersion()
	return nil
}
