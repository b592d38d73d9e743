package community

import (
	"strings"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
)

// NoticePriority represents how prominently a notice is surfaced
type NoticePriority string

const (
	NoticePriorityNormal NoticePriority = "Normal"
	NoticePriorityUrgent NoticePriority = "Urgent"
)

// Notice is a society-wide announcement
type Notice struct {
	shared.SocietyAggregateRoot
	Title    string         `gorm:"type:varchar(200);not null"`
	Message  string         `gorm:"type:text;not null"`
	Priority NoticePriority `gorm:"type:varchar(20);not null;default:'Normal'"`
	// ReadBy tracks which accounts have opened the notice; stored in a
	// join table, loaded by the repository.
	ReadBy []uuid.UUID `gorm:"-"`
}

// TableName returns the table name for GORM
func (Notice) TableName() string {
	return "notices"
}

// NoticeRead is one account's read receipt for a notice
type NoticeRead struct {
	NoticeID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for GORM
func (NoticeRead) TableName() string {
	return "notice_reads"
}

// NewNotice creates an announcement
func NewNotice(societyID uuid.UUID, title, message string, priority NoticePriority) (*Notice, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Notice must belong to a society")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notice title cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Notice message cannot be empty")
	}
	switch priority {
	case NoticePriorityNormal, NoticePriorityUrgent:
	case "":
		priority = NoticePriorityNormal
	default:
		return nil, shared.NewDomainError("INVALID_PRIORITY", "Unknown notice priority")
	}

	return &Notice{
		SocietyAggregateRoot: shared.NewSocietyAggregateRoot(societyID),
		Title:                title,
		Message:              strings.TrimSpace(message),
		Priority:             priority,
		ReadBy:               make([]uuid.UUID, 0),
	}, nil
}

// IsUrgent reports whether the notice is flagged urgent
func (n *Notice) IsUrgent() bool {
	return n.Priority == NoticePriorityUrgent
}
