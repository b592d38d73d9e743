package community

import (
	"strings"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
)

const defaultContactName = "Emergency Contact"

// EmergencyContact is a resident's personal SOS number, one per account.
// The society security desk and admin numbers live on the Society and the
// admin Account; the effective list is assembled at read time.
type EmergencyContact struct {
	shared.SocietyAggregateRoot
	AccountID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CustomName   string    `gorm:"type:varchar(100);not null;default:'Emergency Contact'"`
	CustomNumber string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}

// NewEmergencyContact creates a resident's personal SOS record
func NewEmergencyContact(societyID, accountID uuid.UUID, name, number string) (*EmergencyContact, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Emergency contact must belong to a society")
	}
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Emergency contact must belong to an account")
	}
	contact := &EmergencyContact{
		SocietyAggregateRoot: shared.NewSocietyAggregateRoot(societyID),
		AccountID:            accountID,
	}
	contact.Set(name, number)
	return contact, nil
}

// Set updates the personal contact, falling back to the default label
func (e *EmergencyContact) Set(name, number string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultContactName
	}
	e.CustomName = name
	e.CustomNumber = strings.TrimSpace(number)
	e.Touch()
	e.IncrementVersion()
}

// Clear removes the personal number, keeping the record
func (e *EmergencyContact) Clear() {
	e.CustomName = defaultContactName
	e.CustomNumber = ""
	e.Touch()
	e.IncrementVersion()
}

// SOSNumbers is the assembled emergency sheet for one resident
type SOSNumbers struct {
	SecurityDeskPhone string `json:"security_desk_phone"`
	AdminPhone        string `json:"admin_phone"`
	CustomName        string `json:"custom_name"`
	CustomNumber      string `json:"custom_number"`
}
