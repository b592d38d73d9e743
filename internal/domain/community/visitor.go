package community

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nivas/backend/internal/domain/shared"
)

// VisitorStatus represents where a visitor is in the gate flow
type VisitorStatus string

const (
	// VisitorStatusExpected is a resident pre-approval; the visitor has not
	// arrived yet.
	VisitorStatusExpected VisitorStatus = "Expected"
	VisitorStatusInside   VisitorStatus = "Inside"
	VisitorStatusExited   VisitorStatus = "Exited"
)

// DefaultVisitDuration is assumed when the gate entry carries no duration.
const DefaultVisitDuration = 24 * time.Hour

// Visitor is one gate-log entry. Entries may be created by the security
// kiosk (no session, society supplied explicitly), by an admin, or as a
// resident pre-approval.
type Visitor struct {
	shared.SocietyAggregateRoot
	Name             string `gorm:"type:varchar(200);not null"`
	Phone            string `gorm:"type:varchar(50);not null"`
	UnitLabel        string `gorm:"type:varchar(50);not null;index"`
	Purpose          string `gorm:"type:varchar(200);not null"`
	VehicleNumber    string `gorm:"type:varchar(50)"`
	EntryTime        time.Time
	ExitTime         *time.Time
	ExpectedExitTime time.Time
	Status           VisitorStatus `gorm:"type:varchar(20);not null;index"`
	AddedBy          string        `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Visitor) TableName() string {
	return "visitors"
}

// NewVisitorEntry records a visitor walking in through the gate
func NewVisitorEntry(societyID uuid.UUID, name, phone, unitLabel, purpose, vehicleNumber, addedBy string, duration time.Duration) (*Visitor, error) {
	return newVisitor(societyID, name, phone, unitLabel, purpose, vehicleNumber, addedBy, duration, VisitorStatusInside)
}

// NewPreApprovedVisitor records a resident pre-approval; the visitor is
// Expected until the gate marks the actual entry.
func NewPreApprovedVisitor(societyID uuid.UUID, name, phone, unitLabel, purpose, vehicleNumber string, duration time.Duration) (*Visitor, error) {
	return newVisitor(societyID, name, phone, unitLabel, purpose, vehicleNumber, "Resident", duration, VisitorStatusExpected)
}

func newVisitor(societyID uuid.UUID, name, phone, unitLabel, purpose, vehicleNumber, addedBy string, duration time.Duration, status VisitorStatus) (*Visitor, error) {
	if societyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOCIETY", "Visitor entry must belong to a society")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Guest"
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		phone = "N/A"
	}
	unitLabel = strings.TrimSpace(unitLabel)
	if unitLabel == "" {
		unitLabel = "Unknown"
	}
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		purpose = "Visit"
	}
	if duration <= 0 {
		duration = DefaultVisitDuration
	}

	now := time.Now()
	return &Visitor{
		SocietyAggregateRoot: shared.NewSocietyAggregateRoot(societyID),
		Name:                 name,
		Phone:                phone,
		UnitLabel:            unitLabel,
		Purpose:              purpose,
		VehicleNumber:        strings.ToUpper(strings.TrimSpace(vehicleNumber)),
		EntryTime:            now,
		ExpectedExitTime:     now.Add(duration),
		Status:               status,
		AddedBy:              addedBy,
	}, nil
}

// MarkExited closes the gate-log entry
func (v *Visitor) MarkExited(at time.Time) error {
	if v.Status == VisitorStatusExited {
		return shared.NewDomainError("ALREADY_EXITED", "Visitor has already exited")
	}
	v.Status = VisitorStatusExited
	v.ExitTime = &at
	v.Touch()
	v.IncrementVersion()
	return nil
}

// IsOverstaying reports whether the visitor is inside past the expected exit
func (v *Visitor) IsOverstaying(now time.Time) bool {
	return v.Status == VisitorStatusInside && now.After(v.ExpectedExitTime)
}
